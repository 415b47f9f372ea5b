package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItem is a line item, used both inside the cart (mutable, pre-commit)
// and inside a committed sale (immutable). Name, Price and Cost are snapshots
// captured when the line was created, so later catalog edits never change
// cart contents or historical sales. Subtotal is always Quantity * Price.
type SaleItem struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Cost      decimal.Decimal `json:"cost"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// Sale is an immutable committed transaction. TotalProfit is exactly
// TotalAmount - TotalCost.
type Sale struct {
	ID          string          `json:"id"`
	Timestamp   time.Time       `json:"timestamp"`
	Items       []SaleItem      `json:"items"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	TotalCost   decimal.Decimal `json:"totalCost"`
	TotalProfit decimal.Decimal `json:"totalProfit"`
}

// NewSale builds a sale from the given line items, deep-copying them and
// computing the totals. Only the checkout path creates sales.
func NewSale(id string, timestamp time.Time, items []SaleItem) (*Sale, error) {
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	copied := make([]SaleItem, len(items))
	copy(copied, items)

	totalAmount := decimal.Zero
	totalCost := decimal.Zero
	for _, item := range copied {
		totalAmount = totalAmount.Add(item.Subtotal)
		totalCost = totalCost.Add(item.Cost.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	return &Sale{
		ID:          id,
		Timestamp:   timestamp,
		Items:       copied,
		TotalAmount: totalAmount,
		TotalCost:   totalCost,
		TotalProfit: totalAmount.Sub(totalCost),
	}, nil
}

// LedgerRepository defines the contract for the append-only sale history.
type LedgerRepository interface {
	Append(sale *Sale) error
	FindAll() []Sale
	Count() int
}
