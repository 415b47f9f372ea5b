package domain

import (
	"github.com/shopspring/decimal"

	catalogdomain "github.com/kelompok6/retail-pos/internal/catalog/domain"
)

// Cart is the mutable pre-commit collection of selected items for one sales
// session: at most one line per product id, and every line's quantity is
// checked against the live catalog stock at mutation time, never just at
// checkout. A cart therefore never represents an over-commitment.
type Cart struct {
	items []SaleItem
}

// NewCart returns an empty cart.
func NewCart() *Cart {
	return &Cart{}
}

func (c *Cart) find(productID string) *SaleItem {
	for i := range c.items {
		if c.items[i].ProductID == productID {
			return &c.items[i]
		}
	}
	return nil
}

// AddItem adds quantity units of the product, merging into an existing line
// when one exists. Price and cost are snapshotted from the product's current
// values the moment the line is created. Fails with ErrOutOfStock when the
// product has no stock, and ErrStockExceeded when the resulting quantity
// would pass the available stock; in that case the line is left unchanged.
func (c *Cart) AddItem(product *catalogdomain.Product, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	if !product.IsAvailable() {
		return ErrOutOfStock
	}

	if line := c.find(product.ID); line != nil {
		newQuantity := line.Quantity + quantity
		if newQuantity > product.Stock {
			return ErrStockExceeded
		}
		line.Quantity = newQuantity
		line.Subtotal = line.Price.Mul(decimal.NewFromInt(int64(newQuantity)))
		return nil
	}

	if quantity > product.Stock {
		return ErrStockExceeded
	}

	c.items = append(c.items, SaleItem{
		ProductID: product.ID,
		Name:      product.Name,
		Quantity:  quantity,
		Price:     product.SellingPrice,
		Cost:      product.CostPrice,
		Subtotal:  product.SellingPrice.Mul(decimal.NewFromInt(int64(quantity))),
	})
	return nil
}

// SetQuantity sets a line's quantity absolutely, with a floor of one; lines
// are dropped through RemoveItem, never by setting zero. Fails with
// ErrStockExceeded when the new quantity passes the product's current stock,
// leaving the line unchanged.
func (c *Cart) SetQuantity(product *catalogdomain.Product, quantity int) error {
	line := c.find(product.ID)
	if line == nil {
		return ErrCartItemNotFound
	}

	if quantity < 1 {
		quantity = 1
	}
	if quantity > product.Stock {
		return ErrStockExceeded
	}

	line.Quantity = quantity
	line.Subtotal = line.Price.Mul(decimal.NewFromInt(int64(quantity)))
	return nil
}

// RemoveItem deletes the line unconditionally; absent lines are a no-op.
func (c *Cart) RemoveItem(productID string) {
	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// Clear empties all lines.
func (c *Cart) Clear() {
	c.items = nil
}

// Total sums all line subtotals.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.items {
		total = total.Add(item.Subtotal)
	}
	return total
}

// Items returns a copy of the lines in insertion order.
func (c *Cart) Items() []SaleItem {
	out := make([]SaleItem, len(c.items))
	copy(out, c.items)
	return out
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// Len returns the number of distinct lines.
func (c *Cart) Len() int {
	return len(c.items)
}
