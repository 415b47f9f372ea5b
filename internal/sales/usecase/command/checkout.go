package command

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	catalogdomain "github.com/kelompok6/retail-pos/internal/catalog/domain"
	"github.com/kelompok6/retail-pos/internal/sales/domain"
	"github.com/kelompok6/retail-pos/kafka"
	"github.com/kelompok6/retail-pos/pkg/logger"
)

// CheckoutHandler converts the session cart into a committed sale: it appends
// the sale to the ledger, decrements catalog stock for every line and clears
// the cart. All lines are re-validated against live stock before the first
// mutation, so a rejected checkout leaves catalog, ledger and cart untouched.
type CheckoutHandler struct {
	catalog   catalogdomain.ProductRepository
	ledger    domain.LedgerRepository
	publisher *kafka.Publisher

	now   func() time.Time
	newID func() string
}

// NewCheckoutHandler creates a new checkout handler. publisher may be nil
// when eventing is disabled.
func NewCheckoutHandler(catalog catalogdomain.ProductRepository, ledger domain.LedgerRepository, publisher *kafka.Publisher) *CheckoutHandler {
	return &CheckoutHandler{
		catalog:   catalog,
		ledger:    ledger,
		publisher: publisher,
		now:       time.Now,
		newID:     uuid.NewString,
	}
}

// Handle executes the checkout.
func (h *CheckoutHandler) Handle(ctx context.Context, cart *domain.Cart) (*domain.Sale, error) {
	if cart.IsEmpty() {
		return nil, domain.ErrEmptyCart
	}

	items := cart.Items()

	// Re-check every line against current stock before mutating anything.
	// Stock may have moved since the line was added, e.g. a catalog edit.
	for _, item := range items {
		product, ok := h.catalog.FindByID(item.ProductID)
		if !ok {
			return nil, fmt.Errorf("product %s (%s): %w",
				item.Name, item.ProductID, catalogdomain.ErrProductNotFound)
		}
		if item.Quantity > product.Stock {
			return nil, fmt.Errorf("product %s (%s) has stock %d, cart wants %d: %w",
				item.Name, item.ProductID, product.Stock, item.Quantity,
				catalogdomain.ErrInsufficientStock)
		}
	}

	sale, err := domain.NewSale(h.newID(), h.now(), items)
	if err != nil {
		return nil, err
	}

	if err := h.ledger.Append(sale); err != nil {
		return nil, fmt.Errorf("failed to record sale: %w", err)
	}

	// Cannot fail after the re-check above: no other mutation interleaves.
	for _, item := range items {
		if err := h.catalog.DecrementStock(item.ProductID, item.Quantity); err != nil {
			return nil, fmt.Errorf("failed to decrement stock for %s: %w", item.ProductID, err)
		}
	}

	cart.Clear()

	h.publish(ctx, sale)

	logger.Info(ctx).
		Str("sale_id", sale.ID).
		Int("lines", len(sale.Items)).
		Str("total_amount", sale.TotalAmount.String()).
		Str("total_profit", sale.TotalProfit.String()).
		Msg("Checkout completed")

	return sale, nil
}

// publish emits the sale event; failures are logged only, the sale stands.
func (h *CheckoutHandler) publish(ctx context.Context, sale *domain.Sale) {
	if h.publisher == nil {
		return
	}

	event := kafka.SaleCompletedEvent{
		SaleID:      sale.ID,
		TotalAmount: sale.TotalAmount.String(),
		TotalCost:   sale.TotalCost.String(),
		TotalProfit: sale.TotalProfit.String(),
		SoldAt:      sale.Timestamp,
	}
	for _, item := range sale.Items {
		event.Items = append(event.Items, kafka.SaleCompletedItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			Subtotal:  item.Subtotal.String(),
		})
	}

	if err := h.publisher.PublishSaleCompleted(ctx, event); err != nil {
		logger.Error(ctx).Err(err).Str("sale_id", sale.ID).Msg("Failed to publish sale event")
	}
}
