package command

import (
	catalogdomain "github.com/kelompok6/retail-pos/internal/catalog/domain"
	"github.com/kelompok6/retail-pos/internal/sales/domain"
)

// SetCartQuantityCommand sets a cart line's quantity absolutely.
type SetCartQuantityCommand struct {
	ProductID string
	Quantity  int
}

// SetCartQuantityHandler handles absolute quantity changes on cart lines.
type SetCartQuantityHandler struct {
	catalog catalogdomain.ProductRepository
}

// NewSetCartQuantityHandler creates a new set cart quantity handler.
func NewSetCartQuantityHandler(catalog catalogdomain.ProductRepository) *SetCartQuantityHandler {
	return &SetCartQuantityHandler{catalog: catalog}
}

// Handle executes the set cart quantity command.
func (h *SetCartQuantityHandler) Handle(cart *domain.Cart, cmd SetCartQuantityCommand) error {
	product, ok := h.catalog.FindByID(cmd.ProductID)
	if !ok {
		return catalogdomain.ErrProductNotFound
	}

	return cart.SetQuantity(product, cmd.Quantity)
}
