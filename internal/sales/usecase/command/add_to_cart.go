package command

import (
	catalogdomain "github.com/kelompok6/retail-pos/internal/catalog/domain"
	"github.com/kelompok6/retail-pos/internal/sales/domain"
)

// AddToCartCommand adds quantity units of a product to the session cart.
type AddToCartCommand struct {
	ProductID string
	Quantity  int
}

// AddToCartHandler handles cart additions, resolving the product against the
// live catalog so the quantity cap always reflects current stock.
type AddToCartHandler struct {
	catalog catalogdomain.ProductRepository
}

// NewAddToCartHandler creates a new add to cart handler.
func NewAddToCartHandler(catalog catalogdomain.ProductRepository) *AddToCartHandler {
	return &AddToCartHandler{catalog: catalog}
}

// Handle executes the add to cart command. A zero quantity means one unit.
func (h *AddToCartHandler) Handle(cart *domain.Cart, cmd AddToCartCommand) error {
	quantity := cmd.Quantity
	if quantity == 0 {
		quantity = 1
	}

	product, ok := h.catalog.FindByID(cmd.ProductID)
	if !ok {
		return catalogdomain.ErrProductNotFound
	}

	return cart.AddItem(product, quantity)
}
