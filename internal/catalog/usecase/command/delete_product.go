package command

import (
	"fmt"

	"github.com/kelompok6/retail-pos/internal/catalog/domain"
)

// DeleteProductCommand removes a product from the catalog.
type DeleteProductCommand struct {
	ID string
}

// DeleteProductHandler handles product deletion.
type DeleteProductHandler struct {
	repo domain.ProductRepository
}

// NewDeleteProductHandler creates a new delete product handler.
func NewDeleteProductHandler(repo domain.ProductRepository) *DeleteProductHandler {
	return &DeleteProductHandler{repo: repo}
}

// Handle deletes immediately and unconditionally. Deleting a product does not
// touch past sales, which carry their own snapshots.
func (h *DeleteProductHandler) Handle(cmd DeleteProductCommand) error {
	if cmd.ID == "" {
		return fmt.Errorf("invalid product id")
	}
	return h.repo.Delete(cmd.ID)
}
