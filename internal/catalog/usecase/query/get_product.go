package query

import (
	"github.com/kelompok6/retail-pos/internal/catalog/domain"
)

// GetProductQuery fetches a single product by id.
type GetProductQuery struct {
	ID string
}

// GetProductHandler handles the get product query.
type GetProductHandler struct {
	repo domain.ProductRepository
}

// NewGetProductHandler creates a new get product handler.
func NewGetProductHandler(repo domain.ProductRepository) *GetProductHandler {
	return &GetProductHandler{repo: repo}
}

// Handle executes the get product query.
func (h *GetProductHandler) Handle(q GetProductQuery) (*domain.Product, error) {
	product, ok := h.repo.FindByID(q.ID)
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return product, nil
}
