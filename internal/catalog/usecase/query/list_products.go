package query

import (
	"github.com/kelompok6/retail-pos/internal/catalog/domain"
)

// ListProductsQuery lists catalog entries, optionally filtered by a name/SKU
// search term.
type ListProductsQuery struct {
	Search string
}

// ListProductsHandler handles the list products query.
type ListProductsHandler struct {
	repo domain.ProductRepository
}

// NewListProductsHandler creates a new list products handler.
func NewListProductsHandler(repo domain.ProductRepository) *ListProductsHandler {
	return &ListProductsHandler{repo: repo}
}

// Handle executes the list products query.
func (h *ListProductsHandler) Handle(q ListProductsQuery) []domain.Product {
	if q.Search != "" {
		return h.repo.Search(q.Search)
	}
	return h.repo.FindAll()
}
