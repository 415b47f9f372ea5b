package query

import (
	"github.com/kelompok6/retail-pos/internal/catalog/domain"
)

// LowStockQuery lists products whose stock is at or below their minimum.
type LowStockQuery struct{}

// LowStockHandler handles the low stock query.
type LowStockHandler struct {
	repo domain.ProductRepository
}

// NewLowStockHandler creates a new low stock handler.
func NewLowStockHandler(repo domain.ProductRepository) *LowStockHandler {
	return &LowStockHandler{repo: repo}
}

// Handle executes the low stock query.
func (h *LowStockHandler) Handle(LowStockQuery) []domain.Product {
	return h.repo.LowStock()
}
