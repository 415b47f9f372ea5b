package command

import (
	"github.com/shopspring/decimal"

	"github.com/kelompok6/retail-pos/internal/catalog/domain"
)

// UpdateProductCommand replaces the catalog entry matching ID wholesale.
type UpdateProductCommand struct {
	ID           string
	Name         string
	SKU          string
	Category     string
	CostPrice    decimal.Decimal
	SellingPrice decimal.Decimal
	Stock        int
	MinStock     int
}

// UpdateProductHandler handles product updates.
type UpdateProductHandler struct {
	repo domain.ProductRepository
}

// NewUpdateProductHandler creates a new update product handler.
func NewUpdateProductHandler(repo domain.ProductRepository) *UpdateProductHandler {
	return &UpdateProductHandler{repo: repo}
}

// Handle validates and replaces the product. Historical sales are unaffected:
// they hold price snapshots, not live references.
func (h *UpdateProductHandler) Handle(cmd UpdateProductCommand) (*domain.Product, error) {
	product := &domain.Product{
		ID:           cmd.ID,
		Name:         cmd.Name,
		SKU:          cmd.SKU,
		Category:     cmd.Category,
		CostPrice:    cmd.CostPrice,
		SellingPrice: cmd.SellingPrice,
		Stock:        cmd.Stock,
		MinStock:     cmd.MinStock,
	}

	if err := product.Validate(); err != nil {
		return nil, err
	}

	if err := h.repo.Update(product); err != nil {
		return nil, err
	}

	return product, nil
}
