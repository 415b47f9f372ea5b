package command

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kelompok6/retail-pos/internal/catalog/domain"
)

// AddProductCommand represents the command to add a product to the catalog.
type AddProductCommand struct {
	ID           string
	Name         string
	SKU          string
	Category     string
	CostPrice    decimal.Decimal
	SellingPrice decimal.Decimal
	Stock        int
	MinStock     int
}

// AddProductHandler handles product creation.
type AddProductHandler struct {
	repo domain.ProductRepository
}

// NewAddProductHandler creates a new add product handler.
func NewAddProductHandler(repo domain.ProductRepository) *AddProductHandler {
	return &AddProductHandler{repo: repo}
}

// Handle validates the command and appends the product, assigning a fresh id
// when none is supplied.
func (h *AddProductHandler) Handle(cmd AddProductCommand) (*domain.Product, error) {
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
	if product.ID == "" {
		product.ID = uuid.NewString()
	}

	if err := product.Validate(); err != nil {
		return nil, err
	}

	if err := h.repo.Create(product); err != nil {
		return nil, fmt.Errorf("failed to add product: %w", err)
	}

	return product, nil
}
