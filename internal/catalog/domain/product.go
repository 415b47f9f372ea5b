package domain

import (
	"github.com/shopspring/decimal"
)

// Product represents a catalog entry. CostPrice is the unit acquisition cost
// (HPP) used to compute gross profit; SellingPrice is the unit sale price.
// SKU is a human-facing code used for search and is not required to be unique.
type Product struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	SKU          string          `json:"sku"`
	Category     string          `json:"category"`
	CostPrice    decimal.Decimal `json:"costPrice"`
	SellingPrice decimal.Decimal `json:"sellingPrice"`
	Stock        int             `json:"stock"`
	MinStock     int             `json:"minStock"`
}

// Validate checks the structural rules for add/update. Selling below cost is
// permitted: negative-margin products are a business choice, not an error.
func (p *Product) Validate() error {
	if p.Name == "" {
		return ErrNameRequired
	}
	if p.SKU == "" {
		return ErrSKURequired
	}
	if p.Category == "" {
		return ErrCategoryRequired
	}
	if p.CostPrice.IsNegative() || p.SellingPrice.IsNegative() {
		return ErrNegativePrice
	}
	if p.Stock < 0 {
		return ErrNegativeStock
	}
	if p.MinStock < 0 {
		return ErrNegativeMinStock
	}
	return nil
}

// IsAvailable reports whether the product can be added to a cart.
func (p *Product) IsAvailable() bool {
	return p.Stock > 0
}

// IsLowStock reports whether stock is at or below the configured minimum.
// Exactly-at-threshold counts as low.
func (p *Product) IsLowStock() bool {
	return p.Stock <= p.MinStock
}

// ProductRepository defines the contract for catalog data access.
type ProductRepository interface {
	Create(product *Product) error
	FindByID(id string) (*Product, bool)
	FindAll() []Product
	Search(query string) []Product
	Update(product *Product) error
	Delete(id string) error
	DecrementStock(id string, quantity int) error
	LowStock() []Product
	Count() int
}

// SeedProducts is the catalog installed on first start, when the persistence
// key is absent.
func SeedProducts() []Product {
	return []Product{
		{ID: "1", Name: "Minyak Goreng 1L", SKU: "MG001", Category: "Sembako", CostPrice: decimal.NewFromInt(14000), SellingPrice: decimal.NewFromInt(18000), Stock: 50, MinStock: 10},
		{ID: "2", Name: "Beras Pandan Wangi 5kg", SKU: "BR002", Category: "Sembako", CostPrice: decimal.NewFromInt(65000), SellingPrice: decimal.NewFromInt(75000), Stock: 20, MinStock: 5},
		{ID: "3", Name: "Gula Pasir 1kg", SKU: "GL003", Category: "Sembako", CostPrice: decimal.NewFromInt(12500), SellingPrice: decimal.NewFromInt(16000), Stock: 100, MinStock: 20},
		{ID: "4", Name: "Susu UHT 1L", SKU: "SS004", Category: "Minuman", CostPrice: decimal.NewFromInt(15000), SellingPrice: decimal.NewFromInt(21000), Stock: 15, MinStock: 5},
	}
}
