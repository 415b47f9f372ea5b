package domain

import "errors"

var (
	ErrNameRequired     = errors.New("product name is required")
	ErrSKURequired      = errors.New("product sku is required")
	ErrCategoryRequired = errors.New("product category is required")
	ErrNegativePrice    = errors.New("price cannot be negative")
	ErrNegativeStock    = errors.New("stock cannot be negative")
	ErrNegativeMinStock = errors.New("minimum stock cannot be negative")

	ErrProductNotFound = errors.New("product not found")

	// ErrInsufficientStock is raised when a decrement would take stock
	// below zero. Stock never goes negative after a committed operation.
	ErrInsufficientStock = errors.New("insufficient stock")
)
