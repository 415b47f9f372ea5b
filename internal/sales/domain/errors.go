package domain

import "errors"

var (
	// ErrOutOfStock is raised when adding a product whose stock is zero.
	ErrOutOfStock = errors.New("product is out of stock")

	// ErrStockExceeded is raised when a cart mutation would push a line's
	// quantity past the product's current stock. The line keeps its prior
	// quantity; the caller reports and retries.
	ErrStockExceeded = errors.New("requested quantity exceeds available stock")

	ErrInvalidQuantity  = errors.New("quantity must be greater than 0")
	ErrCartItemNotFound = errors.New("cart item not found")

	// ErrEmptyCart is raised on checkout with no lines. A no-op checkout is
	// a caller error, not silently ignored.
	ErrEmptyCart = errors.New("cart is empty")
)
