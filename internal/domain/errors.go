package domain

import "errors"

var (
	ErrNameRequired     = errors.New("product name is required")
	ErrSizeRequired     = errors.New("product size is required")
	ErrPriceNegative    = errors.New("product price must be non-negative")
	ErrDuplicateProduct = errors.New("product already exists")
	ErrUserIDRequired   = errors.New("user_id is required")
	ErrItemsRequired    = errors.New("order must contain at least one item")
	ErrInvalidQuantity  = errors.New("item quantity must be at least 1")
	ErrProductNotFound  = errors.New("product not found")
	ErrInvalidProductID = errors.New("invalid product id")
)
