package store

import "errors"

// Invalid-argument errors: the request was malformed and must not be retried.
var (
	ErrMissingUser     = errors.New("user id is required")
	ErrEmptyCart       = errors.New("cart has no items")
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	ErrInvalidFilter   = errors.New("unknown earnings filter")
)

// Not-found errors: a referenced row does not exist.
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrProductNotFound = errors.New("product not found")
	ErrOrderNotFound   = errors.New("order not found")
	ErrStatusNotFound  = errors.New("order status not found")
)
