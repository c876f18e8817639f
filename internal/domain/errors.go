package domain

import "errors"

var (
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrForbidden         = errors.New("actor is not allowed to perform this operation")
	ErrStaleState        = errors.New("state changed since it was read")
	ErrInvalidPeriod     = errors.New("invalid settlement period")
	ErrNotFound          = errors.New("record not found")
	ErrStoreClosed       = errors.New("store is closed")
	ErrEmptyCart         = errors.New("cart is empty")
	ErrInvalidQuantity   = errors.New("quantity must be at least 1")
)
