package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput marks a rejected call whose arguments failed validation.
	ErrInvalidInput = errors.New("invalid input")
	// ErrEmptyCart is returned when checkout is attempted without cart lines.
	ErrEmptyCart = errors.New("cart is empty")
)
