package cart

import (
	"errors"
	"fmt"

	"storefront/internal/domain"
)

var (
	ErrInvalidQuantity = fmt.Errorf("%w: quantity must be at least 1", domain.ErrInvalidInput)
	ErrInvalidSize     = fmt.Errorf("%w: please select a size", domain.ErrInvalidInput)
	ErrInvalidColor    = fmt.Errorf("%w: please select a color", domain.ErrInvalidInput)
	ErrInvalidProduct  = fmt.Errorf("%w: product id required", domain.ErrInvalidInput)
)

func validateAdd(p domain.Product, quantity int, size, color string) error {
	switch {
	case p.ID == "":
		return ErrInvalidProduct
	case quantity < 1:
		return ErrInvalidQuantity
	case !p.HasSize(size):
		return ErrInvalidSize
	case !p.HasColor(color):
		return ErrInvalidColor
	}
	return nil
}

func userMessage(err error) string {
	switch {
	case errors.Is(err, ErrInvalidQuantity):
		return "Quantity must be at least 1"
	case errors.Is(err, ErrInvalidSize):
		return "Please select a size"
	case errors.Is(err, ErrInvalidColor):
		return "Please select a color"
	default:
		return "Could not add item to cart"
	}
}
