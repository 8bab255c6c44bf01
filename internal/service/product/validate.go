package product

import (
	"errors"
	"fmt"
	"strings"

	"storefront/internal/domain"
)

var (
	ErrMissingFields = fmt.Errorf("%w: name, description and a positive price are required", domain.ErrInvalidInput)
	ErrNoSizes       = fmt.Errorf("%w: at least one size is required", domain.ErrInvalidInput)
	ErrNoColors      = fmt.Errorf("%w: at least one color is required", domain.ErrInvalidInput)
)

func validate(p domain.Product) error {
	switch {
	case p.Name == "" || p.Description == "" || p.PriceCents <= 0:
		return ErrMissingFields
	case len(p.Sizes) == 0:
		return ErrNoSizes
	case len(p.Colors) == 0:
		return ErrNoColors
	}
	return nil
}

func userMessage(err error) string {
	switch {
	case errors.Is(err, ErrNoSizes):
		return "Please select at least one size"
	case errors.Is(err, ErrNoColors):
		return "Please select at least one color"
	default:
		return "Please fill in all required fields"
	}
}

// normalize trims text fields and drops blank list entries.
func normalize(p domain.Product) domain.Product {
	p.Name = strings.TrimSpace(p.Name)
	p.Description = strings.TrimSpace(p.Description)
	p.Category = strings.ToLower(strings.TrimSpace(p.Category))
	p.Sizes = compact(p.Sizes)
	p.Colors = compact(p.Colors)
	p.Images = compact(p.Images)
	return p
}

func compact(in []string) []string {
	out := make([]string, 0, len(in))
	for _, v := range in {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
