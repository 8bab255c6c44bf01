package domain

import (
	"slices"
	"time"
)

// Product is a catalog entry. The core never mutates it.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	PriceCents  int64     `json:"priceCents"`
	Images      []string  `json:"images"`
	Category    string    `json:"category"`
	Sizes       []string  `json:"sizes"`
	Colors      []string  `json:"colors"`
	Featured    bool      `json:"featured"`
	InStock     bool      `json:"inStock"`
	CreatedAt   time.Time `json:"createdAt,omitzero"`
}

// HasSize reports whether size is one of the product's available sizes.
func (p Product) HasSize(size string) bool {
	return slices.Contains(p.Sizes, size)
}

// HasColor reports whether color is one of the product's available colors.
func (p Product) HasColor(color string) bool {
	return slices.Contains(p.Colors, color)
}
