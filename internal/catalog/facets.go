package catalog

import (
	"slices"

	"storefront/internal/domain"
)

// Facets lists the option values a filter panel can offer for a catalog.
type Facets struct {
	Categories    []string `json:"categories"`
	Sizes         []string `json:"sizes"`
	Colors        []string `json:"colors"`
	MinPriceCents int64    `json:"minPriceCents"`
	MaxPriceCents int64    `json:"maxPriceCents"`
}

// BuildFacets collects distinct values in first-seen order.
func BuildFacets(products []domain.Product) Facets {
	f := Facets{
		Categories: []string{},
		Sizes:      []string{},
		Colors:     []string{},
	}
	for i, p := range products {
		f.Categories = appendUnique(f.Categories, p.Category)
		for _, s := range p.Sizes {
			f.Sizes = appendUnique(f.Sizes, s)
		}
		for _, c := range p.Colors {
			f.Colors = appendUnique(f.Colors, c)
		}
		if i == 0 || p.PriceCents < f.MinPriceCents {
			f.MinPriceCents = p.PriceCents
		}
		if p.PriceCents > f.MaxPriceCents {
			f.MaxPriceCents = p.PriceCents
		}
	}
	return f
}

func appendUnique(set []string, v string) []string {
	if v == "" || slices.Contains(set, v) {
		return set
	}
	return append(set, v)
}
