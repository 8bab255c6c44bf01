package catalog

import (
	"slices"
	"strings"
)

// SortKey selects the display order of a filtered listing.
type SortKey string

const (
	SortFeatured  SortKey = "featured"
	SortPriceAsc  SortKey = "price-ascending"
	SortPriceDesc SortKey = "price-descending"
	SortNameAsc   SortKey = "name-ascending"
)

// CategoryAll disables the category filter.
const CategoryAll = "all"

var sortAliases = map[string]SortKey{
	"":                 SortFeatured,
	"featured":         SortFeatured,
	"price-ascending":  SortPriceAsc,
	"price-asc":        SortPriceAsc,
	"price-low":        SortPriceAsc,
	"price-descending": SortPriceDesc,
	"price-desc":       SortPriceDesc,
	"price-high":       SortPriceDesc,
	"name-ascending":   SortNameAsc,
	"name-asc":         SortNameAsc,
	"name":             SortNameAsc,
}

// ParseSortKey maps a user supplied sort value onto a SortKey.
func ParseSortKey(s string) (SortKey, bool) {
	key, ok := sortAliases[strings.ToLower(strings.TrimSpace(s))]
	return key, ok
}

// Criteria is the full set of listing filters. Sizes and Colors are sets:
// empty means no constraint. The price bounds are inclusive and in cents.
type Criteria struct {
	Search        string
	Category      string
	Sizes         []string
	Colors        []string
	MinPriceCents int64
	MaxPriceCents int64
	Sort          SortKey
}

// DefaultCriteria matches every product priced within [0, maxPriceCents]
// and keeps catalog order.
func DefaultCriteria(maxPriceCents int64) Criteria {
	return Criteria{
		Category:      CategoryAll,
		MinPriceCents: 0,
		MaxPriceCents: maxPriceCents,
		Sort:          SortFeatured,
	}
}

// Normalize clamps both price bounds into [0, maxPriceCents], orders them,
// and replaces an unknown sort key with SortFeatured.
func (c Criteria) Normalize(maxPriceCents int64) Criteria {
	c.MinPriceCents = clamp(c.MinPriceCents, 0, maxPriceCents)
	c.MaxPriceCents = clamp(c.MaxPriceCents, 0, maxPriceCents)
	if c.MinPriceCents > c.MaxPriceCents {
		c.MinPriceCents, c.MaxPriceCents = c.MaxPriceCents, c.MinPriceCents
	}
	if key, ok := ParseSortKey(string(c.Sort)); ok {
		c.Sort = key
	} else {
		c.Sort = SortFeatured
	}
	if strings.TrimSpace(c.Category) == "" {
		c.Category = CategoryAll
	}
	return c
}

// ToggleSize adds size to the selection, or removes it when already selected.
func (c Criteria) ToggleSize(size string) Criteria {
	c.Sizes = toggle(c.Sizes, size)
	return c
}

// ToggleColor adds color to the selection, or removes it when already selected.
func (c Criteria) ToggleColor(color string) Criteria {
	c.Colors = toggle(c.Colors, color)
	return c
}

// Reset returns the default criteria for the same price ceiling.
func (c Criteria) Reset(maxPriceCents int64) Criteria {
	return DefaultCriteria(maxPriceCents)
}

func toggle(set []string, v string) []string {
	if i := slices.Index(set, v); i >= 0 {
		return slices.Delete(slices.Clone(set), i, i+1)
	}
	return append(slices.Clone(set), v)
}

func clamp(v, lo, hi int64) int64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
