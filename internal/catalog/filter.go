package catalog

import (
	"cmp"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"storefront/internal/domain"
)

// Apply derives the visible listing from products. It never modifies its
// inputs and returns a new slice, so equal inputs give equal outputs.
//
// Stages run in a fixed order: search, category, sizes, colors, price, sort.
//
// The price bounds always apply, so callers build c from DefaultCriteria or
// pass it through Normalize. A zero Criteria has a ceiling of 0 and keeps
// only free products.
func Apply(products []domain.Product, c Criteria) []domain.Product {
	search := strings.ToLower(c.Search)
	category := strings.TrimSpace(c.Category)
	filterCategory := category != "" && !strings.EqualFold(category, CategoryAll)

	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if search != "" && !matchesSearch(p, search) {
			continue
		}
		if filterCategory && !strings.EqualFold(p.Category, category) {
			continue
		}
		if len(c.Sizes) > 0 && !intersects(p.Sizes, c.Sizes) {
			continue
		}
		if len(c.Colors) > 0 && !intersects(p.Colors, c.Colors) {
			continue
		}
		if p.PriceCents < c.MinPriceCents || p.PriceCents > c.MaxPriceCents {
			continue
		}
		out = append(out, p)
	}

	sortProducts(out, c.Sort)
	return out
}

func matchesSearch(p domain.Product, lowered string) bool {
	return strings.Contains(strings.ToLower(p.Name), lowered) ||
		strings.Contains(strings.ToLower(p.Description), lowered)
}

func intersects(have, want []string) bool {
	for _, v := range have {
		if slices.Contains(want, v) {
			return true
		}
	}
	return false
}

func sortProducts(products []domain.Product, key SortKey) {
	switch key {
	case SortPriceAsc:
		slices.SortStableFunc(products, func(a, b domain.Product) int {
			return cmp.Compare(a.PriceCents, b.PriceCents)
		})
	case SortPriceDesc:
		slices.SortStableFunc(products, func(a, b domain.Product) int {
			return cmp.Compare(b.PriceCents, a.PriceCents)
		})
	case SortNameAsc:
		// A Collator keeps internal buffers, so each call gets its own.
		col := collate.New(language.English)
		slices.SortStableFunc(products, func(a, b domain.Product) int {
			return col.CompareString(a.Name, b.Name)
		})
	}
}
