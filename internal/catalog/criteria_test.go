package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"storefront/internal/domain"
)

func TestParseSortKey(t *testing.T) {
	cases := map[string]SortKey{
		"":               SortFeatured,
		"featured":       SortFeatured,
		"price-low":      SortPriceAsc,
		"Price-High":     SortPriceDesc,
		"name":           SortNameAsc,
		"name-ascending": SortNameAsc,
	}
	for in, want := range cases {
		got, ok := ParseSortKey(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}

	_, ok := ParseSortKey("rating")
	assert.False(t, ok)
}

func TestCriteriaNormalize(t *testing.T) {
	c := Criteria{MinPriceCents: 50000, MaxPriceCents: -10, Sort: "bogus"}.Normalize(20000)
	assert.Equal(t, int64(0), c.MinPriceCents)
	assert.Equal(t, int64(20000), c.MaxPriceCents)
	assert.Equal(t, SortFeatured, c.Sort)
	assert.Equal(t, CategoryAll, c.Category)

	c = Criteria{MinPriceCents: 100, MaxPriceCents: 500, Sort: "price-high", Category: "tops"}.Normalize(20000)
	assert.Equal(t, int64(100), c.MinPriceCents)
	assert.Equal(t, int64(500), c.MaxPriceCents)
	assert.Equal(t, SortPriceDesc, c.Sort)
	assert.Equal(t, "tops", c.Category)
}

func TestCriteriaToggle(t *testing.T) {
	base := DefaultCriteria(20000)

	c := base.ToggleSize("M").ToggleSize("L")
	assert.Equal(t, []string{"M", "L"}, c.Sizes)
	c = c.ToggleSize("M")
	assert.Equal(t, []string{"L"}, c.Sizes)
	assert.Empty(t, base.Sizes)

	c = c.ToggleColor("Red").ToggleColor("Red")
	assert.Empty(t, c.Colors)

	assert.Equal(t, DefaultCriteria(20000), c.Reset(20000))
}

func TestBuildFacets(t *testing.T) {
	f := BuildFacets([]domain.Product{
		{Category: "tops", Sizes: []string{"S", "M"}, Colors: []string{"Red"}, PriceCents: 3000},
		{Category: "shoes", Sizes: []string{"M", "40"}, Colors: []string{"Black", "Red"}, PriceCents: 1500},
		{Category: "tops", Sizes: nil, Colors: []string{"White"}, PriceCents: 9000},
	})
	assert.Equal(t, []string{"tops", "shoes"}, f.Categories)
	assert.Equal(t, []string{"S", "M", "40"}, f.Sizes)
	assert.Equal(t, []string{"Red", "Black", "White"}, f.Colors)
	assert.Equal(t, int64(1500), f.MinPriceCents)
	assert.Equal(t, int64(9000), f.MaxPriceCents)

	empty := BuildFacets(nil)
	assert.Empty(t, empty.Sizes)
	assert.Zero(t, empty.MaxPriceCents)
}
