package product

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/catalog"
	"storefront/internal/domain"
	"storefront/internal/notify"
	productrepo "storefront/internal/repository/product"
	"storefront/internal/seed"
)

func newService(t *testing.T) (*Service, *notify.Buffer) {
	t.Helper()
	var notices notify.Buffer
	return New(productrepo.NewMemory(seed.Products(), nil), &notices, nil), &notices
}

func TestService_ListAppliesCriteria(t *testing.T) {
	svc, _ := newService(t)
	c := catalog.DefaultCriteria(20000)
	c.Category = "dresses"

	got, err := svc.List(context.Background(), c)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Elegant Summer Dress", got[0].Name)
}

func TestService_Featured(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	got, err := svc.Featured(ctx, 0)
	require.NoError(t, err)
	require.Len(t, got, DefaultFeaturedLimit)
	for _, p := range got {
		assert.True(t, p.Featured)
	}
	assert.Equal(t, "1", got[0].ID)

	got, err = svc.Featured(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestService_ByCategoryAndFacets(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	got, err := svc.ByCategory(ctx, "Shoes")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "6", got[0].ID)

	none, err := svc.ByCategory(ctx, "hats")
	require.NoError(t, err)
	assert.Empty(t, none)

	f, err := svc.Facets(ctx)
	require.NoError(t, err)
	assert.Len(t, f.Categories, 6)
	assert.Contains(t, f.Sizes, "41")
	assert.Equal(t, int64(4999), f.MinPriceCents)
	assert.Equal(t, int64(14999), f.MaxPriceCents)
}

func TestService_CreateUpdateDelete(t *testing.T) {
	svc, notices := newService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, domain.Product{
		Name:        " Linen Shirt ",
		Description: "Breathable linen",
		PriceCents:  3999,
		Category:    "Tops",
		Sizes:       []string{"S", " ", "M"},
		Colors:      []string{"White"},
		InStock:     true,
	})
	require.NoError(t, err)
	_, err = uuid.Parse(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Linen Shirt", created.Name)
	assert.Equal(t, "tops", created.Category)
	assert.Equal(t, []string{"S", "M"}, created.Sizes)

	updated, err := svc.Update(ctx, created.ID, domain.Product{
		Name: "Linen Shirt", Description: "Breathable linen", PriceCents: 2999,
		Category: "tops", Sizes: []string{"S"}, Colors: []string{"Blue"},
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, int64(2999), updated.PriceCents)

	require.NoError(t, svc.Delete(ctx, created.ID))
	_, err = svc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, created.ID), domain.ErrNotFound)

	assert.Equal(t, []notify.Notice{
		notify.Success("Product added"),
		notify.Success("Product updated"),
		notify.Success("Product deleted"),
	}, notices.Drain())
}

func TestService_CreateValidation(t *testing.T) {
	valid := domain.Product{Name: "n", Description: "d", PriceCents: 100, Sizes: []string{"M"}, Colors: []string{"Red"}}
	cases := []struct {
		name    string
		mutate  func(*domain.Product)
		want    error
		message string
	}{
		{"missing name", func(p *domain.Product) { p.Name = "  " }, ErrMissingFields, "Please fill in all required fields"},
		{"zero price", func(p *domain.Product) { p.PriceCents = 0 }, ErrMissingFields, "Please fill in all required fields"},
		{"no sizes", func(p *domain.Product) { p.Sizes = nil }, ErrNoSizes, "Please select at least one size"},
		{"blank colors", func(p *domain.Product) { p.Colors = []string{""} }, ErrNoColors, "Please select at least one color"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, notices := newService(t)
			p := valid
			tc.mutate(&p)

			_, err := svc.Create(context.Background(), p)
			require.ErrorIs(t, err, tc.want)
			require.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Equal(t, []notify.Notice{notify.Error(tc.message)}, notices.Drain())
		})
	}
}

func TestService_UpdateMissing(t *testing.T) {
	svc, _ := newService(t)
	_, err := svc.Update(context.Background(), "nope", domain.Product{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

type failingRepo struct {
	productrepo.Repository
}

func (failingRepo) List(context.Context) ([]domain.Product, error) {
	return nil, errors.New("db down")
}

func TestService_ListPropagatesRepoError(t *testing.T) {
	svc := New(failingRepo{}, nil, nil)
	_, err := svc.List(context.Background(), catalog.DefaultCriteria(20000))
	assert.ErrorContains(t, err, "db down")
}
