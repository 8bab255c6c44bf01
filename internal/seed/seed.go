package seed

import (
	"context"
	"fmt"

	"storefront/internal/domain"
)

type ProductWriter interface {
	Upsert(ctx context.Context, product domain.Product) (*domain.Product, error)
}

type CategoryWriter interface {
	Upsert(ctx context.Context, category domain.Category) (*domain.Category, error)
}

// Products returns the built-in catalog in featured order.
func Products() []domain.Product {
	return []domain.Product{
		{
			ID:          "1",
			Name:        "Elegant Summer Dress",
			Description: "A beautiful floral summer dress perfect for any occasion. Made with lightweight fabric for maximum comfort.",
			PriceCents:  8999,
			Images:      []string{"/assets/dress1.jpg", "/assets/dress1-2.jpg"},
			Category:    "dresses",
			Sizes:       []string{"XS", "S", "M", "L", "XL"},
			Colors:      []string{"White", "Pink", "Blue"},
			Featured:    true,
			InStock:     true,
		},
		{
			ID:          "2",
			Name:        "Classic Denim Jacket",
			Description: "A timeless denim jacket that goes with everything. Perfect for layering in any season.",
			PriceCents:  12999,
			Images:      []string{"/assets/jacket1.jpg", "/assets/jacket1-2.jpg"},
			Category:    "jackets",
			Sizes:       []string{"S", "M", "L", "XL"},
			Colors:      []string{"Blue", "Light Blue", "Black"},
			Featured:    true,
			InStock:     true,
		},
		{
			ID:          "3",
			Name:        "Slim Fit Jeans",
			Description: "High-quality denim jeans with a modern slim fit. Comfortable stretch fabric for all-day wear.",
			PriceCents:  6999,
			Images:      []string{"/assets/jeans1.jpg", "/assets/jeans1-2.jpg"},
			Category:    "pants",
			Sizes:       []string{"XS", "S", "M", "L", "XL"},
			Colors:      []string{"Dark Blue", "Light Blue", "Black"},
			Featured:    true,
			InStock:     true,
		},
		{
			ID:          "4",
			Name:        "Bohemian Maxi Skirt",
			Description: "A flowing bohemian-style maxi skirt with vibrant patterns. Perfect for summer days and beach outings.",
			PriceCents:  5999,
			Images:      []string{"/assets/skirt1.jpg", "/assets/skirt1-2.jpg"},
			Category:    "skirts",
			Sizes:       []string{"XS", "S", "M", "L"},
			Colors:      []string{"Multicolor", "Red", "Blue"},
			Featured:    false,
			InStock:     true,
		},
		{
			ID:          "5",
			Name:        "Cotton Blouse",
			Description: "A lightweight cotton blouse with elegant details. Perfect for office wear or casual outings.",
			PriceCents:  4999,
			Images:      []string{"/assets/blouse1.jpg", "/assets/blouse1-2.jpg"},
			Category:    "tops",
			Sizes:       []string{"XS", "S", "M", "L", "XL"},
			Colors:      []string{"White", "Black", "Pink"},
			Featured:    true,
			InStock:     true,
		},
		{
			ID:          "6",
			Name:        "Leather Ankle Boots",
			Description: "Stylish leather ankle boots with a comfortable heel. Perfect for any season.",
			PriceCents:  14999,
			Images:      []string{"/assets/boots1.jpg", "/assets/boots1-2.jpg"},
			Category:    "shoes",
			Sizes:       []string{"36", "37", "38", "39", "40", "41"},
			Colors:      []string{"Black", "Brown", "Tan"},
			Featured:    false,
			InStock:     true,
		},
	}
}

func Categories() []domain.Category {
	return []domain.Category{
		{ID: "1", Name: "Dresses", Image: "/assets/category-dresses.jpg"},
		{ID: "2", Name: "Tops", Image: "/assets/category-tops.jpg"},
		{ID: "3", Name: "Pants", Image: "/assets/category-pants.jpg"},
		{ID: "4", Name: "Skirts", Image: "/assets/category-skirts.jpg"},
		{ID: "5", Name: "Jackets", Image: "/assets/category-jackets.jpg"},
		{ID: "6", Name: "Shoes", Image: "/assets/category-shoes.jpg"},
	}
}

// Apply writes the built-in catalog. It is idempotent because both writers upsert.
func Apply(ctx context.Context, products ProductWriter, categories CategoryWriter) error {
	for _, c := range Categories() {
		if _, err := categories.Upsert(ctx, c); err != nil {
			return fmt.Errorf("upsert category %s: %w", c.Name, err)
		}
	}
	for _, p := range Products() {
		if _, err := products.Upsert(ctx, p); err != nil {
			return fmt.Errorf("upsert product %s: %w", p.ID, err)
		}
	}
	return nil
}
