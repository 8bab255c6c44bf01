package checkout

import (
	"github.com/shopspring/decimal"

	"storefront/internal/domain"
)

const (
	// ShippingCents is the flat shipping fee charged on a non-empty cart.
	ShippingCents int64 = 800
)

// TaxRate is applied to the subtotal.
var TaxRate = decimal.RequireFromString("0.10")

// Summarize derives the checkout amounts for c. Tax is rounded half-up to
// whole cents.
func Summarize(c domain.Cart) domain.OrderSummary {
	s := domain.OrderSummary{
		ItemCount:     c.TotalItems,
		SubtotalCents: c.TotalCents,
	}
	if c.IsEmpty() {
		return s
	}
	s.ShippingCents = ShippingCents
	s.TaxCents = decimal.NewFromInt(c.TotalCents).Mul(TaxRate).Round(0).IntPart()
	s.TotalCents = s.SubtotalCents + s.ShippingCents + s.TaxCents
	return s
}
