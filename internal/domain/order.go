package domain

import "time"

// OrderSummary holds the amounts shown on the checkout page.
type OrderSummary struct {
	ItemCount     int   `json:"itemCount"`
	SubtotalCents int64 `json:"subtotalCents"`
	ShippingCents int64 `json:"shippingCents"`
	TaxCents      int64 `json:"taxCents"`
	TotalCents    int64 `json:"totalCents"`
}

type ShippingAddress struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zipCode"`
	Phone     string `json:"phone"`
}

// Order is a simulated order. Nothing is charged and nothing leaves the process.
type Order struct {
	ID            string          `json:"id"`
	Number        string          `json:"number"`
	Lines         []CartLine      `json:"lines"`
	Summary       OrderSummary    `json:"summary"`
	Shipping      ShippingAddress `json:"shipping"`
	PaymentMethod string          `json:"paymentMethod"`
	Notes         string          `json:"notes,omitempty"`
	PlacedAt      time.Time       `json:"placedAt"`
}
