package checkout

import (
	"fmt"
	"net/mail"
	"slices"
	"strings"

	"storefront/internal/domain"
)

const (
	PaymentCreditCard   = "credit-card"
	PaymentPayPal       = "paypal"
	PaymentBankTransfer = "bank-transfer"
)

var paymentMethods = []string{PaymentCreditCard, PaymentPayPal, PaymentBankTransfer}

// Card is only required when paying by credit card. It is validated for
// presence and never stored.
type Card struct {
	Number     string `json:"cardNumber"`
	Expiry     string `json:"expiry"`
	CVC        string `json:"cvc"`
	NameOnCard string `json:"nameOnCard"`
}

type Form struct {
	Shipping      domain.ShippingAddress `json:"shipping"`
	PaymentMethod string                 `json:"paymentMethod"`
	Card          Card                   `json:"card"`
	Notes         string                 `json:"notes"`
}

// FieldError lists the form fields that failed validation.
type FieldError struct {
	Fields []string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("missing or invalid fields: %s", strings.Join(e.Fields, ", "))
}

func (e *FieldError) Unwrap() error { return domain.ErrInvalidInput }

func (f Form) validate() error {
	var bad []string
	required := []struct {
		name, value string
	}{
		{"firstName", f.Shipping.FirstName},
		{"lastName", f.Shipping.LastName},
		{"email", f.Shipping.Email},
		{"address", f.Shipping.Address},
		{"city", f.Shipping.City},
		{"state", f.Shipping.State},
		{"zipCode", f.Shipping.ZipCode},
		{"phone", f.Shipping.Phone},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			bad = append(bad, r.name)
		}
	}
	if email := strings.TrimSpace(f.Shipping.Email); email != "" {
		if _, err := mail.ParseAddress(email); err != nil {
			bad = append(bad, "email")
		}
	}

	switch {
	case !slices.Contains(paymentMethods, f.PaymentMethod):
		bad = append(bad, "paymentMethod")
	case f.PaymentMethod == PaymentCreditCard:
		card := []struct {
			name, value string
		}{
			{"cardNumber", f.Card.Number},
			{"expiry", f.Card.Expiry},
			{"cvc", f.Card.CVC},
			{"nameOnCard", f.Card.NameOnCard},
		}
		for _, c := range card {
			if strings.TrimSpace(c.value) == "" {
				bad = append(bad, c.name)
			}
		}
	}

	if len(bad) > 0 {
		return &FieldError{Fields: bad}
	}
	return nil
}
