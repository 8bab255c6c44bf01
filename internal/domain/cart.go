package domain

// VariantKey identifies a distinct purchasable line in the cart.
type VariantKey struct {
	ProductID string
	Size      string
	Color     string
}

type CartLine struct {
	ProductID string  `json:"productId"`
	Quantity  int     `json:"quantity"`
	Size      string  `json:"size"`
	Color     string  `json:"color"`
	Product   Product `json:"product"`
}

func (l CartLine) Key() VariantKey {
	return VariantKey{ProductID: l.ProductID, Size: l.Size, Color: l.Color}
}

// TotalCents is the unit price of the product snapshot times quantity.
func (l CartLine) TotalCents() int64 {
	return l.Product.PriceCents * int64(l.Quantity)
}

// Cart is a point-in-time view of the cart lines with derived aggregates.
type Cart struct {
	Lines      []CartLine `json:"lines"`
	TotalItems int        `json:"totalItems"`
	TotalCents int64      `json:"totalCents"`
}

// NewCart copies lines and derives the aggregates from them.
func NewCart(lines []CartLine) Cart {
	out := Cart{Lines: make([]CartLine, len(lines))}
	copy(out.Lines, lines)
	for _, line := range lines {
		out.TotalItems += line.Quantity
		out.TotalCents += line.TotalCents()
	}
	return out
}

func (c Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}
