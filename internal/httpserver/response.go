package httpserver

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"storefront/internal/domain"
	"storefront/internal/notify"
	"storefront/internal/service/checkout"
)

const noticesKey = "notices"

type productResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       string   `json:"price"`
	PriceCents  int64    `json:"priceCents"`
	Images      []string `json:"images"`
	Category    string   `json:"category"`
	Sizes       []string `json:"sizes"`
	Colors      []string `json:"colors"`
	Featured    bool     `json:"featured"`
	InStock     bool     `json:"inStock"`
}

type cartLineResponse struct {
	ProductID      string          `json:"productId"`
	Quantity       int             `json:"quantity"`
	Size           string          `json:"size"`
	Color          string          `json:"color"`
	Product        productResponse `json:"product"`
	LineTotal      string          `json:"lineTotal"`
	LineTotalCents int64           `json:"lineTotalCents"`
}

type cartResponse struct {
	Lines      []cartLineResponse `json:"lines"`
	TotalItems int                `json:"totalItems"`
	TotalPrice string             `json:"totalPrice"`
	TotalCents int64              `json:"totalCents"`
}

type summaryResponse struct {
	ItemCount     int    `json:"itemCount"`
	Subtotal      string `json:"subtotal"`
	Shipping      string `json:"shipping"`
	Tax           string `json:"tax"`
	Total         string `json:"total"`
	SubtotalCents int64  `json:"subtotalCents"`
	ShippingCents int64  `json:"shippingCents"`
	TaxCents      int64  `json:"taxCents"`
	TotalCents    int64  `json:"totalCents"`
}

type orderResponse struct {
	ID            string                 `json:"id"`
	Number        string                 `json:"number"`
	Lines         []cartLineResponse     `json:"lines"`
	Summary       summaryResponse        `json:"summary"`
	Shipping      domain.ShippingAddress `json:"shipping"`
	PaymentMethod string                 `json:"paymentMethod"`
	Notes         string                 `json:"notes,omitempty"`
	PlacedAt      string                 `json:"placedAt"`
}

func formatCents(cents int64) string {
	return decimal.New(cents, -2).StringFixed(2)
}

func toProductResponse(p domain.Product) productResponse {
	return productResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       formatCents(p.PriceCents),
		PriceCents:  p.PriceCents,
		Images:      nonNil(p.Images),
		Category:    p.Category,
		Sizes:       nonNil(p.Sizes),
		Colors:      nonNil(p.Colors),
		Featured:    p.Featured,
		InStock:     p.InStock,
	}
}

func toProductsResponse(products []domain.Product) []productResponse {
	out := make([]productResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return out
}

func toLinesResponse(lines []domain.CartLine) []cartLineResponse {
	out := make([]cartLineResponse, 0, len(lines))
	for _, l := range lines {
		out = append(out, cartLineResponse{
			ProductID:      l.ProductID,
			Quantity:       l.Quantity,
			Size:           l.Size,
			Color:          l.Color,
			Product:        toProductResponse(l.Product),
			LineTotal:      formatCents(l.TotalCents()),
			LineTotalCents: l.TotalCents(),
		})
	}
	return out
}

func toCartResponse(c domain.Cart) cartResponse {
	return cartResponse{
		Lines:      toLinesResponse(c.Lines),
		TotalItems: c.TotalItems,
		TotalPrice: formatCents(c.TotalCents),
		TotalCents: c.TotalCents,
	}
}

func toSummaryResponse(s domain.OrderSummary) summaryResponse {
	return summaryResponse{
		ItemCount:     s.ItemCount,
		Subtotal:      formatCents(s.SubtotalCents),
		Shipping:      formatCents(s.ShippingCents),
		Tax:           formatCents(s.TaxCents),
		Total:         formatCents(s.TotalCents),
		SubtotalCents: s.SubtotalCents,
		ShippingCents: s.ShippingCents,
		TaxCents:      s.TaxCents,
		TotalCents:    s.TotalCents,
	}
}

func toOrderResponse(o domain.Order) orderResponse {
	return orderResponse{
		ID:            o.ID,
		Number:        o.Number,
		Lines:         toLinesResponse(o.Lines),
		Summary:       toSummaryResponse(o.Summary),
		Shipping:      o.Shipping,
		PaymentMethod: o.PaymentMethod,
		Notes:         o.Notes,
		PlacedAt:      o.PlacedAt.Format(time.RFC3339),
	}
}

// noticesMiddleware gives every request its own notice buffer so that
// handlers can return the notices produced by their call.
func noticesMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		buf := &notify.Buffer{}
		c.Set(noticesKey, buf)
		c.Request = c.Request.WithContext(notify.NewContext(c.Request.Context(), buf))
		c.Next()
	}
}

func drainNotices(c *gin.Context) []notify.Notice {
	out := []notify.Notice{}
	if v, ok := c.Get(noticesKey); ok {
		if buf, ok := v.(*notify.Buffer); ok {
			out = append(out, buf.Drain()...)
		}
	}
	return out
}

func (h *handlers) writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	msg := "internal error"
	switch {
	case errors.Is(err, domain.ErrNotFound):
		status, msg = http.StatusNotFound, "not found"
	case errors.Is(err, domain.ErrEmptyCart):
		status, msg = http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrInvalidInput):
		status, msg = http.StatusBadRequest, err.Error()
	default:
		h.logger.Printf("api: %s %s error=%v", c.Request.Method, c.FullPath(), err)
	}

	body := gin.H{"error": msg, "notices": drainNotices(c)}
	var fe *checkout.FieldError
	if errors.As(err, &fe) {
		body["fields"] = fe.Fields
	}
	c.JSON(status, body)
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg, "notices": drainNotices(c)})
}

func nonNil(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}
