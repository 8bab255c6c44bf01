package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"storefront/internal/domain"
)

type productRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Images      []string        `json:"images"`
	Category    string          `json:"category"`
	Sizes       []string        `json:"sizes"`
	Colors      []string        `json:"colors"`
	Featured    bool            `json:"featured"`
	InStock     *bool           `json:"inStock"`
}

func (r productRequest) toDomain() domain.Product {
	inStock := true
	if r.InStock != nil {
		inStock = *r.InStock
	}
	return domain.Product{
		Name:        r.Name,
		Description: r.Description,
		PriceCents:  r.Price.Shift(2).Round(0).IntPart(),
		Images:      r.Images,
		Category:    r.Category,
		Sizes:       r.Sizes,
		Colors:      r.Colors,
		Featured:    r.Featured,
		InStock:     inStock,
	}
}

func (h *handlers) createProduct(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid product payload")
		return
	}
	p, err := h.deps.ProductSvc.Create(c.Request.Context(), req.toDomain())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"product": toProductResponse(*p), "notices": drainNotices(c)})
}

func (h *handlers) updateProduct(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid product payload")
		return
	}
	p, err := h.deps.ProductSvc.Update(c.Request.Context(), c.Param("id"), req.toDomain())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": toProductResponse(*p), "notices": drainNotices(c)})
}

func (h *handlers) deleteProduct(c *gin.Context) {
	if err := h.deps.ProductSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": c.Param("id"), "notices": drainNotices(c)})
}
