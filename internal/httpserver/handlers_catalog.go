package httpserver

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"storefront/internal/catalog"
	"storefront/internal/domain"
)

type handlers struct {
	deps   Deps
	logger *log.Logger
}

func (h *handlers) listProducts(c *gin.Context) {
	criteria, err := h.criteriaFromQuery(c)
	if err != nil {
		h.writeError(c, err)
		return
	}
	products, err := h.deps.ProductSvc.List(c.Request.Context(), criteria)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"total":   len(products),
		"results": toProductsResponse(products),
	})
}

func (h *handlers) featuredProducts(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			badRequest(c, "limit must be a positive integer")
			return
		}
		limit = n
	}
	products, err := h.deps.ProductSvc.Featured(c.Request.Context(), limit)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": toProductsResponse(products)})
}

func (h *handlers) productFacets(c *gin.Context) {
	f, err := h.deps.ProductSvc.Facets(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"categories":    f.Categories,
		"sizes":         f.Sizes,
		"colors":        f.Colors,
		"minPrice":      formatCents(f.MinPriceCents),
		"maxPrice":      formatCents(f.MaxPriceCents),
		"priceRangeMax": formatCents(h.deps.PriceRangeMaxCents),
	})
}

func (h *handlers) getProduct(c *gin.Context) {
	p, err := h.deps.ProductSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProductResponse(*p))
}

func (h *handlers) listCategories(c *gin.Context) {
	categories, err := h.deps.CategorySvc.List(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	if categories == nil {
		categories = []domain.Category{}
	}
	c.JSON(http.StatusOK, gin.H{"results": categories})
}

func (h *handlers) categoryProducts(c *gin.Context) {
	products, err := h.deps.ProductSvc.ByCategory(c.Request.Context(), c.Param("name"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": toProductsResponse(products)})
}

// criteriaFromQuery reads the listing filters. Sizes and colors may be
// repeated or comma separated; prices are decimal amounts in whole units.
func (h *handlers) criteriaFromQuery(c *gin.Context) (catalog.Criteria, error) {
	maxCents := h.deps.PriceRangeMaxCents
	criteria := catalog.DefaultCriteria(maxCents)
	criteria.Search = strings.TrimSpace(c.Query("search"))
	if cat := strings.TrimSpace(c.Query("category")); cat != "" {
		criteria.Category = cat
	}
	criteria.Sizes = splitQuery(c.QueryArray("sizes"))
	criteria.Colors = splitQuery(c.QueryArray("colors"))

	var err error
	if criteria.MinPriceCents, err = priceParam(c, "minPrice", 0); err != nil {
		return criteria, err
	}
	if criteria.MaxPriceCents, err = priceParam(c, "maxPrice", maxCents); err != nil {
		return criteria, err
	}
	if raw := c.Query("sort"); raw != "" {
		key, ok := catalog.ParseSortKey(raw)
		if !ok {
			return criteria, fmt.Errorf("%w: unknown sort %q", domain.ErrInvalidInput, raw)
		}
		criteria.Sort = key
	}
	return criteria.Normalize(maxCents), nil
}

func priceParam(c *gin.Context, name string, def int64) (int64, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return def, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be a number", domain.ErrInvalidInput, name)
	}
	return d.Shift(2).Round(0).IntPart(), nil
}

func splitQuery(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
