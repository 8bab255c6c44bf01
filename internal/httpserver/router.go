package httpserver

import (
	"context"
	"errors"
	"io"
	"log"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"storefront/internal/catalog"
	"storefront/internal/domain"
	cartsvc "storefront/internal/service/cart"
	"storefront/internal/service/checkout"
)

type ProductService interface {
	List(ctx context.Context, c catalog.Criteria) ([]domain.Product, error)
	Featured(ctx context.Context, limit int) ([]domain.Product, error)
	ByCategory(ctx context.Context, category string) ([]domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	Facets(ctx context.Context) (catalog.Facets, error)
	Create(ctx context.Context, p domain.Product) (*domain.Product, error)
	Update(ctx context.Context, id string, p domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}

type CategoryService interface {
	List(ctx context.Context) ([]domain.Category, error)
}

type CartService interface {
	Cart() domain.Cart
	AddItem(ctx context.Context, product domain.Product, quantity int, size, color string) (cartsvc.Outcome, domain.Cart, error)
	RemoveItem(ctx context.Context, productID string) (domain.Cart, error)
	UpdateQuantity(ctx context.Context, productID string, quantity int) (domain.Cart, error)
	Clear(ctx context.Context) (domain.Cart, error)
}

type CheckoutService interface {
	Summary() domain.OrderSummary
	PlaceOrder(ctx context.Context, form checkout.Form) (*domain.Order, error)
	GetOrder(ctx context.Context, id string) (*domain.Order, error)
}

// Deps carries the services the router dispatches to.
type Deps struct {
	ProductSvc         ProductService
	CategorySvc        CategoryService
	CartSvc            CartService
	CheckoutSvc        CheckoutService
	PriceRangeMaxCents int64
	AllowedOrigins     []string
}

func (d Deps) validate() error {
	if d.ProductSvc == nil || d.CategorySvc == nil || d.CartSvc == nil || d.CheckoutSvc == nil {
		return errors.New("httpserver: product, category, cart and checkout services are required")
	}
	if d.PriceRangeMaxCents <= 0 {
		return errors.New("httpserver: price range max must be positive")
	}
	return nil
}

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, db Pinger, deps Deps) (*gin.Engine, error) {
	if err := deps.validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery(), corsMiddleware(deps.AllowedOrigins), noticesMiddleware())

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	h := &handlers{deps: deps, logger: logger}
	api := router.Group("/api")
	{
		api.GET("/products", h.listProducts)
		api.GET("/products/featured", h.featuredProducts)
		api.GET("/products/facets", h.productFacets)
		api.GET("/products/:id", h.getProduct)
		api.GET("/categories", h.listCategories)
		api.GET("/categories/:name/products", h.categoryProducts)

		api.GET("/cart", h.getCart)
		api.POST("/cart/items", h.addCartItem)
		api.PATCH("/cart/items/:productId", h.updateCartItem)
		api.DELETE("/cart/items/:productId", h.removeCartItem)
		api.DELETE("/cart", h.clearCart)

		api.GET("/checkout/summary", h.checkoutSummary)
		api.POST("/checkout", h.placeOrder)
		api.GET("/orders/:id", h.getOrder)

		admin := api.Group("/admin")
		admin.POST("/products", h.createProduct)
		admin.PUT("/products/:id", h.updateProduct)
		admin.DELETE("/products/:id", h.deleteProduct)
	}

	return router, nil
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cors.New(cfg)
}
