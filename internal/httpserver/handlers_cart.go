package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	cartsvc "storefront/internal/service/cart"
)

type addItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  *int   `json:"quantity"`
	Size      string `json:"size"`
	Color     string `json:"color"`
}

type updateQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

func (h *handlers) getCart(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"cart": toCartResponse(h.deps.CartSvc.Cart())})
}

func (h *handlers) addCartItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "productId is required")
		return
	}
	qty := 1
	if req.Quantity != nil {
		qty = *req.Quantity
	}

	ctx := c.Request.Context()
	product, err := h.deps.ProductSvc.Get(ctx, req.ProductID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	outcome, cart, err := h.deps.CartSvc.AddItem(ctx, *product, qty, req.Size, req.Color)
	if err != nil {
		h.writeError(c, err)
		return
	}
	status := http.StatusOK
	if outcome == cartsvc.OutcomeAdded {
		status = http.StatusCreated
	}
	c.JSON(status, gin.H{
		"outcome": outcome.String(),
		"cart":    toCartResponse(cart),
		"notices": drainNotices(c),
	})
}

func (h *handlers) updateCartItem(c *gin.Context) {
	var req updateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "quantity is required")
		return
	}
	cart, err := h.deps.CartSvc.UpdateQuantity(c.Request.Context(), c.Param("productId"), *req.Quantity)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cart": toCartResponse(cart), "notices": drainNotices(c)})
}

func (h *handlers) removeCartItem(c *gin.Context) {
	cart, err := h.deps.CartSvc.RemoveItem(c.Request.Context(), c.Param("productId"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cart": toCartResponse(cart), "notices": drainNotices(c)})
}

func (h *handlers) clearCart(c *gin.Context) {
	cart, err := h.deps.CartSvc.Clear(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cart": toCartResponse(cart), "notices": drainNotices(c)})
}
