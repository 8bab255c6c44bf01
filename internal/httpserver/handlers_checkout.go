package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/internal/service/checkout"
)

func (h *handlers) checkoutSummary(c *gin.Context) {
	c.JSON(http.StatusOK, toSummaryResponse(h.deps.CheckoutSvc.Summary()))
}

func (h *handlers) placeOrder(c *gin.Context) {
	var form checkout.Form
	if err := c.ShouldBindJSON(&form); err != nil {
		badRequest(c, "invalid order form")
		return
	}
	order, err := h.deps.CheckoutSvc.PlaceOrder(c.Request.Context(), form)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"order": toOrderResponse(*order), "notices": drainNotices(c)})
}

func (h *handlers) getOrder(c *gin.Context) {
	order, err := h.deps.CheckoutSvc.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(*order))
}
