package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jeemhub/fawazv7/common/middleware"
	"github.com/jeemhub/fawazv7/models"
	"github.com/jeemhub/fawazv7/services"
)

// CheckoutController handles WhatsApp checkout composition.
type CheckoutController struct {
	checkout services.CheckoutAPI
}

func NewCheckoutController(checkout services.CheckoutAPI) *CheckoutController {
	return &CheckoutController{checkout: checkout}
}

// GetShippingTiers returns the available flat-fee shipping options.
func (cc *CheckoutController) GetShippingTiers(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"tiers": cc.checkout.ShippingTiers()})
}

// Checkout composes the order-summary message and wa.me deep link from the
// session's cart. Opening the link is left to the client.
func (cc *CheckoutController) Checkout(c *gin.Context) {
	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		zap.L().Warn("Checkout invalid payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "name, phone, address and shipping_tier are required"})
		return
	}

	summary, svcErr := cc.checkout.Compose(c.Request.Context(), middleware.SessionID(c), req)
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	c.JSON(http.StatusOK, summary)
}
