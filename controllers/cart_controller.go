package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jeemhub/fawazv7/common/middleware"
	"github.com/jeemhub/fawazv7/imageutil"
	"github.com/jeemhub/fawazv7/models"
	"github.com/jeemhub/fawazv7/services"
)

// AddItemRequest is the product reference handed over by the catalog pages.
type AddItemRequest struct {
	ProductID string  `json:"product_id" binding:"required"`
	Name      string  `json:"name" binding:"required"`
	NameAr    string  `json:"name_ar"`
	Price     float64 `json:"price" binding:"gte=0"`
	Image     string  `json:"image"`
	Category  string  `json:"category"`
	Quantity  int     `json:"quantity"`
}

// UpdateQuantityRequest sets a line item's quantity. Zero and negative
// values remove the item, so the field is a pointer to tell "absent" apart
// from zero.
type UpdateQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// CartController handles HTTP requests for the session cart.
type CartController struct {
	cart          services.CartAPI
	fallbackImage string
}

func NewCartController(cart services.CartAPI, fallbackImage string) *CartController {
	return &CartController{
		cart:          cart,
		fallbackImage: fallbackImage,
	}
}

// GetCart returns the current cart with derived totals.
func (cc *CartController) GetCart(c *gin.Context) {
	cart, svcErr := cc.cart.Get(c.Request.Context(), middleware.SessionID(c))
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	respondCart(c, cart)
}

// AddItem adds or merges an item into the cart.
func (cc *CartController) AddItem(c *gin.Context) {
	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		zap.L().Warn("AddItem invalid payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	item := models.CartItem{
		ProductID: req.ProductID,
		Name:      req.Name,
		NameAr:    req.NameAr,
		Price:     req.Price,
		Image:     imageutil.Resolve(req.Image, cc.fallbackImage),
		Category:  req.Category,
		Quantity:  req.Quantity,
	}

	cart, svcErr := cc.cart.AddItem(c.Request.Context(), middleware.SessionID(c), item)
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	respondCart(c, cart)
}

// UpdateQuantity sets a line item's quantity; zero or below removes it.
func (cc *CartController) UpdateQuantity(c *gin.Context) {
	productID := c.Param("product_id")

	var req UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	cart, svcErr := cc.cart.UpdateQuantity(c.Request.Context(), middleware.SessionID(c), productID, *req.Quantity)
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	respondCart(c, cart)
}

// RemoveItem removes a line item from the cart.
func (cc *CartController) RemoveItem(c *gin.Context) {
	productID := c.Param("product_id")

	cart, svcErr := cc.cart.RemoveItem(c.Request.Context(), middleware.SessionID(c), productID)
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	respondCart(c, cart)
}

// ClearCart removes all items from the cart.
func (cc *CartController) ClearCart(c *gin.Context) {
	if svcErr := cc.cart.Clear(c.Request.Context(), middleware.SessionID(c)); svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "cart cleared"})
}

func respondCart(c *gin.Context, cart *models.Cart) {
	c.JSON(http.StatusOK, gin.H{
		"cart":        cart,
		"total_items": cart.TotalItems(),
		"total_price": cart.TotalPrice(),
	})
}
