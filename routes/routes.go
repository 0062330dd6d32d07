package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/jeemhub/fawazv7/common/middleware"
	"github.com/jeemhub/fawazv7/controllers"
)

// Register wires all storefront routes onto the router.
func Register(
	r *gin.Engine,
	catalog *controllers.CatalogController,
	cart *controllers.CartController,
	checkout *controllers.CheckoutController,
	session *controllers.SessionController,
	admin *controllers.AdminController,
) {
	r.Use(middleware.Session())

	productRoutes := r.Group("/products")
	{
		productRoutes.GET("/", catalog.GetProducts)
		productRoutes.GET("/:id", catalog.GetProductByID)
	}

	categoryRoutes := r.Group("/category")
	{
		categoryRoutes.GET("/", catalog.GetCategories)
	}

	cartRoutes := r.Group("/cart")
	{
		cartRoutes.GET("/", cart.GetCart)
		cartRoutes.POST("/add", cart.AddItem)
		cartRoutes.PATCH("/update/:product_id", cart.UpdateQuantity)
		cartRoutes.DELETE("/remove/:product_id", cart.RemoveItem)
		cartRoutes.DELETE("/clear", cart.ClearCart)
	}

	checkoutRoutes := r.Group("/checkout")
	{
		checkoutRoutes.GET("/shipping", checkout.GetShippingTiers)
		checkoutRoutes.POST("/", checkout.Checkout)
	}

	sessionRoutes := r.Group("/session")
	{
		sessionRoutes.GET("/language", session.GetLanguage)
		sessionRoutes.PUT("/language", session.SetLanguage)
	}

	adminRoutes := r.Group("/admin")
	{
		adminRoutes.POST("/products", admin.CreateProduct)
		adminRoutes.PATCH("/products/:id", admin.UpdateProduct)
		adminRoutes.DELETE("/products/:id", admin.DeleteProduct)
		adminRoutes.POST("/categories", admin.CreateCategory)
		adminRoutes.DELETE("/categories/:id", admin.DeleteCategory)
		adminRoutes.GET("/uploads/presign", admin.GetPresignUpload)
	}
}
