package shop_routes

import (
	"time"

	"github.com/Montclaire-Parfums/montclaire-storefront-backend/controllers/shop/cart_controller"
	"github.com/Montclaire-Parfums/montclaire-storefront-backend/controllers/shop/catalog_controller"
	"github.com/Montclaire-Parfums/montclaire-storefront-backend/controllers/shop/checkout_controller"
	"github.com/Montclaire-Parfums/montclaire-storefront-backend/controllers/shop/consult_controller"
	"github.com/Montclaire-Parfums/montclaire-storefront-backend/controllers/shop/order_controller"
	"github.com/Montclaire-Parfums/montclaire-storefront-backend/controllers/shop/site_controller"
	"github.com/Montclaire-Parfums/montclaire-storefront-backend/middleware"
	"github.com/gin-gonic/gin"
)

// SetupShopRoutes mounts everything the public storefront calls.
func SetupShopRoutes(rg *gin.RouterGroup) {
	shop := rg.Group("/store")

	// ════════════════════════════════════════════════════════════
	// Catalog
	// ════════════════════════════════════════════════════════════
	shop.GET("/products", catalog_controller.GetProducts)
	shop.GET("/products/:id", catalog_controller.GetProductByID)

	// ════════════════════════════════════════════════════════════
	// Cart
	// ════════════════════════════════════════════════════════════
	shop.GET("/cart", cart_controller.GetCart)
	shop.POST("/cart/items", cart_controller.AddItem)
	shop.PATCH("/cart/items/:id", cart_controller.UpdateQuantity)
	shop.DELETE("/cart/items/:id", cart_controller.RemoveItem)

	// ════════════════════════════════════════════════════════════
	// Checkout
	// ════════════════════════════════════════════════════════════
	shop.GET("/checkout", checkout_controller.GetCheckoutState)
	shop.POST("/checkout/begin", checkout_controller.BeginCheckout)
	shop.POST("/checkout/back", checkout_controller.BackToCart)
	shop.POST("/checkout/submit", checkout_controller.SubmitCheckout)
	shop.GET("/checkout/handoff", checkout_controller.GetHandoff)

	// ════════════════════════════════════════════════════════════
	// Orders
	// ════════════════════════════════════════════════════════════
	shop.GET("/orders/track", order_controller.TrackOrder)

	// ════════════════════════════════════════════════════════════
	// Scent consult (rate limited — model calls cost money)
	// ════════════════════════════════════════════════════════════
	shop.POST("/consult", middleware.RateLimiter(10, time.Minute), consult_controller.Consult)

	// ════════════════════════════════════════════════════════════
	// Site shell
	// ════════════════════════════════════════════════════════════
	shop.GET("/site/settings", site_controller.GetSiteSettings)
	shop.GET("/site/policies", site_controller.GetPolicies)
	shop.GET("/site/policies/:id", site_controller.GetPolicy)
}
