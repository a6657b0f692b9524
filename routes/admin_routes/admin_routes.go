package admin_routes

import (
	"time"

	"github.com/Montclaire-Parfums/montclaire-storefront-backend/controllers/admin/activity_controller"
	"github.com/Montclaire-Parfums/montclaire-storefront-backend/controllers/admin/auth_controller"
	"github.com/Montclaire-Parfums/montclaire-storefront-backend/controllers/admin/backup_controller"
	"github.com/Montclaire-Parfums/montclaire-storefront-backend/controllers/admin/order_controller"
	"github.com/Montclaire-Parfums/montclaire-storefront-backend/controllers/admin/product_controller"
	"github.com/Montclaire-Parfums/montclaire-storefront-backend/controllers/admin/settings_controller"
	"github.com/Montclaire-Parfums/montclaire-storefront-backend/middleware"
	"github.com/gin-gonic/gin"
)

// SetupAdminRoutes mounts the console API behind the gate middleware.
func SetupAdminRoutes(rg *gin.RouterGroup) {
	admin := rg.Group("/admin")

	// ════════════════════════════════════════════════════════════
	// Public (the gate itself)
	// ════════════════════════════════════════════════════════════
	admin.POST("/auth/login", auth_controller.Login)

	// ════════════════════════════════════════════════════════════
	// Protected (gate token + server-side session)
	// ════════════════════════════════════════════════════════════
	protected := admin.Group("")
	protected.Use(
		middleware.AdminGateMiddleware(),
		middleware.RateLimiter(120, time.Minute),
		middleware.ActivityLoggingMiddleware(),
	)
	{
		// Auth
		protected.POST("/auth/logout", auth_controller.Logout)
		protected.GET("/auth/session", auth_controller.Session)

		// Products
		protected.GET("/products", product_controller.GetProducts)
		protected.PUT("/products", product_controller.UpsertProduct)
		protected.PATCH("/products/:id/price", product_controller.SetPrice)
		protected.PATCH("/products/:id/stock", product_controller.SetStockStatus)
		protected.DELETE("/products/:id", product_controller.DeleteProduct)
		protected.POST("/products/upload-image", product_controller.UploadImage)

		// Orders
		protected.GET("/orders", order_controller.GetOrders)
		protected.PATCH("/orders/:id/status", order_controller.UpdateOrderStatus)
		protected.GET("/orders/:id/invoice", order_controller.DownloadInvoicePDF)

		// Settings & policies
		protected.GET("/settings", settings_controller.GetSettings)
		protected.PATCH("/settings", settings_controller.UpdateSettings)
		protected.GET("/policies", settings_controller.GetPolicies)
		protected.PUT("/policies/:id", settings_controller.UpdatePolicy)
		protected.PATCH("/policies/:id/toggle", settings_controller.TogglePolicy)

		// Backup
		protected.GET("/backup/export", backup_controller.ExportBackup)
		protected.POST("/backup/import", backup_controller.ImportBackup)

		// Activity
		protected.GET("/activity", activity_controller.GetActivity)
	}
}
