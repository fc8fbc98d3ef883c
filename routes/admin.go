package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	adminControllers "github.com/OsorioJc-696/Ecommerce-Jc/controllers/admin"
	orderControllers "github.com/OsorioJc-696/Ecommerce-Jc/controllers/order"
	productControllers "github.com/OsorioJc-696/Ecommerce-Jc/controllers/product"
	"github.com/OsorioJc-696/Ecommerce-Jc/middleware"
)

// SetupAdminRoutes registers the back-office. Everything here requires a valid
// session with the admin claim.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	admin := r.Group("/admin")
	admin.Use(middleware.ValidateToken, middleware.RequireAdmin)
	{
		// ──────────────── Dashboard ────────────────
		admin.GET("/dashboard", adminControllers.GetDashboardStats(db))

		// ──────────────── Products ────────────────
		admin.POST("/products", productControllers.CreateProduct(db))
		admin.PUT("/products/:id", productControllers.UpdateProduct(db))
		admin.DELETE("/products/:id", productControllers.DeleteProduct(db))
		admin.GET("/products/export", productControllers.ExportProductsToExcel(db))

		// ──────────────── Orders ────────────────
		admin.GET("/orders", orderControllers.GetAllOrdersHandler(db))
		admin.PUT("/orders/:orderID/status", orderControllers.UpdateOrderStatusHandler(db))
		admin.GET("/orders/export", orderControllers.ExportOrdersToExcel(db))
		admin.GET("/orders/ws", orderControllers.OrderWebSocketHandler)

		// ──────────────── Users ────────────────
		admin.GET("/users", adminControllers.GetAllUsers(db))
		admin.PUT("/users/:id/admin", adminControllers.UpdateUserAdminStatus(db))
		admin.DELETE("/users/:id", adminControllers.DeleteUser(db))

		// ──────────────── Seed ────────────────
		admin.POST("/seed", adminControllers.SeedDatabase(db))
	}
}
