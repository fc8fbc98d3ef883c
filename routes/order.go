package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/OsorioJc-696/Ecommerce-Jc/controllers/order"
	"github.com/OsorioJc-696/Ecommerce-Jc/middleware"
)

func SetupOrderRoutes(r *gin.Engine, db *gorm.DB) {
	orders := r.Group("/orders")
	orders.Use(middleware.ValidateToken)
	{
		// Place a new order from the caller's cart
		orders.POST("/checkout", orderControllers.CheckoutHandler(db))

		// Order history for the caller
		orders.GET("/", orderControllers.GetMyOrdersHandler(db))

		// Single order (owner or admin)
		orders.GET("/:orderID", orderControllers.GetOrderByIDHandler(db))
	}
}
