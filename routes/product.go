package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	productControllers "github.com/OsorioJc-696/Ecommerce-Jc/controllers/product"
	"github.com/OsorioJc-696/Ecommerce-Jc/middleware"
)

// SetupProductRoutes registers public catalog browsing endpoints.
func SetupProductRoutes(r *gin.Engine, db *gorm.DB) {
	r.GET("/products", productControllers.GetProducts(db))           // GET /products?q=&category=
	r.GET("/products/:id", productControllers.GetProductByID(db))    // GET /products/:id
	r.GET("/categories", productControllers.GetCategories(db))       // GET /categories

	// Reviews require a logged-in user
	r.POST("/products/:id/reviews", middleware.ValidateToken, productControllers.AddReview(db))
}
