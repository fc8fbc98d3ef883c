package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/OsorioJc-696/Ecommerce-Jc/controllers/cart"
	userControllers "github.com/OsorioJc-696/Ecommerce-Jc/controllers/user"
	"github.com/OsorioJc-696/Ecommerce-Jc/middleware"
)

// SetupUserRoutes registers all "/user/*" endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		// ──────────────── User Profile ────────────────
		userGroup.GET("/", userControllers.GetUser(db))    // GET /user/
		userGroup.PUT("/", userControllers.UpdateUser(db)) // PUT /user/

		// ──────────────── Shopping Cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("/", cartControllers.GetUserCart(db))                  // GET /user/cart
			cartGroup.POST("/", cartControllers.UpsertCartItem(db))              // POST /user/cart
			cartGroup.PUT("/", cartControllers.UpsertCartItem(db))               // PUT /user/cart
			cartGroup.DELETE("/:product_id", cartControllers.DeleteCartItem(db)) // DELETE /user/cart/:product_id
			cartGroup.DELETE("/", cartControllers.ClearUserCart(db))             // DELETE /user/cart
		}

		// ──────────────── Favorites ────────────────
		favGroup := userGroup.Group("/favorites")
		{
			favGroup.GET("/", userControllers.GetFavorites(db))                   // GET /user/favorites
			favGroup.POST("/", userControllers.AddFavorite(db))                   // POST /user/favorites
			favGroup.DELETE("/:product_id", userControllers.RemoveFavorite(db))   // DELETE /user/favorites/:product_id
		}
	}
}
