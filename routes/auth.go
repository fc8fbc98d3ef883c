package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	authControllers "github.com/OsorioJc-696/Ecommerce-Jc/controllers/auth"
	"github.com/OsorioJc-696/Ecommerce-Jc/middleware"
)

// SetupAuthRoutes registers signup/login/logout plus the authenticated
// "who am I" endpoint.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/signup", authControllers.Signup(db))
		authGroup.POST("/login", authControllers.Login(db))
		authGroup.POST("/logout", authControllers.Logout())
		authGroup.GET("/me", middleware.ValidateToken, authControllers.Me(db))
	}
}
