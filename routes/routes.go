package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up all route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// Public auth routes (no middleware)
	SetupAuthRoutes(r, db)

	// Public catalog browsing
	SetupProductRoutes(r, db)

	// User routes (JWT-protected): profile, cart, favorites
	SetupUserRoutes(r, db)

	// Order routes (JWT-protected): checkout and order history
	SetupOrderRoutes(r, db)

	// Admin back-office (JWT + admin claim)
	SetupAdminRoutes(r, db)
}
