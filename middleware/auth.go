package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/OsorioJc-696/Ecommerce-Jc/auth"
)

// ValidateToken authenticates a request from the session cookie or an
// Authorization bearer header and stores user_id, email and is_admin in the
// request context.
func ValidateToken(c *gin.Context) {
	tokenString, err := c.Cookie(auth.CookieName)
	if err != nil || tokenString == "" {
		header := c.GetHeader("Authorization")
		tokenString = strings.TrimPrefix(header, "Bearer ")
	}
	if tokenString == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		c.Abort()
		return
	}

	claims, err := auth.ParseToken(tokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		c.Abort()
		return
	}

	// JSON numbers decode as float64
	userID, ok := claims["user_id"].(float64)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
		c.Abort()
		return
	}

	c.Set("user_id", uint(userID))
	if email, ok := claims["email"].(string); ok {
		c.Set("email", email)
	}
	if isAdmin, ok := claims["is_admin"].(bool); ok {
		c.Set("is_admin", isAdmin)
	}

	c.Next()
}

// RequireAdmin must run after ValidateToken and rejects non-admin sessions.
func RequireAdmin(c *gin.Context) {
	if isAdmin, exists := c.Get("is_admin"); !exists || isAdmin != true {
		c.JSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
		c.Abort()
		return
	}
	c.Next()
}
