package adminControllers

import (
	"net/http"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/OsorioJc-696/Ecommerce-Jc/models"
)

type UpdateAdminStatusRequest struct {
	IsAdmin *bool `json:"isAdmin" binding:"required"`
}

// rootAdminEmail is the account that can never be demoted or deleted.
func rootAdminEmail() string {
	if email := os.Getenv("ROOT_ADMIN_EMAIL"); email != "" {
		return email
	}
	return "admin@digitalzone.com"
}

// GET /admin/users
func GetAllUsers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var users []models.User
		if err := db.
			Preload("Favorites").
			Order("created_at DESC").
			Find(&users).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
			return
		}
		c.JSON(http.StatusOK, users)
	}
}

// PUT /admin/users/:id/admin
func UpdateUserAdminStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
			return
		}

		var req UpdateAdminStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "isAdmin is required"})
			return
		}

		var user models.User
		if err := db.First(&user, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		if user.Email == rootAdminEmail() && !*req.IsAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "Cannot demote main admin"})
			return
		}

		if err := db.Model(&user).Update("is_admin", *req.IsAdmin).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update admin status"})
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// DELETE /admin/users/:id
func DeleteUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
			return
		}

		var user models.User
		if err := db.First(&user, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		if user.Email == rootAdminEmail() {
			c.JSON(http.StatusForbidden, gin.H{"error": "Cannot delete main admin"})
			return
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("user_id = ?", id).Delete(&models.CartItem{}).Error; err != nil {
				return err
			}
			if err := tx.Where("user_id = ?", id).Delete(&models.Favorite{}).Error; err != nil {
				return err
			}
			// Orders are kept; they reference the user weakly
			return tx.Delete(&models.User{}, id).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
	}
}
