package userControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/OsorioJc-696/Ecommerce-Jc/models"
)

type FavoriteInput struct {
	ProductID uint `json:"productId" binding:"required"`
}

// GET /user/favorites
func GetFavorites(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := c.Get("user_id")

		var favorites []models.Favorite
		if err := db.Preload("Product").Where("user_id = ?", userID).Find(&favorites).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch favorites"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"favorites": favorites})
	}
}

// POST /user/favorites
func AddFavorite(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, _ := c.Get("user_id")
		userID := userIDVal.(uint)

		var input FavoriteInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid productId"})
			return
		}

		var product models.Product
		if err := db.First(&product, input.ProductID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
			return
		}

		var existing models.Favorite
		err := db.Where("user_id = ? AND product_id = ?", userID, input.ProductID).First(&existing).Error
		if err == nil {
			c.JSON(http.StatusConflict, gin.H{"error": "Already in favorites"})
			return
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check favorites"})
			return
		}

		favorite := models.Favorite{UserID: userID, ProductID: input.ProductID}
		if err := db.Create(&favorite).Error; err != nil {
			// The existence check races with concurrent adds; the unique
			// index is the authority
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				c.JSON(http.StatusConflict, gin.H{"error": "Already in favorites"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add favorite"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"favorite": favorite})
	}
}

// DELETE /user/favorites/:product_id
func RemoveFavorite(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := c.Get("user_id")

		productID, err := strconv.ParseUint(c.Param("product_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		result := db.Where("user_id = ? AND product_id = ?", userID, productID).Delete(&models.Favorite{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove favorite"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Favorite not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Favorite removed"})
	}
}
