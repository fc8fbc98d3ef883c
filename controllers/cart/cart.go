package cartControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/OsorioJc-696/Ecommerce-Jc/models"
)

type CartItemInput struct {
	ProductID            uint           `json:"productId" binding:"required"`
	Quantity             int            `json:"quantity" binding:"required,min=1"`
	GiftWrap             bool           `json:"giftWrap"`
	CustomizationDetails models.JSONMap `json:"customizationDetails"`
}

func requestUserID(c *gin.Context) (uint, bool) {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return 0, false
	}
	return userIDVal.(uint), true
}

// GET /user/cart
func GetUserCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requestUserID(c)
		if !ok {
			return
		}

		var items []models.CartItem
		if err := db.Preload("Product").Where("user_id = ?", userID).
			Order("created_at ASC").Find(&items).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": items})
	}
}

// POST /user/cart — add a product, or update the existing line for it
func UpsertCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requestUserID(c)
		if !ok {
			return
		}

		var input CartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		// Validate the product exists before touching the cart
		var product models.Product
		if err := db.First(&product, input.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate product"})
			return
		}

		var item models.CartItem
		err := db.Where("user_id = ? AND product_id = ?", userID, input.ProductID).First(&item).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				item = models.CartItem{
					UserID:               userID,
					ProductID:            input.ProductID,
					Quantity:             input.Quantity,
					GiftWrap:             input.GiftWrap,
					CustomizationDetails: input.CustomizationDetails,
				}
				if err := db.Create(&item).Error; err != nil {
					// A concurrent add of the same product can win the unique
					// index between the read and this insert
					if errors.Is(err, gorm.ErrDuplicatedKey) {
						c.JSON(http.StatusConflict, gin.H{"error": "Cart item already exists, retry the update"})
						return
					}
					c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
					return
				}
				c.JSON(http.StatusCreated, item)
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart item"})
			return
		}

		item.Quantity = input.Quantity
		item.GiftWrap = input.GiftWrap
		item.CustomizationDetails = input.CustomizationDetails
		if err := db.Save(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

// DELETE /user/cart/:product_id
func DeleteCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requestUserID(c)
		if !ok {
			return
		}

		productID, err := strconv.ParseUint(c.Param("product_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		result := db.Where("user_id = ? AND product_id = ?", userID, productID).Delete(&models.CartItem{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Cart item deleted"})
	}
}

// DELETE /user/cart
//
// Clearing an already-empty cart is a no-op success, so retries after a
// checkout are harmless.
func ClearUserCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requestUserID(c)
		if !ok {
			return
		}

		if err := db.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}
