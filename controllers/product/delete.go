package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/OsorioJc-696/Ecommerce-Jc/models"
)

// DELETE /admin/products/:id
//
// Past order items keep their snapshot fields, so deleting a product never
// rewrites order history.
func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			// Drop dangling cart lines and favorites along with the product
			if err := tx.Where("product_id = ?", id).Delete(&models.CartItem{}).Error; err != nil {
				return err
			}
			if err := tx.Where("product_id = ?", id).Delete(&models.Favorite{}).Error; err != nil {
				return err
			}
			return tx.Delete(&models.Product{}, id).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
	}
}
