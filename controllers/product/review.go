package productcontroller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/OsorioJc-696/Ecommerce-Jc/models"
)

type ReviewInput struct {
	Author  string  `json:"author" binding:"required"`
	Rating  float64 `json:"rating" binding:"required,gte=1,lte=5"`
	Comment string  `json:"comment"`
}

// POST /products/:id/reviews
//
// The product's average rating is recomputed in the same transaction that
// inserts the review.
func AddReview(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var input ReviewInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var review models.Review
		err = db.Transaction(func(tx *gorm.DB) error {
			var product models.Product
			if err := tx.First(&product, id).Error; err != nil {
				return err
			}

			review = models.Review{
				ProductID: product.ID,
				Author:    input.Author,
				Rating:    input.Rating,
				Comment:   input.Comment,
				Date:      time.Now(),
			}
			if err := tx.Create(&review).Error; err != nil {
				return err
			}

			var avg float64
			if err := tx.Model(&models.Review{}).
				Where("product_id = ?", product.ID).
				Select("AVG(rating)").Scan(&avg).Error; err != nil {
				return err
			}
			return tx.Model(&models.Product{}).Where("id = ?", product.ID).
				Update("rating", avg).Error
		})
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add review"})
			return
		}

		c.JSON(http.StatusCreated, review)
	}
}
