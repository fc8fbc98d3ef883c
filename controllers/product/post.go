package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/OsorioJc-696/Ecommerce-Jc/models"
)

type ProductInput struct {
	Name             string            `json:"name" binding:"required"`
	Description      string            `json:"description"`
	Price            float64           `json:"price" binding:"required,gt=0"`
	Image            string            `json:"image"`
	AdditionalImages models.StringList `json:"additionalImages"`
	Category         string            `json:"category" binding:"required"`
	Stock            int               `json:"stock" binding:"min=0"`
	Customizable     bool              `json:"customizable"`
	BaseSpecs        models.JSONMap    `json:"baseSpecs"`
	Rating           float64           `json:"rating"`
}

// POST /admin/products
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product := models.Product{
			Name:             input.Name,
			Description:      input.Description,
			Price:            input.Price,
			Image:            input.Image,
			AdditionalImages: input.AdditionalImages,
			Category:         input.Category,
			Stock:            input.Stock,
			Customizable:     input.Customizable,
			BaseSpecs:        input.BaseSpecs,
			Rating:           input.Rating,
		}
		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}
