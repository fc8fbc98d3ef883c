package productcontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/OsorioJc-696/Ecommerce-Jc/models"
)

type ProductUpdateInput struct {
	Name             *string            `json:"name"`
	Description      *string            `json:"description"`
	Price            *float64           `json:"price"`
	Image            *string            `json:"image"`
	AdditionalImages *models.StringList `json:"additionalImages"`
	Category         *string            `json:"category"`
	Stock            *int               `json:"stock"`
	Customizable     *bool              `json:"customizable"`
	BaseSpecs        *models.JSONMap    `json:"baseSpecs"`
	Rating           *float64           `json:"rating"`
}

// PUT /admin/products/:id
//
// All changed columns, stock included, go out as a single UPDATE so an admin
// edit cannot clobber a stock decrement from a concurrent checkout beyond the
// value the admin explicitly set.
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var input ProductUpdateInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		updates := make(map[string]interface{})
		if input.Name != nil {
			updates["name"] = *input.Name
		}
		if input.Description != nil {
			updates["description"] = *input.Description
		}
		if input.Price != nil {
			if *input.Price <= 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Price must be positive"})
				return
			}
			updates["price"] = *input.Price
		}
		if input.Image != nil {
			updates["image"] = *input.Image
		}
		if input.AdditionalImages != nil {
			updates["additional_images"] = *input.AdditionalImages
		}
		if input.Category != nil {
			updates["category"] = *input.Category
		}
		if input.Stock != nil {
			if *input.Stock < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Stock cannot be negative"})
				return
			}
			updates["stock"] = *input.Stock
		}
		if input.Customizable != nil {
			updates["customizable"] = *input.Customizable
		}
		if input.BaseSpecs != nil {
			updates["base_specs"] = *input.BaseSpecs
		}
		if input.Rating != nil {
			updates["rating"] = *input.Rating
		}
		if len(updates) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No fields to update"})
			return
		}

		result := db.Model(&models.Product{}).Where("id = ?", id).Updates(updates)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		var product models.Product
		if err := db.First(&product, id).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reload product"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
