package adminControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/OsorioJc-696/Ecommerce-Jc/models"
)

var sampleProducts = []models.Product{
	{
		Name:         "Custom Gaming PC",
		Description:  "Mid-tower build with configurable GPU and RAM.",
		Price:        1299.99,
		Category:     "Computers",
		Stock:        10,
		Customizable: true,
		BaseSpecs: models.JSONMap{
			"cpu": "Ryzen 7 7700X",
			"ram": "32GB DDR5",
			"gpu": "RTX 4070",
		},
	},
	{
		Name:        "Mechanical Keyboard",
		Description: "Hot-swappable switches, RGB backlight.",
		Price:       89.90,
		Category:    "Peripherals",
		Stock:       50,
	},
	{
		Name:        "27-inch 144Hz Monitor",
		Description: "QHD IPS panel with 1ms response time.",
		Price:       329.00,
		Category:    "Monitors",
		Stock:       25,
	},
	{
		Name:        "Wireless Mouse",
		Description: "Lightweight, 26000 DPI sensor.",
		Price:       59.90,
		Category:    "Peripherals",
		Stock:       80,
	},
	{
		Name:        "USB-C Dock",
		Description: "Dual HDMI, gigabit ethernet, 100W passthrough.",
		Price:       119.00,
		Category:    "Accessories",
		Stock:       40,
	},
}

// POST /admin/seed
//
// Idempotent: existing products with the same name are left untouched.
func SeedDatabase(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		inserted := 0
		for _, p := range sampleProducts {
			var count int64
			if err := db.Model(&models.Product{}).Where("name = ?", p.Name).Count(&count).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to seed database"})
				return
			}
			if count > 0 {
				continue
			}
			if err := db.Create(&p).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to seed database"})
				return
			}
			inserted++
		}
		c.JSON(http.StatusOK, gin.H{"message": "Database seeded", "inserted": inserted})
	}
}
