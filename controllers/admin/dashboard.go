package adminControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/OsorioJc-696/Ecommerce-Jc/models"
)

// GET /admin/dashboard
func GetDashboardStats(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var productCount, userCount, orderCount int64
		if err := db.Model(&models.Product{}).Count(&productCount).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count products"})
			return
		}
		if err := db.Model(&models.User{}).Count(&userCount).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count users"})
			return
		}
		if err := db.Model(&models.Order{}).Count(&orderCount).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count orders"})
			return
		}

		// Cancelled orders do not count toward revenue
		var revenue float64
		if err := db.Model(&models.Order{}).
			Where("status <> ?", models.OrderStatusCancelled).
			Select("COALESCE(SUM(total), 0)").
			Scan(&revenue).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute revenue"})
			return
		}

		var recentOrders []models.Order
		if err := db.Preload("Items").Order("order_date DESC").Limit(5).Find(&recentOrders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch recent orders"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"products":     productCount,
			"users":        userCount,
			"orders":       orderCount,
			"revenue":      revenue,
			"recentOrders": recentOrders,
		})
	}
}
