package orderControllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/OsorioJc-696/Ecommerce-Jc/models"
)

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

var errInvalidTransition = errors.New("invalid status transition")

// Map string to OrderStatus
func parseOrderStatus(status string) (models.OrderStatus, error) {
	switch strings.ToLower(status) {
	case strings.ToLower(string(models.OrderStatusProcessing)):
		return models.OrderStatusProcessing, nil
	case strings.ToLower(string(models.OrderStatusShipped)):
		return models.OrderStatusShipped, nil
	case strings.ToLower(string(models.OrderStatusDelivered)):
		return models.OrderStatusDelivered, nil
	case strings.ToLower(string(models.OrderStatusCancelled)):
		return models.OrderStatusCancelled, nil
	default:
		return "", errors.New("invalid order status")
	}
}

// GET /orders — the caller's order history, newest first
func GetMyOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var orders []models.Order
		if err := db.
			Where("user_id = ?", userIDVal).
			Preload("Items").
			Order("order_date DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /orders/:orderID — owner or admin only
func GetOrderByIDHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")
		if orderID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderID is required"})
			return
		}

		var order models.Order
		if err := db.
			Preload("Items").
			Preload("User").
			First(&order, "id = ?", orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}

		userIDVal, _ := c.Get("user_id")
		isAdmin, _ := c.Get("is_admin")
		if (order.UserID == nil || *order.UserID != userIDVal.(uint)) && isAdmin != true {
			c.JSON(http.StatusForbidden, gin.H{"error": "Not your order"})
			return
		}

		c.JSON(http.StatusOK, order)
	}
}

// GET /admin/orders
func GetAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.
			Preload("User").
			Preload("Items").
			Order("order_date DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// TransitionOrderStatus moves an order along the lifecycle graph
// (Processing → Shipped → Delivered, Cancelled from Processing/Shipped;
// Delivered and Cancelled are terminal). The write carries a status
// predicate, so a concurrent transition that committed first makes it match
// no rows instead of overwriting a terminal state. On errInvalidTransition
// the returned order holds the status that blocked the move.
func TransitionOrderStatus(db *gorm.DB, orderID string, newStatus models.OrderStatus) (models.Order, error) {
	var order models.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&order, "id = ?", orderID).Error; err != nil {
			return err
		}
		if !order.Status.CanTransition(newStatus) {
			return errInvalidTransition
		}

		res := tx.Model(&models.Order{}).
			Where("id = ? AND status = ?", orderID, order.Status).
			Update("status", newStatus)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// Lost a race with a concurrent transition; re-read so the
			// caller reports the status that actually blocked the move
			if err := tx.First(&order, "id = ?", orderID).Error; err != nil {
				return err
			}
			return errInvalidTransition
		}
		return nil
	})
	if err != nil {
		return order, err
	}

	order.Status = newStatus
	return order, nil
}

// PUT /admin/orders/:orderID/status
//
// Transitions outside the lifecycle graph are rejected, not silently ignored.
func UpdateOrderStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")
		if orderID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderID is required"})
			return
		}

		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		newStatus, err := parseOrderStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		order, err := TransitionOrderStatus(db, orderID, newStatus)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			if errors.Is(err, errInvalidTransition) {
				c.JSON(http.StatusConflict, gin.H{"error": "Cannot transition order from " + string(order.Status) + " to " + string(newStatus)})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order status"})
			return
		}

		broadcastOrderEvent("status_changed", order)
		c.JSON(http.StatusOK, gin.H{"message": "Order status updated successfully", "status": newStatus})
	}
}
