package orderControllers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/OsorioJc-696/Ecommerce-Jc/models"
)

// checkoutTimeout bounds the order transaction so row locks are never held
// indefinitely under contention.
const checkoutTimeout = 15 * time.Second

var (
	ErrEmptyCart            = errors.New("cart is empty")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
)

// InsufficientStockError names the product that blocked a checkout and how
// many units were still available.
type InsufficientStockError struct {
	Product   string
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product: %s (available: %d)", e.Product, e.Available)
}

// -------- Request Structs --------

type CheckoutRequest struct {
	ShippingAddress string `json:"shippingAddress" binding:"required"`
	BillingAddress  string `json:"billingAddress" binding:"required"`
	BillingEmail    string `json:"billingEmail" binding:"required,email"`
	PaymentMethod   string `json:"paymentMethod" binding:"required"`
}

// -------- Helpers --------

// Map string to PaymentMethod
func parsePaymentMethod(method string) (models.PaymentMethod, error) {
	switch strings.ToLower(method) {
	case string(models.PaymentMethodCard):
		return models.PaymentMethodCard, nil
	case string(models.PaymentMethodPaypal):
		return models.PaymentMethodPaypal, nil
	case string(models.PaymentMethodCrypto):
		return models.PaymentMethodCrypto, nil
	case string(models.PaymentMethodYape):
		return models.PaymentMethodYape, nil
	case string(models.PaymentMethodPlin):
		return models.PaymentMethodPlin, nil
	case string(models.PaymentMethodTunki):
		return models.PaymentMethodTunki, nil
	case string(models.PaymentMethodOther):
		return models.PaymentMethodOther, nil
	default:
		return "", ErrInvalidPaymentMethod
	}
}

// computeTotals sums the priced order lines. Gift wrap is charged per unit and
// kept out of the subtotal.
func computeTotals(items []models.OrderItem) (subtotal, giftWrapTotal, total float64) {
	for _, item := range items {
		subtotal += item.Price * float64(item.Quantity)
		if item.GiftWrap {
			giftWrapTotal += models.GiftWrapPerUnit * float64(item.Quantity)
		}
	}
	return subtotal, giftWrapTotal, subtotal + giftWrapTotal
}

// newOrderID builds a customer-facing reference like ORD-1716899000000-A1B2C3.
// The random suffix keeps it opaque; uniqueness is ultimately enforced by the
// primary key, with a retry on collision.
func newOrderID() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:6])
	return fmt.Sprintf("ORD-%d-%s", time.Now().UnixMilli(), suffix)
}

// -------- Core Logic --------

// PlaceOrder turns the user's current cart into exactly one persisted order,
// decrementing product stock accordingly, all-or-nothing. Cart lines are
// fetched fresh and priced at the live catalog price; client-supplied totals
// are never trusted. On success the cart is cleared best-effort.
func PlaceOrder(db *gorm.DB, userID uint, req CheckoutRequest) (*models.Order, error) {
	method, err := parsePaymentMethod(req.PaymentMethod)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), checkoutTimeout)
	defer cancel()

	var order models.Order
	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cartItems []models.CartItem
		if err := tx.Preload("Product").Where("user_id = ?", userID).Find(&cartItems).Error; err != nil {
			return err
		}
		if len(cartItems) == 0 {
			return ErrEmptyCart
		}

		items := make([]models.OrderItem, 0, len(cartItems))
		for _, line := range cartItems {
			if line.Product.ID == 0 {
				return fmt.Errorf("product %d no longer exists", line.ProductID)
			}
			if line.Product.Stock < line.Quantity {
				return &InsufficientStockError{Product: line.Product.Name, Available: line.Product.Stock}
			}
			items = append(items, models.OrderItem{
				ProductID:            line.ProductID,
				Name:                 line.Product.Name,
				Price:                line.Product.Price,
				Quantity:             line.Quantity,
				CustomizationDetails: line.CustomizationDetails,
				GiftWrap:             line.GiftWrap,
				Image:                line.Product.Image,
			})
		}

		subtotal, giftWrapTotal, total := computeTotals(items)

		order = models.Order{
			UserID:          &userID,
			Items:           items,
			Subtotal:        subtotal,
			GiftWrapTotal:   giftWrapTotal,
			Total:           total,
			Status:          models.OrderStatusProcessing,
			ShippingAddress: req.ShippingAddress,
			BillingAddress:  req.BillingAddress,
			BillingEmail:    req.BillingEmail,
			PaymentMethod:   method,
			OrderDate:       time.Now(),
		}

		// The reference id is timestamp+random, so a collision is possible in
		// principle; retry with a fresh id instead of failing the checkout.
		for attempt := 0; ; attempt++ {
			order.ID = newOrderID()
			tx.SavePoint("order_insert")
			err := tx.Create(&order).Error
			if err == nil {
				break
			}
			if attempt < 2 && errors.Is(err, gorm.ErrDuplicatedKey) {
				tx.RollbackTo("order_insert")
				continue
			}
			return err
		}

		// Conditional decrement: the stock guard and the write are one
		// statement, so the precondition check above cannot be invalidated by
		// a concurrent checkout between validation and commit.
		for _, item := range order.Items {
			res := tx.Model(&models.Product{}).
				Where("id = ? AND stock >= ?", item.ProductID, item.Quantity).
				UpdateColumn("stock", gorm.Expr("stock - ?", item.Quantity))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				var product models.Product
				if err := tx.Select("stock").First(&product, item.ProductID).Error; err != nil {
					return &InsufficientStockError{Product: item.Name}
				}
				return &InsufficientStockError{Product: item.Name, Available: product.Stock}
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	// Cart clear is a convenience cleanup: the order is already committed, so
	// a failure here is logged, never surfaced as a checkout failure.
	if err := db.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error; err != nil {
		log.Printf("failed to clear cart for user %d after order %s: %v", userID, order.ID, err)
	}

	broadcastOrderEvent("order_placed", order)
	return &order, nil
}

// -------- Handlers --------

// POST /orders/checkout
func CheckoutHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(uint)

		var req CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		order, err := PlaceOrder(db, userID, req)
		if err != nil {
			var stockErr *InsufficientStockError
			switch {
			case errors.Is(err, ErrEmptyCart):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
			case errors.Is(err, ErrInvalidPaymentMethod):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payment method"})
			case errors.As(err, &stockErr):
				c.JSON(http.StatusConflict, gin.H{
					"error":     stockErr.Error(),
					"product":   stockErr.Product,
					"available": stockErr.Available,
				})
			default:
				log.Printf("checkout failed for user %d: %v", userID, err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order. Please try again later."})
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Order placed successfully", "orderId": order.ID})
	}
}
