package models

import "time"

type OrderStatus string
type PaymentMethod string

const (
	OrderStatusProcessing OrderStatus = "Processing" // Order placed, being prepared
	OrderStatusShipped    OrderStatus = "Shipped"    // Out for delivery
	OrderStatusDelivered  OrderStatus = "Delivered"  // Customer received the items
	OrderStatusCancelled  OrderStatus = "Cancelled"  // Cancelled before delivery

	PaymentMethodCard   PaymentMethod = "card"
	PaymentMethodPaypal PaymentMethod = "paypal"
	PaymentMethodCrypto PaymentMethod = "crypto"
	PaymentMethodYape   PaymentMethod = "yape"
	PaymentMethodPlin   PaymentMethod = "plin"
	PaymentMethodTunki  PaymentMethod = "tunki"
	PaymentMethodOther  PaymentMethod = "other"
)

// GiftWrapPerUnit is the flat surcharge charged for every gift-wrapped unit.
const GiftWrapPerUnit = 10.0

// CanTransition reports whether an order may move from s to the given status.
// Delivered and Cancelled are terminal; Cancelled is reachable from
// Processing and Shipped only.
func (s OrderStatus) CanTransition(to OrderStatus) bool {
	switch s {
	case OrderStatusProcessing:
		return to == OrderStatusShipped || to == OrderStatusCancelled
	case OrderStatusShipped:
		return to == OrderStatusDelivered || to == OrderStatusCancelled
	default:
		return false
	}
}

type Order struct {
	ID string `gorm:"primaryKey" json:"id"` // e.g. ORD-1716899000000-A1B2C3
	// Weak reference: deleting the user nulls this but keeps the order
	UserID *uint `gorm:"index" json:"userId"`
	User   User  `gorm:"foreignKey:UserID" json:"user,omitempty"`

	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`

	Subtotal      float64     `json:"subtotal"`
	GiftWrapTotal float64     `json:"giftWrapTotal"`
	Total         float64     `json:"total"`
	Status        OrderStatus `gorm:"type:VARCHAR(20);default:'Processing'" json:"status"`

	// Snapshots captured at order time; later profile edits must not change them.
	ShippingAddress string        `json:"shippingAddress"`
	BillingAddress  string        `json:"billingAddress"`
	BillingEmail    string        `json:"billingEmail"`
	PaymentMethod   PaymentMethod `gorm:"type:VARCHAR(20)" json:"paymentMethod"`

	OrderDate time.Time `json:"orderDate"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// OrderItem is an immutable snapshot of one cart line at order time. Price and
// name are historical facts; they are never recomputed from the live product.
type OrderItem struct {
	ID                   uint    `gorm:"primaryKey" json:"id"`
	OrderID              string  `gorm:"index;not null" json:"orderId"`
	ProductID            uint    `json:"productId"` // weak reference, product may be deleted later
	Name                 string  `json:"name"`
	Price                float64 `json:"price"`
	Quantity             int     `json:"quantity"`
	CustomizationDetails JSONMap `gorm:"type:jsonb" json:"customizationDetails"`
	GiftWrap             bool    `json:"giftWrap"`
	Image                string  `json:"image"`
}
