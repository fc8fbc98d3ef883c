package models

import "time"

// CartItem is one line of a user's pending purchase. Carts are flat rows keyed
// by user; (user, product) is unique so re-adding a product updates the
// existing line instead of duplicating it.
type CartItem struct {
	ID                   uint      `gorm:"primaryKey" json:"id"`
	UserID               uint      `gorm:"not null;uniqueIndex:idx_cart_user_product" json:"userId"`
	ProductID            uint      `gorm:"not null;uniqueIndex:idx_cart_user_product" json:"productId"`
	Product              Product   `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Quantity             int       `gorm:"not null" json:"quantity"`
	GiftWrap             bool      `gorm:"default:false" json:"giftWrap"`
	CustomizationDetails JSONMap   `gorm:"type:jsonb" json:"customizationDetails"`
	CreatedAt            time.Time `json:"createdAt"`
	UpdatedAt            time.Time `json:"updatedAt"`
}
