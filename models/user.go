package models

import "time"

type User struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Username    string `gorm:"uniqueIndex;not null" json:"username"`
	Email       string `gorm:"uniqueIndex;not null" json:"email"`
	Password    string `gorm:"not null" json:"-"` // bcrypt hash, never serialized
	DNI         string `json:"dni"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`
	PhotoURL    string `json:"photoUrl"`
	IsAdmin     bool   `gorm:"default:false" json:"isAdmin"`

	Favorites []Favorite `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"favorites,omitempty"`
	Orders    []Order    `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL" json:"orders,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Favorite links a user to a product they marked. One row per (user, product).
type Favorite struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_favorite_user_product" json:"userId"`
	ProductID uint      `gorm:"not null;uniqueIndex:idx_favorite_user_product" json:"productId"`
	Product   Product   `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
