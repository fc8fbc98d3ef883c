package models

import "time"

type Product struct {
	ID               uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name             string     `gorm:"not null" json:"name"`
	Description      string     `json:"description"`
	Price            float64    `gorm:"not null" json:"price"`
	Image            string     `json:"image"`
	AdditionalImages StringList `gorm:"type:jsonb" json:"additionalImages"`
	Category         string     `gorm:"index" json:"category"`
	// Stock must never go negative; checkout decrements it only through a
	// conditional UPDATE guarded by stock >= quantity.
	Stock        int     `gorm:"not null;default:0;check:stock >= 0" json:"stock"`
	Customizable bool    `gorm:"default:false" json:"customizable"`
	BaseSpecs    JSONMap `gorm:"type:jsonb" json:"baseSpecs"`
	Rating       float64 `json:"rating"`

	Reviews []Review `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"reviews,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Review struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ProductID uint      `gorm:"index;not null" json:"productId"`
	Author    string    `json:"author"`
	Rating    float64   `gorm:"not null" json:"rating"`
	Comment   string    `json:"comment"`
	Date      time.Time `json:"date"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
