package entity

import (
	"time"

	"gorm.io/gorm"
)

type OrderItem struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Quantity int `json:"quantity"`

	// Unit price snapshot taken from the item at order time. Later price
	// edits on the item do not touch existing orders.
	Price float64 `json:"price"`

	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	ItemID uint `json:"itemId"`
	Item   Item `json:"-"` // preload when hydrating order detail
}
