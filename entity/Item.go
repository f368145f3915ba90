package entity

import (
	"time"
)

// Item rows are hard-deleted: a tombstone would keep holding the unique
// sku index and block re-creating the same SKU. The delete guard on sold
// items is what protects order history, not soft deletion.
type Item struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	CostPrice   float64 `json:"costPrice"`
	Stock       int     `json:"stock"`
	SKU         string  `gorm:"column:sku;uniqueIndex" json:"sku"`
	Description string  `json:"description"`
	Image       string  `json:"image"`

	OrderItems []OrderItem `json:"-"` // preload only when checking order references
}
