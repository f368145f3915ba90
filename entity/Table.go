package entity

import (
	"time"
)

const (
	TableAvailable = "available"
	TableOccupied  = "occupied"
	TableReserved  = "reserved"
)

func ValidTableStatus(s string) bool {
	switch s {
	case TableAvailable, TableOccupied, TableReserved:
		return true
	}
	return false
}

// Table rows are hard-deleted, like items, so a freed table number can be
// reused without tripping the unique index.
type Table struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Number int    `gorm:"uniqueIndex" json:"number"`
	Seats  int    `json:"seats"`
	Status string `gorm:"default:available" json:"status"`

	// Weak reference to the pending order holding this table; the order
	// orchestrator is the only writer outside manual status correction.
	CurrentOrderID *uint `json:"currentOrderId"`
}
