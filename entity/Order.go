package entity

import (
	"time"

	"gorm.io/gorm"
)

const (
	OrderPending   = "pending"
	OrderCompleted = "completed"
	OrderCancelled = "cancelled"
)

const (
	OrderTypeDineIn   = "dine-in"
	OrderTypeTakeaway = "takeaway"
	OrderTypeDelivery = "delivery"
)

const (
	PaymentCash   = "cash"
	PaymentCard   = "card"
	PaymentOnline = "online"
)

func ValidOrderStatus(s string) bool {
	switch s {
	case OrderPending, OrderCompleted, OrderCancelled:
		return true
	}
	return false
}

func ValidOrderType(s string) bool {
	switch s {
	case OrderTypeDineIn, OrderTypeTakeaway, OrderTypeDelivery:
		return true
	}
	return false
}

func ValidPaymentMethod(s string) bool {
	switch s {
	case PaymentCash, PaymentCard, PaymentOnline:
		return true
	}
	return false
}

type Order struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Subtotal      float64 `json:"subtotal"`
	ServiceCharge float64 `json:"serviceCharge"`
	Discount      float64 `json:"discount"`
	Total         float64 `json:"total"`

	OrderType     string `json:"orderType"`
	PaymentMethod string `json:"paymentMethod"`
	Status        string `json:"status"`

	StaffName     string `json:"staffName,omitempty"`
	CustomerName  string `json:"customerName,omitempty"`
	CustomerPhone string `json:"customerPhone,omitempty"`

	// Set iff orderType is dine-in. TableNumber is a value copy taken at
	// creation so renumbering a table does not rewrite order history.
	TableID     *uint  `json:"tableId,omitempty"`
	TableNumber *int   `json:"tableNumber,omitempty"`
	Table       *Table `json:"-"`

	Items []OrderItem `json:"items"`
}
