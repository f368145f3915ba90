package entity

import (
	"time"

	"gorm.io/gorm"
)

// Settings is a singleton row; the service lazily seeds the defaults on
// first access.
type Settings struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	ShopName             string  `json:"shopName"`
	Address              string  `json:"address"`
	Phone                string  `json:"phone"`
	Email                string  `json:"email"`
	ServiceChargePercent float64 `json:"serviceChargePercent"`
	TaxPercent           float64 `json:"taxPercent"`
	CurrencyCode         string  `json:"currencyCode"`
	CurrencyLocale       string  `json:"currencyLocale"`
	CurrencySymbol       string  `json:"currencySymbol"`
	Logo                 string  `json:"logo"`
}

func DefaultSettings() Settings {
	return Settings{
		ShopName:             "Coffee Me",
		Address:              "123 Coffee Street, Cityville",
		Phone:                "+1 234 567 8900",
		Email:                "hello@coffeeme.com",
		ServiceChargePercent: 10,
		TaxPercent:           0,
		CurrencyCode:         "INR",
		CurrencyLocale:       "en-IN",
		CurrencySymbol:       "₹",
	}
}
