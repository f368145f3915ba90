package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/chathuka55/coffee-me-pos/entity"
	"github.com/chathuka55/coffee-me-pos/repository"
)

type SettingsService struct {
	Repo *repository.SettingsRepository
}

func NewSettingsService(repo *repository.SettingsRepository) *SettingsService {
	return &SettingsService{Repo: repo}
}

type UpdateSettingsReq struct {
	ShopName             *string  `json:"shopName"`
	Address              *string  `json:"address"`
	Phone                *string  `json:"phone"`
	Email                *string  `json:"email"`
	ServiceChargePercent *float64 `json:"serviceChargePercent"`
	TaxPercent           *float64 `json:"taxPercent"`
	CurrencyCode         *string  `json:"currencyCode"`
	CurrencyLocale       *string  `json:"currencyLocale"`
	CurrencySymbol       *string  `json:"currencySymbol"`
	Logo                 *string  `json:"logo"`
}

// Get returns the singleton settings row, seeding the defaults on first
// access. Safe to call repeatedly.
func (s *SettingsService) Get() (*entity.Settings, error) {
	settings, err := s.Repo.First()
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	defaults := entity.DefaultSettings()
	if err := s.Repo.Create(&defaults); err != nil {
		return nil, err
	}
	return &defaults, nil
}

// Update merges the given fields into the settings row; absent fields keep
// their previous value.
func (s *SettingsService) Update(req *UpdateSettingsReq) (*entity.Settings, error) {
	settings, err := s.Get()
	if err != nil {
		return nil, err
	}

	if req.ShopName != nil {
		settings.ShopName = *req.ShopName
	}
	if req.Address != nil {
		settings.Address = *req.Address
	}
	if req.Phone != nil {
		settings.Phone = *req.Phone
	}
	if req.Email != nil {
		settings.Email = *req.Email
	}
	if req.ServiceChargePercent != nil {
		settings.ServiceChargePercent = *req.ServiceChargePercent
	}
	if req.TaxPercent != nil {
		settings.TaxPercent = *req.TaxPercent
	}
	if req.CurrencyCode != nil {
		settings.CurrencyCode = *req.CurrencyCode
	}
	if req.CurrencyLocale != nil {
		settings.CurrencyLocale = *req.CurrencyLocale
	}
	if req.CurrencySymbol != nil {
		settings.CurrencySymbol = *req.CurrencySymbol
	}
	if req.Logo != nil {
		settings.Logo = *req.Logo
	}

	if err := s.Repo.Save(settings); err != nil {
		return nil, err
	}
	return settings, nil
}
