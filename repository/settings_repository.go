package repository

import (
	"gorm.io/gorm"

	"github.com/chathuka55/coffee-me-pos/entity"
)

type SettingsRepository struct {
	DB *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) *SettingsRepository {
	return &SettingsRepository{DB: db}
}

// First returns the singleton settings row, gorm.ErrRecordNotFound when the
// row has not been seeded yet.
func (r *SettingsRepository) First() (*entity.Settings, error) {
	var s entity.Settings
	if err := r.DB.First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SettingsRepository) Create(s *entity.Settings) error {
	return r.DB.Create(s).Error
}

func (r *SettingsRepository) Save(s *entity.Settings) error {
	return r.DB.Save(s).Error
}
