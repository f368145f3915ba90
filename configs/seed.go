package configs

import (
	"github.com/chathuka55/coffee-me-pos/entity"
)

// SeedSettings makes sure the singleton shop settings row exists. The
// settings service also seeds lazily; doing it at startup keeps first
// requests cheap. Idempotent.
func SeedSettings() error {
	var count int64
	if err := db.Model(&entity.Settings{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	defaults := entity.DefaultSettings()
	return db.Create(&defaults).Error
}
