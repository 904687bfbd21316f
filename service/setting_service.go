package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tracker/models"
)

// SettingService handles key/value settings storage access.
type SettingService struct {
	db *gorm.DB
}

// NewSettingService constructs a settings service.
func NewSettingService(db *gorm.DB) *SettingService {
	return &SettingService{db: db}
}

// List returns all settings projected into a key→value map.
func (s *SettingService) List() (map[string]string, error) {
	var rows []models.Setting
	if err := s.db.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list settings: %w", err)
	}

	settings := make(map[string]string, len(rows))
	for _, row := range rows {
		settings[row.Key] = row.Value
	}
	return settings, nil
}

// Get fetches a single setting by key.
func (s *SettingService) Get(key string) (*models.Setting, error) {
	var setting models.Setting
	if err := s.db.First(&setting, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get setting: %w", err)
	}
	return &setting, nil
}

// Upsert inserts the setting or replaces the value when the key exists.
// Create and overwrite are not distinguished.
func (s *SettingService) Upsert(key, value string) error {
	setting := models.Setting{Key: key, Value: value}
	if err := s.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&setting).Error; err != nil {
		return fmt.Errorf("failed to save setting: %w", err)
	}
	return nil
}
