package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"tracker/models"
)

// EntryService handles financial entry storage access.
type EntryService struct {
	db *gorm.DB
}

// NewEntryService constructs a financial entry service.
func NewEntryService(db *gorm.DB) *EntryService {
	return &EntryService{db: db}
}

// List returns all entries, newest entry date first, ties broken by most
// recent insertion.
func (s *EntryService) List() ([]models.FinancialEntry, error) {
	var entries []models.FinancialEntry
	if err := s.db.Order("entry_date DESC, created_at DESC").Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}
	return entries, nil
}

// Get fetches an entry by ID.
func (s *EntryService) Get(id uint) (*models.FinancialEntry, error) {
	var entry models.FinancialEntry
	if err := s.db.First(&entry, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get entry: %w", err)
	}
	return &entry, nil
}

// Create validates the mandatory fields and inserts a new entry, returning
// its assigned ID. Omitted percentage fields are stored as 0.
func (s *EntryService) Create(req models.FinancialEntryUpsert) (uint, error) {
	if err := req.Validate(); err != nil {
		return 0, err
	}

	entry := req.Row()
	if err := s.db.Create(&entry).Error; err != nil {
		return 0, fmt.Errorf("failed to create entry: %w", err)
	}
	return entry.ID, nil
}

// Update rewrites every field of the entry from the request in one statement;
// values absent from the request are not preserved from the stored row.
func (s *EntryService) Update(id uint, req models.FinancialEntryUpsert) error {
	result := s.db.Model(&models.FinancialEntry{}).Where("id = ?", id).Updates(req.Columns())
	if result.Error != nil {
		return fmt.Errorf("failed to update entry: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes an entry by ID.
func (s *EntryService) Delete(id uint) error {
	result := s.db.Delete(&models.FinancialEntry{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete entry: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
