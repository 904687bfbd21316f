package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"tracker/models"
)

// WorkoutService handles workout entry storage access.
type WorkoutService struct {
	db *gorm.DB
}

// NewWorkoutService constructs a workout service.
func NewWorkoutService(db *gorm.DB) *WorkoutService {
	return &WorkoutService{db: db}
}

// List returns all workout entries, newest date first, ties broken by most
// recent insertion. Lift entries get their serialized sets parsed.
func (s *WorkoutService) List() ([]models.WorkoutRead, error) {
	var entries []models.WorkoutEntry
	if err := s.db.Order("date DESC, created_at DESC").Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to list workout entries: %w", err)
	}

	reads := make([]models.WorkoutRead, 0, len(entries))
	for i := range entries {
		reads = append(reads, entries[i].Read())
	}
	return reads, nil
}

// Get fetches a workout entry by ID.
func (s *WorkoutService) Get(id uint) (*models.WorkoutRead, error) {
	var entry models.WorkoutEntry
	if err := s.db.First(&entry, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get workout entry: %w", err)
	}
	read := entry.Read()
	return &read, nil
}

// Create validates the mandatory fields and inserts a new entry, returning
// its assigned ID. Optional fields with zero values are stored as NULL; a
// present sets array is serialized to text.
func (s *WorkoutService) Create(req models.WorkoutEntryUpsert) (uint, error) {
	if err := req.Validate(); err != nil {
		return 0, err
	}

	entry := req.Row()
	if err := s.db.Create(&entry).Error; err != nil {
		return 0, fmt.Errorf("failed to create workout entry: %w", err)
	}
	return entry.ID, nil
}

// Update rewrites every field of the entry from the request in one statement;
// values absent from the request are not preserved from the stored row.
func (s *WorkoutService) Update(id uint, req models.WorkoutEntryUpsert) error {
	result := s.db.Model(&models.WorkoutEntry{}).Where("id = ?", id).Updates(req.Columns())
	if result.Error != nil {
		return fmt.Errorf("failed to update workout entry: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a workout entry by ID.
func (s *WorkoutService) Delete(id uint) error {
	result := s.db.Delete(&models.WorkoutEntry{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete workout entry: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Stats computes the total and per-type counts in one aggregate read.
func (s *WorkoutService) Stats() (*models.WorkoutStats, error) {
	var stats models.WorkoutStats
	err := s.db.Model(&models.WorkoutEntry{}).
		Select("COUNT(*) AS total_workouts, " +
			"COUNT(CASE WHEN type = 'lift' THEN 1 END) AS lift_workouts, " +
			"COUNT(CASE WHEN type = 'cardio' THEN 1 END) AS cardio_workouts, " +
			"COUNT(CASE WHEN type = 'bjj' THEN 1 END) AS bjj_workouts").
		Scan(&stats).Error
	if err != nil {
		return nil, fmt.Errorf("failed to compute stats: %w", err)
	}
	return &stats, nil
}
