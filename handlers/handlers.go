package handlers

import (
	"strconv"

	"gorm.io/gorm"

	"tracker/service"
)

// CashHandlers serves the Cash Health Tracker API.
type CashHandlers struct {
	entries  *service.EntryService
	settings *service.SettingService
	dbPath   string
}

// NewCashHandlers constructs the Cash Health handler set. dbPath is the
// resolved database file location reported by the health endpoint.
func NewCashHandlers(db *gorm.DB, dbPath string) *CashHandlers {
	return &CashHandlers{
		entries:  service.NewEntryService(db),
		settings: service.NewSettingService(db),
		dbPath:   dbPath,
	}
}

// WorkoutHandlers serves the Workout Tracker API.
type WorkoutHandlers struct {
	workouts *service.WorkoutService
}

// NewWorkoutHandlers constructs the Workout handler set.
func NewWorkoutHandlers(db *gorm.DB) *WorkoutHandlers {
	return &WorkoutHandlers{workouts: service.NewWorkoutService(db)}
}

// parseID parses a numeric path parameter. A non-numeric id can never match
// a row, so callers treat a parse failure the same as a missing record.
func parseID(param string) (uint, bool) {
	id, err := strconv.ParseUint(param, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
