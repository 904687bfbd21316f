package database

import (
	"log"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tracker/models"
)

// SeedDefaultSettings inserts the default settings rows if they do not exist.
// Conflicting keys are left untouched, so repeated startups never overwrite a
// value the user has changed.
func SeedDefaultSettings(db *gorm.DB) {
	defaults := []models.Setting{
		{Key: models.SettingKeyWeeklyTarget, Value: models.DefaultWeeklyTarget},
		{Key: models.SettingKeyDarkMode, Value: models.DefaultDarkMode},
	}

	for _, s := range defaults {
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&s).Error; err != nil {
			log.Printf("Error inserting default setting %s: %v", s.Key, err)
		}
	}
}

// SeedSampleWorkouts inserts a few sample entries the first time the workout
// table is used. An already-populated table is left alone.
func SeedSampleWorkouts(db *gorm.DB) {
	var count int64
	if err := db.Model(&models.WorkoutEntry{}).Count(&count).Error; err != nil {
		log.Printf("Error counting workout entries: %v", err)
		return
	}
	if count > 0 {
		return
	}

	today := time.Now().Format("2006-01-02")
	yesterday := time.Now().Add(-24 * time.Hour).Format("2006-01-02")

	lift := models.WorkoutEntry{
		Type:        "lift",
		Date:        today,
		SessionName: strPtr("Push Day"),
		LiftName:    strPtr("Bench Press"),
		Unit:        strPtr("lbs"),
		RPE:         intPtr(8),
		Notes:       strPtr("Felt strong today!"),
	}
	lift.SetSets([]models.WorkoutSet{
		{Reps: 8, Weight: 135},
		{Reps: 8, Weight: 145},
		{Reps: 6, Weight: 155},
	})

	samples := []models.WorkoutEntry{
		lift,
		{
			Type:         "cardio",
			Date:         yesterday,
			SessionName:  strPtr("Morning Run"),
			Modality:     strPtr("Running"),
			Duration:     intPtr(30),
			Distance:     floatPtr(3.5),
			DistanceUnit: strPtr("miles"),
			AvgHR:        intPtr(145),
			Notes:        strPtr("Easy recovery run"),
		},
		{
			Type:        "bjj",
			Date:        yesterday,
			SessionName: strPtr("Evening Class"),
			Technique:   strPtr("Guard Passing"),
			Rounds:      intPtr(6),
			RoundLength: intPtr(5),
			Notes:       strPtr("Worked on pressure passing"),
		},
	}

	if err := db.Create(&samples).Error; err != nil {
		log.Printf("Error inserting sample data: %v", err)
		return
	}
	log.Println("Sample data inserted")
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int { return &n }
func floatPtr(f float64) *float64 { return &f }
