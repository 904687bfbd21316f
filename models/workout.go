package models

import (
	"encoding/json"
	"errors"
	"time"
)

// ErrMissingWorkoutFields is returned when a workout create request omits
// type or date.
var ErrMissingWorkoutFields = errors.New("Type and date are required")

// WorkoutSet is one set of a lift: repetitions at a given weight.
type WorkoutSet struct {
	Reps   int     `json:"reps"`
	Weight float64 `json:"weight"`
}

// WorkoutEntry is the wide storage row for all workout types. Fields that do
// not apply to an entry's type stay NULL; nothing enforces that only the
// matching subset is populated.
type WorkoutEntry struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Type         string    `gorm:"not null" json:"type"`
	Date         string    `gorm:"not null" json:"date"`
	SessionName  *string   `gorm:"column:session_name" json:"session_name"`
	Notes        *string   `json:"notes"`
	LiftName     *string   `gorm:"column:lift_name" json:"lift_name"`
	Sets         *string   `gorm:"column:sets" json:"-"`
	Unit         *string   `json:"unit"`
	RPE          *int      `gorm:"column:rpe" json:"rpe"`
	Modality     *string   `json:"modality"`
	Duration     *int      `json:"duration"`
	Distance     *float64  `json:"distance"`
	DistanceUnit *string   `gorm:"column:distance_unit" json:"distance_unit"`
	AvgHR        *int      `gorm:"column:avg_hr" json:"avg_hr"`
	Technique    *string   `json:"technique"`
	Rounds       *int      `json:"rounds"`
	RoundLength  *int      `gorm:"column:round_length" json:"round_length"`
	CreatedAt    time.Time `json:"created_at"`
}

// GetSets parses the serialized set list. Malformed content yields an empty
// list rather than an error.
func (e *WorkoutEntry) GetSets() []WorkoutSet {
	var sets []WorkoutSet
	if e.Sets == nil {
		return sets
	}
	if err := json.Unmarshal([]byte(*e.Sets), &sets); err != nil {
		return []WorkoutSet{}
	}
	return sets
}

// SetSets stores the set list as JSON text. A nil list clears the column.
func (e *WorkoutEntry) SetSets(sets []WorkoutSet) {
	if sets == nil {
		e.Sets = nil
		return
	}
	data, _ := json.Marshal(sets)
	s := string(data)
	e.Sets = &s
}

// WorkoutRead is the response shape for a workout entry. Lift entries carry
// their sets parsed into WorkoutSet values; other types pass the stored text
// through unchanged.
type WorkoutRead struct {
	ID           uint        `json:"id"`
	Type         string      `json:"type"`
	Date         string      `json:"date"`
	SessionName  *string     `json:"session_name"`
	Notes        *string     `json:"notes"`
	LiftName     *string     `json:"lift_name"`
	Sets         interface{} `json:"sets"`
	Unit         *string     `json:"unit"`
	RPE          *int        `json:"rpe"`
	Modality     *string     `json:"modality"`
	Duration     *int        `json:"duration"`
	Distance     *float64    `json:"distance"`
	DistanceUnit *string     `json:"distance_unit"`
	AvgHR        *int        `json:"avg_hr"`
	Technique    *string     `json:"technique"`
	Rounds       *int        `json:"rounds"`
	RoundLength  *int        `json:"round_length"`
	CreatedAt    time.Time   `json:"created_at"`
}

// Read converts the storage row into its response shape.
func (e *WorkoutEntry) Read() WorkoutRead {
	r := WorkoutRead{
		ID:           e.ID,
		Type:         e.Type,
		Date:         e.Date,
		SessionName:  e.SessionName,
		Notes:        e.Notes,
		LiftName:     e.LiftName,
		Unit:         e.Unit,
		RPE:          e.RPE,
		Modality:     e.Modality,
		Duration:     e.Duration,
		Distance:     e.Distance,
		DistanceUnit: e.DistanceUnit,
		AvgHR:        e.AvgHR,
		Technique:    e.Technique,
		Rounds:       e.Rounds,
		RoundLength:  e.RoundLength,
		CreatedAt:    e.CreatedAt,
	}
	if e.Sets != nil {
		if e.Type == "lift" {
			r.Sets = e.GetSets()
		} else {
			r.Sets = *e.Sets
		}
	}
	return r
}

// WorkoutEntryUpsert is the request payload for creating or replacing a
// workout entry. Optional fields with zero values ("" or 0) are treated as
// absent and stored as NULL.
type WorkoutEntryUpsert struct {
	Type         *string      `json:"type"`
	Date         *string      `json:"date"`
	SessionName  string       `json:"session_name"`
	Notes        string       `json:"notes"`
	LiftName     string       `json:"lift_name"`
	Sets         []WorkoutSet `json:"sets"`
	Unit         string       `json:"unit"`
	RPE          int          `json:"rpe"`
	Modality     string       `json:"modality"`
	Duration     int          `json:"duration"`
	Distance     float64      `json:"distance"`
	DistanceUnit string       `json:"distance_unit"`
	AvgHR        int          `json:"avg_hr"`
	Technique    string       `json:"technique"`
	Rounds       int          `json:"rounds"`
	RoundLength  int          `json:"round_length"`
}

// Validate enforces the create-time required fields.
func (p *WorkoutEntryUpsert) Validate() error {
	if p.Type == nil || *p.Type == "" || p.Date == nil || *p.Date == "" {
		return ErrMissingWorkoutFields
	}
	return nil
}

// Row builds the storage row for a validated create request.
func (p *WorkoutEntryUpsert) Row() WorkoutEntry {
	e := WorkoutEntry{
		Type:         *p.Type,
		Date:         *p.Date,
		SessionName:  nullString(p.SessionName),
		Notes:        nullString(p.Notes),
		LiftName:     nullString(p.LiftName),
		Unit:         nullString(p.Unit),
		RPE:          nullInt(p.RPE),
		Modality:     nullString(p.Modality),
		Duration:     nullInt(p.Duration),
		Distance:     nullFloat(p.Distance),
		DistanceUnit: nullString(p.DistanceUnit),
		AvgHR:        nullInt(p.AvgHR),
		Technique:    nullString(p.Technique),
		Rounds:       nullInt(p.Rounds),
		RoundLength:  nullInt(p.RoundLength),
	}
	e.SetSets(p.Sets)
	return e
}

// Columns maps the payload to column values for a full-replace update.
// A missing type or date becomes NULL and fails at the database; update
// performs no validation of its own.
func (p *WorkoutEntryUpsert) Columns() map[string]interface{} {
	var setsJSON *string
	if p.Sets != nil {
		data, _ := json.Marshal(p.Sets)
		s := string(data)
		setsJSON = &s
	}
	return map[string]interface{}{
		"type":          p.Type,
		"date":          p.Date,
		"session_name":  nullString(p.SessionName),
		"notes":         nullString(p.Notes),
		"lift_name":     nullString(p.LiftName),
		"sets":          setsJSON,
		"unit":          nullString(p.Unit),
		"rpe":           nullInt(p.RPE),
		"modality":      nullString(p.Modality),
		"duration":      nullInt(p.Duration),
		"distance":      nullFloat(p.Distance),
		"distance_unit": nullString(p.DistanceUnit),
		"avg_hr":        nullInt(p.AvgHR),
		"technique":     nullString(p.Technique),
		"rounds":        nullInt(p.Rounds),
		"round_length":  nullInt(p.RoundLength),
	}
}

// WorkoutStats is the aggregate produced by the stats query. Types outside
// the three named ones count toward the total only.
type WorkoutStats struct {
	TotalWorkouts  int64 `json:"total_workouts"`
	LiftWorkouts   int64 `json:"lift_workouts"`
	CardioWorkouts int64 `json:"cardio_workouts"`
	BJJWorkouts    int64 `json:"bjj_workouts"`
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func nullInt(n int) *int {
	if n == 0 {
		return nil
	}
	return &n
}

func nullFloat(f float64) *float64 {
	if f == 0 {
		return nil
	}
	return &f
}
