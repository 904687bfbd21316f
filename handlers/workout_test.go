package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"tracker/database"
	"tracker/models"
)

func newWorkoutRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := newTestDB(t, &models.WorkoutEntry{})
	h := NewWorkoutHandlers(db)

	r := gin.New()
	api := r.Group("/api")
	api.GET("/entries", h.ListWorkouts)
	api.GET("/entries/:id", h.GetWorkout)
	api.POST("/entries", h.CreateWorkout)
	api.PUT("/entries/:id", h.UpdateWorkout)
	api.DELETE("/entries/:id", h.DeleteWorkout)
	api.GET("/stats", h.Stats)
	api.GET("/health", h.Health)
	return r, db
}

func TestCreateWorkoutMissingRequired(t *testing.T) {
	r, db := newWorkoutRouter(t)

	w := doJSON(t, r, "POST", "/api/entries", `{"session_name": "Push Day"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}

	var count int64
	if err := db.Model(&models.WorkoutEntry{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Fatalf("rejected create must not insert a row, found %d", count)
	}
}

func TestWorkoutSetsRoundTripOverHTTP(t *testing.T) {
	r, _ := newWorkoutRouter(t)

	w := doJSON(t, r, "POST", "/api/entries",
		`{"type": "lift", "date": "2025-03-01", "lift_name": "Squat", "sets": [{"reps": 8, "weight": 135}], "unit": "lbs", "rpe": 8}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, "GET", "/api/entries/1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var got struct {
		Type string              `json:"type"`
		Sets []models.WorkoutSet `json:"sets"`
		RPE  *int                `json:"rpe"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode entry: %v", err)
	}
	if got.Type != "lift" {
		t.Fatalf("unexpected type %q", got.Type)
	}
	if len(got.Sets) != 1 || got.Sets[0].Reps != 8 || got.Sets[0].Weight != 135 {
		t.Fatalf("sets round trip mismatch: %+v", got.Sets)
	}
	if got.RPE == nil || *got.RPE != 8 {
		t.Fatalf("unexpected rpe: %v", got.RPE)
	}
}

func TestWorkoutUpdateResetsOmittedFields(t *testing.T) {
	r, _ := newWorkoutRouter(t)

	w := doJSON(t, r, "POST", "/api/entries",
		`{"type": "cardio", "date": "2025-03-01", "modality": "Running", "duration": 30, "avg_hr": 145}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, "PUT", "/api/entries/1", `{"type": "cardio", "date": "2025-03-02"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, "GET", "/api/entries/1", "")
	var got struct {
		Date     string  `json:"date"`
		Modality *string `json:"modality"`
		Duration *int    `json:"duration"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode entry: %v", err)
	}
	if got.Date != "2025-03-02" {
		t.Fatalf("expected updated date, got %q", got.Date)
	}
	if got.Modality != nil || got.Duration != nil {
		t.Fatalf("expected omitted fields reset to null, got %+v", got)
	}
}

func TestWorkoutUpdateNotFound(t *testing.T) {
	r, _ := newWorkoutRouter(t)

	w := doJSON(t, r, "PUT", "/api/entries/42", `{"type": "lift", "date": "2025-03-01"}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestWorkoutStatsEndpoint(t *testing.T) {
	r, db := newWorkoutRouter(t)

	database.SeedSampleWorkouts(db)
	doJSON(t, r, "POST", "/api/entries", `{"type": "lift", "date": "2025-03-01"}`)
	doJSON(t, r, "POST", "/api/entries", `{"type": "lift", "date": "2025-03-02"}`)
	doJSON(t, r, "POST", "/api/entries", `{"type": "cardio", "date": "2025-03-02"}`)

	w := doJSON(t, r, "GET", "/api/stats", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var stats models.WorkoutStats
	if err := json.Unmarshal(w.Body.Bytes(), &stats); err != nil {
		t.Fatalf("decode stats: %v", err)
	}
	if stats.TotalWorkouts != 6 {
		t.Fatalf("total_workouts = %d, want 6", stats.TotalWorkouts)
	}
	if stats.LiftWorkouts != 3 || stats.CardioWorkouts != 2 || stats.BJJWorkouts != 1 {
		t.Fatalf("unexpected per-type counts: %+v", stats)
	}
}

func TestWorkoutListOrdering(t *testing.T) {
	r, _ := newWorkoutRouter(t)

	doJSON(t, r, "POST", "/api/entries", `{"type": "lift", "date": "2025-03-01"}`)
	doJSON(t, r, "POST", "/api/entries", `{"type": "bjj", "date": "2025-03-03"}`)
	doJSON(t, r, "POST", "/api/entries", `{"type": "cardio", "date": "2025-03-02"}`)

	w := doJSON(t, r, "GET", "/api/entries", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var entries []struct {
		Date string `json:"date"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &entries); err != nil {
		t.Fatalf("decode entries: %v", err)
	}
	want := []string{"2025-03-03", "2025-03-02", "2025-03-01"}
	if len(entries) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(entries))
	}
	for i, date := range want {
		if entries[i].Date != date {
			t.Fatalf("position %d: got %q, want %q", i, entries[i].Date, date)
		}
	}
}

func TestWorkoutHealth(t *testing.T) {
	r, _ := newWorkoutRouter(t)

	w := doJSON(t, r, "GET", "/api/health", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var health struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &health); err != nil {
		t.Fatalf("decode health: %v", err)
	}
	if health.Status != "ok" {
		t.Fatalf("unexpected health payload: %s", w.Body.String())
	}
}
