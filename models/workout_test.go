package models

import (
	"reflect"
	"testing"
)

func TestSetsRoundTrip(t *testing.T) {
	sets := []WorkoutSet{
		{Reps: 8, Weight: 135},
		{Reps: 8, Weight: 145},
		{Reps: 6, Weight: 155},
	}

	var e WorkoutEntry
	e.SetSets(sets)
	if e.Sets == nil {
		t.Fatalf("expected serialized sets, got nil")
	}

	got := e.GetSets()
	if !reflect.DeepEqual(got, sets) {
		t.Fatalf("GetSets() = %v, want %v", got, sets)
	}
}

func TestSetsEmptyAndNil(t *testing.T) {
	var e WorkoutEntry

	e.SetSets([]WorkoutSet{})
	if e.Sets == nil || *e.Sets != "[]" {
		t.Fatalf("expected empty array to serialize to \"[]\", got %v", e.Sets)
	}

	e.SetSets(nil)
	if e.Sets != nil {
		t.Fatalf("expected nil sets to clear the column, got %q", *e.Sets)
	}
	if got := e.GetSets(); got != nil {
		t.Fatalf("expected nil slice for missing sets, got %v", got)
	}
}

func TestMalformedSetsParseToEmpty(t *testing.T) {
	tests := []string{
		"not json",
		"{",
		`{"reps":8}`,
		`"just a string"`,
	}

	for _, raw := range tests {
		raw := raw
		e := WorkoutEntry{Sets: &raw}
		got := e.GetSets()
		if got == nil || len(got) != 0 {
			t.Fatalf("GetSets() for %q = %v, want empty slice", raw, got)
		}
	}
}

func TestReadParsesLiftSetsOnly(t *testing.T) {
	raw := `[{"reps":5,"weight":225}]`

	lift := WorkoutEntry{Type: "lift", Date: "2025-01-01", Sets: &raw}
	r := lift.Read()
	sets, ok := r.Sets.([]WorkoutSet)
	if !ok {
		t.Fatalf("expected parsed sets for lift entry, got %T", r.Sets)
	}
	if len(sets) != 1 || sets[0].Reps != 5 || sets[0].Weight != 225 {
		t.Fatalf("unexpected parsed sets: %v", sets)
	}

	cardio := WorkoutEntry{Type: "cardio", Date: "2025-01-01", Sets: &raw}
	if got := cardio.Read().Sets; got != raw {
		t.Fatalf("expected raw text passthrough for non-lift entry, got %v", got)
	}

	none := WorkoutEntry{Type: "lift", Date: "2025-01-01"}
	if got := none.Read().Sets; got != nil {
		t.Fatalf("expected nil sets for entry without sets, got %v", got)
	}
}

func TestWorkoutValidate(t *testing.T) {
	typ := "lift"
	date := "2025-01-01"
	empty := ""

	tests := []struct {
		name    string
		payload WorkoutEntryUpsert
		wantErr bool
	}{
		{"valid", WorkoutEntryUpsert{Type: &typ, Date: &date}, false},
		{"missing type", WorkoutEntryUpsert{Date: &date}, true},
		{"missing date", WorkoutEntryUpsert{Type: &typ}, true},
		{"empty type", WorkoutEntryUpsert{Type: &empty, Date: &date}, true},
		{"empty date", WorkoutEntryUpsert{Type: &typ, Date: &empty}, true},
	}

	for _, tt := range tests {
		err := tt.payload.Validate()
		if (err != nil) != tt.wantErr {
			t.Fatalf("%s: Validate() = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
	}
}

func TestWorkoutRowDefaultsFalsyToNull(t *testing.T) {
	typ := "cardio"
	date := "2025-01-01"
	p := WorkoutEntryUpsert{
		Type:     &typ,
		Date:     &date,
		Modality: "Running",
		Duration: 0,
		Distance: 0,
		Notes:    "",
	}

	e := p.Row()
	if e.Modality == nil || *e.Modality != "Running" {
		t.Fatalf("expected modality to survive, got %v", e.Modality)
	}
	if e.Duration != nil {
		t.Fatalf("expected zero duration to store NULL, got %v", *e.Duration)
	}
	if e.Distance != nil {
		t.Fatalf("expected zero distance to store NULL, got %v", *e.Distance)
	}
	if e.Notes != nil {
		t.Fatalf("expected empty notes to store NULL, got %v", *e.Notes)
	}
	if e.Sets != nil {
		t.Fatalf("expected missing sets to store NULL, got %v", *e.Sets)
	}
}
