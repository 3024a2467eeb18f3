package models

import (
	"encoding/json"
	"testing"
)

func validInput() *ProfileInput {
	return &ProfileInput{
		Username:      "jdoe",
		Age:           30,
		Weight:        80,
		Height:        180,
		Objective:     "lose weight",
		TrainingDays:  4,
		ProfilingForm: true,
	}
}

// TestProfileInputValidation tests the required-field rules of the POST body
func TestProfileInputValidation(t *testing.T) {
	if err := validInput().Validate(); err != nil {
		t.Fatalf("Expected valid input, got %v", err)
	}

	tests := []struct {
		name   string
		mutate func(p *ProfileInput)
		field  string
	}{
		{"empty username", func(p *ProfileInput) { p.Username = "" }, "username"},
		{"zero age", func(p *ProfileInput) { p.Age = 0 }, "age"},
		{"zero weight", func(p *ProfileInput) { p.Weight = 0 }, "weight"},
		{"zero height", func(p *ProfileInput) { p.Height = 0 }, "height"},
		{"empty objective", func(p *ProfileInput) { p.Objective = "" }, "objective"},
		{"zero training days", func(p *ProfileInput) { p.TrainingDays = 0 }, "training_days"},
		{"profiling form false", func(p *ProfileInput) { p.ProfilingForm = false }, "profiling_form"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(input)

			err := input.Validate()
			if err == nil {
				t.Fatal("Expected validation error, got nil")
			}
			if !IsValidationError(err) {
				t.Fatalf("Expected *ValidationError, got %T", err)
			}

			ve := err.(*ValidationError)
			if len(ve.Fields) != 1 || ve.Fields[0] != tt.field {
				t.Errorf("Expected field %q to be reported, got %v", tt.field, ve.Fields)
			}
		})
	}
}

// TestProfileInputDecoding tests that omitted JSON keys fail validation
func TestProfileInputDecoding(t *testing.T) {
	body := `{"username":"jdoe","age":30,"weight":80,"height":180,"objective":"gain","profiling_form":true}`

	var input ProfileInput
	if err := json.Unmarshal([]byte(body), &input); err != nil {
		t.Fatalf("Failed to decode input: %v", err)
	}

	if err := input.Validate(); err == nil {
		t.Error("Expected missing training_days to fail validation")
	}
}

// TestToProfile tests mapping the input onto a profile row
func TestToProfile(t *testing.T) {
	profile := validInput().ToProfile(7)

	if profile.UserID != 7 {
		t.Errorf("Expected iduser 7, got %d", profile.UserID)
	}
	if profile.Age != 30 || profile.Weight != 80 || profile.Height != 180 {
		t.Errorf("Unexpected physical data: %+v", profile)
	}
	if profile.Objective != "lose weight" || profile.TrainingDays != 4 {
		t.Errorf("Unexpected plan data: %+v", profile)
	}
}

// TestBlobMarshalJSON tests that stored blobs are emitted inline when they hold JSON
func TestBlobMarshalJSON(t *testing.T) {
	routines := UserRoutines{ID: 1, UserID: 7, Routines: Blob(`{"routines":[]}`)}
	data, err := json.Marshal(routines)
	if err != nil {
		t.Fatalf("Failed to marshal routines: %v", err)
	}
	expected := `{"id":1,"iduser":7,"routines":{"routines":[]}}`
	if string(data) != expected {
		t.Errorf("Expected %s, got %s", expected, string(data))
	}

	recipes := UserRecipes{ID: 2, UserID: 7, Recipes: Blob("not json")}
	data, err = json.Marshal(recipes)
	if err != nil {
		t.Fatalf("Failed to marshal recipes: %v", err)
	}
	expected = `{"id":2,"iduser":7,"recipes":"not json"}`
	if string(data) != expected {
		t.Errorf("Expected %s, got %s", expected, string(data))
	}
}

// TestProfileJSONKeys tests the wire names of the profile record
func TestProfileJSONKeys(t *testing.T) {
	data, err := json.Marshal(UserProfile{ID: 1, UserID: 7, Age: 30, Weight: 80.5, Height: 180, Objective: "gain", TrainingDays: 3})
	if err != nil {
		t.Fatalf("Failed to marshal profile: %v", err)
	}
	expected := `{"id":1,"iduser":7,"age":30,"weight":80.5,"height":180,"objective":"gain","training_days":3}`
	if string(data) != expected {
		t.Errorf("Expected %s, got %s", expected, string(data))
	}
}
