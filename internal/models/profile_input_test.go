package models

import (
	"encoding/json"
	"testing"
)

// TestProfileInputLenientDecoding tests that coercible values decode like the SQL engine stores them
func TestProfileInputLenientDecoding(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected ProfileInput
	}{
		{
			name:     "numeric strings",
			body:     `{"username":"jdoe","age":"30","weight":"80.5","height":" 180 ","objective":"gain","training_days":"4","profiling_form":true}`,
			expected: ProfileInput{Username: "jdoe", Age: 30, Weight: 80.5, Height: 180, Objective: "gain", TrainingDays: 4, ProfilingForm: true},
		},
		{
			name:     "fractional integer columns",
			body:     `{"username":"jdoe","age":30.5,"weight":80,"height":180,"objective":"gain","training_days":3.2,"profiling_form":true}`,
			expected: ProfileInput{Username: "jdoe", Age: 31, Weight: 80, Height: 180, Objective: "gain", TrainingDays: 3, ProfilingForm: true},
		},
		{
			name:     "truthy profiling_form",
			body:     `{"username":"jdoe","age":30,"weight":80,"height":180,"objective":"gain","training_days":4,"profiling_form":1}`,
			expected: ProfileInput{Username: "jdoe", Age: 30, Weight: 80, Height: 180, Objective: "gain", TrainingDays: 4, ProfilingForm: true},
		},
		{
			name:     "string profiling_form",
			body:     `{"username":"jdoe","age":30,"weight":80,"height":180,"objective":"gain","training_days":4,"profiling_form":"yes"}`,
			expected: ProfileInput{Username: "jdoe", Age: 30, Weight: 80, Height: 180, Objective: "gain", TrainingDays: 4, ProfilingForm: true},
		},
		{
			name:     "numeric username",
			body:     `{"username":42,"age":30,"weight":80,"height":180,"objective":"gain","training_days":4,"profiling_form":true}`,
			expected: ProfileInput{Username: "42", Age: 30, Weight: 80, Height: 180, Objective: "gain", TrainingDays: 4, ProfilingForm: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var input ProfileInput
			if err := json.Unmarshal([]byte(tt.body), &input); err != nil {
				t.Fatalf("Failed to decode input: %v", err)
			}
			if input != tt.expected {
				t.Errorf("Expected %+v, got %+v", tt.expected, input)
			}
			if err := input.Validate(); err != nil {
				t.Errorf("Expected coerced input to validate, got %v", err)
			}
		})
	}
}

// TestProfileInputFalsyValues tests that falsy values of any type still count as missing
func TestProfileInputFalsyValues(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"empty string age", `{"username":"jdoe","age":"","weight":80,"height":180,"objective":"gain","training_days":4,"profiling_form":true}`, "age"},
		{"null weight", `{"username":"jdoe","age":30,"weight":null,"height":180,"objective":"gain","training_days":4,"profiling_form":true}`, "weight"},
		{"zero profiling_form", `{"username":"jdoe","age":30,"weight":80,"height":180,"objective":"gain","training_days":4,"profiling_form":0}`, "profiling_form"},
		{"empty profiling_form", `{"username":"jdoe","age":30,"weight":80,"height":180,"objective":"gain","training_days":4,"profiling_form":""}`, "profiling_form"},
		{"false username", `{"username":false,"age":30,"weight":80,"height":180,"objective":"gain","training_days":4,"profiling_form":true}`, "username"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var input ProfileInput
			if err := json.Unmarshal([]byte(tt.body), &input); err != nil {
				t.Fatalf("Failed to decode input: %v", err)
			}

			ve, ok := input.Validate().(*ValidationError)
			if !ok {
				t.Fatalf("Expected a validation error for %s", tt.field)
			}
			found := false
			for _, f := range ve.Fields {
				if f == tt.field {
					found = true
				}
			}
			if !found {
				t.Errorf("Expected field %q to be reported, got %v", tt.field, ve.Fields)
			}
		})
	}
}

// TestProfileInputRejectsUncoercibleValues tests that values the store cannot coerce fail decoding
func TestProfileInputRejectsUncoercibleValues(t *testing.T) {
	bodies := []string{
		`{"age":"thirty"}`,
		`{"weight":{"kg":80}}`,
		`{"username":["jdoe"]}`,
		`{"training_days":"Infinity"}`,
		`[1,2,3]`,
	}

	for _, body := range bodies {
		var input ProfileInput
		if err := json.Unmarshal([]byte(body), &input); err == nil {
			t.Errorf("Expected %s to fail decoding", body)
		}
	}
}
