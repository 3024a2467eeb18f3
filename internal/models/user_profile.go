package models

import (
	"encoding/json"
)

// User is the identity row; only Username and ProfilingForm are written here
type User struct {
	ID            int64  `json:"id" db:"id"`
	Username      string `json:"username" db:"username"`
	ProfilingForm bool   `json:"profiling_form" db:"profiling_form"`
}

// UserProfile holds the physical data of a user, one row per user
type UserProfile struct {
	ID           int64   `json:"id" db:"id"`
	UserID       int64   `json:"iduser" db:"iduser"`
	Age          int     `json:"age" db:"age"`
	Weight       float64 `json:"weight" db:"weight"`
	Height       float64 `json:"height" db:"height"`
	Objective    string  `json:"objective" db:"objective"`
	TrainingDays int     `json:"training_days" db:"training_days"`
}

// UserRoutines holds the last generated exercise routine of a user
type UserRoutines struct {
	ID       int64 `json:"id" db:"id"`
	UserID   int64 `json:"iduser" db:"iduser"`
	Routines Blob  `json:"routines" db:"routines"`
}

// UserRecipes holds the last generated meal plan of a user
type UserRecipes struct {
	ID      int64 `json:"id" db:"id"`
	UserID  int64 `json:"iduser" db:"iduser"`
	Recipes Blob  `json:"recipes" db:"recipes"`
}

// Blob is structured text owned by the generation service and stored verbatim.
// It is emitted inline when it holds valid JSON, as a JSON string otherwise.
type Blob string

// MarshalJSON implements json.Marshaler
func (b Blob) MarshalJSON() ([]byte, error) {
	if json.Valid([]byte(b)) {
		return []byte(b), nil
	}
	return json.Marshal(string(b))
}

// UnmarshalJSON implements json.Unmarshaler
func (b *Blob) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*b = Blob(s)
		return nil
	}
	*b = Blob(data)
	return nil
}

// ProfileInput is the request body shared by every POST route.
// The required tag rejects zero values, so 0 and false count as missing.
type ProfileInput struct {
	Username      string  `json:"username" validate:"required"`
	Age           int     `json:"age" validate:"required"`
	Weight        float64 `json:"weight" validate:"required"`
	Height        float64 `json:"height" validate:"required"`
	Objective     string  `json:"objective" validate:"required"`
	TrainingDays  int     `json:"training_days" validate:"required"`
	ProfilingForm bool    `json:"profiling_form" validate:"required"`
}

// Validate checks that every required field is present and non-zero
func (p *ProfileInput) Validate() error {
	return ValidateStruct(p)
}

// ToProfile maps the input onto a profile row for the given user
func (p *ProfileInput) ToProfile(userID int64) *UserProfile {
	return &UserProfile{
		UserID:       userID,
		Age:          p.Age,
		Weight:       p.Weight,
		Height:       p.Height,
		Objective:    p.Objective,
		TrainingDays: p.TrainingDays,
	}
}
