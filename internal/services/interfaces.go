package services

import (
	"context"
	"time"

	"fitplan-api/internal/models"
)

// ContentGenerator defines the interface for generating personalised plans
type ContentGenerator interface {
	// GenerateRoutine returns a JSON routine for the given physical data and weekly training days
	GenerateRoutine(ctx context.Context, age int, weight, height float64, objective string, trainingDays int) (string, error)

	// GenerateRecipes returns a JSON meal plan for the given physical data
	GenerateRecipes(ctx context.Context, age int, weight, height float64, objective string) (string, error)
}

// UserProfileService defines the interface for the per-user profile operations
type UserProfileService interface {
	// Read operations
	GetProfile(ctx context.Context, userID int64) (*models.UserProfile, error)
	GetRoutines(ctx context.Context, userID int64) (*models.UserRoutines, error)
	GetRecipes(ctx context.Context, userID int64) (*models.UserRecipes, error)

	// Write operations
	UpdateProfile(ctx context.Context, userID int64, input *models.ProfileInput) (*models.UserProfile, error)
	CreateRoutines(ctx context.Context, userID int64, input *models.ProfileInput) error
	CreateRecipes(ctx context.Context, userID int64, input *models.ProfileInput) error
}

// GenerationObserver receives the outcome of every generation call
type GenerationObserver interface {
	ObserveGeneration(kind string, duration time.Duration, err error)
}
