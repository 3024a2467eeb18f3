package repositories

import (
	"context"

	"fitplan-api/internal/models"
)

// UserDataRepository defines the per-user reads and upserts behind the profile routes.
// Every method is keyed by the authenticated user ID.
type UserDataRepository interface {
	// GetProfile retrieves the profile row of a user
	GetProfile(ctx context.Context, userID int64) (*models.UserProfile, error)

	// GetRoutines retrieves the stored routine blob of a user
	GetRoutines(ctx context.Context, userID int64) (*models.UserRoutines, error)

	// GetRecipes retrieves the stored recipe blob of a user
	GetRecipes(ctx context.Context, userID int64) (*models.UserRecipes, error)

	// UpsertProfile writes the profile and the user's identity fields in one
	// transaction and returns the stored profile
	UpsertProfile(ctx context.Context, userID int64, input *models.ProfileInput) (*models.UserProfile, error)

	// UpsertRoutines inserts or replaces the routine blob of a user
	UpsertRoutines(ctx context.Context, userID int64, routines models.Blob) error

	// UpsertRecipes inserts or replaces the recipe blob of a user
	UpsertRecipes(ctx context.Context, userID int64, recipes models.Blob) error
}

// RepositoryManager provides access to the repositories and transaction management
type RepositoryManager interface {
	TransactionManager

	// Users returns the user data repository
	Users() UserDataRepository

	// Health checks the health of the repository connections
	Health(ctx context.Context) error
}
