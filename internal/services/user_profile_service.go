package services

import (
	"context"
	"fmt"

	"fitplan-api/internal/models"
	"fitplan-api/internal/repositories"

	"github.com/sirupsen/logrus"
)

// userProfileService implements UserProfileService
type userProfileService struct {
	repo      repositories.UserDataRepository
	generator ContentGenerator
	logger    *logrus.Logger
}

// NewUserProfileService creates a new user profile service
func NewUserProfileService(repo repositories.UserDataRepository, generator ContentGenerator, logger *logrus.Logger) UserProfileService {
	if logger == nil {
		logger = logrus.New()
	}
	return &userProfileService{
		repo:      repo,
		generator: generator,
		logger:    logger,
	}
}

// GetProfile retrieves the profile of a user
func (s *userProfileService) GetProfile(ctx context.Context, userID int64) (*models.UserProfile, error) {
	return s.repo.GetProfile(ctx, userID)
}

// GetRoutines retrieves the stored routines of a user
func (s *userProfileService) GetRoutines(ctx context.Context, userID int64) (*models.UserRoutines, error) {
	return s.repo.GetRoutines(ctx, userID)
}

// GetRecipes retrieves the stored recipes of a user
func (s *userProfileService) GetRecipes(ctx context.Context, userID int64) (*models.UserRecipes, error) {
	return s.repo.GetRecipes(ctx, userID)
}

// UpdateProfile writes the profile and identity fields and returns the stored profile
func (s *userProfileService) UpdateProfile(ctx context.Context, userID int64, input *models.ProfileInput) (*models.UserProfile, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	profile, err := s.repo.UpsertProfile(ctx, userID, input)
	if err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	s.logger.WithField("user_id", userID).Info("Profile updated")
	return profile, nil
}

// CreateRoutines generates a routine from the input and stores it
func (s *userProfileService) CreateRoutines(ctx context.Context, userID int64, input *models.ProfileInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	routines, err := s.generator.GenerateRoutine(ctx, input.Age, input.Weight, input.Height, input.Objective, input.TrainingDays)
	if err != nil {
		return err
	}

	if err := s.repo.UpsertRoutines(ctx, userID, models.Blob(routines)); err != nil {
		return fmt.Errorf("failed to save routines: %w", err)
	}

	s.logger.WithField("user_id", userID).Info("Routines created")
	return nil
}

// CreateRecipes generates a meal plan from the input and stores it
func (s *userProfileService) CreateRecipes(ctx context.Context, userID int64, input *models.ProfileInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	recipes, err := s.generator.GenerateRecipes(ctx, input.Age, input.Weight, input.Height, input.Objective)
	if err != nil {
		return err
	}

	if err := s.repo.UpsertRecipes(ctx, userID, models.Blob(recipes)); err != nil {
		return fmt.Errorf("failed to save recipes: %w", err)
	}

	s.logger.WithField("user_id", userID).Info("Recipes created")
	return nil
}
