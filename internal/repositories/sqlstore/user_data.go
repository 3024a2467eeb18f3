package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"strconv"

	"fitplan-api/internal/models"
	"fitplan-api/internal/repositories"

	"github.com/sirupsen/logrus"
)

const (
	tableUser     = "`user`"
	tableProfile  = "user_profile"
	tableRoutines = "user_routines"
	tableRecipes  = "user_recipes"
)

var (
	profileColumns = []string{"iduser", "age", "weight", "height", "objective", "training_days"}
	profileUpdates = []string{"age", "weight", "height", "objective", "training_days"}
)

// UserDataStore implements repositories.UserDataRepository for MySQL and SQLite
type UserDataStore struct {
	baseStore
	tm *SQLTransactionManager

	upsertProfileQuery  string
	upsertRoutinesQuery string
	upsertRecipesQuery  string
}

// NewUserDataStore creates a new user data store
func NewUserDataStore(db *sql.DB, dialect Dialect, logger *logrus.Logger) *UserDataStore {
	base := newBaseStore(db, dialect, logger)
	return &UserDataStore{
		baseStore: base,
		tm:        NewSQLTransactionManager(db, base.logger),

		upsertProfileQuery:  dialect.Upsert(tableProfile, profileColumns, "iduser", profileUpdates),
		upsertRoutinesQuery: dialect.Upsert(tableRoutines, []string{"iduser", "routines"}, "iduser", []string{"routines"}),
		upsertRecipesQuery:  dialect.Upsert(tableRecipes, []string{"iduser", "recipes"}, "iduser", []string{"recipes"}),
	}
}

// GetProfile retrieves the profile row of a user
func (s *UserDataStore) GetProfile(ctx context.Context, userID int64) (*models.UserProfile, error) {
	profile, err := s.selectProfile(ctx, s.db, userID)
	if err != nil {
		return nil, s.classify("get", tableProfile, userID, err)
	}
	return profile, nil
}

// GetRoutines retrieves the stored routine blob of a user
func (s *UserDataStore) GetRoutines(ctx context.Context, userID int64) (*models.UserRoutines, error) {
	query := `SELECT id, iduser, routines FROM user_routines WHERE iduser = ?`

	var routines models.UserRoutines
	var blob string
	err := s.queryRow(ctx, s.db, "get", tableRoutines, query, []interface{}{userID},
		&routines.ID, &routines.UserID, &blob)
	if err != nil {
		return nil, s.classify("get", tableRoutines, userID, err)
	}

	routines.Routines = models.Blob(blob)
	return &routines, nil
}

// GetRecipes retrieves the stored recipe blob of a user
func (s *UserDataStore) GetRecipes(ctx context.Context, userID int64) (*models.UserRecipes, error) {
	query := `SELECT id, iduser, recipes FROM user_recipes WHERE iduser = ?`

	var recipes models.UserRecipes
	var blob string
	err := s.queryRow(ctx, s.db, "get", tableRecipes, query, []interface{}{userID},
		&recipes.ID, &recipes.UserID, &blob)
	if err != nil {
		return nil, s.classify("get", tableRecipes, userID, err)
	}

	recipes.Recipes = models.Blob(blob)
	return &recipes, nil
}

// UpsertProfile writes the profile row and the user's identity fields atomically
// and returns the profile as stored
func (s *UserDataStore) UpsertProfile(ctx context.Context, userID int64, input *models.ProfileInput) (*models.UserProfile, error) {
	var stored *models.UserProfile

	err := s.tm.WithTransaction(ctx, func(tx repositories.Transaction) error {
		q := tx.Tx()

		_, err := s.exec(tx.Context(), q, "upsert", tableProfile, s.upsertProfileQuery,
			userID, input.Age, input.Weight, input.Height, input.Objective, input.TrainingDays)
		if err != nil {
			return s.classify("upsert", tableProfile, userID, err)
		}

		updateUser := "UPDATE " + tableUser + " SET username = ?, profiling_form = ? WHERE id = ?"
		_, err = s.exec(tx.Context(), q, "update", tableUser, updateUser,
			input.Username, input.ProfilingForm, userID)
		if err != nil {
			return s.classify("update", tableUser, userID, err)
		}

		stored, err = s.selectProfile(tx.Context(), q, userID)
		if err != nil {
			return s.classify("get", tableProfile, userID, err)
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, repositories.ErrDatabase) {
			// Begin and commit failures surface as transaction errors
			err = repositories.DatabaseError("upsert", tableProfile, strconv.FormatInt(userID, 10), err)
		}
		return nil, err
	}

	s.logger.WithField("user_id", userID).Debug("Profile upserted")
	return stored, nil
}

// UpsertRoutines inserts or replaces the routine blob of a user
func (s *UserDataStore) UpsertRoutines(ctx context.Context, userID int64, routines models.Blob) error {
	if _, err := s.exec(ctx, s.db, "upsert", tableRoutines, s.upsertRoutinesQuery, userID, string(routines)); err != nil {
		return s.classify("upsert", tableRoutines, userID, err)
	}
	return nil
}

// UpsertRecipes inserts or replaces the recipe blob of a user
func (s *UserDataStore) UpsertRecipes(ctx context.Context, userID int64, recipes models.Blob) error {
	if _, err := s.exec(ctx, s.db, "upsert", tableRecipes, s.upsertRecipesQuery, userID, string(recipes)); err != nil {
		return s.classify("upsert", tableRecipes, userID, err)
	}
	return nil
}

func (s *UserDataStore) selectProfile(ctx context.Context, q querier, userID int64) (*models.UserProfile, error) {
	query := `SELECT id, iduser, age, weight, height, objective, training_days
		FROM user_profile WHERE iduser = ?`

	var profile models.UserProfile
	err := s.queryRow(ctx, q, "get", tableProfile, query, []interface{}{userID},
		&profile.ID, &profile.UserID, &profile.Age, &profile.Weight,
		&profile.Height, &profile.Objective, &profile.TrainingDays)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// classify maps driver errors onto the repository sentinels
func (s *UserDataStore) classify(op, table string, userID int64, err error) error {
	id := strconv.FormatInt(userID, 10)

	var repoErr *repositories.RepositoryError
	if errors.As(err, &repoErr) {
		return err
	}
	if errors.Is(err, sql.ErrNoRows) {
		return repositories.NotFoundError(table, id)
	}

	s.logger.WithFields(logrus.Fields{
		"operation": op,
		"table":     table,
		"user_id":   userID,
	}).WithError(err).Error("Database operation failed")
	return repositories.DatabaseError(op, table, id, err)
}
