package repositories

import (
	"errors"
	"fmt"
)

// Common repository errors
var (
	// ErrNotFound is returned when no row exists for the requested user
	ErrNotFound = errors.New("entity not found")

	// ErrDatabase is returned when a statement, transaction or connection fails
	ErrDatabase = errors.New("database error")

	// ErrTransaction is returned when a transaction cannot be started or committed
	ErrTransaction = errors.New("transaction error")
)

// RepositoryError represents a repository-specific error with additional context.
// Cause holds the driver error for logging; it is never matched by errors.Is.
type RepositoryError struct {
	Op     string // Operation that failed
	Entity string // Entity type
	ID     string // User ID (if applicable)
	Err    error  // Category error
	Cause  error  // Driver error
}

// Error implements the error interface
func (e *RepositoryError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s %s operation failed for user %s: %v", e.Entity, e.Op, e.ID, e.Err)
	}

	return fmt.Sprintf("%s %s operation failed: %v", e.Entity, e.Op, e.Err)
}

// Unwrap returns the category error
func (e *RepositoryError) Unwrap() error {
	return e.Err
}

// NewRepositoryError creates a new repository error
func NewRepositoryError(op, entity, id string, err error) *RepositoryError {
	return &RepositoryError{
		Op:     op,
		Entity: entity,
		ID:     id,
		Err:    err,
	}
}

// DatabaseError wraps a driver failure under ErrDatabase
func DatabaseError(op, entity, id string, cause error) *RepositoryError {
	return &RepositoryError{
		Op:     op,
		Entity: entity,
		ID:     id,
		Err:    ErrDatabase,
		Cause:  cause,
	}
}

// NotFoundError creates a "not found" repository error
func NotFoundError(entity, id string) *RepositoryError {
	return &RepositoryError{
		Op:     "get",
		Entity: entity,
		ID:     id,
		Err:    ErrNotFound,
	}
}

// TransactionError creates a "transaction" repository error
func TransactionError(op string, cause error) *RepositoryError {
	return &RepositoryError{
		Op:     op,
		Entity: "transaction",
		Err:    ErrTransaction,
		Cause:  cause,
	}
}

// IsNotFound checks if an error is a "not found" error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDatabase checks if an error is a storage failure of any kind
func IsDatabase(err error) bool {
	return errors.Is(err, ErrDatabase) || errors.Is(err, ErrTransaction)
}
