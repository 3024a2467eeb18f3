package repositories

import (
	"context"
	"database/sql"
)

// Transaction represents a database transaction that can be used across multiple statements
type Transaction interface {
	// Commit commits the transaction
	Commit() error

	// Rollback rolls back the transaction
	Rollback() error

	// Context returns the transaction context
	Context() context.Context

	// Tx returns the underlying handle for statement execution
	Tx() *sql.Tx
}

// TransactionManager manages database transactions
type TransactionManager interface {
	// BeginTransaction starts a new transaction
	BeginTransaction(ctx context.Context) (Transaction, error)

	// WithTransaction executes fn within a transaction, committing on nil and
	// rolling back on error or panic
	WithTransaction(ctx context.Context, fn func(tx Transaction) error) error
}
