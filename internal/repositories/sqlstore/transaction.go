package sqlstore

import (
	"context"
	"database/sql"

	"fitplan-api/internal/repositories"

	"github.com/sirupsen/logrus"
)

// SQLTransaction implements the Transaction interface over database/sql
type SQLTransaction struct {
	tx     *sql.Tx
	ctx    context.Context
	logger *logrus.Logger
}

// NewSQLTransaction creates a new transaction wrapper
func NewSQLTransaction(ctx context.Context, tx *sql.Tx, logger *logrus.Logger) repositories.Transaction {
	if logger == nil {
		logger = logrus.New()
	}
	return &SQLTransaction{
		tx:     tx,
		ctx:    ctx,
		logger: logger,
	}
}

// Commit commits the transaction
func (t *SQLTransaction) Commit() error {
	err := t.tx.Commit()
	if err != nil {
		t.logger.WithError(err).Error("Failed to commit transaction")
		return repositories.TransactionError("commit", err)
	}
	t.logger.Debug("Transaction committed successfully")
	return nil
}

// Rollback rolls back the transaction
func (t *SQLTransaction) Rollback() error {
	err := t.tx.Rollback()
	if err != nil && err != sql.ErrTxDone {
		t.logger.WithError(err).Error("Failed to rollback transaction")
		return repositories.TransactionError("rollback", err)
	}
	t.logger.Debug("Transaction rolled back successfully")
	return nil
}

// Context returns the transaction context
func (t *SQLTransaction) Context() context.Context {
	return t.ctx
}

// Tx returns the underlying handle
func (t *SQLTransaction) Tx() *sql.Tx {
	return t.tx
}

// SQLTransactionManager implements the TransactionManager interface over database/sql
type SQLTransactionManager struct {
	db     *sql.DB
	logger *logrus.Logger
}

// NewSQLTransactionManager creates a new transaction manager
func NewSQLTransactionManager(db *sql.DB, logger *logrus.Logger) *SQLTransactionManager {
	if logger == nil {
		logger = logrus.New()
	}
	return &SQLTransactionManager{
		db:     db,
		logger: logger,
	}
}

// BeginTransaction starts a new transaction on one pooled connection
func (tm *SQLTransactionManager) BeginTransaction(ctx context.Context) (repositories.Transaction, error) {
	tx, err := tm.db.BeginTx(ctx, nil)
	if err != nil {
		tm.logger.WithError(err).Error("Failed to begin transaction")
		return nil, repositories.TransactionError("begin", err)
	}

	tm.logger.Debug("Transaction started successfully")
	return NewSQLTransaction(ctx, tx, tm.logger), nil
}

// WithTransaction executes a function within a transaction
func (tm *SQLTransactionManager) WithTransaction(ctx context.Context, fn func(tx repositories.Transaction) error) error {
	tx, err := tm.BeginTransaction(ctx)
	if err != nil {
		return err
	}

	// Release the connection on every path, including panics
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(tx); err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			tm.logger.WithError(rollbackErr).Error("Failed to rollback transaction after error")
		}
		return err
	}

	return tx.Commit()
}
