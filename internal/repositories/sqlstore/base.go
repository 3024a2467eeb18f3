package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
)

// querier is satisfied by both *sql.DB and *sql.Tx
type querier interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// baseStore provides the shared handle, dialect and query logging for SQL stores
type baseStore struct {
	db      *sql.DB
	dialect Dialect
	logger  *logrus.Logger
}

func newBaseStore(db *sql.DB, dialect Dialect, logger *logrus.Logger) baseStore {
	if logger == nil {
		logger = logrus.New()
	}
	return baseStore{
		db:      db,
		dialect: dialect,
		logger:  logger,
	}
}

// exec runs a statement and logs it with its execution time
func (s *baseStore) exec(ctx context.Context, q querier, operation, table, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	result, err := q.ExecContext(ctx, query, args...)
	s.logQuery(operation, table, query, args, time.Since(start), err)
	return result, err
}

// queryRow runs a single-row query, scans it into dest and logs it.
// sql.ErrNoRows is returned but not logged as a failure.
func (s *baseStore) queryRow(ctx context.Context, q querier, operation, table, query string, args []interface{}, dest ...interface{}) error {
	start := time.Now()
	err := q.QueryRowContext(ctx, query, args...).Scan(dest...)

	logErr := err
	if errors.Is(err, sql.ErrNoRows) {
		logErr = nil
	}
	s.logQuery(operation, table, query, args, time.Since(start), logErr)
	return err
}

// logQuery logs a query with its execution time
func (s *baseStore) logQuery(operation, table, query string, args []interface{}, duration time.Duration, err error) {
	fields := logrus.Fields{
		"operation": operation,
		"table":     table,
		"dialect":   s.dialect.Name(),
		"query":     query,
		"args":      args,
		"duration":  duration,
	}

	if err != nil {
		fields["error"] = err.Error()
		s.logger.WithFields(fields).Error("Query failed")
	} else {
		s.logger.WithFields(fields).Debug("Query executed")
	}
}
