package sqlstore

import (
	"fmt"
	"strings"

	"fitplan-api/internal/database"
)

// Dialect renders the statements whose syntax differs between drivers
type Dialect interface {
	// Name returns the database/sql driver name
	Name() string

	// Upsert renders an insert that overwrites updateCols when conflictCol already exists
	Upsert(table string, cols []string, conflictCol string, updateCols []string) string
}

// DialectFor returns the dialect for a driver name
func DialectFor(driver string) (Dialect, error) {
	switch driver {
	case database.DriverMySQL:
		return mysqlDialect{}, nil
	case database.DriverSQLite:
		return sqliteDialect{}, nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %q", driver)
	}
}

type mysqlDialect struct{}

func (mysqlDialect) Name() string { return database.DriverMySQL }

func (mysqlDialect) Upsert(table string, cols []string, _ string, updateCols []string) string {
	sets := make([]string, len(updateCols))
	for i, col := range updateCols {
		sets[i] = fmt.Sprintf("%s = VALUES(%s)", col, col)
	}
	return insertInto(table, cols) + " ON DUPLICATE KEY UPDATE " + strings.Join(sets, ", ")
}

type sqliteDialect struct{}

func (sqliteDialect) Name() string { return database.DriverSQLite }

func (sqliteDialect) Upsert(table string, cols []string, conflictCol string, updateCols []string) string {
	sets := make([]string, len(updateCols))
	for i, col := range updateCols {
		sets[i] = fmt.Sprintf("%s = excluded.%s", col, col)
	}
	return fmt.Sprintf("%s ON CONFLICT(%s) DO UPDATE SET %s",
		insertInto(table, cols), conflictCol, strings.Join(sets, ", "))
}

// insertInto renders the shared INSERT prefix with one placeholder per column
func insertInto(table string, cols []string) string {
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(cols)), ", ")
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", table, strings.Join(cols, ", "), placeholders)
}
