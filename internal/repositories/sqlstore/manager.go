package sqlstore

import (
	"context"
	"database/sql"
	"fmt"

	"fitplan-api/internal/repositories"

	"github.com/sirupsen/logrus"
)

// Manager implements repositories.RepositoryManager over one shared pool
type Manager struct {
	*SQLTransactionManager
	db    *sql.DB
	users *UserDataStore
}

// NewManager creates a repository manager for the given driver
func NewManager(db *sql.DB, driver string, logger *logrus.Logger) (*Manager, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection cannot be nil")
	}

	dialect, err := DialectFor(driver)
	if err != nil {
		return nil, err
	}

	if logger == nil {
		logger = logrus.New()
	}

	return &Manager{
		SQLTransactionManager: NewSQLTransactionManager(db, logger),
		db:                    db,
		users:                 NewUserDataStore(db, dialect, logger),
	}, nil
}

// Users returns the user data repository
func (m *Manager) Users() repositories.UserDataRepository {
	return m.users
}

// Health checks the health of the repository connections
func (m *Manager) Health(ctx context.Context) error {
	if err := m.db.PingContext(ctx); err != nil {
		return repositories.DatabaseError("ping", "database", "", err)
	}
	return nil
}

var _ repositories.RepositoryManager = (*Manager)(nil)
