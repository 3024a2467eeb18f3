package database

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"net/url"
	"time"

	"github.com/go-sql-driver/mysql"
	_ "github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"
)

// Supported database/sql driver names
const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite3"
)

// ConnectionConfig holds database connection configuration
type ConnectionConfig struct {
	Driver          string
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	DatabasePath    string
	PoolSize        int
	ConnMaxLifetime time.Duration
	// MultiStatements is only enabled for the migration connection.
	MultiStatements bool
	Logger          *logrus.Logger
}

// DSN builds the driver-specific data source name
func (c *ConnectionConfig) DSN() (string, error) {
	switch c.Driver {
	case DriverMySQL:
		cfg := mysql.NewConfig()
		cfg.User = c.User
		cfg.Passwd = c.Password
		cfg.Net = "tcp"
		cfg.Addr = net.JoinHostPort(c.Host, c.Port)
		cfg.DBName = c.Name
		cfg.ParseTime = true
		cfg.MultiStatements = c.MultiStatements
		return cfg.FormatDSN(), nil
	case DriverSQLite:
		params := url.Values{}
		params.Set("_foreign_keys", "on")
		params.Set("_busy_timeout", "5000")
		// Writers take the lock at BEGIN so overlapping upserts queue instead of failing.
		params.Set("_txlock", "immediate")
		return "file:" + c.DatabasePath + "?" + params.Encode(), nil
	default:
		return "", fmt.Errorf("unsupported database driver: %q", c.Driver)
	}
}

// Open opens and verifies a pooled handle without any lifecycle bookkeeping
func Open(ctx context.Context, config *ConnectionConfig) (*sql.DB, error) {
	dsn, err := config.DSN()
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(config.Driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", config.Driver, err)
	}

	poolSize := config.PoolSize
	if poolSize < 1 {
		poolSize = 1
	}
	db.SetMaxOpenConns(poolSize)
	db.SetMaxIdleConns(poolSize)
	if config.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(config.ConnMaxLifetime)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	return db, nil
}

// ConnectionManager owns the process-wide connection pool
type ConnectionManager struct {
	config *ConnectionConfig
	db     *sql.DB
}

// NewConnectionManager creates a new connection manager
func NewConnectionManager(config *ConnectionConfig) *ConnectionManager {
	if config.Logger == nil {
		config.Logger = logrus.New()
	}
	return &ConnectionManager{
		config: config,
	}
}

// Connect establishes the pool
func (cm *ConnectionManager) Connect(ctx context.Context) error {
	if cm.db != nil {
		return fmt.Errorf("database connection already established")
	}

	db, err := Open(ctx, cm.config)
	if err != nil {
		return err
	}

	cm.db = db
	cm.config.Logger.WithFields(logrus.Fields{
		"driver":    cm.config.Driver,
		"pool_size": cm.config.PoolSize,
	}).Info("Database connection established")
	return nil
}

// GetDB returns the database connection
func (cm *ConnectionManager) GetDB() *sql.DB {
	return cm.db
}

// Driver returns the configured driver name
func (cm *ConnectionManager) Driver() string {
	return cm.config.Driver
}

// Close closes the database connection
func (cm *ConnectionManager) Close() error {
	if cm.db == nil {
		return nil
	}

	err := cm.db.Close()
	cm.db = nil

	if err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}

	cm.config.Logger.Info("Database connection closed")
	return nil
}

// Ping tests the database connection
func (cm *ConnectionManager) Ping(ctx context.Context) error {
	if cm.db == nil {
		return fmt.Errorf("database connection not established")
	}

	if err := cm.db.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}

	return nil
}

// GetMigrationManager returns a migration manager for this connection's database
func (cm *ConnectionManager) GetMigrationManager() *MigrationManager {
	return NewMigrationManager(cm.config, cm.config.Logger)
}
