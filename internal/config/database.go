package config

import (
	"fmt"
	"time"

	"fitplan-api/internal/database"

	"github.com/sirupsen/logrus"
)

// Driver names accepted in DB_DRIVER
const (
	DriverMySQL  = database.DriverMySQL
	DriverSQLite = database.DriverSQLite
)

// DatabaseConfig holds database-specific configuration
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"`
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	Name            string        `mapstructure:"name"`
	Path            string        `mapstructure:"path"`
	PoolSize        int           `mapstructure:"pool_size"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	AutoMigrate     bool          `mapstructure:"auto_migrate"`
}

// Validate validates the database configuration
func (c *DatabaseConfig) Validate() error {
	switch c.Driver {
	case DriverMySQL:
		if c.Host == "" {
			return fmt.Errorf("database host cannot be empty")
		}
		if c.Name == "" {
			return fmt.Errorf("database name cannot be empty")
		}
	case DriverSQLite:
		if c.Path == "" {
			return fmt.Errorf("database path cannot be empty")
		}
	default:
		return fmt.Errorf("unsupported database driver: %q", c.Driver)
	}

	if c.PoolSize < 1 {
		return fmt.Errorf("pool size must be at least 1")
	}

	return nil
}

// ToConnectionConfig converts DatabaseConfig to database.ConnectionConfig
func (c *DatabaseConfig) ToConnectionConfig(logger *logrus.Logger) *database.ConnectionConfig {
	return &database.ConnectionConfig{
		Driver:          c.Driver,
		Host:            c.Host,
		Port:            c.Port,
		User:            c.User,
		Password:        c.Password,
		Name:            c.Name,
		DatabasePath:    c.Path,
		PoolSize:        c.PoolSize,
		ConnMaxLifetime: c.ConnMaxLifetime,
		Logger:          logger,
	}
}
