package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string
	Port        string
	LogLevel    string
	LogFormat   string
	Database    DatabaseConfig
	JWT         JWTConfig
	Generator   GeneratorConfig
	HTTP        HTTPConfig
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret string
}

// GeneratorConfig holds the completion service configuration
type GeneratorConfig struct {
	APIKey       string
	Organization string
	Model        string
	BaseURL      string
}

// HTTPConfig holds settings only used by the local dev server
type HTTPConfig struct {
	RateLimitRPS      float64
	RateLimitBurst    int
	CORSAllowedOrigin string
}

// Load loads configuration from environment variables and an optional .env file
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("PORT", "8081")
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("DB_DRIVER", DriverMySQL)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "3306")
	v.SetDefault("DB_PATH", "./data/fitplan.db")
	v.SetDefault("DB_POOL_SIZE", 10)
	v.SetDefault("DB_CONN_MAX_LIFETIME", "1h")
	v.SetDefault("DB_AUTO_MIGRATE", false)
	v.SetDefault("OPENAI_MODEL", "gpt-4o")
	v.SetDefault("RATE_LIMIT_RPS", 10)
	v.SetDefault("RATE_LIMIT_BURST", 20)
	v.SetDefault("CORS_ALLOWED_ORIGIN", "http://localhost:3000")

	config := &Config{
		Environment: v.GetString("ENVIRONMENT"),
		Port:        v.GetString("PORT"),
		LogLevel:    v.GetString("LOG_LEVEL"),
		LogFormat:   v.GetString("LOG_FORMAT"),
		Database: DatabaseConfig{
			Driver:          strings.ToLower(v.GetString("DB_DRIVER")),
			Host:            v.GetString("DB_HOST"),
			Port:            v.GetString("DB_PORT"),
			User:            v.GetString("DB_USER"),
			Password:        v.GetString("DB_PASSWORD"),
			Name:            v.GetString("DB_NAME"),
			Path:            v.GetString("DB_PATH"),
			PoolSize:        v.GetInt("DB_POOL_SIZE"),
			ConnMaxLifetime: v.GetDuration("DB_CONN_MAX_LIFETIME"),
			AutoMigrate:     v.GetBool("DB_AUTO_MIGRATE"),
		},
		JWT: JWTConfig{
			Secret: v.GetString("JWT_SECRET"),
		},
		Generator: GeneratorConfig{
			APIKey:       v.GetString("OPENAI"),
			Organization: v.GetString("ORGANIZATION"),
			Model:        v.GetString("OPENAI_MODEL"),
			BaseURL:      v.GetString("OPENAI_BASE_URL"),
		},
		HTTP: HTTPConfig{
			RateLimitRPS:      v.GetFloat64("RATE_LIMIT_RPS"),
			RateLimitBurst:    v.GetInt("RATE_LIMIT_BURST"),
			CORSAllowedOrigin: v.GetString("CORS_ALLOWED_ORIGIN"),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks the settings every entry point depends on
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if err := c.Database.Validate(); err != nil {
		return fmt.Errorf("invalid database configuration: %w", err)
	}
	return nil
}

// IsProduction reports whether the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// NewLogger builds the process logger from the configured level and format
func (c *Config) NewLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if c.LogFormat == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return logger
}

// GetEnv gets an environment variable with a fallback value
func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
