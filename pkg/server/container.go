package server

import (
	"context"
	"fmt"

	"fitplan-api/internal/config"
	"fitplan-api/internal/database"
	"fitplan-api/internal/handlers"
	"fitplan-api/internal/metrics"
	"fitplan-api/internal/middleware"
	"fitplan-api/internal/repositories/sqlstore"
	"fitplan-api/internal/services"

	"github.com/openai/openai-go/option"
	"github.com/sirupsen/logrus"
)

// Container holds all application dependencies
type Container struct {
	Config             *config.Config
	Logger             *logrus.Logger
	Metrics            *metrics.Recorder
	AuthService        *middleware.AuthService
	UserProfileService services.UserProfileService
	UserHandler        *handlers.UserHandler

	// Internal dependencies
	connections  *database.ConnectionManager
	repositories *sqlstore.Manager
}

// Option customizes container construction
type Option func(*containerOptions)

type containerOptions struct {
	generatorOpts []option.RequestOption
	logger        *logrus.Logger
}

// WithGeneratorOptions appends request options to the content generation client
func WithGeneratorOptions(opts ...option.RequestOption) Option {
	return func(o *containerOptions) {
		o.generatorOpts = append(o.generatorOpts, opts...)
	}
}

// WithLogger overrides the logger built from configuration
func WithLogger(logger *logrus.Logger) Option {
	return func(o *containerOptions) {
		o.logger = logger
	}
}

// NewContainer creates a new dependency injection container
func NewContainer(ctx context.Context, cfg *config.Config, opts ...Option) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	options := &containerOptions{}
	for _, opt := range opts {
		opt(options)
	}

	logger := options.logger
	if logger == nil {
		logger = cfg.NewLogger()
	}

	connCfg := cfg.Database.ToConnectionConfig(logger)

	connections := database.NewConnectionManager(connCfg)

	if cfg.Database.AutoMigrate {
		if err := connections.GetMigrationManager().RunMigrations(ctx); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	if err := connections.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	repos, err := sqlstore.NewManager(connections.GetDB(), connections.Driver(), logger)
	if err != nil {
		connections.Close()
		return nil, fmt.Errorf("failed to create repositories: %w", err)
	}

	recorder := metrics.NewRecorder()

	serviceContainer, err := services.NewServiceContainer(repos, &services.ServiceConfig{
		Generator: &services.GeneratorConfig{
			APIKey:       cfg.Generator.APIKey,
			Organization: cfg.Generator.Organization,
			Model:        cfg.Generator.Model,
			BaseURL:      cfg.Generator.BaseURL,
		},
		GeneratorOptions: options.generatorOpts,
		Observer:         recorder,
	}, logger)
	if err != nil {
		connections.Close()
		return nil, fmt.Errorf("failed to create service container: %w", err)
	}
	userProfileService := serviceContainer.UserProfileService

	authService := middleware.NewAuthService(&middleware.AuthConfig{JWTSecret: cfg.JWT.Secret}, logger)

	logger.WithFields(logrus.Fields{
		"mode":   config.GetDeploymentMode(),
		"driver": connections.Driver(),
		"model":  cfg.Generator.Model,
	}).Info("Container initialized")

	return &Container{
		Config:             cfg,
		Logger:             logger,
		Metrics:            recorder,
		AuthService:        authService,
		UserProfileService: userProfileService,
		UserHandler:        handlers.NewUserHandler(authService, userProfileService, recorder, logger),
		connections:        connections,
		repositories:       repos,
	}, nil
}

// Health checks the database connection
func (c *Container) Health(ctx context.Context) error {
	return c.repositories.Health(ctx)
}

// Close cleans up all resources
func (c *Container) Close() error {
	if c.connections != nil {
		if err := c.connections.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}

	return nil
}
