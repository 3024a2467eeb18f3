package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"fitplan-api/internal/config"
	"fitplan-api/internal/database"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := logrus.New()

	if err := newCommand(logger).Run(context.Background(), os.Args); err != nil {
		logger.WithError(err).Fatal("Migration tool failed")
	}
}

func newCommand(logger *logrus.Logger) *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "Apply or roll back the user data schema",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "driver",
				Value:   config.DriverMySQL,
				Usage:   "database driver: mysql or sqlite3",
				Sources: cli.EnvVars("DB_DRIVER"),
			},
			&cli.StringFlag{
				Name:    "host",
				Value:   "localhost",
				Sources: cli.EnvVars("DB_HOST"),
			},
			&cli.StringFlag{
				Name:    "port",
				Value:   "3306",
				Sources: cli.EnvVars("DB_PORT"),
			},
			&cli.StringFlag{
				Name:    "user",
				Sources: cli.EnvVars("DB_USER"),
			},
			&cli.StringFlag{
				Name:    "password",
				Sources: cli.EnvVars("DB_PASSWORD"),
			},
			&cli.StringFlag{
				Name:    "name",
				Usage:   "MySQL schema name",
				Sources: cli.EnvVars("DB_NAME"),
			},
			&cli.StringFlag{
				Name:    "db",
				Value:   "./data/fitplan.db",
				Usage:   "SQLite database file path",
				Sources: cli.EnvVars("DB_PATH"),
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "enable debug logging",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			if cmd.Bool("verbose") {
				logger.SetLevel(logrus.DebugLevel)
			}
			return ctx, nil
		},
		Commands: []*cli.Command{
			{
				Name:  "up",
				Usage: "run all pending migrations",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					mm, err := migrationManager(cmd, logger)
					if err != nil {
						return err
					}
					return mm.RunMigrations(ctx)
				},
			},
			{
				Name:  "down",
				Usage: "roll back the last migration",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					mm, err := migrationManager(cmd, logger)
					if err != nil {
						return err
					}
					return mm.RollbackMigration(ctx)
				},
			},
			{
				Name:  "status",
				Usage: "print the current schema version",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					mm, err := migrationManager(cmd, logger)
					if err != nil {
						return err
					}

					status, err := mm.GetMigrationStatus(ctx)
					if err != nil {
						return err
					}

					w := cmd.Root().Writer
					fmt.Fprintf(w, "Migration Status:\n")
					fmt.Fprintf(w, "  Version: %d\n", status.Version)
					fmt.Fprintf(w, "  Applied: %t\n", status.Applied)
					fmt.Fprintf(w, "  Dirty: %t\n", status.Dirty)
					fmt.Fprintf(w, "  Timestamp: %s\n", status.Timestamp.Format(time.DateTime))
					return nil
				},
			},
		},
	}
}

func migrationManager(cmd *cli.Command, logger *logrus.Logger) (*database.MigrationManager, error) {
	dbConfig := &config.DatabaseConfig{
		Driver:   cmd.String("driver"),
		Host:     cmd.String("host"),
		Port:     cmd.String("port"),
		User:     cmd.String("user"),
		Password: cmd.String("password"),
		Name:     cmd.String("name"),
		Path:     cmd.String("db"),
		PoolSize: 1,
	}
	if err := dbConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid database flags: %w", err)
	}

	logger.WithFields(logrus.Fields{
		"driver": dbConfig.Driver,
		"path":   dbConfig.Path,
		"name":   dbConfig.Name,
	}).Info("Starting migration tool")

	return database.NewMigrationManager(dbConfig.ToConnectionConfig(logger), logger), nil
}
