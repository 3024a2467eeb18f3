package database

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func testConnectionConfig(t *testing.T) *ConnectionConfig {
	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)

	return &ConnectionConfig{
		Driver:       DriverSQLite,
		DatabasePath: filepath.Join(t.TempDir(), "connection.db"),
		PoolSize:     2,
		Logger:       logger,
	}
}

func TestConnectionConfig_DSN(t *testing.T) {
	sqliteDSN, err := testConnectionConfig(t).DSN()
	if err != nil {
		t.Fatalf("Failed to build sqlite DSN: %v", err)
	}
	for _, param := range []string{"_foreign_keys=on", "_txlock=immediate", "_busy_timeout=5000"} {
		if !strings.Contains(sqliteDSN, param) {
			t.Errorf("Expected sqlite DSN to contain %s, got %s", param, sqliteDSN)
		}
	}

	mysqlConfig := &ConnectionConfig{Driver: DriverMySQL, Host: "db", Port: "3306", User: "app", Password: "secret", Name: "fitplan"}
	mysqlDSN, err := mysqlConfig.DSN()
	if err != nil {
		t.Fatalf("Failed to build mysql DSN: %v", err)
	}
	if !strings.HasPrefix(mysqlDSN, "app:secret@tcp(db:3306)/fitplan") {
		t.Errorf("Unexpected mysql DSN: %s", mysqlDSN)
	}

	if _, err := (&ConnectionConfig{Driver: "oracle"}).DSN(); err == nil {
		t.Error("Expected unsupported driver to fail")
	}
}

func TestConnectionManager_Lifecycle(t *testing.T) {
	ctx := context.Background()
	cm := NewConnectionManager(testConnectionConfig(t))

	if err := cm.Ping(ctx); err == nil {
		t.Error("Expected ping before connect to fail")
	}

	if err := cm.GetMigrationManager().RunMigrations(ctx); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	if err := cm.Connect(ctx); err != nil {
		t.Fatalf("Failed to connect: %v", err)
	}
	if err := cm.Connect(ctx); err == nil {
		t.Error("Expected second connect to fail")
	}
	if err := cm.Ping(ctx); err != nil {
		t.Errorf("Failed to ping: %v", err)
	}

	var tables int
	err := cm.GetDB().QueryRowContext(ctx,
		"SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name IN ('user', 'user_profile', 'user_routines', 'user_recipes')").Scan(&tables)
	if err != nil {
		t.Fatalf("Failed to inspect schema: %v", err)
	}
	if tables != 4 {
		t.Errorf("Expected 4 tables, got %d", tables)
	}

	status, err := cm.GetMigrationManager().GetMigrationStatus(ctx)
	if err != nil {
		t.Fatalf("Failed to get migration status: %v", err)
	}
	if status.Version != 1 || status.Dirty {
		t.Errorf("Expected clean version 1, got %+v", status)
	}

	if err := cm.Close(); err != nil {
		t.Errorf("Failed to close: %v", err)
	}
	if cm.GetDB() != nil {
		t.Error("Expected nil handle after close")
	}
}
