package main

import (
	"context"
	"encoding/base64"
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"testing"

	"fitplan-api/internal/config"
	"fitplan-api/pkg/server"

	"github.com/aws/aws-lambda-go/events"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingSource struct{}

func (failingSource) GetContainer(context.Context) (*server.Container, error) {
	return nil, errors.New("database unreachable")
}

func newTestApp(t *testing.T) *app {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	cfg := &config.Config{
		Environment: "test",
		Database: config.DatabaseConfig{
			Driver:      config.DriverSQLite,
			Path:        filepath.Join(t.TempDir(), "lambda.db"),
			PoolSize:    1,
			AutoMigrate: true,
		},
		JWT: config.JWTConfig{Secret: "lambda-secret"},
	}

	cm := server.NewConnectionManager(cfg, server.WithLogger(logger))
	t.Cleanup(func() { cm.Cleanup() })
	return &app{containers: cm}
}

func TestHandle_ContainerFailure(t *testing.T) {
	a := &app{containers: failingSource{}}

	resp, err := a.handle(context.Background(), events.APIGatewayV2HTTPRequest{RouteKey: "GET /user/userProfile/{id}"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, `"Internal Server Error"`, resp.Body)
}

func TestHandle_Unauthenticated(t *testing.T) {
	a := newTestApp(t)

	resp, err := a.handle(context.Background(), events.APIGatewayV2HTTPRequest{
		RouteKey:       "GET /user/userProfile/{id}",
		PathParameters: map[string]string{"id": "1"},
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Headers["Content-Type"])
	assert.Equal(t, `"User not authenticated"`, resp.Body)
}

func TestHandle_BadBase64Body(t *testing.T) {
	a := newTestApp(t)

	resp, err := a.handle(context.Background(), events.APIGatewayV2HTTPRequest{
		RouteKey:        "POST /user/userProfile/{id}",
		Body:            "%%%not-base64",
		IsBase64Encoded: true,
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, `"Invalid request body"`, resp.Body)
}

func TestHandle_AuthenticatedMissingProfile(t *testing.T) {
	a := newTestApp(t)

	container, err := a.containers.GetContainer(context.Background())
	require.NoError(t, err)
	token, err := container.AuthService.GenerateToken(9)
	require.NoError(t, err)

	resp, err := a.handle(context.Background(), events.APIGatewayV2HTTPRequest{
		RouteKey:        "POST /user/userProfile/{id}",
		Cookies:         []string{"token=" + token},
		PathParameters:  map[string]string{"id": "9"},
		Body:            base64.StdEncoding.EncodeToString([]byte(`{"age":30}`)),
		IsBase64Encoded: true,
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, `"Missing required fields"`, resp.Body)

	resp, err = a.handle(context.Background(), events.APIGatewayV2HTTPRequest{
		RouteKey:       "GET /user/userProfile/{id}",
		Cookies:        []string{"token=" + token},
		PathParameters: map[string]string{"id": "9"},
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, `"User not found"`, resp.Body)
}
