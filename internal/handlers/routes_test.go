package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"fitplan-api/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(t *testing.T, svc *fakeService, health func(ctx context.Context) error) (*gin.Engine, string) {
	t.Helper()

	h, auth := newTestHandler(svc, nil)
	token, err := auth.GenerateToken(7)
	require.NoError(t, err)

	router := gin.New()
	SetupMiddleware(router, quietLogger(), "*", 1000, 1000)
	SetupRoutes(router, &RouterConfig{
		UserHandler:    h,
		MetricsHandler: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.Write([]byte("# metrics")) }),
		HealthCheck:    health,
	})

	return router, token
}

func TestGinPath(t *testing.T) {
	assert.Equal(t, "/user/userProfile/:id", ginPath("/user/userProfile/{id}"))
	assert.Equal(t, "/health", ginPath("/health"))
}

func TestRoutes_GetProfileWithCookieHeader(t *testing.T) {
	svc := &fakeService{profile: &models.UserProfile{ID: 1, UserID: 7, Age: 30, Weight: 80, Height: 180, Objective: "gain", TrainingDays: 3}}
	router, token := newTestRouter(t, svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/user/userProfile/7", nil)
	req.Header.Set("Cookie", "theme=dark; token="+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	assert.JSONEq(t, `{"id":1,"iduser":7,"age":30,"weight":80,"height":180,"objective":"gain","training_days":3}`, w.Body.String())
}

func TestRoutes_PostRoutines(t *testing.T) {
	svc := &fakeService{}
	router, token := newTestRouter(t, svc, nil)

	req := httptest.NewRequest(http.MethodPost, "/user/userRoutines/7", strings.NewReader(string(validBody())))
	req.Header.Set("Cookie", "token="+token)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `"User data created successfully"`, w.Body.String())
	assert.Equal(t, []string{"CreateRoutines"}, svc.calls)
}

func TestRoutes_UnknownPath(t *testing.T) {
	svc := &fakeService{}
	router, token := newTestRouter(t, svc, nil)

	tests := []struct {
		name    string
		method  string
		path    string
		cookie  string
		status  int
		message string
	}{
		{"no cookie", http.MethodGet, "/user/unknown/7", "", http.StatusUnauthorized, MsgNotAuthenticated},
		{"unknown path for own id", http.MethodGet, "/user/unknown/7", "token=" + token, http.StatusNotFound, MsgRouteNotFound},
		{"wrong method for own id", http.MethodDelete, "/user/userProfile/7", "token=" + token, http.StatusNotFound, MsgRouteNotFound},
		{"unknown path for other id", http.MethodGet, "/user/unknown/5", "token=" + token, http.StatusUnauthorized, MsgUserIDMismatch},
		{"unknown path without id", http.MethodGet, "/user/unknown", "token=" + token, http.StatusUnauthorized, MsgUserIDMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.cookie != "" {
				req.Header.Set("Cookie", tt.cookie)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, `"`+tt.message+`"`, w.Body.String())
		})
	}

	assert.Empty(t, svc.calls)
}

func TestLastSegment(t *testing.T) {
	assert.Equal(t, "7", lastSegment("/user/userProfile/7"))
	assert.Equal(t, "7", lastSegment("/user/userProfile/7/"))
	assert.Equal(t, "unknown", lastSegment("/user/unknown"))
}

func TestDevelopmentRoutes_Swagger(t *testing.T) {
	router := gin.New()
	SetupDevelopmentRoutes(router, &RouterConfig{DevInfo: map[string]string{"environment": "test"}})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "swagger")

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/dev/config", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"environment":"test"}`, w.Body.String())
}

func TestRoutes_HealthAndMetrics(t *testing.T) {
	router, _ := newTestRouter(t, &fakeService{}, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "# metrics", w.Body.String())

	router, _ = newTestRouter(t, &fakeService{}, func(context.Context) error { return errors.New("down") })
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
