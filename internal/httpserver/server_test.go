package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"production-board/config"
	"production-board/internal/middleware"
	"production-board/internal/view/usecase"
	"production-board/pkg/datemath"
	"production-board/pkg/log"
)

func newTestServer(t *testing.T) *HTTPServer {
	t.Helper()
	l := log.NewNop()
	dm, err := datemath.NewParser("UTC")
	require.NoError(t, err)
	uc, err := usecase.New(l, dm, config.ViewConfig{})
	require.NoError(t, err)

	srv, err := New(l, Config{
		Logger:      l,
		Port:        8080,
		Mode:        gin.TestMode,
		Environment: "test",
		Middleware:  middleware.New(l, config.RateLimitConfig{RequestsPerMin: 600}),
		ViewUseCase: uc,
	})
	require.NoError(t, err)
	return srv
}

func TestRoutes(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name     string
		method   string
		path     string
		body     string
		wantCode int
	}{
		{name: "Health", method: http.MethodGet, path: "/health", wantCode: http.StatusOK},
		{name: "Ready", method: http.MethodGet, path: "/ready", wantCode: http.StatusOK},
		{name: "Live", method: http.MethodGet, path: "/live", wantCode: http.StatusOK},
		{name: "State", method: http.MethodGet, path: "/api/v1/views/state/notes", wantCode: http.StatusOK},
		{name: "Schedule", method: http.MethodPost, path: "/api/v1/views/schedule", body: `{"shots": []}`, wantCode: http.StatusOK},
		{name: "List", method: http.MethodPost, path: "/api/v1/views/list/tasks", body: `{"items": []}`, wantCode: http.StatusOK},
		{name: "Unknown route", method: http.MethodGet, path: "/api/v1/views/nope", wantCode: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			srv.Handler().ServeHTTP(w, req)

			require.Equal(t, tt.wantCode, w.Code, w.Body.String())
			require.NotEmpty(t, w.Header().Get(middleware.HeaderRequestID))
		})
	}
}

func TestNewValidates(t *testing.T) {
	l := log.NewNop()

	_, err := New(l, Config{Mode: gin.TestMode, Port: 8080})
	require.Error(t, err)

	_, err = New(l, Config{Mode: gin.TestMode})
	require.Error(t, err)
}

func TestRunStopsOnCancel(t *testing.T) {
	srv := newTestServer(t)
	srv.port = 0 // any free port

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, srv.Run(ctx))
}

func TestSystemStatus(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		path       string
		wantStatus string
	}{
		{path: "/health", wantStatus: "healthy"},
		{path: "/ready", wantStatus: "ready"},
		{path: "/live", wantStatus: "alive"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))
			require.Equal(t, http.StatusOK, w.Code)

			var body struct {
				Data struct {
					Status  string   `json:"status"`
					Service string   `json:"service"`
					Uptime  string   `json:"uptime"`
					Kinds   []string `json:"kinds"`
				} `json:"data"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			require.Equal(t, tt.wantStatus, body.Data.Status)
			require.Equal(t, ServiceName, body.Data.Service)
			require.NotEmpty(t, body.Data.Uptime)
			require.Equal(t, []string{"shots", "tasks", "notes"}, body.Data.Kinds)
		})
	}
}
