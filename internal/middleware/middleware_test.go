package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"production-board/config"
	"production-board/pkg/log"
)

func newEngine(mw Middleware, seen *string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw.RequestID(), mw.RateLimit())
	r.GET("/", func(c *gin.Context) {
		if seen != nil {
			*seen = log.RequestID(c.Request.Context())
		}
		c.Status(http.StatusNoContent)
	})
	return r
}

func TestRequestID(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{name: "Generated"},
		{name: "Propagated", header: "req-123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen string
			r := newEngine(New(log.NewNop(), config.RateLimitConfig{}), &seen)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(HeaderRequestID, tt.header)
			}
			r.ServeHTTP(w, req)

			got := w.Header().Get(HeaderRequestID)
			require.Equal(t, got, seen)
			if tt.header != "" {
				require.Equal(t, tt.header, got)
				return
			}
			_, err := uuid.Parse(got)
			require.NoError(t, err)
		})
	}
}

func TestRateLimit(t *testing.T) {
	// 60/min refills one token per second; burst is 6.
	r := newEngine(New(log.NewNop(), config.RateLimitConfig{RequestsPerMin: 60}), nil)

	serve := func(ip string) int {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = ip + ":1234"
		r.ServeHTTP(w, req)
		return w.Code
	}

	for i := 0; i < 6; i++ {
		require.Equal(t, http.StatusNoContent, serve("10.0.0.1"), "request %d", i)
	}
	require.Equal(t, http.StatusTooManyRequests, serve("10.0.0.1"))
	require.Equal(t, http.StatusNoContent, serve("10.0.0.2"))
}

func TestRateLimitDisabled(t *testing.T) {
	r := newEngine(New(log.NewNop(), config.RateLimitConfig{}), nil)
	for i := 0; i < 50; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		require.Equal(t, http.StatusNoContent, w.Code)
	}
}

func TestNewRateLimiterBurst(t *testing.T) {
	require.Equal(t, 1, newRateLimiter(5, 0).burst)
	require.Equal(t, 60, newRateLimiter(600, 0).burst)
}
