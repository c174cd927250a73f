package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hapkiduki/sortline-go/internal/interfaces/http/middleware"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequestID(t *testing.T) {
	t.Run("generates an ID when absent", func(t *testing.T) {
		var captured string
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			captured = middleware.GetRequestID(r.Context())
		})

		rec := httptest.NewRecorder()
		middleware.RequestID(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		require.NotEmpty(t, captured)
		assert.Equal(t, captured, rec.Header().Get(middleware.RequestIDHeader))
	})

	t.Run("propagates an upstream ID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(middleware.RequestIDHeader, "upstream-id")

		rec := httptest.NewRecorder()
		middleware.RequestID(okHandler()).ServeHTTP(rec, req)

		assert.Equal(t, "upstream-id", rec.Header().Get(middleware.RequestIDHeader))
	})
}

func TestGetRequestIDMissing(t *testing.T) {
	assert.Empty(t, middleware.GetRequestID(context.Background()))
}

func TestRateLimiter(t *testing.T) {
	cfg := middleware.RateLimiterConfig{
		RequestsPerSecond: 1,
		Burst:             2,
		KeyFunc: func(r *http.Request) string {
			return r.RemoteAddr
		},
	}

	h := middleware.RateLimiter(cfg)(okHandler())

	// The burst allows two immediate requests; the third is limited.
	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))
}

func TestContentTypeJSON(t *testing.T) {
	h := middleware.ContentTypeJSON(okHandler())

	t.Run("rejects non-JSON writes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.Header.Set("Content-Type", "text/plain")

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
	})

	t.Run("allows JSON writes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.Header.Set("Content-Type", "application/json")

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("ignores reads", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestSecureHeaders(t *testing.T) {
	rec := httptest.NewRecorder()
	middleware.SecureHeaders(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
}

func TestRealIP(t *testing.T) {
	var captured string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r.RemoteAddr
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-For", "10.0.0.1")

	middleware.RealIP(next).ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, "10.0.0.1", captured)
}

func TestAPIVersion(t *testing.T) {
	rec := httptest.NewRecorder()
	middleware.APIVersion("1.2.3")(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, "1.2.3", rec.Header().Get("X-API-Version"))
}
