package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/yanqian/omx-assistant/internal/infra/config"
)

func TestIPRateLimiterRefills(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	limiter := newIPRateLimiter(config.RateLimitConfig{Enabled: true, RequestsPerMinute: 60, Burst: 2}, func() time.Time { return now })

	_, ok := limiter.allow("1.1.1.1")
	require.True(t, ok)
	_, ok = limiter.allow("1.1.1.1")
	require.True(t, ok)
	wait, ok := limiter.allow("1.1.1.1")
	require.False(t, ok)
	require.Equal(t, time.Second, wait)

	_, ok = limiter.allow("2.2.2.2")
	require.True(t, ok)

	now = now.Add(time.Second)
	_, ok = limiter.allow("1.1.1.1")
	require.True(t, ok)
}

func TestIPRateLimiterSweepsIdleClients(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	limiter := newIPRateLimiter(config.RateLimitConfig{Enabled: true, RequestsPerMinute: 60, Burst: 1}, func() time.Time { return now })
	limiter.allow("idle")

	now = now.Add(10 * time.Minute)
	limiter.allow("active")
	require.NotContains(t, limiter.buckets, "idle")
	require.Contains(t, limiter.buckets, "active")
}

func TestNewIPRateLimiterDisabled(t *testing.T) {
	require.Nil(t, newIPRateLimiter(config.RateLimitConfig{Enabled: false, RequestsPerMinute: 10}, time.Now))
	require.Nil(t, newIPRateLimiter(config.RateLimitConfig{Enabled: true}, time.Now))
}

func TestRateLimitMiddlewareSetsRetryAfter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	limiter := newIPRateLimiter(config.RateLimitConfig{Enabled: true, RequestsPerMinute: 30, Burst: 1}, func() time.Time { return now })

	router := gin.New()
	router.Use(errorHandlingMiddleware(newTestLogger()))
	router.GET("/ping", rateLimitMiddleware(limiter, newTestLogger()), func(c *gin.Context) { c.Status(http.StatusNoContent) })

	first := httptest.NewRecorder()
	router.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/ping", nil))
	require.Equal(t, http.StatusNoContent, first.Code)

	second := httptest.NewRecorder()
	router.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/ping", nil))
	require.Equal(t, http.StatusTooManyRequests, second.Code)
	require.Equal(t, "2", second.Header().Get("Retry-After"))
	require.Contains(t, second.Body.String(), "rate_limit_exceeded")
}

func TestWithRetryReplaysServerErrors(t *testing.T) {
	var calls atomic.Int32
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		require.Equal(t, `{"question":"hi"}`, string(body))
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Header().Set("X-Attempt", "3")
		_, _ = w.Write([]byte("ok"))
	})
	cfg := config.RetryConfig{Enabled: true, MaxAttempts: 3, BaseBackoff: time.Millisecond, Exclude: []string{"/api/v1/sessions"}}
	wrapped := withRetry(handler, cfg, newTestLogger())

	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/faq/answer", strings.NewReader(`{"question":"hi"}`)))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "ok", rec.Body.String())
	require.Equal(t, "3", rec.Header().Get("X-Attempt"))
	require.Equal(t, int32(3), calls.Load())
}

func TestWithRetrySkipsExcludedPrefixesAndGets(t *testing.T) {
	var calls atomic.Int32
	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	})
	cfg := config.RetryConfig{Enabled: true, MaxAttempts: 3, BaseBackoff: time.Millisecond, Exclude: []string{"/api/v1/sessions"}}
	wrapped := withRetry(handler, cfg, newTestLogger())

	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/sessions/abc/ask", strings.NewReader(`{}`)))
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	rec = httptest.NewRecorder()
	wrapped.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/faq/entries", nil))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Equal(t, int32(2), calls.Load())
}

func TestWithRetryRejectsLargeBodies(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	wrapped := withRetry(handler, config.RetryConfig{Enabled: true, MaxAttempts: 2, BaseBackoff: time.Millisecond}, newTestLogger())

	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/faq/answer", strings.NewReader(strings.Repeat("a", retryBodyLimit+1))))
	require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestBackoffDoubles(t *testing.T) {
	require.Equal(t, 100*time.Millisecond, backoff(100*time.Millisecond, 1))
	require.Equal(t, 400*time.Millisecond, backoff(100*time.Millisecond, 3))
	require.Zero(t, backoff(0, 2))
}
