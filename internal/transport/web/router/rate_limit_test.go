package router

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cafeorigenes/origenes-api/internal/domain"
)

func rateLimitedRequest(handler http.Handler, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/ai/chat", nil)
	req = req.WithContext(domain.ContextWithLogger(req.Context(), slog.New(slog.DiscardHandler)))
	req.RemoteAddr = remoteAddr

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRateLimiter_PerClientBuckets(t *testing.T) {
	handler := NewRateLimiter(2, 2).Middleware(okHandler())

	assert.Equal(t, http.StatusOK, rateLimitedRequest(handler, "198.51.100.7:4000").Code)
	assert.Equal(t, http.StatusOK, rateLimitedRequest(handler, "198.51.100.7:4001").Code)

	rec := rateLimitedRequest(handler, "198.51.100.7:4002")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "30", rec.Header().Get("Retry-After"))
	assert.JSONEq(t, `{"message":"Too many requests, please try again later"}`, rec.Body.String())

	assert.Equal(t, http.StatusOK, rateLimitedRequest(handler, "203.0.113.9:4000").Code)
}

func TestRateLimiter_NonPositiveRateDisablesLimiting(t *testing.T) {
	for _, perMinute := range []int{0, -5} {
		rl := NewRateLimiter(perMinute, perMinute)
		handler := rl.Middleware(okHandler())

		for range 50 {
			assert.Equal(t, http.StatusOK, rateLimitedRequest(handler, "198.51.100.7:4000").Code)
		}
		assert.Equal(t, 1, rl.retryAfter)
	}
}

func TestRateLimiter_ConcurrentFirstRequestsShareBucket(t *testing.T) {
	handler := NewRateLimiter(1, 1).Middleware(okHandler())

	var allowed atomic.Int32
	var wg sync.WaitGroup
	for range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if rateLimitedRequest(handler, "198.51.100.7:4000").Code == http.StatusOK {
				allowed.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), allowed.Load())
}

func TestRateLimiter_ReusesBucketForActiveClient(t *testing.T) {
	rl := NewRateLimiter(10, 10)

	first := rl.limiter("198.51.100.7")
	assert.Same(t, first, rl.limiter("198.51.100.7"))
	assert.NotSame(t, first, rl.limiter("203.0.113.9"))
}

func TestWriteMessage_EncodesJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	writeUnauthorized(rec, "bad \"token\"\x00 <é>")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"message":"bad \"token\"\u0000 <é>"}`, rec.Body.String())
}
