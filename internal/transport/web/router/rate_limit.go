package router

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"github.com/cafeorigenes/origenes-api/internal/domain"
)

const (
	maxTrackedClients = 4096
	clientIdleTTL     = 10 * time.Minute
)

// RateLimiter provides IP-based rate limiting. A client's bucket is dropped after clientIdleTTL
// without requests, so its allowance starts over full.
type RateLimiter struct {
	mu      sync.Mutex
	clients *expirable.LRU[string, *rate.Limiter]
	rate    rate.Limit
	burst   int

	// retryAfter is the refill time of one token, in whole seconds.
	retryAfter int
}

// NewRateLimiter allows perMinute requests per client IP, with bursts of up to burst requests.
// A non-positive perMinute disables limiting.
func NewRateLimiter(perMinute, burst int) *RateLimiter {
	rl := &RateLimiter{
		clients:    expirable.NewLRU[string, *rate.Limiter](maxTrackedClients, nil, clientIdleTTL),
		rate:       rate.Inf,
		burst:      max(burst, 1),
		retryAfter: 1,
	}
	if perMinute > 0 {
		rl.rate = rate.Limit(float64(perMinute) / 60)
		rl.retryAfter = max((60+perMinute-1)/perMinute, 1)
	}
	return rl
}

// limiter returns the bucket for ip. Re-adding an existing bucket restarts its idle TTL.
func (rl *RateLimiter) limiter(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	l, ok := rl.clients.Get(ip)
	if !ok {
		l = rate.NewLimiter(rl.rate, rl.burst)
	}
	rl.clients.Add(ip, l)
	return l
}

func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := clientIP(r)
		if !rl.limiter(ip).Allow() {
			logger := domain.LoggerFromContext(r.Context())
			logger.InfoContext(r.Context(), "rate limit exceeded", "client_ip", ip)

			w.Header().Set("Retry-After", strconv.Itoa(rl.retryAfter))
			writeMessage(w, http.StatusTooManyRequests, "Too many requests, please try again later")
			return
		}

		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
