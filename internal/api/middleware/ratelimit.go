package middleware

import (
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"covergen-utils/pkg/models"

	"github.com/labstack/echo/v4"
)

// ClientLimiter tracks a rate limiter per client IP. Stale entries are
// evicted so the map does not grow without bound.
type ClientLimiter struct {
	mu       sync.Mutex
	clients  map[string]*clientEntry
	limit    rate.Limit
	burst    int
	lastSeen time.Duration
}

type clientEntry struct {
	limiter *rate.Limiter
	seen    time.Time
}

// NewClientLimiter creates a limiter allowing ratePerMinute requests per
// minute per client with a burst of the same size.
func NewClientLimiter(ratePerMinute int) *ClientLimiter {
	if ratePerMinute <= 0 {
		ratePerMinute = 60
	}
	return &ClientLimiter{
		clients:  make(map[string]*clientEntry),
		limit:    rate.Limit(float64(ratePerMinute) / 60.0),
		burst:    ratePerMinute,
		lastSeen: 10 * time.Minute,
	}
}

// Allow reports whether the client may proceed.
func (cl *ClientLimiter) Allow(clientIP string) bool {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	entry, exists := cl.clients[clientIP]
	if !exists {
		entry = &clientEntry{limiter: rate.NewLimiter(cl.limit, cl.burst)}
		cl.clients[clientIP] = entry
	}
	entry.seen = time.Now()

	cl.evictStale()
	return entry.limiter.Allow()
}

func (cl *ClientLimiter) evictStale() {
	cutoff := time.Now().Add(-cl.lastSeen)
	for ip, entry := range cl.clients {
		if entry.seen.Before(cutoff) {
			delete(cl.clients, ip)
		}
	}
}

// RateLimit returns middleware rejecting clients that exceed the configured
// request rate with 429.
func RateLimit(ratePerMinute int) echo.MiddlewareFunc {
	limiter := NewClientLimiter(ratePerMinute)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !limiter.Allow(c.RealIP()) {
				requestID, _ := c.Get("request_id").(string)
				return c.JSON(http.StatusTooManyRequests, models.ErrorResponse{
					Error:     "rate_limited",
					Message:   "Too many requests, slow down",
					RequestID: requestID,
					Timestamp: time.Now(),
				})
			}
			return next(c)
		}
	}
}
