package middleware

import (
	"fmt"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"customer-support/pkg/response"
)

// RateLimit limits requests per session. The key is the X-Session-ID header,
// the :id path parameter, the session_id of a JSON body, or the client IP, in
// that order. Handlers behind it must bind with ShouldBindBodyWith since the
// body may already have been read here.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := rateLimitKey(c)
		if err := m.limiter.Allow(key); err != nil {
			m.l.Warnf(c.Request.Context(), "middleware.RateLimit: %v", err)
			response.TooManyRequests(c)
			return
		}
		c.Next()
	}
}

func rateLimitKey(c *gin.Context) string {
	if id := c.GetHeader(HeaderSessionID); id != "" {
		return "session:" + id
	}
	if id := c.Param("id"); id != "" {
		return "session:" + id
	}
	if id := bodySessionID(c); id != "" {
		return "session:" + id
	}
	return "ip:" + c.ClientIP()
}

// bodySessionID reads session_id from a JSON body. The bytes are cached on the
// context so the handler can bind them again.
func bodySessionID(c *gin.Context) string {
	if c.Request.Body == nil || c.Request.ContentLength == 0 || c.ContentType() != gin.MIMEJSON {
		return ""
	}
	var body struct {
		SessionID string `json:"session_id"`
	}
	if err := c.ShouldBindBodyWith(&body, binding.JSON); err != nil {
		return ""
	}
	return strings.TrimSpace(body.SessionID)
}

// rateLimiter keeps one token bucket per key; idle buckets expire.
type rateLimiter struct {
	mu       sync.Mutex
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(requestsPerMin int) *rateLimiter {
	if requestsPerMin <= 0 {
		requestsPerMin = DefaultRateLimitPerMin
	}
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](limiterCacheSize, nil, limiterTTL),
		rate:     rate.Limit(float64(requestsPerMin) / 60.0),
		burst:    max(1, requestsPerMin/10),
	}
}

func (rl *rateLimiter) Allow(key string) error {
	rl.mu.Lock()
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}
	rl.mu.Unlock()

	if !limiter.Allow() {
		return fmt.Errorf("rate limit exceeded for %s", key)
	}
	return nil
}
