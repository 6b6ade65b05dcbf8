package middleware

import "time"

// Headers
const (
	HeaderRequestID = "X-Request-ID"
	HeaderSessionID = "X-Session-ID"
)

// Rate limiter settings
const (
	DefaultRateLimitPerMin = 60
	limiterCacheSize       = 10000
	limiterTTL             = 5 * time.Minute
)
