package middleware

import (
	"customer-support/pkg/log"
)

// Config controls the request limits applied by Middleware.
type Config struct {
	RateLimitPerMin int
}

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	return Middleware{
		l:       l,
		limiter: newRateLimiter(cfg.RateLimitPerMin),
	}
}
