package middleware

import (
	"household-calendar/pkg/log"
)

// Middleware bundles the gin middlewares shared by every domain.
type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

// New creates the middleware set. chatPerMin <= 0 disables rate limiting.
func New(l log.Logger, chatPerMin int) Middleware {
	var limiter *rateLimiter
	if chatPerMin > 0 {
		limiter = newRateLimiter(chatPerMin)
	}
	return Middleware{
		l:       l,
		limiter: limiter,
	}
}
