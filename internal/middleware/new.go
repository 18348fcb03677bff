package middleware

import (
	"gantt-chart/pkg/log"
)

// Config holds the middleware settings loaded from config.
type Config struct {
	RequestsPerMin int // per client IP; 0 disables rate limiting
	MaxClients     int // tracked client limiters
}

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	m := Middleware{l: l}
	if cfg.RequestsPerMin > 0 {
		m.limiter = newRateLimiter(cfg.RequestsPerMin, cfg.MaxClients)
	}
	return m
}
