package middleware

import (
	"log/slog"
	"sync"
	"time"

	"jobtrack/config"
	deliverycontext "jobtrack/internal/delivery/context"
	domainerrors "jobtrack/internal/domain/errors"
	"jobtrack/internal/errors"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimitMiddleware applies a token bucket per client IP. Buckets idle for
// longer than the configured TTL are dropped.
type RateLimitMiddleware struct {
	enabled bool
	limit   rate.Limit
	burst   int
	ttl     time.Duration
	logger  *slog.Logger
	now     func() time.Time

	mu        sync.Mutex
	visitors  map[string]*visitor
	lastSweep time.Time
}

// NewRateLimitMiddleware creates the limiter from rateLimit.* configuration.
func NewRateLimitMiddleware(cfg *config.Config, logger *slog.Logger) *RateLimitMiddleware {
	m := &RateLimitMiddleware{
		limit:    rate.Limit(1),
		burst:    10,
		ttl:      10 * time.Minute,
		logger:   logger,
		now:      time.Now,
		visitors: make(map[string]*visitor),
	}

	if rl := cfg.RateLimit; rl != nil {
		m.enabled = rl.Enabled
		if rl.RPS > 0 {
			m.limit = rate.Limit(rl.RPS)
		}
		if rl.Burst > 0 {
			m.burst = rl.Burst
		}
		if rl.TTL > 0 {
			m.ttl = rl.TTL
		}
	}

	return m
}

// Limit rejects requests over the client's budget with RATE_LIMITED.
func (m *RateLimitMiddleware) Limit(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !m.enabled {
			return next(c)
		}

		ip := c.RealIP()
		if !m.allow(ip) {
			deliverycontext.LoggerFrom(c.Request().Context(), m.logger).
				Warn("Rate limit exceeded", slog.String("remote_ip", ip), slog.String("path", c.Path()))

			return errors.WithStack(domainerrors.ErrRateLimited)
		}

		return next(c)
	}
}

func (m *RateLimitMiddleware) allow(ip string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	if now.Sub(m.lastSweep) > m.ttl {
		for key, v := range m.visitors {
			if now.Sub(v.lastSeen) > m.ttl {
				delete(m.visitors, key)
			}
		}
		m.lastSweep = now
	}

	v, ok := m.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(m.limit, m.burst)}
		m.visitors[ip] = v
	}
	v.lastSeen = now

	return v.limiter.AllowN(now, 1)
}
