package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hfashion/storefront/internal/config"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

const rateWindow = time.Minute

// RateLimit limits requests per client IP. With Redis it counts requests in
// a shared fixed one-minute window; without Redis each instance keeps its
// own token bucket per IP.
func RateLimit(cfg config.SecurityConfig, redisClient *redis.Client, log logrus.FieldLogger) gin.HandlerFunc {
	if cfg.RateLimitPerMinute <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	if redisClient == nil {
		return localRateLimit(cfg)
	}

	limit := cfg.RateLimitPerMinute
	return func(c *gin.Context) {
		key := fmt.Sprintf("rate_limit:%s", c.ClientIP())

		ctx, cancel := context.WithTimeout(c.Request.Context(), time.Second)
		defer cancel()

		n, err := redisClient.Incr(ctx, key).Result()
		if err == nil && n == 1 {
			err = redisClient.Expire(ctx, key, rateWindow).Err()
		}
		if err != nil {
			// fail open
			log.WithError(err).Warn("Rate limiter unavailable")
			c.Next()
			return
		}

		count := int(n)
		remaining := max(limit-count, 0)
		c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))

		if count > limit {
			ttl, err := redisClient.TTL(ctx, key).Result()
			if err != nil || ttl < 0 {
				ttl = rateWindow
			}
			tooManyRequests(c, ttl)
			return
		}

		c.Next()
	}
}

// visitorIdle is how long an unused local limiter is kept
const visitorIdle = 3 * rateWindow

// visitor is a client's token bucket and when it was last used
type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// visitors holds the per-IP limiters of the local fallback. Entries idle
// longer than idle are swept at most once per idle period.
type visitors struct {
	mu        sync.Mutex
	byIP      map[string]*visitor
	every     rate.Limit
	burst     int
	idle      time.Duration
	lastSweep time.Time
	now       func() time.Time
}

func newVisitors(every rate.Limit, burst int, idle time.Duration) *visitors {
	return &visitors{
		byIP:      make(map[string]*visitor),
		every:     every,
		burst:     burst,
		idle:      idle,
		lastSweep: time.Now(),
		now:       time.Now,
	}
}

func (v *visitors) get(ip string) *rate.Limiter {
	v.mu.Lock()
	defer v.mu.Unlock()

	now := v.now()
	if now.Sub(v.lastSweep) >= v.idle {
		for key, vis := range v.byIP {
			if now.Sub(vis.lastSeen) > v.idle {
				delete(v.byIP, key)
			}
		}
		v.lastSweep = now
	}

	vis, ok := v.byIP[ip]
	if !ok {
		vis = &visitor{limiter: rate.NewLimiter(v.every, v.burst)}
		v.byIP[ip] = vis
	}
	vis.lastSeen = now
	return vis.limiter
}

func (v *visitors) len() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.byIP)
}

func localRateLimit(cfg config.SecurityConfig) gin.HandlerFunc {
	every := rate.Every(rateWindow / time.Duration(cfg.RateLimitPerMinute))
	return localRateLimitWith(cfg, newVisitors(every, max(cfg.RateLimitBurst, 1), visitorIdle))
}

func localRateLimitWith(cfg config.SecurityConfig, clients *visitors) gin.HandlerFunc {
	return func(c *gin.Context) {
		limiter := clients.get(c.ClientIP())

		c.Header("X-RateLimit-Limit", strconv.Itoa(cfg.RateLimitPerMinute))

		r := limiter.Reserve()
		if delay := r.Delay(); delay > 0 {
			r.Cancel()
			tooManyRequests(c, delay)
			return
		}

		c.Next()
	}
}

func tooManyRequests(c *gin.Context, retryAfter time.Duration) {
	seconds := max(int(retryAfter.Round(time.Second)/time.Second), 1)
	c.Header("Retry-After", strconv.Itoa(seconds))
	c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
		"error":       "Rate limit exceeded",
		"retry_after": seconds,
	})
}
