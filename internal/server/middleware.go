package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		entry := logrus.WithFields(logrus.Fields{
			"method":   c.Request.Method,
			"path":     c.Request.URL.Path,
			"status":   c.Writer.Status(),
			"duration": time.Since(start).String(),
		})
		switch {
		case c.Writer.Status() >= http.StatusInternalServerError:
			entry.Error("request failed")
		case c.Request.URL.Path == "/healthz" || c.Request.URL.Path == "/metrics":
			entry.Debug("request")
		default:
			entry.Info("request")
		}
	}
}

// instrument records request counts and latency keyed by route template,
// so /projects/:slug is a single series.
func (s *Server) instrument() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		s.metrics.HTTPRequests.WithLabelValues(route, strconv.Itoa(c.Writer.Status())).Inc()
		s.metrics.HTTPLatency.WithLabelValues(route).Observe(time.Since(start).Seconds())
	}
}

const limiterIdleTTL = 10 * time.Minute

// ipLimiter hands out one token bucket per client IP. A bucket expires only
// after idleTTL without requests.
type ipLimiter struct {
	limit    rate.Limit
	burst    int
	limiters *cache.Cache
}

func newIPLimiter(perMinute int, idleTTL time.Duration) *ipLimiter {
	return &ipLimiter{
		limit:    rate.Every(time.Minute / time.Duration(perMinute)),
		burst:    perMinute,
		limiters: cache.New(idleTTL, 2*idleTTL),
	}
}

func (l *ipLimiter) allow(ip string) bool {
	if v, ok := l.limiters.Get(ip); ok {
		l.limiters.Set(ip, v, cache.DefaultExpiration)
		return v.(*rate.Limiter).Allow()
	}
	limiter := rate.NewLimiter(l.limit, l.burst)
	if err := l.limiters.Add(ip, limiter, cache.DefaultExpiration); err != nil {
		// Another request created it first.
		if v, ok := l.limiters.Get(ip); ok {
			limiter = v.(*rate.Limiter)
		}
	}
	return limiter.Allow()
}

func (s *Server) rateLimit(l *ipLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.allow(c.ClientIP()) {
			s.metrics.ContactOutcomes.WithLabelValues("limited").Inc()
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Too many messages. Please wait a minute and try again.",
			})
			return
		}
		c.Next()
	}
}
