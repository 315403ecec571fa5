package analytics

import (
	"context"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

var untrackedPrefixes = []string{
	"/static/",
	"/images/",
	"/api/",
	"/metrics",
	"/healthz",
	"/favicon",
}

// Tracker records page visits from HTTP middleware.
type Tracker struct {
	store *Store
	// Async hands recording to a goroutine so requests never wait on sqlite.
	Async bool
}

func NewTracker(store *Store) *Tracker {
	return &Tracker{store: store, Async: true}
}

// Middleware records page views. Static assets, API calls and visitors
// sending DNT: 1 are skipped.
func (t *Tracker) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if !shouldTrack(path) || c.GetHeader("DNT") == "1" {
			c.Next()
			return
		}

		ip, ua := c.ClientIP(), c.GetHeader("User-Agent")
		if t.Async {
			go t.record(ip, ua, path)
		} else {
			t.record(ip, ua, path)
		}
		c.Next()
	}
}

func (t *Tracker) record(ip, userAgent, path string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := t.store.Record(ctx, ip, userAgent, path); err != nil {
		logrus.WithError(err).Warn("error recording visitor")
	}
}

func shouldTrack(path string) bool {
	for _, prefix := range untrackedPrefixes {
		if strings.HasPrefix(path, prefix) {
			return false
		}
	}
	return true
}

// StartRetention runs Cleanup once now and then daily. Stop the returned
// scheduler on shutdown.
func StartRetention(store *Store, retentionMonths int) *cron.Cron {
	run := func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		removed, err := store.Cleanup(ctx, retentionMonths)
		if err != nil {
			logrus.WithError(err).Error("visitor retention cleanup failed")
			return
		}
		if removed > 0 {
			logrus.WithFields(logrus.Fields{
				"removed":          removed,
				"retention_months": retentionMonths,
			}).Info("privacy cleanup removed old visitor records")
		}
	}

	c := cron.New()
	if _, err := c.AddFunc("@daily", run); err != nil {
		logrus.WithError(err).Error("failed to schedule retention cleanup")
	}
	go run()
	c.Start()
	return c
}
