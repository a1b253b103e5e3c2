package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// ReadyCheck reports whether one dependency is usable.
type ReadyCheck func(ctx context.Context) bool

// RegisterHealth installs /health (liveness) and /ready. /ready returns 503
// when any check fails, e.g. the database handle is unavailable.
func RegisterHealth(r *gin.Engine, started time.Time, checks map[string]ReadyCheck) {
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "healthy")
	})

	r.GET("/ready", func(c *gin.Context) {
		ready := true
		deps := map[string]bool{}
		for name, check := range checks {
			ok := check(c.Request.Context())
			deps[name] = ok
			if !ok {
				ready = false
			}
		}
		uptime := time.Since(started).Round(time.Second).String()
		if !ready {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "deps": deps, "uptime": uptime})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready", "deps": deps, "uptime": uptime})
	})
}
