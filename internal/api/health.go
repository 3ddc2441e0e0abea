package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/wayfarerhq/wayfarer/internal/constants"
)

const healthTimeout = 2 * time.Second

// Healthz pings all three datastores and reports per-component status.
func (h *Handler) Healthz(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
	defer cancel()

	checks := map[string]Pinger{
		"postgres": h.repo.Ping,
		"mongo":    h.docs.Ping,
		"redis":    h.redisPing,
	}
	status := http.StatusOK
	results := gin.H{}
	for name, ping := range checks {
		if err := ping(ctx); err != nil {
			results[name] = err.Error()
			status = http.StatusServiceUnavailable
			continue
		}
		results[name] = "ok"
	}
	overall := "ok"
	if status != http.StatusOK {
		overall = "degraded"
	}
	c.JSON(status, gin.H{constants.JSONKeyStatus: overall, "checks": results})
}
