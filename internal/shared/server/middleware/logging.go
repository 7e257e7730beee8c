package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/AthlasSoftware/leadmagnet/internal/shared/telemetry"
)

// Logging emits a structured log per request.
func Logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.EqualFold(c.Request.Method, "OPTIONS") {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()
		latency := time.Since(start)

		fields := map[string]any{
			"request_id":  RequestIDFromContext(c),
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status":      c.Writer.Status(),
			"duration_ms": float64(latency.Microseconds()) / 1000.0,
			"client_ip":   c.ClientIP(),
			"user_agent":  c.Request.UserAgent(),
		}
		if leadID, ok := c.Get("leadId"); ok {
			fields["lead_id"] = leadID
		}
		if target, ok := c.Get("targetUrl"); ok {
			fields["target_url"] = target
		}
		if email := c.GetString(adminEmailKey); email != "" {
			fields["admin_email"] = email
		}

		telemetry.Info("request.complete", fields)
	}
}
