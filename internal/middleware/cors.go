package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/serviceflow/serviceflow-api/internal/config"
)

// CORS allows the configured origins; "*" allows any origin without credentials.
// It returns nil when no origin is configured.
func CORS(cfg *config.Config) gin.HandlerFunc {
	origins := cfg.CORS.Origins
	if len(origins) == 0 {
		return nil
	}

	c := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", cfg.Auth.APIKeyHeader},
		ExposeHeaders: []string{"X-Trace-Id"},
		MaxAge:        12 * time.Hour,
	}
	for _, o := range origins {
		if o == "*" {
			c.AllowAllOrigins = true
			return cors.New(c)
		}
	}
	c.AllowOrigins = origins
	c.AllowCredentials = true
	return cors.New(c)
}
