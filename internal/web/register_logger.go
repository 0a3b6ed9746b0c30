package web

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RegisterLogger derives a per-request logger bound to the correlation id
// and stores it on the context for handlers and downstream middleware.
func RegisterLogger(logger *zerolog.Logger) func(c *gin.Context) {
	return func(c *gin.Context) {
		correlationId := c.MustGet("correlationId").(string)

		requestLogger := logger.
			With().
			Str("correlationId", correlationId).
			Logger()

		c.Set("logger", &requestLogger)
	}
}
