package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type errorResponse struct {
	Error string `json:"error"`
}

// HandleError logs the failure and writes the canonical error body, aborting
// the handler chain.
func HandleError(c *gin.Context, code int, message string, err error) {
	if value, ok := c.Get("logger"); ok {
		logger := value.(*zerolog.Logger)

		event := logger.Warn()
		if code >= http.StatusInternalServerError {
			event = logger.Error()
		}

		event.
			Err(err).
			Int("code", code).
			Msg(message)
	}

	c.AbortWithStatusJSON(code, errorResponse{Error: message})
}
