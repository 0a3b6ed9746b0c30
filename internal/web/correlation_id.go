package web

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CorrelationId reads the correlation id from the x-correlation-id header,
// minting a fresh one when the frontend did not send any. Route and booking
// logs carry it so a whole search-and-book session can be tied together.
func CorrelationId(c *gin.Context) {
	correlationId := c.GetHeader("x-correlation-id")
	if correlationId == "" {
		correlationId = uuid.New().String()
	}

	c.Set("correlationId", correlationId)
}
