package web

import (
	"time"

	"github.com/gin-gonic/gin"
)

// CurrentTimeFunc Current time. Can be mocked for testing.
var CurrentTimeFunc = time.Now

// StartRequest stamps the request start time consumed by the trace log.
func StartRequest(c *gin.Context) {
	c.Set("requestStartTime", CurrentTimeFunc())
}
