package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Cors allows the browser frontend to call the API from any origin,
// answering preflight requests directly.
func Cors(c *gin.Context) {
	c.Header("Access-Control-Allow-Origin", "*")
	c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	c.Header("Access-Control-Allow-Headers", "Content-Type, x-correlation-id")

	if c.Request.Method == http.MethodOptions {
		c.AbortWithStatus(http.StatusNoContent)
		return
	}

	c.Next()
}
