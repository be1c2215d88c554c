package utils

import (
	"github.com/gin-gonic/gin"
)

// JSONResponse sends a structured JSON response
func JSONResponse(c *gin.Context, status int, data any, message string) {
	c.JSON(status, gin.H{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

// JSONError sends a structured error response. The wrapped error is
// logged for operators; clients only see the sanitized message, never
// internal error text.
func JSONError(c *gin.Context, status int, err error, message string) {
	if err != nil {
		Debug("request rejected", map[string]any{
			"status": status,
			"path":   c.FullPath(),
			"error":  err.Error(),
		})
	}
	c.JSON(status, gin.H{
		"status":  status,
		"message": message,
		"error":   message,
	})
}
