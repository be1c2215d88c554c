package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	model "property-bidding/internal/models"
	"property-bidding/services/bidding/helpers"
	"property-bidding/utils"
)

// Headers the upstream identity provider sets on every proxied request.
// Credential verification happens upstream; these carry the result.
const (
	HeaderUserID   = "X-User-Id"
	HeaderUserName = "X-User-Name"
	HeaderUserRole = "X-User-Role"
)

// RequestLoggerMiddleware logs incoming requests with timing and a
// correlation id
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()
	requestID := utils.NewRequestID()
	c.Set("request_id", requestID)

	c.Next() // process request

	utils.Info("HTTP Request", map[string]any{
		"request_id": requestID,
		"method":     c.Request.Method,
		"path":       c.Request.URL.Path,
		"status":     c.Writer.Status(),
		"latency":    time.Since(start).String(),
	})
}

// IdentityMiddleware resolves the caller identity from the trusted
// identity headers and rejects requests that carry none or an unknown
// role. Downstream handlers read the identity via helpers.CurrentIdentity.
func IdentityMiddleware(c *gin.Context) {
	ident := model.Identity{
		ID:   c.GetHeader(HeaderUserID),
		Name: c.GetHeader(HeaderUserName),
		Role: model.Role(c.GetHeader(HeaderUserRole)),
	}

	if !ident.Authenticated() || !ident.Role.Valid() {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"status":  http.StatusUnauthorized,
			"message": "authentication required",
			"error":   "missing or invalid identity",
		})
		return
	}

	c.Set(helpers.IdentityKey, ident)
	c.Next()
}
