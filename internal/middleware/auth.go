package middleware

import (
	"crypto/subtle"
	"strings"

	"github.com/gin-gonic/gin"

	"iffy-moderation/pkg/response"
)

const bearerPrefix = "Bearer "

// Auth requires "Authorization: Bearer <token>" matching the configured
// token. With no token configured every request passes.
func (m Middleware) Auth() gin.HandlerFunc {
	if m.authToken == "" {
		return func(c *gin.Context) { c.Next() }
	}

	want := []byte(m.authToken)
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			response.Unauthorized(c)
			return
		}

		got := []byte(strings.TrimPrefix(header, bearerPrefix))
		if subtle.ConstantTimeCompare(got, want) != 1 {
			m.l.Warnf(c.Request.Context(), "middleware.Auth: rejected request to %s from %s", c.FullPath(), c.ClientIP())
			response.Unauthorized(c)
			return
		}

		c.Next()
	}
}
