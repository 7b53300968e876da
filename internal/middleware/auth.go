package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/whyismeleige/rental-ads/internal/services"
	"github.com/whyismeleige/rental-ads/pkg/apperr"
	"github.com/whyismeleige/rental-ads/pkg/response"
)

// Auth validates the bearer token on protected routes and stores the
// bound user id in the request context.
func Auth(tokens *services.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.AbortError(c, apperr.Authentication("authorization header required"))
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.AbortError(c, apperr.Authentication("invalid authorization header format"))
			return
		}

		userID, err := tokens.Verify(parts[1])
		if err != nil {
			response.AbortError(c, err)
			return
		}

		c.Set("userID", userID)
		c.Next()
	}
}
