// Package middleware provides HTTP middleware for the auth service.
package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Harshvardhan1407/user-auth-service/internal/service"
)

// UsernameKey is the gin context key under which RequireAuth stores the
// authenticated username.
const UsernameKey = "auth_username"

// RequireAuth rejects requests that do not carry a valid bearer token whose
// subject still exists. The subject is stored in the gin context for
// downstream handlers.
func RequireAuth(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractBearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "invalid authentication token",
			})
			return
		}

		username, err := authService.ValidateToken(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, service.ErrInvalidCredentials) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"error": "invalid authentication token",
				})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error": "internal server error",
			})
			return
		}

		c.Set(UsernameKey, username)
		c.Next()
	}
}

func extractBearerToken(c *gin.Context) string {
	parts := strings.Split(c.GetHeader("Authorization"), " ")
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return parts[1]
	}
	return ""
}
