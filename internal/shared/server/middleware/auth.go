package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/AthlasSoftware/leadmagnet/internal/shared/auth"
)

const adminEmailKey = "adminEmail"

// RequireAdmin gates a route group behind a valid admin session token.
// Tokens are issued by the Google sign-in flow for allowlisted emails.
func RequireAdmin(verifier *auth.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := strings.TrimSpace(c.GetHeader("Authorization"))
		token := ""
		if strings.HasPrefix(header, "Bearer ") {
			token = strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		}
		if token == "" {
			if cookie, err := c.Cookie(auth.SessionCookieName); err == nil {
				token = cookie
			}
		}
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing credentials"})
			return
		}
		claims, err := verifier.Verify(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}
		c.Set(adminEmailKey, claims.Email)
		c.Next()
	}
}

// AdminEmail returns the authenticated admin's email, if any.
func AdminEmail(c *gin.Context) string {
	return c.GetString(adminEmailKey)
}
