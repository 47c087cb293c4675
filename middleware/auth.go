package middleware

import (
	"net/http"
	"strings"

	"vakeel/utils"

	"github.com/gin-gonic/gin"
)

// CookieAuthMiddleware authenticates requests via the auth_token cookie (with
// a Bearer-header fallback for non-browser clients). Every failure mode —
// missing, malformed, tampered, expired, or revoked token — collapses to the
// same 401 so signature-validation internals never leak.
func CookieAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := tokenFromRequest(c)
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		claims, err := utils.ExtractClaimsFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		if utils.IsAuthTokenRevoked(c.Request.Context(), utils.HashToken(tokenString)) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		c.Set("lawyerID", claims.ID)
		c.Set("enrollmentID", claims.EnrollmentID)
		c.Set("email", claims.Email)
		c.Next()
	}
}

func tokenFromRequest(c *gin.Context) string {
	if cookie, err := c.Cookie(utils.AuthCookieName); err == nil && cookie != "" {
		return cookie
	}
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}
