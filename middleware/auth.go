package middleware

import (
	"net/http"
	"strings"

	"pawhaven/utils"

	"github.com/gin-gonic/gin"
)

// SessionCookieName is the cookie the login handler sets alongside the
// bearer token it returns.
const SessionCookieName = "pawhaven_token"

// bearerOrCookieToken extracts the token from the Authorization header,
// falling back to the session cookie.
func bearerOrCookieToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	if cookie, err := c.Cookie(SessionCookieName); err == nil {
		return cookie
	}
	return ""
}

// JWTAuthMiddleware rejects unauthenticated requests. A token must carry a
// valid signature and still have a live Redis session (revoked tokens are
// turned away even before expiry). On success the user id and email are set
// in the request context.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerOrCookieToken(c)
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}

		subject, email, err := utils.TokenClaims(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		userID, err := utils.GetSessionUserID(utils.GetSessionCacheClient(), utils.HashToken(tokenString))
		if err != nil || userID == "" || userID != subject {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Session expired or revoked"})
			return
		}

		c.Set("userID", subject)
		c.Set("userEmail", email)
		c.Set("sessionToken", tokenString)
		c.Next()
	}
}
