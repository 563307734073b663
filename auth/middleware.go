package auth

import (
	"net/http"
	"strings"

	"github.com/aidconnect/backend/models"
	"github.com/gin-gonic/gin"
)

// ClaimsKey is the gin context key under which decoded claims are stored.
const ClaimsKey = "authClaims"

// RequireAdmin gates a route behind a valid admin bearer token. The check is
// a pure function of token, current time and signing secret; a token stays
// valid until natural expiry.
func (s *Service) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortWith(c, http.StatusUnauthorized, "No authorization header")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			abortWith(c, http.StatusUnauthorized, "No token provided")
			return
		}

		claims, err := s.ParseToken(parts[1])
		if err != nil {
			abortWith(c, http.StatusUnauthorized, "Invalid token")
			return
		}

		if claims.Role != models.RoleAdmin {
			abortWith(c, http.StatusForbidden, "Admin access required")
			return
		}

		c.Set(ClaimsKey, claims)
		c.Next()
	}
}

// ClaimsFrom returns the decoded claims attached by RequireAdmin, if any.
func ClaimsFrom(c *gin.Context) (*Claims, bool) {
	v, ok := c.Get(ClaimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*Claims)
	return claims, ok
}

func abortWith(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{
		"success": false,
		"message": message,
	})
}
