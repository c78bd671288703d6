package utils

import (
	"net/http"
	"strings"

	"restaurant/auth"

	"github.com/gin-gonic/gin"
)

const claimsKey = "claims"

// AuthMiddleware requires a valid Bearer access token and stores its claims on the context.
func AuthMiddleware(issuer *auth.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Authorization header required"})
			return
		}
		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "invalid token format"})
			return
		}

		claims, err := issuer.ValidateToken(strings.TrimPrefix(authHeader, "Bearer "), auth.AccessToken)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "invalid or expired token"})
			return
		}
		c.Set(claimsKey, claims)
		c.Set("user_id", claims.UserID)

		c.Next()
	}
}

func RequireStaff() gin.HandlerFunc {
	return requireClaims(func(claims *auth.Claims) bool { return claims.IsStaff() }, "Forbidden: staff access required")
}

func RequireAdmin() gin.HandlerFunc {
	return requireClaims(func(claims *auth.Claims) bool { return claims.IsAdmin() }, "Forbidden: admin access required")
}

func requireClaims(allow func(*auth.Claims) bool, message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := ClaimsFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "authentication required"})
			return
		}
		if !allow(claims) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"success": false, "error": message})
			return
		}
		c.Next()
	}
}

func ClaimsFromContext(c *gin.Context) (*auth.Claims, bool) {
	value, ok := c.Get(claimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := value.(*auth.Claims)
	return claims, ok
}
