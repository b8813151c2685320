package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"itinera/pkg/utils"
)

func JWTAuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.AbortWithError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			return
		}

		claims, err := utils.ValidateToken(secret, strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			utils.AbortWithError(c, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		c.Set("subject", claims.Subject)
		c.Set("Role", claims.Role)
		c.Next()
	}
}

func RoleMiddleware(requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("Role") != requiredRole {
			utils.AbortWithError(c, http.StatusForbidden, "Forbidden: insufficient permissions")
			return
		}
		c.Next()
	}
}
