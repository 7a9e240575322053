package middleware

import (
	"net/http"
	"strings"

	"github.com/navarojreddy48/PriceWatcher-AI/internal/auth"

	"github.com/gin-gonic/gin"
)

func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")

		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization format, use 'Bearer <token>'"})
			c.Abort()
			return
		}

		claims, err := auth.ValidateToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token: " + err.Error()})
			c.Abort()
			return
		}

		// Attach user info to request context
		c.Set("userID", claims.UserID)
		c.Set("tenantID", claims.TenantID)
		c.Set("userEmail", claims.Email)
		c.Set("userRole", claims.Role)
		c.Next()
	}
}

// TenantID resolves the caller's restaurant scope from the request
// context. Every tenant-partitioned handler goes through this.
func TenantID(c *gin.Context) (string, bool) {
	value, exists := c.Get("tenantID")
	if !exists {
		return "", false
	}
	tenantID, ok := value.(string)
	if !ok || tenantID == "" {
		return "", false
	}
	return tenantID, true
}
