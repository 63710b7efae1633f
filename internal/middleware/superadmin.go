package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type EmailLookup interface {
	EmailByID(ctx context.Context, userID string) (string, error)
}

// SuperAdminMiddleware пускает в /admin по одному из двух путей:
// bearer с префиксом "super-admin-token-" (криптографически не проверяется,
// так работает существующий фронт) либо обычный JWT, чей владелец
// числится в списке admin email из конфига.
func SuperAdminMiddleware(validator AccessValidator, users EmailLookup, adminEmails []string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(adminEmails))
	for _, e := range adminEmails {
		allowed[strings.ToLower(e)] = struct{}{}
	}

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}
		token := parts[1]

		if strings.HasPrefix(token, "super-admin-token-") {
			c.Set("isSuperAdmin", true)
			c.Next()
			return
		}

		userID, err := validator.ValidateAccess(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		email, err := users.EmailByID(c, userID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		if _, ok := allowed[strings.ToLower(email)]; !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Super-admin access required"})
			return
		}

		c.Set("userId", userID)
		c.Set("isSuperAdmin", true)
		c.Next()
	}
}
