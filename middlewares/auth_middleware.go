package middlewares

import (
	"net/http"
	"strings"

	"tailorshop-backend/config"
	"tailorshop-backend/models"
	"tailorshop-backend/utils"

	"github.com/gin-gonic/gin"
)

func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := utils.VerifyToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		c.Set("user_id", uint(claims["user_id"].(float64)))
		c.Set("username", claims["username"])
		c.Set("role", claims["role"])
		c.Next()
	}
}

func RequireRole(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := c.Get("role")
		for _, r := range roles {
			if role == string(r) {
				c.Next()
				return
			}
		}
		c.JSON(http.StatusForbidden, gin.H{"error": "insufficient role"})
		c.Abort()
	}
}

// RequirePerm checks the permission code against user_permissions. Admins
// pass implicitly.
func RequirePerm(code string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if role, _ := c.Get("role"); role == string(models.RoleAdmin) {
			c.Next()
			return
		}

		userID, _ := c.Get("user_id")
		var cnt int64
		config.DB.Model(&models.UserPermission{}).
			Joins("JOIN permissions ON permissions.id = user_permissions.permission_id").
			Where("user_permissions.user_id = ? AND permissions.code = ?", userID, code).
			Count(&cnt)
		if cnt == 0 {
			c.JSON(http.StatusForbidden, gin.H{"error": "permission denied: " + code})
			c.Abort()
			return
		}
		c.Next()
	}
}

func CurrentUserID(c *gin.Context) uint {
	if v, ok := c.Get("user_id"); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}
