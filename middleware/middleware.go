package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JulieDelts/OnlineLearningPlatform/domain"
)

// role checking middleware
func RequireRole(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}

	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			c.JSON(http.StatusForbidden, gin.H{
				"success": false,
				"message": "Forbidden",
			})
			c.Abort()
			return
		}

		roleStr, ok := role.(string)
		if !ok {
			c.JSON(http.StatusForbidden, gin.H{
				"success": false,
				"message": "Forbidden",
			})
			c.Abort()
			return
		}

		if _, ok := allowed[roleStr]; !ok {
			c.JSON(http.StatusForbidden, gin.H{
				"success": false,
				"message": "Forbidden",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

func AdminOnly() gin.HandlerFunc {
	return RequireRole(domain.RoleAdmin)
}

func TeacherOnly() gin.HandlerFunc {
	return RequireRole(domain.RoleTeacher)
}

func StudentOnly() gin.HandlerFunc {
	return RequireRole(domain.RoleStudent)
}

func TeacherOrAdmin() gin.HandlerFunc {
	return RequireRole(domain.RoleTeacher, domain.RoleAdmin)
}
