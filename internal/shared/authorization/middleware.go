package authorization

import (
	"github.com/gin-gonic/gin"

	"github.com/sovoz-hq/sovoz/internal/shared/constants"
)

// RequireAdmin aborts the request with 403 unless the auth middleware
// resolved an admin principal. Used for status updates and statistics.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole := c.GetString(constants.ContextKeyUserRole)
		if userRole != string(RoleAdmin) {
			c.JSON(403, gin.H{
				"error": "admin access required",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
