package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"load-analytics/pkg/utils"
)

const (
	RoleAdmin      = "admin"
	RoleDispatcher = "dispatcher"
)

func RoleMiddleware(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole := c.GetString(ContextRole)
		if userRole == "" {
			utils.ErrorResponse(c, http.StatusForbidden, "Role not found in context")
			c.Abort()
			return
		}

		for _, allowedRole := range allowedRoles {
			if userRole == allowedRole {
				c.Next()
				return
			}
		}

		utils.ErrorResponse(c, http.StatusForbidden, "Insufficient permissions")
		c.Abort()
	}
}

// DispatcherOnly lets dispatchers and admins alter load times
func DispatcherOnly() gin.HandlerFunc {
	return RoleMiddleware(RoleDispatcher, RoleAdmin)
}
