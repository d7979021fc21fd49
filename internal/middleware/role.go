package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotelier/internal/domain"
	"hotelier/internal/pkg/response"
)

// RequireRole ensures the authenticated user holds one of the given
// roles.
func RequireRole(roles ...domain.UserRole) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[string(r)] = true
	}

	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Role not found in token")
			c.Abort()
			return
		}

		if s, ok := role.(string); !ok || !allowed[s] {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Access denied: insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}

// StaffOnly restricts a route to front-desk roles.
func StaffOnly() gin.HandlerFunc {
	return RequireRole(domain.RoleReceptionist, domain.RoleManager)
}

// ManagerOnly restricts a route to managers.
func ManagerOnly() gin.HandlerFunc {
	return RequireRole(domain.RoleManager)
}
