package middleware

import (
	"net/http"

	"educonnect/utils"

	"github.com/gin-gonic/gin"
)

// RequireRole rejects requests whose authenticated role is not one of
// the allowed set. Must run after JWTAuthMiddleware.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := RoleFrom(c)
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}
		utils.JSONError(c, http.StatusForbidden, "you do not have permission to access this resource")
		c.Abort()
	}
}
