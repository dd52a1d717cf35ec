package middlewares

import (
	"net/http"

	"github.com/Kariqs/storefront-api/authz"
	"github.com/Kariqs/storefront-api/models"
	"github.com/gin-gonic/gin"
)

// RequireRole lets the request through only if RequireAuth stored a
// principal holding one of roles.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		principal, exists := CurrentPrincipal(ctx)
		if !exists {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "User not found in context"})
			return
		}

		if !authz.HasAnyRole(principal, roles...) {
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Insufficient role for this operation"})
			return
		}

		ctx.Next()
	}
}

func RequireAdmin() gin.HandlerFunc {
	return RequireRole(models.RoleAdmin)
}
