package middlewares

import (
	"log"
	"net/http"
	"strings"

	"github.com/Kariqs/storefront-api/authz"
	"github.com/gin-gonic/gin"
)

const principalKey = "principal"

// RequireAuth validates the bearer token and stores the caller's
// authz.Principal in the gin context.
func RequireAuth(secret string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if _, present := bearerToken(ctx); !present {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authorization token required"})
			return
		}
		if authenticate(ctx, secret) {
			ctx.Next()
		}
	}
}

// OptionalAuth identifies the caller when a bearer token is sent and lets
// anonymous requests through. A token that fails validation is still a 401.
func OptionalAuth(secret string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if _, present := bearerToken(ctx); !present {
			ctx.Next()
			return
		}
		if authenticate(ctx, secret) {
			ctx.Next()
		}
	}
}

func bearerToken(ctx *gin.Context) (string, bool) {
	tokenString, found := strings.CutPrefix(ctx.GetHeader("Authorization"), "Bearer ")
	tokenString = strings.TrimSpace(tokenString)
	return tokenString, found && tokenString != ""
}

func authenticate(ctx *gin.Context, secret string) bool {
	tokenString, _ := bearerToken(ctx)
	claims, err := authz.ParseToken(tokenString, secret)
	if err != nil {
		log.Printf("[%s] rejected token: %v", RequestID(ctx), err)
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token"})
		return false
	}
	ctx.Set(principalKey, claims.Principal())
	return true
}

// CurrentPrincipal returns the caller stored by RequireAuth or OptionalAuth.
func CurrentPrincipal(ctx *gin.Context) (authz.Principal, bool) {
	value, exists := ctx.Get(principalKey)
	if !exists {
		return authz.Principal{}, false
	}
	principal, ok := value.(authz.Principal)
	return principal, ok
}
