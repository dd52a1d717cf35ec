package routes

import (
	"github.com/Kariqs/storefront-api/initializers"
	"github.com/Kariqs/storefront-api/middlewares"
	"github.com/gin-gonic/gin"
)

// Setup registers every route on server. Handlers read the database and
// settings through initializers.
func Setup(server *gin.Engine, cfg initializers.Config) {
	server.Use(middlewares.RequestIDMiddleware())
	server.Use(middlewares.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst).Middleware())

	DefaultRoutes(server)

	api := server.Group("/api")
	requireAuth := middlewares.RequireAuth(cfg.JWTSecret)
	optionalAuth := middlewares.OptionalAuth(cfg.JWTSecret)
	AuthRoutes(api)
	CustomerRoutes(api, requireAuth)
	ProductRoutes(api, requireAuth)
	ShoppingRoutes(api, requireAuth, optionalAuth)
	FulfillmentRoutes(api, requireAuth)
	InventoryRoutes(api, requireAuth)
}
