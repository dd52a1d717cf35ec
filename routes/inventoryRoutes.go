package routes

import (
	"github.com/Kariqs/storefront-api/controllers"
	"github.com/Kariqs/storefront-api/middlewares"
	"github.com/Kariqs/storefront-api/models"
	"github.com/gin-gonic/gin"
)

func InventoryRoutes(api *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	managers := middlewares.RequireRole(models.RoleAdmin, models.RoleManager)

	stores := api.Group("/stores", requireAuth, managers)
	{
		stores.GET("", controllers.GetStores)
		stores.POST("", middlewares.RequireAdmin(), controllers.CreateStore)
	}

	inventory := api.Group("/inventory")
	{
		inventory.GET("/product/:productId", controllers.GetInventoryByProduct)
		inventory.GET("/store/:storeId/product/:productId", controllers.GetInventoryRecord)

		managed := inventory.Group("", requireAuth, managers)
		managed.GET("", controllers.GetInventory)
		managed.GET("/low-stock", controllers.GetLowStock)
		managed.GET("/store/:storeId", controllers.GetInventoryByStore)
		managed.POST("", controllers.CreateInventory)
		managed.PUT("/store/:storeId/product/:productId", controllers.UpdateInventory)
		managed.PATCH("/store/:storeId/product/:productId/adjust", controllers.AdjustInventory)
		managed.DELETE("/store/:storeId/product/:productId", middlewares.RequireAdmin(), controllers.DeleteInventory)
	}
}
