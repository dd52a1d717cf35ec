package routes

import (
	"github.com/Kariqs/storefront-api/controllers"
	"github.com/Kariqs/storefront-api/middlewares"
	"github.com/Kariqs/storefront-api/models"
	"github.com/gin-gonic/gin"
)

// FulfillmentRoutes mounts customer addresses and order shipments. Shipment
// writes are for admins and staff; customers may read their own.
func FulfillmentRoutes(api *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	addresses := api.Group("/addresses", requireAuth)
	{
		addresses.POST("", controllers.CreateAddress)
		addresses.GET("/customer/:customerId", controllers.GetCustomerAddresses)
		addresses.GET("/customer/:customerId/default", controllers.GetDefaultAddress)
		addresses.GET("/:id", controllers.GetAddress)
		addresses.PUT("/:id", controllers.UpdateAddress)
		addresses.PUT("/:id/default", controllers.SetDefaultAddress)
		addresses.DELETE("/:id", controllers.DeleteAddress)
	}

	api.GET("/shipping/track/:trackingNumber", controllers.TrackShipment)
	shipping := api.Group("/shipping", requireAuth)
	shippingStaff := middlewares.RequireRole(models.RoleAdmin, models.RoleStaff)
	{
		shipping.GET("", shippingStaff, controllers.GetShipments)
		shipping.POST("", shippingStaff, controllers.CreateShipment)
		shipping.GET("/order/:orderId", controllers.GetOrderShipments)
		shipping.GET("/customer/:customerId", controllers.GetCustomerShipments)
		shipping.GET("/:id", controllers.GetShipment)
		shipping.PUT("/:id/status", shippingStaff, controllers.UpdateShipmentStatus)
		shipping.PUT("/:id/tracking", shippingStaff, controllers.UpdateTrackingInfo)
		shipping.POST("/:id/events", shippingStaff, controllers.AddShipmentEvent)
		shipping.PUT("/:id/deliver", shippingStaff, controllers.MarkShipmentDelivered)
	}
}
