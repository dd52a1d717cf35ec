package routes

import (
	"github.com/Kariqs/storefront-api/controllers"
	"github.com/Kariqs/storefront-api/middlewares"
	"github.com/gin-gonic/gin"
)

func CustomerRoutes(api *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	customers := api.Group("/customers", requireAuth)
	{
		customers.GET("", middlewares.RequireAdmin(), controllers.GetCustomers)
		customers.POST("", middlewares.RequireAdmin(), controllers.CreateCustomer)
		customers.GET("/:customerId", controllers.GetCustomer)
		customers.PUT("/:customerId", controllers.UpdateCustomer)
		customers.DELETE("/:customerId", middlewares.RequireAdmin(), controllers.DeleteCustomer)
	}
}
