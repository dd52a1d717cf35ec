package routes

import (
	"github.com/Kariqs/storefront-api/controllers"
	"github.com/Kariqs/storefront-api/middlewares"
	"github.com/Kariqs/storefront-api/models"
	"github.com/gin-gonic/gin"
)

// ShoppingRoutes mounts the customer-owned resources. Every handler checks
// ownership of the customer, cart line, order, payment method, review or
// wishlist it touches.
func ShoppingRoutes(api *gin.RouterGroup, requireAuth, optionalAuth gin.HandlerFunc) {
	carts := api.Group("/carts", requireAuth)
	{
		carts.POST("", controllers.AddToCart)
		carts.GET("/customer/:customerId", controllers.GetCart)
		carts.DELETE("/customer/:customerId", controllers.ClearCart)
		carts.POST("/customer/:customerId/checkout", controllers.Checkout)
		carts.GET("/items/:cartId", controllers.GetCartItem)
		carts.PUT("/items/:cartId/products/:productId", controllers.UpdateCartItemQuantity)
		carts.DELETE("/items/:cartId/products/:productId", controllers.RemoveFromCart)
	}

	orders := api.Group("/orders", requireAuth)
	{
		orders.GET("", middlewares.RequireRole(models.RoleAdmin, models.RoleStaff), controllers.GetOrders)
		orders.GET("/date-range", middlewares.RequireAdmin(), controllers.GetOrdersByDateRange)
		orders.GET("/open-count", middlewares.RequireRole(models.RoleAdmin, models.RoleStaff), controllers.CountOpenOrders)
		orders.GET("/customer/:customerId", controllers.GetOrdersByCustomerID)
		orders.GET("/:orderId", controllers.GetOrder)
		orders.GET("/:orderId/payments", controllers.GetOrderPayments)
		orders.PUT("/:orderId/status", middlewares.RequireRole(models.RoleAdmin, models.RoleStaff), controllers.UpdateOrderStatus)
		orders.PUT("/:orderId/cancel", controllers.CancelOrder)
		orders.POST("/:orderId/payment", controllers.PayOrder)
		orders.DELETE("/:orderId", middlewares.RequireAdmin(), controllers.DeleteOrder)
	}

	methods := api.Group("/payment-methods", requireAuth)
	{
		methods.POST("", controllers.CreatePaymentMethod)
		methods.GET("/customer/:customerId", controllers.GetPaymentMethodsByCustomer)
		methods.GET("/:id", controllers.GetPaymentMethod)
		methods.PUT("/:id/default", controllers.SetDefaultPaymentMethod)
		methods.DELETE("/:id", controllers.DeletePaymentMethod)
	}

	reviews := api.Group("/reviews")
	{
		reviews.GET("/:id", optionalAuth, controllers.GetReview)

		authed := reviews.Group("", requireAuth)
		authed.POST("", controllers.CreateReview)
		authed.GET("/customer/:customerId", controllers.GetCustomerReviews)
		authed.PUT("/:id", controllers.UpdateReview)
		authed.DELETE("/:id", controllers.DeleteReview)
		authed.PUT("/:id/approve", middlewares.RequireAdmin(), controllers.ApproveReview)
		authed.PUT("/:id/reject", middlewares.RequireAdmin(), controllers.RejectReview)
	}

	api.GET("/wishlists/shared/:shareCode", controllers.GetSharedWishlist)
	wishlists := api.Group("/wishlists", requireAuth)
	{
		wishlists.POST("", controllers.CreateWishlist)
		wishlists.GET("/customer/:customerId", controllers.GetCustomerWishlists)
		wishlists.GET("/:id", controllers.GetWishlist)
		wishlists.PUT("/:id", controllers.UpdateWishlist)
		wishlists.DELETE("/:id", controllers.DeleteWishlist)
		wishlists.POST("/:id/products", controllers.AddProductToWishlist)
		wishlists.DELETE("/:id/products/:productId", controllers.RemoveProductFromWishlist)
		wishlists.POST("/:id/products/:productId/move-to-cart", controllers.MoveWishlistProductToCart)
		wishlists.PUT("/:id/share", controllers.ShareWishlist)
		wishlists.PUT("/:id/unshare", controllers.UnshareWishlist)
	}
}
