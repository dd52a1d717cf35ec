package controllers

import (
	"net/http"

	"github.com/Kariqs/storefront-api/initializers"
	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to the Storefront API. All endpoints live under /api.

AUTH
- POST "/api/auth/signup" - Create customer account
- POST "/api/auth/login" - Access account
- POST "/api/auth/verify-email/:activationToken" - Activate account
- POST "/api/auth/forgot-password" - Request password reset
- POST "/api/auth/reset-password/:resetToken" - Reset password

CATALOG
- GET "/api/products", "/api/products/:id", "/api/products/:id/reviews", "/api/products/:id/rating"
- POST/PUT/DELETE "/api/products" - Manage products (admin, manager)
- "/api/categories", "/api/suppliers", "/api/promotions"

SHOPPING
- "/api/customers/:customerId" - Customer profile
- "/api/carts" - Cart lines, clear, checkout
- "/api/orders" - Orders, status, cancel, payment
- "/api/payment-methods" - Saved payment methods
- "/api/reviews" - Product reviews

OPERATIONS
- "/api/stores", "/api/inventory" - Stores and stock levels`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}

// Health reports whether the database answers.
func Health(ctx *gin.Context) {
	sqlDB, err := initializers.DB.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx.Request.Context())
	}
	if err != nil {
		respondWithError(ctx, http.StatusServiceUnavailable, "database unavailable", err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}
