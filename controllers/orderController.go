package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Kariqs/storefront-api/initializers"
	"github.com/Kariqs/storefront-api/models"
	"github.com/Kariqs/storefront-api/services"
	"github.com/gin-gonic/gin"
)

// orderStaff may read and advance any customer's order.
var orderStaff = []string{models.RoleStaff}

// authorizeOrder loads the order in the URL and checks the caller may act
// on it.
func authorizeOrder(ctx *gin.Context, staffRoles ...string) (*models.Order, bool) {
	orderID, ok := parseIDParam(ctx, "orderId")
	if !ok {
		return nil, false
	}
	order, err := services.GetOrder(database(ctx), orderID)
	if err != nil {
		respondWithServiceError(ctx, "Order not found", err)
		return nil, false
	}
	if !authorizeCustomer(ctx, order.CustomerID, staffRoles...) {
		return nil, false
	}
	return order, true
}

func GetOrders(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "15"))
	filter := services.OrderFilter{Page: page, Limit: limit, Sort: ctx.DefaultQuery("sort", "desc")}

	if raw := ctx.Query("status"); raw != "" {
		status, err := services.ParseOrderStatus(raw)
		if err != nil {
			respondWithServiceError(ctx, "Invalid status filter", err)
			return
		}
		filter.Status = status
	}

	result, err := services.ListOrders(database(ctx), filter)
	if err != nil {
		respondWithServiceError(ctx, "Failed to fetch orders", err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"orders": result.Orders,
		"metadata": gin.H{
			"total": result.Total,
			"page":  result.Page,
			"limit": result.Limit,
		},
	})
}

func GetOrder(ctx *gin.Context) {
	order, ok := authorizeOrder(ctx, orderStaff...)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, order)
}

func GetOrdersByCustomerID(ctx *gin.Context) {
	customerID, ok := parseIDParam(ctx, "customerId")
	if !ok || !authorizeCustomer(ctx, customerID, orderStaff...) {
		return
	}
	orders, err := services.ListOrdersByCustomer(database(ctx), customerID)
	if err != nil {
		respondWithServiceError(ctx, "Failed to fetch orders", err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"orders": orders})
}

// GetOrdersByDateRange expects start and end as YYYY-MM-DD; both days are
// included.
func GetOrdersByDateRange(ctx *gin.Context) {
	start, err := time.Parse(time.DateOnly, ctx.Query("start"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid start date, expected YYYY-MM-DD", err)
		return
	}
	end, err := time.Parse(time.DateOnly, ctx.Query("end"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid end date, expected YYYY-MM-DD", err)
		return
	}

	orders, err := services.ListOrdersByDateRange(database(ctx), start, end)
	if err != nil {
		respondWithServiceError(ctx, "Failed to fetch orders", err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"orders": orders})
}

func CountOpenOrders(ctx *gin.Context) {
	count, err := services.CountOpenOrders(database(ctx))
	if err != nil {
		respondWithServiceError(ctx, "Failed to count orders", err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"open": count})
}

func UpdateOrderStatus(ctx *gin.Context) {
	orderID, ok := parseIDParam(ctx, "orderId")
	if !ok {
		return
	}
	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	order, err := services.UpdateOrderStatus(database(ctx), orderID, body.Status)
	if err != nil {
		respondWithServiceError(ctx, "Failed to update order status", err)
		return
	}
	ctx.JSON(http.StatusOK, order)
}

func CancelOrder(ctx *gin.Context) {
	order, ok := authorizeOrder(ctx)
	if !ok {
		return
	}
	cancelled, err := services.CancelOrder(database(ctx), order.ID)
	if err != nil {
		respondWithServiceError(ctx, "Failed to cancel order", err)
		return
	}
	ctx.JSON(http.StatusOK, cancelled)
}

func PayOrder(ctx *gin.Context) {
	order, ok := authorizeOrder(ctx)
	if !ok {
		return
	}
	var body struct {
		PaymentMethodID uint `json:"paymentMethodId" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	paid, err := services.ProcessPayment(ctx.Request.Context(), database(ctx), PaymentGateway,
		initializers.AppConfig.PaymentCurrency, order.ID, body.PaymentMethodID)
	if err != nil {
		respondWithServiceError(ctx, "Payment failed", err)
		return
	}
	ctx.JSON(http.StatusOK, paid)
}

func GetOrderPayments(ctx *gin.Context) {
	order, ok := authorizeOrder(ctx, orderStaff...)
	if !ok {
		return
	}
	payments, err := services.ListPayments(database(ctx), order.ID)
	if err != nil {
		respondWithServiceError(ctx, "Failed to fetch payments", err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"payments": payments})
}

func DeleteOrder(ctx *gin.Context) {
	orderID, ok := parseIDParam(ctx, "orderId")
	if !ok {
		return
	}
	if err := services.DeleteOrder(database(ctx), orderID); err != nil {
		respondWithServiceError(ctx, "Failed to delete order", err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
