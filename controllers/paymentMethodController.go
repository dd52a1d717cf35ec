package controllers

import (
	"net/http"

	"github.com/Kariqs/storefront-api/models"
	"github.com/Kariqs/storefront-api/services"
	"github.com/gin-gonic/gin"
)

func authorizePaymentMethod(ctx *gin.Context) (*models.PaymentMethod, bool) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return nil, false
	}
	method, err := services.GetPaymentMethod(database(ctx), id)
	if err != nil {
		respondWithServiceError(ctx, "Payment method not found", err)
		return nil, false
	}
	if !authorizeCustomer(ctx, method.CustomerID) {
		return nil, false
	}
	return method, true
}

func CreatePaymentMethod(ctx *gin.Context) {
	var input models.PaymentMethodInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if !authorizeCustomer(ctx, input.CustomerID) {
		return
	}
	method := input.PaymentMethod()
	if err := services.CreatePaymentMethod(database(ctx), &method); err != nil {
		respondWithServiceError(ctx, "Failed to save payment method", err)
		return
	}
	ctx.JSON(http.StatusCreated, method)
}

func GetPaymentMethodsByCustomer(ctx *gin.Context) {
	customerID, ok := parseIDParam(ctx, "customerId")
	if !ok || !authorizeCustomer(ctx, customerID) {
		return
	}
	methods, err := services.ListPaymentMethods(database(ctx), customerID)
	if err != nil {
		respondWithServiceError(ctx, "Failed to fetch payment methods", err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"paymentMethods": methods})
}

func GetPaymentMethod(ctx *gin.Context) {
	method, ok := authorizePaymentMethod(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, method)
}

func SetDefaultPaymentMethod(ctx *gin.Context) {
	method, ok := authorizePaymentMethod(ctx)
	if !ok {
		return
	}
	updated, err := services.SetDefaultPaymentMethod(database(ctx), method.ID)
	if err != nil {
		respondWithServiceError(ctx, "Failed to set default payment method", err)
		return
	}
	ctx.JSON(http.StatusOK, updated)
}

func DeletePaymentMethod(ctx *gin.Context) {
	method, ok := authorizePaymentMethod(ctx)
	if !ok {
		return
	}
	if err := services.DeletePaymentMethod(database(ctx), method.ID); err != nil {
		respondWithServiceError(ctx, "Failed to delete payment method", err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
