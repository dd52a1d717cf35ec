package controllers

import (
	"net/http"

	"github.com/Kariqs/storefront-api/models"
	"github.com/Kariqs/storefront-api/services"
	"github.com/gin-gonic/gin"
)

func CreateCustomer(ctx *gin.Context) {
	var customer models.Customer
	if err := ctx.ShouldBindJSON(&customer); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if err := services.CreateCustomer(database(ctx), &customer); err != nil {
		respondWithServiceError(ctx, "Failed to create customer", err)
		return
	}
	ctx.JSON(http.StatusCreated, customer)
}

func GetCustomers(ctx *gin.Context) {
	customers, err := services.ListCustomers(database(ctx))
	if err != nil {
		respondWithServiceError(ctx, "Unable to fetch customers", err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"customers": customers})
}

func GetCustomer(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "customerId")
	if !ok || !authorizeCustomer(ctx, id) {
		return
	}
	customer, err := services.GetCustomer(database(ctx), id)
	if err != nil {
		respondWithServiceError(ctx, "Customer not found", err)
		return
	}
	ctx.JSON(http.StatusOK, customer)
}

func UpdateCustomer(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "customerId")
	if !ok || !authorizeCustomer(ctx, id) {
		return
	}
	var input models.Customer
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	customer, err := services.UpdateCustomer(database(ctx), id, input)
	if err != nil {
		respondWithServiceError(ctx, "Failed to update customer", err)
		return
	}
	ctx.JSON(http.StatusOK, customer)
}

func DeleteCustomer(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "customerId")
	if !ok {
		return
	}
	if err := services.DeleteCustomer(database(ctx), id); err != nil {
		respondWithServiceError(ctx, "Failed to delete customer", err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
