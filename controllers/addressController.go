package controllers

import (
	"net/http"

	"github.com/Kariqs/storefront-api/models"
	"github.com/Kariqs/storefront-api/services"
	"github.com/gin-gonic/gin"
)

// addressReaders may look up any customer's addresses to fulfil orders.
var addressReaders = []string{models.RoleManager, models.RoleStaff}

func authorizeAddress(ctx *gin.Context, staffRoles ...string) (*models.Address, bool) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return nil, false
	}
	address, err := services.GetAddress(database(ctx), id)
	if err != nil {
		respondWithServiceError(ctx, "Address not found", err)
		return nil, false
	}
	if !authorizeCustomer(ctx, address.CustomerID, staffRoles...) {
		return nil, false
	}
	return address, true
}

func CreateAddress(ctx *gin.Context) {
	var input models.AddressInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if !authorizeCustomer(ctx, input.CustomerID) {
		return
	}
	address, err := services.CreateAddress(database(ctx), input)
	if err != nil {
		respondWithServiceError(ctx, "Failed to save address", err)
		return
	}
	ctx.JSON(http.StatusCreated, address)
}

func GetCustomerAddresses(ctx *gin.Context) {
	customerID, ok := parseIDParam(ctx, "customerId")
	if !ok || !authorizeCustomer(ctx, customerID, addressReaders...) {
		return
	}
	addresses, err := services.ListAddresses(database(ctx), customerID)
	if err != nil {
		respondWithServiceError(ctx, "Failed to fetch addresses", err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"addresses": addresses})
}

func GetDefaultAddress(ctx *gin.Context) {
	customerID, ok := parseIDParam(ctx, "customerId")
	if !ok || !authorizeCustomer(ctx, customerID, addressReaders...) {
		return
	}
	address, err := services.GetDefaultAddress(database(ctx), customerID)
	if err != nil {
		respondWithServiceError(ctx, "Default address not found", err)
		return
	}
	ctx.JSON(http.StatusOK, address)
}

func GetAddress(ctx *gin.Context) {
	address, ok := authorizeAddress(ctx, addressReaders...)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, address)
}

func UpdateAddress(ctx *gin.Context) {
	address, ok := authorizeAddress(ctx)
	if !ok {
		return
	}
	var input models.AddressInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	updated, err := services.UpdateAddress(database(ctx), address.ID, input)
	if err != nil {
		respondWithServiceError(ctx, "Failed to update address", err)
		return
	}
	ctx.JSON(http.StatusOK, updated)
}

func SetDefaultAddress(ctx *gin.Context) {
	address, ok := authorizeAddress(ctx)
	if !ok {
		return
	}
	updated, err := services.SetDefaultAddress(database(ctx), address.ID)
	if err != nil {
		respondWithServiceError(ctx, "Failed to set default address", err)
		return
	}
	ctx.JSON(http.StatusOK, updated)
}

func DeleteAddress(ctx *gin.Context) {
	address, ok := authorizeAddress(ctx)
	if !ok {
		return
	}
	if err := services.DeleteAddress(database(ctx), address.ID); err != nil {
		respondWithServiceError(ctx, "Failed to delete address", err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
