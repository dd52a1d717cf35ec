package controllers

import (
	"net/http"

	"github.com/Kariqs/storefront-api/models"
	"github.com/Kariqs/storefront-api/services"
	"github.com/gin-gonic/gin"
)

// shippingStaff can see every shipment. Writes are gated by route middleware.
var shippingStaff = []string{models.RoleStaff}

func authorizeShipment(ctx *gin.Context) (*models.Shipment, bool) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return nil, false
	}
	shipment, err := services.GetShipment(database(ctx), id)
	if err != nil {
		respondWithServiceError(ctx, "Shipment not found", err)
		return nil, false
	}
	if !authorizeCustomer(ctx, shipment.CustomerID, shippingStaff...) {
		return nil, false
	}
	return shipment, true
}

func CreateShipment(ctx *gin.Context) {
	var input models.ShipmentInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	shipment, err := services.CreateShipment(database(ctx), input)
	if err != nil {
		respondWithServiceError(ctx, "Failed to create shipment", err)
		return
	}
	ctx.JSON(http.StatusCreated, shipment)
}

// GetShipments lists all shipments, filtered by ?status when given.
func GetShipments(ctx *gin.Context) {
	shipments, err := services.ListShipments(database(ctx), ctx.Query("status"))
	if err != nil {
		respondWithServiceError(ctx, "Failed to fetch shipments", err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"shipments": shipments})
}

func GetShipment(ctx *gin.Context) {
	shipment, ok := authorizeShipment(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, shipment)
}

func GetOrderShipments(ctx *gin.Context) {
	order, ok := authorizeOrder(ctx, shippingStaff...)
	if !ok {
		return
	}
	shipments, err := services.ListShipmentsByOrder(database(ctx), order.ID)
	if err != nil {
		respondWithServiceError(ctx, "Failed to fetch shipments", err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"shipments": shipments})
}

func GetCustomerShipments(ctx *gin.Context) {
	customerID, ok := parseIDParam(ctx, "customerId")
	if !ok || !authorizeCustomer(ctx, customerID, shippingStaff...) {
		return
	}
	shipments, err := services.ListShipmentsByCustomer(database(ctx), customerID)
	if err != nil {
		respondWithServiceError(ctx, "Failed to fetch shipments", err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"shipments": shipments})
}

// TrackShipment is public so a tracking number can be checked without an
// account.
func TrackShipment(ctx *gin.Context) {
	shipment, err := services.TrackShipment(database(ctx), ctx.Param("trackingNumber"))
	if err != nil {
		respondWithServiceError(ctx, "Shipment not found", err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"trackingNumber":      shipment.TrackingNumber,
		"carrier":             shipment.Carrier,
		"trackingUrl":         shipment.TrackingURL,
		"status":              shipment.Status,
		"shippedAt":           shipment.ShippedAt,
		"estimatedDeliveryAt": shipment.EstimatedDeliveryAt,
		"deliveredAt":         shipment.DeliveredAt,
		"events":              shipment.Events,
	})
}

func UpdateShipmentStatus(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var input models.ShipmentStatusInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	shipment, err := services.UpdateShipmentStatus(database(ctx), id, input.Status, input.Notes)
	if err != nil {
		respondWithServiceError(ctx, "Failed to update shipment status", err)
		return
	}
	ctx.JSON(http.StatusOK, shipment)
}

func MarkShipmentDelivered(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var body struct {
		Notes string `json:"notes"`
	}
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&body); err != nil {
			respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
			return
		}
	}
	shipment, err := services.MarkShipmentDelivered(database(ctx), id, body.Notes)
	if err != nil {
		respondWithServiceError(ctx, "Failed to mark shipment delivered", err)
		return
	}
	ctx.JSON(http.StatusOK, shipment)
}

func UpdateTrackingInfo(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var input models.TrackingInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	shipment, err := services.UpdateTrackingInfo(database(ctx), id, input)
	if err != nil {
		respondWithServiceError(ctx, "Failed to update tracking information", err)
		return
	}
	ctx.JSON(http.StatusOK, shipment)
}

func AddShipmentEvent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var input models.ShipmentEventInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	shipment, err := services.AddShipmentEvent(database(ctx), id, input)
	if err != nil {
		respondWithServiceError(ctx, "Failed to add shipment event", err)
		return
	}
	ctx.JSON(http.StatusCreated, shipment)
}
