package controllers

import (
	"net/http"
	"strconv"

	"github.com/Kariqs/storefront-api/models"
	"github.com/Kariqs/storefront-api/services"
	"github.com/gin-gonic/gin"
)

const defaultLowStockThreshold = 10

func inventoryKeyParams(ctx *gin.Context) (uint, uint, bool) {
	storeID, ok := parseIDParam(ctx, "storeId")
	if !ok {
		return 0, 0, false
	}
	productID, ok := parseIDParam(ctx, "productId")
	if !ok {
		return 0, 0, false
	}
	return storeID, productID, true
}

func CreateStore(ctx *gin.Context) {
	var store models.Store
	if err := ctx.ShouldBindJSON(&store); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if err := services.CreateStore(database(ctx), &store); err != nil {
		respondWithServiceError(ctx, "Failed to create store", err)
		return
	}
	ctx.JSON(http.StatusCreated, store)
}

func GetStores(ctx *gin.Context) {
	stores, err := services.ListStores(database(ctx))
	if err != nil {
		respondWithServiceError(ctx, "Failed to fetch stores", err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"stores": stores})
}

func CreateInventory(ctx *gin.Context) {
	var input models.InventoryInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	record, err := services.CreateInventory(database(ctx), input.StoreID, input.ProductID, *input.Quantity, input.Location)
	if err != nil {
		respondWithServiceError(ctx, "Failed to create inventory", err)
		return
	}
	ctx.JSON(http.StatusCreated, record)
}

func GetInventory(ctx *gin.Context) {
	records, err := services.ListInventory(database(ctx))
	if err != nil {
		respondWithServiceError(ctx, "Failed to fetch inventory", err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"inventory": records})
}

func GetInventoryByStore(ctx *gin.Context) {
	storeID, ok := parseIDParam(ctx, "storeId")
	if !ok {
		return
	}
	records, err := services.ListInventoryByStore(database(ctx), storeID)
	if err != nil {
		respondWithServiceError(ctx, "Failed to fetch inventory", err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"inventory": records})
}

func GetInventoryByProduct(ctx *gin.Context) {
	productID, ok := parseIDParam(ctx, "productId")
	if !ok {
		return
	}
	records, err := services.ListInventoryByProduct(database(ctx), productID)
	if err != nil {
		respondWithServiceError(ctx, "Failed to fetch inventory", err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"inventory": records})
}

func GetInventoryRecord(ctx *gin.Context) {
	storeID, productID, ok := inventoryKeyParams(ctx)
	if !ok {
		return
	}
	record, err := services.GetInventory(database(ctx), storeID, productID)
	if err != nil {
		respondWithServiceError(ctx, "Inventory not found", err)
		return
	}
	ctx.JSON(http.StatusOK, record)
}

func GetLowStock(ctx *gin.Context) {
	threshold, err := strconv.Atoi(ctx.DefaultQuery("threshold", strconv.Itoa(defaultLowStockThreshold)))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid threshold", err)
		return
	}
	records, err := services.ListLowStock(database(ctx), threshold)
	if err != nil {
		respondWithServiceError(ctx, "Failed to fetch low stock", err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"inventory": records, "threshold": threshold})
}

func UpdateInventory(ctx *gin.Context) {
	storeID, productID, ok := inventoryKeyParams(ctx)
	if !ok {
		return
	}
	var input models.InventoryInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	record, err := services.UpdateInventory(database(ctx), storeID, productID, *input.Quantity, input.Location)
	if err != nil {
		respondWithServiceError(ctx, "Failed to update inventory", err)
		return
	}
	ctx.JSON(http.StatusOK, record)
}

func AdjustInventory(ctx *gin.Context) {
	storeID, productID, ok := inventoryKeyParams(ctx)
	if !ok {
		return
	}
	var body struct {
		Delta *int `json:"delta" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	record, err := services.AdjustInventory(database(ctx), storeID, productID, *body.Delta)
	if err != nil {
		respondWithServiceError(ctx, "Failed to adjust inventory", err)
		return
	}
	ctx.JSON(http.StatusOK, record)
}

func DeleteInventory(ctx *gin.Context) {
	storeID, productID, ok := inventoryKeyParams(ctx)
	if !ok {
		return
	}
	if err := services.DeleteInventory(database(ctx), storeID, productID); err != nil {
		respondWithServiceError(ctx, "Failed to delete inventory", err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
