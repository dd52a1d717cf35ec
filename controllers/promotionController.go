package controllers

import (
	"net/http"
	"time"

	"github.com/Kariqs/storefront-api/models"
	"github.com/Kariqs/storefront-api/services"
	"github.com/gin-gonic/gin"
)

func CreatePromotion(ctx *gin.Context) {
	var promo models.Promotion
	if err := ctx.ShouldBindJSON(&promo); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if err := services.CreatePromotion(database(ctx), &promo); err != nil {
		respondWithServiceError(ctx, "Failed to create promotion", err)
		return
	}
	ctx.JSON(http.StatusCreated, promo)
}

func UpdatePromotion(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var input models.Promotion
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	promo, err := services.UpdatePromotion(database(ctx), id, input)
	if err != nil {
		respondWithServiceError(ctx, "Failed to update promotion", err)
		return
	}
	ctx.JSON(http.StatusOK, promo)
}

// GetPromotions lists every promotion, or with ?active=true only those
// running right now.
func GetPromotions(ctx *gin.Context) {
	var (
		promos []models.Promotion
		err    error
	)
	if ctx.Query("active") == "true" {
		promos, err = services.ListActivePromotions(database(ctx), time.Now().UTC())
	} else {
		promos, err = services.ListPromotions(database(ctx))
	}
	if err != nil {
		respondWithServiceError(ctx, "Failed to fetch promotions", err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"promotions": promos})
}

func GetPromotion(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	promo, err := services.GetPromotion(database(ctx), id)
	if err != nil {
		respondWithServiceError(ctx, "Promotion not found", err)
		return
	}
	ctx.JSON(http.StatusOK, promo)
}

func DeletePromotion(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	if err := services.DeletePromotion(database(ctx), id); err != nil {
		respondWithServiceError(ctx, "Failed to delete promotion", err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
