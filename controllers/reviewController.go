package controllers

import (
	"net/http"

	"github.com/Kariqs/storefront-api/authz"
	"github.com/Kariqs/storefront-api/models"
	"github.com/Kariqs/storefront-api/services"
	"github.com/gin-gonic/gin"
)

var reviewModerators = []string{models.RoleManager}

func authorizeReview(ctx *gin.Context) (*models.Review, bool) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return nil, false
	}
	review, err := services.GetReview(database(ctx), id)
	if err != nil {
		respondWithServiceError(ctx, "Review not found", err)
		return nil, false
	}
	if !authorizeCustomer(ctx, review.CustomerID) {
		return nil, false
	}
	return review, true
}

// CreateReview defaults the author to the caller's own customer profile.
func CreateReview(ctx *gin.Context) {
	var input models.ReviewInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if principal := currentPrincipal(ctx); input.CustomerID == 0 && principal.CustomerID != nil {
		input.CustomerID = *principal.CustomerID
	}
	if !authorizeCustomer(ctx, input.CustomerID) {
		return
	}

	review, err := services.CreateReview(database(ctx), input)
	if err != nil {
		respondWithServiceError(ctx, "Failed to create review", err)
		return
	}
	ctx.JSON(http.StatusCreated, review)
}

// GetReview shows approved reviews to anyone. Pending and rejected ones are
// reported as missing unless the caller wrote them or moderates.
func GetReview(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	review, err := services.GetReview(database(ctx), id)
	if err != nil {
		respondWithServiceError(ctx, "Review not found", err)
		return
	}
	if !services.IsPublished(review) &&
		!authz.CanActOnCustomerOrStaff(currentPrincipal(ctx), review.CustomerID, reviewModerators...) {
		sendErrorResponse(ctx, http.StatusNotFound, "Review not found")
		return
	}
	ctx.JSON(http.StatusOK, review)
}

func UpdateReview(ctx *gin.Context) {
	review, ok := authorizeReview(ctx)
	if !ok {
		return
	}
	var input models.ReviewInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	updated, err := services.UpdateReview(database(ctx), review.ID, input)
	if err != nil {
		respondWithServiceError(ctx, "Failed to update review", err)
		return
	}
	ctx.JSON(http.StatusOK, updated)
}

func DeleteReview(ctx *gin.Context) {
	review, ok := authorizeReview(ctx)
	if !ok {
		return
	}
	if err := services.DeleteReview(database(ctx), review.ID); err != nil {
		respondWithServiceError(ctx, "Failed to delete review", err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

func moderateReview(ctx *gin.Context, approve bool) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	review, err := services.ModerateReview(database(ctx), id, approve)
	if err != nil {
		respondWithServiceError(ctx, "Failed to moderate review", err)
		return
	}
	ctx.JSON(http.StatusOK, review)
}

func ApproveReview(ctx *gin.Context) {
	moderateReview(ctx, true)
}

func RejectReview(ctx *gin.Context) {
	moderateReview(ctx, false)
}

// GetProductReviews lists approved reviews of a product.
func GetProductReviews(ctx *gin.Context) {
	productID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	reviews, err := services.ListReviewsByProduct(database(ctx), productID, true)
	if err != nil {
		respondWithServiceError(ctx, "Failed to fetch reviews", err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"reviews": reviews})
}

func GetProductRating(ctx *gin.Context) {
	productID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	summary, err := services.ProductRating(database(ctx), productID)
	if err != nil {
		respondWithServiceError(ctx, "Failed to compute rating", err)
		return
	}
	ctx.JSON(http.StatusOK, summary)
}

func GetCustomerReviews(ctx *gin.Context) {
	customerID, ok := parseIDParam(ctx, "customerId")
	if !ok || !authorizeCustomer(ctx, customerID, reviewModerators...) {
		return
	}
	reviews, err := services.ListReviewsByCustomer(database(ctx), customerID)
	if err != nil {
		respondWithServiceError(ctx, "Failed to fetch reviews", err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"reviews": reviews})
}
