package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/Kariqs/storefront-api/initializers"
	"github.com/Kariqs/storefront-api/models"
	"github.com/Kariqs/storefront-api/services"
	"github.com/gin-gonic/gin"
)

// authorizeWishlist loads the wishlist named by :id and checks the caller
// owns it.
func authorizeWishlist(ctx *gin.Context) (*models.Wishlist, bool) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return nil, false
	}
	wishlist, err := services.GetWishlist(database(ctx), id)
	if err != nil {
		respondWithServiceError(ctx, "Wishlist not found", err)
		return nil, false
	}
	if !authorizeCustomer(ctx, wishlist.CustomerID) {
		return nil, false
	}
	return wishlist, true
}

func CreateWishlist(ctx *gin.Context) {
	var input models.WishlistInput
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

	wishlist, err := services.CreateWishlist(database(ctx), input)
	if err != nil {
		respondWithServiceError(ctx, "Failed to create wishlist", err)
		return
	}
	ctx.JSON(http.StatusCreated, wishlist)
}

func GetCustomerWishlists(ctx *gin.Context) {
	customerID, ok := parseIDParam(ctx, "customerId")
	if !ok || !authorizeCustomer(ctx, customerID) {
		return
	}
	wishlists, err := services.ListWishlists(database(ctx), customerID)
	if err != nil {
		respondWithServiceError(ctx, "Failed to fetch wishlists", err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"wishlists": wishlists})
}

func GetWishlist(ctx *gin.Context) {
	wishlist, ok := authorizeWishlist(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, wishlist)
}

func UpdateWishlist(ctx *gin.Context) {
	wishlist, ok := authorizeWishlist(ctx)
	if !ok {
		return
	}
	var input models.WishlistInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	updated, err := services.UpdateWishlist(database(ctx), wishlist.ID, input)
	if err != nil {
		respondWithServiceError(ctx, "Failed to update wishlist", err)
		return
	}
	ctx.JSON(http.StatusOK, updated)
}

func DeleteWishlist(ctx *gin.Context) {
	wishlist, ok := authorizeWishlist(ctx)
	if !ok {
		return
	}
	if err := services.DeleteWishlist(database(ctx), wishlist.ID); err != nil {
		respondWithServiceError(ctx, "Failed to delete wishlist", err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

func AddProductToWishlist(ctx *gin.Context) {
	wishlist, ok := authorizeWishlist(ctx)
	if !ok {
		return
	}
	var body struct {
		ProductID uint `json:"productId" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	updated, err := services.AddProductToWishlist(database(ctx), wishlist.ID, body.ProductID)
	if err != nil {
		respondWithServiceError(ctx, "Unable to add product to wishlist", err)
		return
	}
	ctx.JSON(http.StatusOK, updated)
}

func RemoveProductFromWishlist(ctx *gin.Context) {
	wishlist, ok := authorizeWishlist(ctx)
	if !ok {
		return
	}
	productID, ok := parseIDParam(ctx, "productId")
	if !ok {
		return
	}
	updated, err := services.RemoveProductFromWishlist(database(ctx), wishlist.ID, productID)
	if err != nil {
		respondWithServiceError(ctx, "Unable to remove product from wishlist", err)
		return
	}
	ctx.JSON(http.StatusOK, updated)
}

// MoveWishlistProductToCart moves one product to the cart; ?quantity
// defaults to 1.
func MoveWishlistProductToCart(ctx *gin.Context) {
	wishlist, ok := authorizeWishlist(ctx)
	if !ok {
		return
	}
	productID, ok := parseIDParam(ctx, "productId")
	if !ok {
		return
	}
	quantity, err := strconv.Atoi(ctx.DefaultQuery("quantity", "1"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid quantity", err)
		return
	}

	moved, err := services.MoveProductToCart(database(ctx), wishlist.ID, productID, quantity)
	if err != nil {
		respondWithServiceError(ctx, "Unable to move product to cart", err)
		return
	}
	ctx.JSON(http.StatusOK, moved)
}

func ShareWishlist(ctx *gin.Context) {
	wishlist, ok := authorizeWishlist(ctx)
	if !ok {
		return
	}
	shared, err := services.ShareWishlist(database(ctx), wishlist.ID)
	if err != nil {
		respondWithServiceError(ctx, "Unable to share wishlist", err)
		return
	}
	shareURL := strings.TrimRight(initializers.AppConfig.FrontendURL, "/") + "/wishlists/shared/" + *shared.ShareCode
	ctx.JSON(http.StatusOK, gin.H{"shareUrl": shareURL, "wishlist": shared})
}

func UnshareWishlist(ctx *gin.Context) {
	wishlist, ok := authorizeWishlist(ctx)
	if !ok {
		return
	}
	updated, err := services.UnshareWishlist(database(ctx), wishlist.ID)
	if err != nil {
		respondWithServiceError(ctx, "Unable to unshare wishlist", err)
		return
	}
	ctx.JSON(http.StatusOK, updated)
}

// GetSharedWishlist is public; the share code is the credential.
func GetSharedWishlist(ctx *gin.Context) {
	wishlist, err := services.GetSharedWishlist(database(ctx), ctx.Param("shareCode"))
	if err != nil {
		respondWithServiceError(ctx, "Wishlist not found", err)
		return
	}
	ctx.JSON(http.StatusOK, wishlist)
}
