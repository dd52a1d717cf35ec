package controllers

import (
	"net/http"

	"github.com/Kariqs/storefront-api/models"
	"github.com/Kariqs/storefront-api/services"
	"github.com/gin-gonic/gin"
)

// authorizeCartItem loads a cart line and checks the caller owns it.
func authorizeCartItem(ctx *gin.Context) (*models.CartItem, bool) {
	cartID, ok := parseIDParam(ctx, "cartId")
	if !ok {
		return nil, false
	}
	item, err := services.GetCartItem(database(ctx), cartID)
	if err != nil {
		respondWithServiceError(ctx, "Cart item not found", err)
		return nil, false
	}
	if !authorizeCustomer(ctx, item.CustomerID) {
		return nil, false
	}
	return item, true
}

func AddToCart(ctx *gin.Context) {
	var input models.AddToCartInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid input", err)
		return
	}
	if !authorizeCustomer(ctx, input.CustomerID) {
		return
	}

	item, err := services.AddProductToCart(database(ctx), input.CustomerID, input.ProductID, input.Quantity)
	if err != nil {
		respondWithServiceError(ctx, "Unable to add product to cart", err)
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{"message": "Product added to cart", "item": item})
}

func GetCart(ctx *gin.Context) {
	customerID, ok := parseIDParam(ctx, "customerId")
	if !ok || !authorizeCustomer(ctx, customerID) {
		return
	}

	cart, err := services.GetCart(database(ctx), customerID)
	if err != nil {
		respondWithServiceError(ctx, "Failed to fetch cart", err)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"cart": cart})
}

func GetCartItem(ctx *gin.Context) {
	item, ok := authorizeCartItem(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, item)
}

// UpdateCartItemQuantity sets a line's quantity; zero removes the line.
func UpdateCartItemQuantity(ctx *gin.Context) {
	item, ok := authorizeCartItem(ctx)
	if !ok {
		return
	}
	productID, ok := parseIDParam(ctx, "productId")
	if !ok {
		return
	}
	var input models.CartQuantityInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid input", err)
		return
	}

	if *input.Quantity == 0 {
		removed, err := services.RemoveProductFromCart(database(ctx), item.ID, productID)
		if err != nil {
			respondWithServiceError(ctx, "Unable to remove product from cart", err)
			return
		}
		sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Product removed from cart", "item": removed})
		return
	}

	updated, err := services.UpdateCartQuantity(database(ctx), item.ID, productID, *input.Quantity)
	if err != nil {
		respondWithServiceError(ctx, "Unable to update cart item quantity", err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Cart item quantity updated", "item": updated})
}

func RemoveFromCart(ctx *gin.Context) {
	item, ok := authorizeCartItem(ctx)
	if !ok {
		return
	}
	productID, ok := parseIDParam(ctx, "productId")
	if !ok {
		return
	}

	removed, err := services.RemoveProductFromCart(database(ctx), item.ID, productID)
	if err != nil {
		respondWithServiceError(ctx, "Unable to remove product from cart", err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Product removed from cart", "item": removed})
}

func ClearCart(ctx *gin.Context) {
	customerID, ok := parseIDParam(ctx, "customerId")
	if !ok || !authorizeCustomer(ctx, customerID) {
		return
	}
	if err := services.ClearCart(database(ctx), customerID); err != nil {
		respondWithServiceError(ctx, "Unable to clear cart", err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

func Checkout(ctx *gin.Context) {
	customerID, ok := parseIDParam(ctx, "customerId")
	if !ok || !authorizeCustomer(ctx, customerID) {
		return
	}

	order, err := services.Checkout(database(ctx), customerID)
	if err != nil {
		respondWithServiceError(ctx, "Checkout failed", err)
		return
	}
	ctx.JSON(http.StatusCreated, order)
}
