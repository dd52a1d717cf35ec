package controllers

import (
	"net/http"

	"github.com/Kariqs/storefront-api/models"
	"github.com/Kariqs/storefront-api/services"
	"github.com/gin-gonic/gin"
)

func CreateCategory(ctx *gin.Context) {
	var category models.ProductCategory
	if err := ctx.ShouldBindJSON(&category); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if err := services.CreateCategory(database(ctx), &category); err != nil {
		respondWithServiceError(ctx, "Failed to create category", err)
		return
	}
	ctx.JSON(http.StatusCreated, category)
}

func UpdateCategory(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var input models.ProductCategory
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	category, err := services.UpdateCategory(database(ctx), id, input)
	if err != nil {
		respondWithServiceError(ctx, "Failed to update category", err)
		return
	}
	ctx.JSON(http.StatusOK, category)
}

func GetCategories(ctx *gin.Context) {
	categories, err := services.ListCategories(database(ctx))
	if err != nil {
		respondWithServiceError(ctx, "Unable to fetch categories", err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"categories": categories})
}

func GetCategory(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	category, err := services.GetCategory(database(ctx), id)
	if err != nil {
		respondWithServiceError(ctx, "Category not found", err)
		return
	}
	ctx.JSON(http.StatusOK, category)
}

func DeleteCategory(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	if err := services.DeleteCategory(database(ctx), id); err != nil {
		respondWithServiceError(ctx, "Failed to delete category", err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

func CreateSupplier(ctx *gin.Context) {
	var supplier models.Supplier
	if err := ctx.ShouldBindJSON(&supplier); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if err := services.CreateSupplier(database(ctx), &supplier); err != nil {
		respondWithServiceError(ctx, "Failed to create supplier", err)
		return
	}
	ctx.JSON(http.StatusCreated, supplier)
}

func GetSuppliers(ctx *gin.Context) {
	suppliers, err := services.ListSuppliers(database(ctx))
	if err != nil {
		respondWithServiceError(ctx, "Unable to fetch suppliers", err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"suppliers": suppliers})
}

func GetSupplier(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	supplier, err := services.GetSupplier(database(ctx), id)
	if err != nil {
		respondWithServiceError(ctx, "Supplier not found", err)
		return
	}
	ctx.JSON(http.StatusOK, supplier)
}

func DeleteSupplier(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	if err := services.DeleteSupplier(database(ctx), id); err != nil {
		respondWithServiceError(ctx, "Failed to delete supplier", err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
