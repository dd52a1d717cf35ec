package controllers

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/Kariqs/storefront-api/models"
	"github.com/Kariqs/storefront-api/services"
	"github.com/gin-gonic/gin"
)

// Common error response helper
func respondWithError(ctx *gin.Context, statusCode int, message string, err error) {
	errMsg := ""
	if err != nil {
		errMsg = err.Error()
	}
	ctx.JSON(statusCode, gin.H{
		"message": message,
		"error":   errMsg,
	})
}

// Product handlers
func CreateProduct(ctx *gin.Context) {
	var product models.Product
	if err := ctx.ShouldBindJSON(&product); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if err := services.CreateProduct(database(ctx), &product); err != nil {
		respondWithServiceError(ctx, "Failed to create product", err)
		return
	}

	ctx.JSON(http.StatusCreated, product)
}

func UpdateProduct(ctx *gin.Context) {
	productID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var input models.Product
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	product, err := services.UpdateProduct(database(ctx), productID, input)
	if err != nil {
		respondWithServiceError(ctx, "Failed to update product", err)
		return
	}
	ctx.JSON(http.StatusOK, product)
}

func DeleteProduct(ctx *gin.Context) {
	productID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	if err := services.DeleteProduct(database(ctx), productID); err != nil {
		respondWithServiceError(ctx, "Failed to delete product", err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

func CreateProductSpecs(ctx *gin.Context) {
	productID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var spec models.ProductSpecs
	spec.ProductID = productID
	if err := ctx.ShouldBindJSON(&spec); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if spec.ProductID != productID {
		respondWithError(ctx, http.StatusBadRequest, "productId does not match the URL", nil)
		return
	}

	if err := services.AddProductSpecs(database(ctx), &spec); err != nil {
		respondWithServiceError(ctx, "Failed to create product specifications", err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"message": "Product specs added successfully", "spec": spec})
}

func UploadProductImages(ctx *gin.Context) {
	productID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	form, err := ctx.MultipartForm()
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid form data", err)
		return
	}

	files := form.File["images"]
	if len(files) == 0 {
		respondWithError(ctx, http.StatusBadRequest, "No files uploaded", nil)
		return
	}

	if _, err := services.GetProduct(database(ctx), productID); err != nil {
		respondWithServiceError(ctx, "Failed to validate product", err)
		return
	}

	if Images == nil {
		respondWithError(ctx, http.StatusServiceUnavailable, "Image storage is not configured", nil)
		return
	}

	uploadedUrls := []string{}
	var failedUploads []string

	for _, file := range files {
		f, openErr := file.Open()
		if openErr != nil {
			log.Printf("Error opening file %s: %v", file.Filename, openErr)
			failedUploads = append(failedUploads, file.Filename)
			continue
		}

		// Unique key so re-uploads never overwrite
		key := fmt.Sprintf("%d-%s-%s", productID, time.Now().Format("20060102150405"), file.Filename)
		location, uploadErr := Images.Upload(ctx.Request.Context(), key, file.Header.Get("Content-Type"), f)
		f.Close()

		if uploadErr != nil {
			log.Printf("Error uploading file %s: %v", file.Filename, uploadErr)
			failedUploads = append(failedUploads, file.Filename)
			continue
		}

		if _, err := services.AddProductImage(database(ctx), productID, location); err != nil {
			log.Printf("Error saving image %s to database: %v", location, err)
			failedUploads = append(failedUploads, file.Filename)
			continue
		}
		uploadedUrls = append(uploadedUrls, location)
	}

	response := gin.H{
		"message": "Files processed",
		"urls":    uploadedUrls,
	}

	if len(failedUploads) > 0 {
		response["failed"] = failedUploads
	}

	ctx.JSON(http.StatusOK, response)
}

func GetProducts(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "12"))
	categoryID, _ := strconv.ParseUint(ctx.Query("categoryId"), 10, 0)

	result, err := services.ListProducts(database(ctx), services.ProductFilter{
		Search:     ctx.Query("search"),
		CategoryID: uint(categoryID),
		Page:       page,
		Limit:      limit,
	})
	if err != nil {
		respondWithServiceError(ctx, "Unable to fetch products", err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"products": result.Products,
		"metadata": gin.H{
			"total": result.Total,
			"page":  result.Page,
			"limit": result.Limit,
		},
	})
}

func GetProduct(ctx *gin.Context) {
	productID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	product, err := services.GetProduct(database(ctx), productID)
	if err != nil {
		respondWithServiceError(ctx, "Product not found", err)
		return
	}

	ctx.JSON(http.StatusOK, product)
}
