package routes

import (
	"github.com/Kariqs/storefront-api/controllers"
	"github.com/Kariqs/storefront-api/middlewares"
	"github.com/Kariqs/storefront-api/models"
	"github.com/gin-gonic/gin"
)

// ProductRoutes mounts the catalog. Reads are public; writes need a
// catalog manager.
func ProductRoutes(api *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	manager := []gin.HandlerFunc{requireAuth, middlewares.RequireRole(models.RoleAdmin, models.RoleManager)}

	products := api.Group("/products")
	{
		products.GET("", controllers.GetProducts)
		products.GET("/:id", controllers.GetProduct)
		products.GET("/:id/reviews", controllers.GetProductReviews)
		products.GET("/:id/rating", controllers.GetProductRating)

		admin := products.Group("", manager...)
		admin.POST("", controllers.CreateProduct)
		admin.PUT("/:id", controllers.UpdateProduct)
		admin.DELETE("/:id", controllers.DeleteProduct)
		admin.POST("/:id/specs", controllers.CreateProductSpecs)
		admin.POST("/:id/images", controllers.UploadProductImages)
	}

	categories := api.Group("/categories")
	{
		categories.GET("", controllers.GetCategories)
		categories.GET("/:id", controllers.GetCategory)

		admin := categories.Group("", manager...)
		admin.POST("", controllers.CreateCategory)
		admin.PUT("/:id", controllers.UpdateCategory)
		admin.DELETE("/:id", controllers.DeleteCategory)
	}

	suppliers := api.Group("/suppliers", manager...)
	{
		suppliers.GET("", controllers.GetSuppliers)
		suppliers.GET("/:id", controllers.GetSupplier)
		suppliers.POST("", controllers.CreateSupplier)
		suppliers.DELETE("/:id", controllers.DeleteSupplier)
	}

	promotions := api.Group("/promotions")
	{
		promotions.GET("", controllers.GetPromotions)
		promotions.GET("/:id", controllers.GetPromotion)

		admin := promotions.Group("", manager...)
		admin.POST("", controllers.CreatePromotion)
		admin.PUT("/:id", controllers.UpdatePromotion)
		admin.DELETE("/:id", controllers.DeletePromotion)
	}
}
