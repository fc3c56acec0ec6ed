package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"catalogue_back_end/internal/handlers"
	"catalogue_back_end/internal/handlers/product"
	"catalogue_back_end/internal/middleware"
)

func RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api")

	api.GET("/health", handlers.HealthCheck)

	products := api.Group("/products")
	{
		// Lecture publique
		products.GET("", product.GetAllProducts)
		products.GET("/:id", product.GetProductByID)

		// Mutations protégées par token
		products.POST("", middleware.AuthRequired(), product.CreateProduct)
		products.PUT("/:id", middleware.AuthRequired(), product.UpdateProduct)
		products.DELETE("/:id", middleware.AuthRequired(), product.DeleteProduct)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "Route non trouvée",
		})
	})
}
