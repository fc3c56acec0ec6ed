package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"catalogue_back_end/internal/config"
	"catalogue_back_end/internal/database"
	"catalogue_back_end/internal/middleware"
	"catalogue_back_end/internal/routes"
)

func main() {
	config.Load()
	config.MustCheck()

	database.ConnectDatabases()
	defer database.Disconnect()

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("❌ Panique récupérée: %v", recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Erreur interne du serveur",
		})
	}))
	r.Use(cors.Default())
	r.Use(middleware.APIRateLimit())

	routes.RegisterRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3002"
	}

	log.Println("🚀 API Produits lancée sur le port", port)
	log.Println("📝 Routes disponibles:")
	log.Println("   GET    /api/products      - Lister tous les produits")
	log.Println("   GET    /api/products/:id  - Obtenir un produit par ID")
	log.Println("   POST   /api/products      - Créer un produit (token requis)")
	log.Println("   PUT    /api/products/:id  - Mettre à jour un produit (token requis)")
	log.Println("   DELETE /api/products/:id  - Supprimer un produit (token requis)")

	if err := r.Run(":" + port); err != nil {
		log.Fatal("❌ Échec du démarrage du serveur:", err)
	}
}
