package product

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"catalogue_back_end/internal/database"
	"catalogue_back_end/internal/models"
)

const requestTimeout = 5 * time.Second

//
// --- MONGO COLLECTION ---
//

func getProductCollection() *mongo.Collection {
	if database.Mongo == nil {
		panic("❌ MongoDB non initialisée — as-tu bien appelé database.ConnectDatabases() ?")
	}
	return database.Mongo.Collection("products")
}

//
// --- HANDLERS PUBLICS ---
//

// GetAllProducts renvoie tous les produits, du plus récent au plus ancien.
func GetAllProducts(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := getProductCollection().Find(ctx, bson.M{}, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Erreur lors de la récupération des produits",
		})
		return
	}
	defer cursor.Close(ctx)

	// Initialisé pour renvoyer [] et non null quand le catalogue est vide.
	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Erreur lors de la récupération des produits",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(products),
		"data":    products,
	})
}

// GetProductByID renvoie un produit par son identifiant.
func GetProductByID(c *gin.Context) {
	objectID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "ID de produit invalide",
		})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	var p models.Product
	if err := getProductCollection().FindOne(ctx, bson.M{"_id": objectID}).Decode(&p); err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error":   "Produit non trouvé",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Erreur lors de la récupération du produit",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    p,
	})
}

//
// --- HANDLERS PROTÉGÉS (token requis) ---
//

// CreateProduct valide le payload, applique les valeurs par défaut et insère
// le produit. L'identifiant est attribué par MongoDB.
func CreateProduct(c *gin.Context) {
	var input models.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Données invalides",
		})
		return
	}

	if details := input.Validate(); len(details) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Erreur de validation",
			"details": details,
		})
		return
	}

	p := input.ToProduct(time.Now().UTC())

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	res, err := getProductCollection().InsertOne(ctx, p)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Erreur lors de la création du produit",
		})
		return
	}
	p.ID = res.InsertedID.(primitive.ObjectID)

	log.Printf("✅ Produit créé par l'utilisateur: %s", c.GetString("email"))

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Produit créé avec succès",
		"data":    p,
	})
}
