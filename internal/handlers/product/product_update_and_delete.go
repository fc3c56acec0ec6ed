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

	"catalogue_back_end/internal/models"
)

// UpdateProduct charge le produit, reporte les champs autorisés du patch,
// revalide le document fusionné puis le remplace. La vérification d'existence
// précède toujours l'écriture.
func UpdateProduct(c *gin.Context) {
	objectID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "ID de produit invalide",
		})
		return
	}

	var patch map[string]interface{}
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Données invalides",
		})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	coll := getProductCollection()

	var p models.Product
	if err := coll.FindOne(ctx, bson.M{"_id": objectID}).Decode(&p); err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error":   "Produit non trouvé",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Erreur lors de la mise à jour du produit",
		})
		return
	}

	p.ApplyUpdate(patch, time.Now().UTC())

	if details := p.Validate(); len(details) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Erreur de validation",
			"details": details,
		})
		return
	}

	if _, err := coll.ReplaceOne(ctx, bson.M{"_id": objectID}, p); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Erreur lors de la mise à jour du produit",
		})
		return
	}

	log.Printf("✅ Produit %s mis à jour par l'utilisateur: %s", c.Param("id"), c.GetString("email"))

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Produit mis à jour avec succès",
		"data":    p,
	})
}

// DeleteProduct vérifie l'existence du produit avant de le supprimer.
func DeleteProduct(c *gin.Context) {
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

	coll := getProductCollection()

	var p models.Product
	if err := coll.FindOne(ctx, bson.M{"_id": objectID}).Decode(&p); err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error":   "Produit non trouvé",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Erreur lors de la suppression du produit",
		})
		return
	}

	if _, err := coll.DeleteOne(ctx, bson.M{"_id": objectID}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Erreur lors de la suppression du produit",
		})
		return
	}

	log.Printf("✅ Produit %s supprimé par l'utilisateur: %s", c.Param("id"), c.GetString("email"))

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Produit supprimé avec succès",
	})
}
