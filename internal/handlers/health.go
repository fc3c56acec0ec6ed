package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthCheck répond au ping de supervision.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"message":   "API Produits opérationnelle",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
