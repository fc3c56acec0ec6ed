package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireAdmin vérifie que le porteur du token a le rôle "admin".
// À monter après AuthRequired, qui pose le rôle dans le contexte.
func RequireAdmin(c *gin.Context) {
	role, exists := c.Get("role")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error":   "Utilisateur non authentifié",
		})
		c.Abort()
		return
	}
	if role != "admin" {
		c.JSON(http.StatusForbidden, gin.H{
			"success": false,
			"error":   "Accès réservé aux administrateurs",
		})
		c.Abort()
		return
	}
	c.Next()
}
