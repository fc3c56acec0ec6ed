package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"catalogue_back_end/internal/config"
	"catalogue_back_end/internal/utils"
)

// mktoken signe un token de test pour appeler les routes protégées en local.
// Les vrais tokens viennent de l'API d'authentification, qui partage le même
// JWT_SECRET.
func main() {
	userID := flag.String("user", "local-admin", "identifiant du porteur")
	email := flag.String("email", "admin@example.com", "email du porteur")
	role := flag.String("role", "admin", "rôle du porteur")
	flag.Parse()

	config.Load()
	if os.Getenv("JWT_SECRET") == "" {
		log.Fatal("❌ JWT_SECRET manquant dans .env")
	}

	token, err := utils.GenerateJWT(*userID, *email, *role)
	if err != nil {
		log.Fatal("❌ Erreur signature token:", err)
	}

	fmt.Println(token)
}
