package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Load charge le fichier .env s'il existe ; sinon on s'appuie sur
// l'environnement du processus.
func Load() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️  Aucun fichier .env trouvé — on continue avec les variables d'environnement du système")
	} else {
		log.Println("✅ Fichier .env chargé")
	}
}

// MustCheck vérifie les variables indispensables avant de servir la moindre
// requête. Le processus s'arrête si l'une d'elles manque.
func MustCheck() {
	if os.Getenv("JWT_SECRET") == "" {
		log.Fatal("❌ JWT_SECRET manquant dans .env")
	}
	if os.Getenv("MONGODB_URI") == "" {
		log.Fatal("❌ MONGODB_URI manquant dans .env")
	}
}
