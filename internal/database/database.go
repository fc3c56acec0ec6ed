package database

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// --- Variables Globales ---
var (
	Mongo *mongo.Database
	Redis *redis.Client

	mongoClient *mongo.Client
)

// ConnectDatabases initialise MongoDB (obligatoire) et Redis (facultatif,
// utilisé uniquement pour la limitation de débit).
func ConnectDatabases() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	connectMongo(ctx)
	connectRedis(ctx)
}

func connectMongo(ctx context.Context) {
	uri := os.Getenv("MONGODB_URI")

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatal("❌ Erreur connexion MongoDB:", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		log.Fatal("❌ MongoDB injoignable:", err)
	}

	dbName := os.Getenv("MONGODB_DB")
	if dbName == "" {
		dbName = "catalogue"
	}

	mongoClient = client
	Mongo = client.Database(dbName)
	log.Println("✅ Connecté à MongoDB - Base de données de produits")
}

func connectRedis(ctx context.Context) {
	host := os.Getenv("REDIS_HOST")
	if host == "" {
		log.Println("⚠️  REDIS_HOST non configuré — limitation de débit désactivée")
		return
	}

	Redis = redis.NewClient(&redis.Options{
		Addr:     host,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	if err := Redis.Ping(ctx).Err(); err != nil {
		log.Fatal("❌ Erreur connexion Redis:", err)
	}
	log.Println("✅ Connecté à Redis")
}

// Disconnect ferme proprement la connexion MongoDB.
func Disconnect() {
	if mongoClient == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := mongoClient.Disconnect(ctx); err != nil {
		log.Println("⚠️  Erreur lors de la déconnexion MongoDB:", err)
	}
}
