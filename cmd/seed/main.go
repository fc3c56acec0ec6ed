package main

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"catalogue_back_end/internal/config"
	"catalogue_back_end/internal/database"
	"catalogue_back_end/internal/models"
)

// Produits d'exemple du catalogue (matériaux de construction).
var sampleProducts = []models.Product{
	{
		Name:            "Impermeabilizante Acrílico Premium",
		Category:        "Impermeabilizantes",
		Description:     "Impermeabilizante acrílico de alta calidad para superficies expuestas",
		Image:           "https://images.unsplash.com/photo-1621905251918-48416bd8575a?w=800",
		Brand:           "Fester",
		Rating:          5,
		FullDescription: "Impermeabilizante acrílico premium formulado con resinas acrílicas de última generación. Proporciona una barrera impermeable duradera y flexible que se adapta a los movimientos naturales de la superficie. Ideal para azoteas, terrazas y cualquier superficie expuesta a la intemperie.",
		Features: []string{
			"Excelente resistencia a la intemperie y rayos UV",
			"Altamente reflectante para reducir temperatura",
			"Fácil aplicación con brocha, rodillo o aspersión",
			"No tóxico y amigable con el medio ambiente",
			"Excelente adherencia sobre múltiples sustratos",
		},
		Applications: []string{
			"Azoteas y terrazas de concreto",
			"Losas de concreto",
			"Superficies de fibrocemento",
			"Impermeabilización preventiva",
		},
		Specifications: models.Specifications{
			Presentation: "Cubetas de 19 L y 4 L",
			Coverage:     "4-6 m² por litro (2 manos)",
			DryingTime:   "2-4 horas al tacto",
			Colors:       "Blanco, Terracota, Gris",
		},
	},
	{
		Name:            "Aditivo Súper Plastificante",
		Category:        "Aditivos",
		Description:     "Aditivo reductor de agua de alto rango para concreto",
		Image:           "https://images.unsplash.com/photo-1504328345606-18bbc8c9d7d1?w=800",
		Brand:           "Sika",
		Rating:          5,
		FullDescription: "Aditivo súper plastificante de tercera generación basado en policarboxilatos modificados. Permite reducciones de agua de hasta 40% manteniendo la trabajabilidad del concreto. Mejora significativamente la resistencia mecánica y durabilidad del concreto.",
		Features: []string{
			"Reduce el agua hasta 40%",
			"Incrementa resistencias tempranas y finales",
			"Mejora la trabajabilidad sin segregación",
			"Compatible con todos los tipos de cemento",
			"No contiene cloruros",
		},
		Applications: []string{
			"Concreto de alta resistencia",
			"Concreto autocompactable",
			"Elementos prefabricados",
			"Concreto bombeado",
		},
		Specifications: models.Specifications{
			Presentation: "Tambores de 200 L y garrafas de 20 L",
			Coverage:     "0.8-2.0% del peso del cemento",
			DryingTime:   "N/A",
			Colors:       "Líquido café claro",
		},
	},
	{
		Name:            "Membrana Asfáltica Prefabricada",
		Category:        "Impermeabilizantes",
		Description:     "Membrana de asfalto modificado con SBS de 4mm",
		Image:           "https://images.unsplash.com/photo-1589939705384-5185137a7f0f?w=800",
		Brand:           "Fester",
		Rating:          5,
		FullDescription: "Membrana impermeabilizante prefabricada de asfalto modificado con polímeros SBS (Estireno-Butadieno-Estireno), reforzada con poliéster no tejido. Proporciona una impermeabilización totalmente adherida de larga duración con excelente resistencia mecánica.",
		Features: []string{
			"Alta resistencia al punzonamiento",
			"Excelente flexibilidad a bajas temperaturas",
			"Gran estabilidad dimensional",
			"Refuerzo de poliéster de alta resistencia",
			"Protección UV con granulado mineral",
		},
		Applications: []string{
			"Azoteas planas y con pendiente",
			"Cimentaciones",
			"Jardineras y macetas",
			"Estacionamientos",
		},
		Specifications: models.Specifications{
			Presentation: "Rollos de 10 m x 1 m",
			Coverage:     "10 m² por rollo",
			DryingTime:   "Inmediato al enfriarse",
			Colors:       "Negro con granulado gris",
		},
	},
}

func main() {
	config.Load()
	config.MustCheck()

	log.Println("🔄 Connexion à MongoDB...")
	database.ConnectDatabases()
	defer database.Disconnect()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	coll := database.Mongo.Collection("products")

	log.Println("🗑️  Nettoyage de la collection...")
	if _, err := coll.DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatal("❌ Erreur nettoyage:", err)
	}

	log.Println("📦 Insertion des produits d'exemple...")
	now := time.Now().UTC()
	docs := make([]interface{}, 0, len(sampleProducts))
	for i := range sampleProducts {
		sampleProducts[i].CreatedAt = now
		sampleProducts[i].UpdatedAt = now
		docs = append(docs, sampleProducts[i])
	}

	res, err := coll.InsertMany(ctx, docs)
	if err != nil {
		log.Fatal("❌ Erreur insertion:", err)
	}
	log.Printf("✅ %d produits insérés", len(res.InsertedIDs))

	log.Println("📋 Produits créés:")
	for i, id := range res.InsertedIDs {
		log.Printf("   - %s (ID: %s)", sampleProducts[i].Name, id.(primitive.ObjectID).Hex())
	}

	log.Println("✨ Terminé")
}
