package models

import (
	"fmt"
	"math"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultBrand est la marque appliquée quand le payload n'en précise pas.
const DefaultBrand = "Fester"

// DefaultRating est la note appliquée quand le payload n'en précise pas.
const DefaultRating = 5

// Specifications regroupe les quatre caractéristiques techniques d'un produit.
type Specifications struct {
	Presentation string `json:"presentation" bson:"presentation"`
	Coverage     string `json:"coverage" bson:"coverage"`
	DryingTime   string `json:"dryingTime" bson:"dryingTime"`
	Colors       string `json:"colors" bson:"colors"`
}

// IsZero indique si aucune spécification n'a été renseignée.
func (s Specifications) IsZero() bool {
	return s == Specifications{}
}

// Product représente un produit du catalogue tel que stocké dans MongoDB.
type Product struct {
	ID              primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name            string             `json:"name" bson:"name"`
	Category        string             `json:"category" bson:"category"`
	Description     string             `json:"description" bson:"description"`
	Image           string             `json:"image" bson:"image"`
	Brand           string             `json:"brand" bson:"brand"`
	Rating          int                `json:"rating" bson:"rating"`
	FullDescription string             `json:"fullDescription" bson:"fullDescription"`
	Features        []string           `json:"features" bson:"features"`
	Applications    []string           `json:"applications" bson:"applications"`
	Specifications  Specifications     `json:"specifications" bson:"specifications"`
	CreatedAt       time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// ProductInput est le payload attendu à la création d'un produit.
// Les pointeurs distinguent un champ absent d'une valeur fournie.
type ProductInput struct {
	Name            string          `json:"name"`
	Category        string          `json:"category"`
	Description     string          `json:"description"`
	Image           string          `json:"image"`
	Brand           string          `json:"brand"`
	Rating          *int            `json:"rating"`
	FullDescription string          `json:"fullDescription"`
	Features        []string        `json:"features"`
	Applications    []string        `json:"applications"`
	Specifications  *Specifications `json:"specifications"`
}

// UpdatableFields liste les champs modifiables via PUT. L'identifiant et
// createdAt n'en font jamais partie.
var UpdatableFields = []string{
	"name",
	"category",
	"description",
	"image",
	"brand",
	"rating",
	"fullDescription",
	"features",
	"applications",
	"specifications",
}

// Validate vérifie le payload de création et renvoie la liste des messages
// d'erreur, vide si tout est valide.
func (in *ProductInput) Validate() []string {
	details := []string{}

	requireText(in.Name, "Le nom du produit est requis", &details)
	requireText(in.Category, "La catégorie est requise", &details)
	requireText(in.Description, "La description est requise", &details)
	requireText(in.Image, "L'image est requise", &details)
	requireText(in.FullDescription, "La description complète est requise", &details)

	if in.Rating != nil && (*in.Rating < 1 || *in.Rating > 5) {
		details = append(details, "La note doit être un entier entre 1 et 5")
	}

	if len(in.Features) == 0 {
		details = append(details, "Au moins une caractéristique est requise")
	}
	if len(in.Applications) == 0 {
		details = append(details, "Au moins une application est requise")
	}

	// Les spécifications sont facultatives, mais si l'objet est fourni les
	// quatre champs doivent l'être aussi.
	if in.Specifications != nil {
		validateSpecifications(*in.Specifications, &details)
	}

	return details
}

// ToProduct construit le produit à persister en appliquant les valeurs par
// défaut documentées (marque, note, spécifications) et les horodatages.
func (in *ProductInput) ToProduct(now time.Time) Product {
	p := Product{
		Name:            strings.TrimSpace(in.Name),
		Category:        strings.TrimSpace(in.Category),
		Description:     strings.TrimSpace(in.Description),
		Image:           strings.TrimSpace(in.Image),
		Brand:           strings.TrimSpace(in.Brand),
		Rating:          DefaultRating,
		FullDescription: strings.TrimSpace(in.FullDescription),
		Features:        in.Features,
		Applications:    in.Applications,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if p.Brand == "" {
		p.Brand = DefaultBrand
	}
	if in.Rating != nil {
		p.Rating = *in.Rating
	}
	if in.Specifications != nil {
		p.Specifications = Specifications{
			Presentation: strings.TrimSpace(in.Specifications.Presentation),
			Coverage:     strings.TrimSpace(in.Specifications.Coverage),
			DryingTime:   strings.TrimSpace(in.Specifications.DryingTime),
			Colors:       strings.TrimSpace(in.Specifications.Colors),
		}
	}

	return p
}

// ApplyUpdate reporte sur le produit les champs autorisés présents dans le
// patch. La présence est jugée sur l'objet JSON brut : un null explicite
// compte comme fourni et écrase avec la valeur zéro (la revalidation rejette
// ensuite le document si un champ requis a été vidé). updatedAt est toujours
// rafraîchi, même si aucun champ n'a changé.
func (p *Product) ApplyUpdate(patch map[string]interface{}, now time.Time) {
	for _, field := range UpdatableFields {
		value, ok := patch[field]
		if !ok {
			continue
		}
		switch field {
		case "name":
			p.Name = asText(value)
		case "category":
			p.Category = asText(value)
		case "description":
			p.Description = asText(value)
		case "image":
			p.Image = asText(value)
		case "brand":
			p.Brand = asText(value)
		case "rating":
			p.Rating = asInt(value)
		case "fullDescription":
			p.FullDescription = asText(value)
		case "features":
			p.Features = asTextList(value)
		case "applications":
			p.Applications = asTextList(value)
		case "specifications":
			p.Specifications = asSpecifications(value)
		}
	}
	p.UpdatedAt = now
}

// Validate revérifie les contraintes du schéma sur un produit fusionné avant
// de le persister.
func (p *Product) Validate() []string {
	details := []string{}

	requireText(p.Name, "Le nom du produit est requis", &details)
	requireText(p.Category, "La catégorie est requise", &details)
	requireText(p.Description, "La description est requise", &details)
	requireText(p.Image, "L'image est requise", &details)
	requireText(p.Brand, "La marque est requise", &details)
	requireText(p.FullDescription, "La description complète est requise", &details)

	if p.Rating < 1 || p.Rating > 5 {
		details = append(details, "La note doit être un entier entre 1 et 5")
	}

	if len(p.Features) == 0 {
		details = append(details, "Au moins une caractéristique est requise")
	}
	if len(p.Applications) == 0 {
		details = append(details, "Au moins une application est requise")
	}

	if !p.Specifications.IsZero() {
		validateSpecifications(p.Specifications, &details)
	}

	return details
}

func requireText(value, message string, details *[]string) {
	if strings.TrimSpace(value) == "" {
		*details = append(*details, message)
	}
}

func validateSpecifications(s Specifications, details *[]string) {
	fields := map[string]string{
		"presentation": s.Presentation,
		"coverage":     s.Coverage,
		"dryingTime":   s.DryingTime,
		"colors":       s.Colors,
	}
	for _, key := range []string{"presentation", "coverage", "dryingTime", "colors"} {
		if strings.TrimSpace(fields[key]) == "" {
			*details = append(*details, fmt.Sprintf("La spécification '%s' est requise", key))
		}
	}
}

func asText(value interface{}) string {
	if s, ok := value.(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}

// asInt n'accepte que les nombres JSON entiers ; toute autre valeur donne 0,
// hors bornes donc rejetée par la revalidation.
func asInt(value interface{}) int {
	if f, ok := value.(float64); ok && f == math.Trunc(f) {
		return int(f)
	}
	return 0
}

func asTextList(value interface{}) []string {
	raw, ok := value.([]interface{})
	if !ok {
		return nil
	}
	list := make([]string, 0, len(raw))
	for _, item := range raw {
		s, ok := item.(string)
		if !ok {
			return nil
		}
		list = append(list, s)
	}
	return list
}

func asSpecifications(value interface{}) Specifications {
	raw, ok := value.(map[string]interface{})
	if !ok {
		return Specifications{}
	}
	return Specifications{
		Presentation: asText(raw["presentation"]),
		Coverage:     asText(raw["coverage"]),
		DryingTime:   asText(raw["dryingTime"]),
		Colors:       asText(raw["colors"]),
	}
}
