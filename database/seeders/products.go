package seeders

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bargaoui/rideaux/app/models"
)

func init() {
	Register("products", SeedProducts)
}

// SeedProducts loads the demo catalog. Skipped when products already exist.
func SeedProducts(ctx context.Context, db *mongo.Database) error {
	col := db.Collection("products")

	count, err := col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := time.Now()
	catalog := []models.Product{
		{
			Name:        "Store Vénitien Aluminium",
			Description: "Store vénitien en aluminium laqué, lames de 25 mm, orientation précise de la lumière.",
			Price:       89.50,
			ImageURL:    "/storage/products/store-venitien-aluminium.jpg",
			Category:    models.CategoryBlindsShades,
			Dimensions:  models.Dimensions{Width: 120, Height: 180},
			InStock:     true,
			Subcategory: []string{"venetian"},
			Colors:      []string{"silver", "white"},
		},
		{
			Name:        "Store Enrouleur Occultant",
			Description: "Store enrouleur occultant pour chambre, tissu thermique anti-chaleur.",
			Price:       64.00,
			ImageURL:    "/storage/products/store-enrouleur-occultant.jpg",
			Category:    models.CategoryBlindsShades,
			Dimensions:  models.Dimensions{Width: 100, Height: 190},
			InStock:     true,
			Subcategory: []string{"roller", "blackout"},
			Colors:      []string{"beige", "grey"},
		},
		{
			Name:        "Rideau Velours Royal",
			Description: "Rideau en velours épais à œillets, tombé lourd et élégant, confection tunisienne.",
			Price:       210.00,
			ImageURL:    "/storage/products/rideau-velours-royal.jpg",
			Category:    models.CategoryCurtainsDrape,
			Dimensions:  models.Dimensions{Width: 140, Height: 260},
			InStock:     true,
			Subcategory: []string{"velvet", "eyelet"},
			Colors:      []string{"bordeaux", "navy", "emerald"},
		},
		{
			Name:        "Voilage Lin Naturel",
			Description: "Voilage en lin lavé, lumière douce et tamisée, finition ruflette.",
			Price:       95.00,
			ImageURL:    "/storage/products/voilage-lin-naturel.jpg",
			Category:    models.CategoryCurtainsDrape,
			Dimensions:  models.Dimensions{Width: 300, Height: 250},
			InStock:     true,
			Subcategory: []string{"sheer", "linen"},
			Colors:      []string{"ivory", "sand"},
		},
		{
			Name:        "Coussin Brodé Artisanal",
			Description: "Coussin décoratif brodé main 45×45, garnissage inclus.",
			Price:       38.00,
			ImageURL:    "/storage/products/coussin-brode-artisanal.jpg",
			Category:    models.CategoryFurnishings,
			Dimensions:  models.Dimensions{Width: 45, Height: 45},
			InStock:     true,
			Subcategory: []string{"cushions"},
			Colors:      []string{"gold", "terracotta"},
		},
		{
			Name:        "Jeté de Lit Matelassé",
			Description: "Jeté de lit matelassé réversible, toucher satiné.",
			Price:       145.00,
			ImageURL:    "/storage/products/jete-de-lit-matelasse.jpg",
			Category:    models.CategoryFurnishings,
			Dimensions:  models.Dimensions{Width: 240, Height: 260},
			InStock:     false,
			Subcategory: []string{"bedding"},
			Colors:      []string{"champagne", "taupe"},
		},
		{
			Name:        "Moteur de Rideau Connecté",
			Description: "Motorisation silencieuse pour rail de rideau, pilotage par application et assistants vocaux.",
			Price:       420.00,
			ImageURL:    "/storage/products/moteur-rideau-connecte.jpg",
			Category:    models.CategorySmartHome,
			Dimensions:  models.Dimensions{Width: 30, Height: 8},
			InStock:     true,
			Subcategory: []string{"motorization"},
			Colors:      []string{"white"},
		},
		{
			Name:        "Store Banne Motorisé",
			Description: "Store banne extérieur motorisé avec capteur vent et télécommande.",
			Price:       980.00,
			ImageURL:    "/storage/products/store-banne-motorise.jpg",
			Category:    models.CategorySmartHome,
			Dimensions:  models.Dimensions{Width: 400, Height: 300},
			InStock:     true,
			Subcategory: []string{"awning", "motorization"},
			Colors:      []string{"anthracite", "cream"},
		},
	}

	docs := make([]interface{}, 0, len(catalog))
	for i := range catalog {
		catalog[i].CreatedAt = now
		catalog[i].UpdatedAt = now
		docs = append(docs, catalog[i])
	}

	_, err = col.InsertMany(ctx, docs)
	return err
}
