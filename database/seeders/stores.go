package seeders

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bargaoui/rideaux/app/models"
)

func init() {
	Register("stores", SeedStores)
}

// SeedStores loads the showroom directory. Skipped when stores already exist.
func SeedStores(ctx context.Context, db *mongo.Database) error {
	col := db.Collection("stores")

	count, err := col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := time.Now()
	hours := []string{
		"Lun-Ven: 09h00 - 19h00",
		"Sam: 09h00 - 14h00",
		"Dim: Fermé",
	}

	showrooms := []interface{}{
		models.Store{
			Name:      "Bargaoui Rideaux Tahar - Tunis Centre",
			Address:   "12 Avenue Habib Bourguiba, Tunis 1000",
			Latitude:  36.8008,
			Longitude: 10.1817,
			Hours:     hours,
			Phone:     "+216 71 123 456",
			CreatedAt: now,
			UpdatedAt: now,
		},
		models.Store{
			Name:      "Bargaoui Rideaux Tahar - La Marsa",
			Address:   "45 Rue du Maroc, La Marsa 2078",
			Latitude:  36.8781,
			Longitude: 10.3247,
			Hours:     hours,
			Phone:     "+216 71 654 321",
			CreatedAt: now,
			UpdatedAt: now,
		},
		models.Store{
			Name:      "Bargaoui Rideaux Tahar - Sousse",
			Address:   "Boulevard du 14 Janvier, Sousse 4000",
			Latitude:  35.8256,
			Longitude: 10.6084,
			Hours:     hours,
			Phone:     "+216 73 987 654",
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	_, err = col.InsertMany(ctx, showrooms)
	return err
}
