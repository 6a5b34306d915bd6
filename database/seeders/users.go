package seeders

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bargaoui/rideaux/app/models"
	"github.com/bargaoui/rideaux/config"
	"github.com/bargaoui/rideaux/pkg/auth"
)

func init() {
	Register("admin-user", SeedAdminUser)
}

// SeedAdminUser creates the back-office account if it does not exist yet.
// Override the defaults with ADMIN_EMAIL / ADMIN_PASSWORD.
func SeedAdminUser(ctx context.Context, db *mongo.Database) error {
	col := db.Collection("users")
	email := config.Get("ADMIN_EMAIL", "admin@bargaoui-rideaux.tn")

	count, err := col.CountDocuments(ctx, bson.M{"email": email})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := auth.HashPassword(config.Get("ADMIN_PASSWORD", "changeme123"))
	if err != nil {
		return err
	}

	admin := models.NewUser("Admin", "Bargaoui", email, hash)
	admin.IsAdmin = true

	_, err = col.InsertOne(ctx, admin)
	return err
}
