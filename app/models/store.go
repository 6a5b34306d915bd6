package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bargaoui/rideaux/pkg/apperr"
)

// Store is a physical showroom for the store locator.
type Store struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Address   string             `bson:"address" json:"address"`
	Latitude  float64            `bson:"latitude" json:"latitude"`
	Longitude float64            `bson:"longitude" json:"longitude"`
	Hours     []string           `bson:"hours" json:"hours"`
	Phone     string             `bson:"phone" json:"phone"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Validate checks the required locator fields.
func (s *Store) Validate() error {
	if s.Name == "" || s.Address == "" || len(s.Hours) == 0 || s.Phone == "" {
		return apperr.New(apperr.Validation, "Please provide all required fields")
	}
	if s.Latitude == 0 && s.Longitude == 0 {
		return apperr.New(apperr.Validation, "Coordinates are required")
	}
	return nil
}
