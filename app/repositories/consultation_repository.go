package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bargaoui/rideaux/app/models"
	"github.com/bargaoui/rideaux/pkg/apperr"
)

// ConsultationRepository persists contact-form bookings.
type ConsultationRepository struct {
	col *mongo.Collection
}

func NewConsultationRepository(db *mongo.Database) *ConsultationRepository {
	return &ConsultationRepository{col: db.Collection("consultations")}
}

// Create persists a booking. Bookings are never mutated.
func (r *ConsultationRepository) Create(ctx context.Context, c *models.Consultation) error {
	c.CreatedAt = time.Now()
	res, err := r.col.InsertOne(ctx, c)
	if err != nil {
		return apperr.Wrap(apperr.Internal, "create consultation", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		c.ID = oid
	}
	return nil
}
