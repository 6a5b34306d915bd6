package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bargaoui/rideaux/app/models"
	"github.com/bargaoui/rideaux/pkg/apperr"
)

// StoreRepository handles database operations for showroom locations.
type StoreRepository struct {
	col *mongo.Collection
}

func NewStoreRepository(db *mongo.Database) *StoreRepository {
	return &StoreRepository{col: db.Collection("stores")}
}

// All returns every store.
func (r *StoreRepository) All(ctx context.Context) ([]models.Store, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "list stores", err)
	}
	stores := []models.Store{}
	if err := cur.All(ctx, &stores); err != nil {
		return nil, apperr.Wrap(apperr.Internal, "decode stores", err)
	}
	return stores, nil
}

// FindByID looks up a store by its hex ObjectID.
func (r *StoreRepository) FindByID(ctx context.Context, id string) (models.Store, error) {
	var store models.Store
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return store, apperr.New(apperr.NotFound, "Store not found")
	}
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&store)
	if err == mongo.ErrNoDocuments {
		return store, apperr.New(apperr.NotFound, "Store not found")
	}
	if err != nil {
		return store, apperr.Wrap(apperr.Internal, "find store", err)
	}
	return store, nil
}

// Create persists a new store.
func (r *StoreRepository) Create(ctx context.Context, s *models.Store) error {
	now := time.Now()
	s.CreatedAt = now
	s.UpdatedAt = now
	res, err := r.col.InsertOne(ctx, s)
	if err != nil {
		return apperr.Wrap(apperr.Internal, "create store", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		s.ID = oid
	}
	return nil
}
