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

// OrderRepository handles database operations for checkout orders.
type OrderRepository struct {
	col *mongo.Collection
}

func NewOrderRepository(db *mongo.Database) *OrderRepository {
	return &OrderRepository{col: db.Collection("orders")}
}

// Create persists a new order. Orders are immutable afterwards.
func (r *OrderRepository) Create(ctx context.Context, o *models.Order) error {
	o.CreatedAt = time.Now()
	res, err := r.col.InsertOne(ctx, o)
	if err != nil {
		return apperr.Wrap(apperr.Internal, "create order", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		o.ID = oid
	}
	return nil
}

// FindByID looks up an order by its hex ObjectID.
func (r *OrderRepository) FindByID(ctx context.Context, id string) (models.Order, error) {
	var order models.Order
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return order, apperr.New(apperr.NotFound, "Order not found")
	}
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&order)
	if err == mongo.ErrNoDocuments {
		return order, apperr.New(apperr.NotFound, "Order not found")
	}
	if err != nil {
		return order, apperr.Wrap(apperr.Internal, "find order", err)
	}
	return order, nil
}

// ListByUser returns a user's orders, newest first.
func (r *OrderRepository) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Order, error) {
	cur, err := r.col.Find(ctx, bson.M{"user": userID})
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "list orders", err)
	}
	orders := []models.Order{}
	if err := cur.All(ctx, &orders); err != nil {
		return nil, apperr.Wrap(apperr.Internal, "decode orders", err)
	}
	return orders, nil
}
