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

// ProductRepository handles database operations for the catalog.
type ProductRepository struct {
	col *mongo.Collection
}

func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{col: db.Collection("products")}
}

// List returns products matching the filter, in insertion order.
func (r *ProductRepository) List(ctx context.Context, filter models.ProductFilter) ([]models.Product, error) {
	cur, err := r.col.Find(ctx, filter.BSON())
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "list products", err)
	}
	products := []models.Product{}
	if err := cur.All(ctx, &products); err != nil {
		return nil, apperr.Wrap(apperr.Internal, "decode products", err)
	}
	return products, nil
}

// FindByID looks up a product by its hex ObjectID.
func (r *ProductRepository) FindByID(ctx context.Context, id string) (models.Product, error) {
	var product models.Product
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return product, apperr.New(apperr.NotFound, "Product not found")
	}
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&product)
	if err == mongo.ErrNoDocuments {
		return product, apperr.New(apperr.NotFound, "Product not found")
	}
	if err != nil {
		return product, apperr.Wrap(apperr.Internal, "find product", err)
	}
	return product, nil
}

// Exists reports whether a product with the given ObjectID exists.
func (r *ProductRepository) Exists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	n, err := r.col.CountDocuments(ctx, bson.M{"_id": id})
	if err != nil {
		return false, apperr.Wrap(apperr.Internal, "count products", err)
	}
	return n > 0, nil
}

// Create persists a new product.
func (r *ProductRepository) Create(ctx context.Context, p *models.Product) error {
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now
	res, err := r.col.InsertOne(ctx, p)
	if err != nil {
		return apperr.Wrap(apperr.Internal, "create product", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		p.ID = oid
	}
	return nil
}

// Update applies a partial update and returns the fresh document.
func (r *ProductRepository) Update(ctx context.Context, id string, fields bson.M) (models.Product, error) {
	var product models.Product
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return product, apperr.New(apperr.NotFound, "Product not found")
	}
	fields["updatedAt"] = time.Now()
	res, err := r.col.UpdateByID(ctx, oid, bson.M{"$set": fields})
	if err != nil {
		return product, apperr.Wrap(apperr.Internal, "update product", err)
	}
	if res.MatchedCount == 0 {
		return product, apperr.New(apperr.NotFound, "Product not found")
	}
	return r.FindByID(ctx, id)
}

// Delete removes a product. Existing orders keep their references.
func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperr.New(apperr.NotFound, "Product not found")
	}
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return apperr.Wrap(apperr.Internal, "delete product", err)
	}
	if res.DeletedCount == 0 {
		return apperr.New(apperr.NotFound, "Product not found")
	}
	return nil
}
