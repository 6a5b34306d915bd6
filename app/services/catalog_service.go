package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bargaoui/rideaux/app/models"
	"github.com/bargaoui/rideaux/pkg/cache"
)

// ProductStore is the slice of the product repository the catalog needs.
type ProductStore interface {
	List(ctx context.Context, filter models.ProductFilter) ([]models.Product, error)
	FindByID(ctx context.Context, id string) (models.Product, error)
	Exists(ctx context.Context, id primitive.ObjectID) (bool, error)
	Create(ctx context.Context, p *models.Product) error
	Update(ctx context.Context, id string, fields bson.M) (models.Product, error)
	Delete(ctx context.Context, id string) error
}

const productCacheTTL = 5 * time.Minute

// CatalogService exposes catalog reads and admin writes. Single-product
// reads go through the Redis cache; writes invalidate.
type CatalogService struct {
	products ProductStore
}

func NewCatalogService(products ProductStore) *CatalogService {
	return &CatalogService{products: products}
}

// List returns products matching every supplied filter dimension.
func (s *CatalogService) List(ctx context.Context, filter models.ProductFilter) ([]models.Product, error) {
	return s.products.List(ctx, filter)
}

// Get returns one product, served from cache when possible.
func (s *CatalogService) Get(ctx context.Context, id string) (models.Product, error) {
	var cached models.Product
	if cache.Get(productCacheKey(id), &cached) {
		return cached, nil
	}

	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return product, err
	}
	_ = cache.Set(productCacheKey(id), product, productCacheTTL)
	return product, nil
}

// Create validates and persists a new product.
func (s *CatalogService) Create(ctx context.Context, p *models.Product) error {
	if err := p.Validate(); err != nil {
		return err
	}
	return s.products.Create(ctx, p)
}

// Update applies a partial update and drops the cached copy.
func (s *CatalogService) Update(ctx context.Context, id string, fields bson.M) (models.Product, error) {
	product, err := s.products.Update(ctx, id, fields)
	if err != nil {
		return product, err
	}
	_ = cache.Del(productCacheKey(id))
	return product, nil
}

// Delete removes a product. Orders that reference it are untouched.
func (s *CatalogService) Delete(ctx context.Context, id string) error {
	if err := s.products.Delete(ctx, id); err != nil {
		return err
	}
	_ = cache.Del(productCacheKey(id))
	return nil
}

func productCacheKey(id string) string {
	return "rideaux:product:" + id
}
