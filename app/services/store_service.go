package services

import (
	"context"

	"github.com/bargaoui/rideaux/app/models"
	"github.com/bargaoui/rideaux/pkg/collection"
)

// ShowroomStore is the slice of the store repository the locator needs.
type ShowroomStore interface {
	All(ctx context.Context) ([]models.Store, error)
	FindByID(ctx context.Context, id string) (models.Store, error)
	Create(ctx context.Context, s *models.Store) error
}

// StoreService backs the store locator.
type StoreService struct {
	stores ShowroomStore
}

func NewStoreService(stores ShowroomStore) *StoreService {
	return &StoreService{stores: stores}
}

func (s *StoreService) List(ctx context.Context) ([]models.Store, error) {
	stores, err := s.stores.All(ctx)
	if err != nil {
		return nil, err
	}
	return collection.SortBy(stores, func(a, b models.Store) bool { return a.Name < b.Name }), nil
}

func (s *StoreService) Get(ctx context.Context, id string) (models.Store, error) {
	return s.stores.FindByID(ctx, id)
}

// Create validates and persists a new showroom.
func (s *StoreService) Create(ctx context.Context, store *models.Store) error {
	if err := store.Validate(); err != nil {
		return err
	}
	return s.stores.Create(ctx, store)
}
