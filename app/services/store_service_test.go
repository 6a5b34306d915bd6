package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bargaoui/rideaux/app/models"
	"github.com/bargaoui/rideaux/pkg/apperr"
)

type fakeShowroomStore struct {
	stores []models.Store
}

func (f *fakeShowroomStore) All(_ context.Context) ([]models.Store, error) {
	return append([]models.Store(nil), f.stores...), nil
}

func (f *fakeShowroomStore) FindByID(_ context.Context, id string) (models.Store, error) {
	for _, s := range f.stores {
		if s.ID.Hex() == id {
			return s, nil
		}
	}
	return models.Store{}, apperr.New(apperr.NotFound, "Store not found")
}

func (f *fakeShowroomStore) Create(_ context.Context, s *models.Store) error {
	f.stores = append(f.stores, *s)
	return nil
}

func TestStoreListSortedByName(t *testing.T) {
	store := &fakeShowroomStore{stores: []models.Store{
		{Name: "Sousse"},
		{Name: "La Marsa"},
		{Name: "Tunis Centre"},
	}}
	svc := NewStoreService(store)

	got, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"La Marsa", "Sousse", "Tunis Centre"},
		[]string{got[0].Name, got[1].Name, got[2].Name})
}

func TestStoreCreateValidates(t *testing.T) {
	store := &fakeShowroomStore{}
	svc := NewStoreService(store)

	err := svc.Create(context.Background(), &models.Store{Name: "Sans adresse"})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.Validation))
	assert.Empty(t, store.stores)

	valid := models.Store{
		Name:      "Bargaoui Rideaux Tahar - Sfax",
		Address:   "Route de Tunis km 2, Sfax",
		Latitude:  34.7406,
		Longitude: 10.7603,
		Hours:     []string{"Lun-Sam: 09h00 - 19h00"},
		Phone:     "+216 74 111 222",
	}
	require.NoError(t, svc.Create(context.Background(), &valid))
	assert.Len(t, store.stores, 1)
}
