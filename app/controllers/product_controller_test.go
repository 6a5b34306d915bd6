package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bargaoui/rideaux/app/models"
	"github.com/bargaoui/rideaux/app/services"
	"github.com/bargaoui/rideaux/pkg/ctx"
)

type stubProductStore struct {
	created []models.Product
}

func (s *stubProductStore) List(_ context.Context, _ models.ProductFilter) ([]models.Product, error) {
	return nil, nil
}

func (s *stubProductStore) FindByID(_ context.Context, _ string) (models.Product, error) {
	return models.Product{}, nil
}

func (s *stubProductStore) Exists(_ context.Context, _ primitive.ObjectID) (bool, error) {
	return false, nil
}

func (s *stubProductStore) Create(_ context.Context, p *models.Product) error {
	p.ID = primitive.NewObjectID()
	s.created = append(s.created, *p)
	return nil
}

func (s *stubProductStore) Update(_ context.Context, _ string, _ bson.M) (models.Product, error) {
	return models.Product{}, nil
}

func (s *stubProductStore) Delete(_ context.Context, _ string) error {
	return nil
}

func postProduct(t *testing.T, body string) (*stubProductStore, *httptest.ResponseRecorder) {
	t.Helper()
	store := &stubProductStore{}
	pc := NewProductController(services.NewCatalogService(store))

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/products", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	ctx.Wrap(pc.Create)(rr, req)
	return store, rr
}

func TestCreateProductMissingInStockRejected(t *testing.T) {
	store, rr := postProduct(t, `{
		"name": "Store Enrouleur Tamisant",
		"description": "Tissu tamisant, chaine de commande laterale",
		"price": 189,
		"imageUrl": "/storage/products/store-enrouleur.jpg",
		"category": "Blinds & Shades",
		"dimensions": {"width": 120, "height": 200}
	}`)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Empty(t, store.created, "nothing may be persisted")

	var body struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "Please provide all required fields", body.Message)
}

func TestCreateProductExplicitFalseInStockAccepted(t *testing.T) {
	store, rr := postProduct(t, `{
		"name": "Store Enrouleur Tamisant",
		"description": "Tissu tamisant, chaine de commande laterale",
		"price": 189,
		"imageUrl": "/storage/products/store-enrouleur.jpg",
		"category": "Blinds & Shades",
		"dimensions": {"width": 120, "height": 200},
		"inStock": false
	}`)

	assert.Equal(t, http.StatusCreated, rr.Code)
	require.Len(t, store.created, 1)
	assert.False(t, store.created[0].InStock)
}
