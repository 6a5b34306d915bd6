package controllers

import (
	"github.com/bargaoui/rideaux/app/models"
	"github.com/bargaoui/rideaux/app/services"
	"github.com/bargaoui/rideaux/pkg/ctx"
)

// StoreController serves the store locator.
type StoreController struct {
	stores *services.StoreService
}

func NewStoreController(stores *services.StoreService) *StoreController {
	return &StoreController{stores: stores}
}

// List returns all showrooms.
func (s *StoreController) List(c *ctx.Context) {
	stores, err := s.stores.List(c.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.Success(stores)
}

// Get returns one showroom.
func (s *StoreController) Get(c *ctx.Context) {
	store, err := s.stores.Get(c.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.Success(store)
}

type storeInput struct {
	Name      string   `json:"name" validate:"required"`
	Address   string   `json:"address" validate:"required"`
	Latitude  float64  `json:"latitude" validate:"required"`
	Longitude float64  `json:"longitude" validate:"required"`
	Hours     []string `json:"hours" validate:"required"`
	Phone     string   `json:"phone" validate:"required"`
}

// Create adds a showroom. Admin only.
func (s *StoreController) Create(c *ctx.Context) {
	var in storeInput
	if !c.BindJSON(&in) {
		return
	}

	store := models.Store{
		Name:      in.Name,
		Address:   in.Address,
		Latitude:  in.Latitude,
		Longitude: in.Longitude,
		Hours:     in.Hours,
		Phone:     in.Phone,
	}
	if err := s.stores.Create(c.Context(), &store); err != nil {
		fail(c, err)
		return
	}
	c.Created(store)
}
