package controllers

import (
	"encoding/json"

	"github.com/bargaoui/rideaux/app/services"
	"github.com/bargaoui/rideaux/pkg/ctx"
	"github.com/bargaoui/rideaux/pkg/middleware"
)

// CartController serves the authenticated user's cart. Every handler keys
// off the session identity; there are no anonymous carts.
type CartController struct {
	carts *services.CartService
}

func NewCartController(carts *services.CartService) *CartController {
	return &CartController{carts: carts}
}

// Get returns the cart with derived subtotal, tax and total.
func (ct *CartController) Get(c *ctx.Context) {
	cart, err := ct.carts.Get(c.Context(), middleware.UserIDFromCtx(c.Context()))
	if err != nil {
		fail(c, err)
		return
	}
	c.Success(cart)
}

type quantityInput struct {
	Quantity int `json:"quantity"`
}

// Add puts the product from the URL into the cart. The body may carry an
// optional quantity; an empty body means one unit.
func (ct *CartController) Add(c *ctx.Context) {
	in := quantityInput{Quantity: 1}
	// Tolerate an empty or absent body.
	if err := json.NewDecoder(c.R.Body).Decode(&in); err == nil && in.Quantity == 0 {
		in.Quantity = 1
	}

	cart, err := ct.carts.AddItem(c.Context(), middleware.UserIDFromCtx(c.Context()), c.Param("id"), in.Quantity)
	if err != nil {
		fail(c, err)
		return
	}
	c.Success(cart)
}

// SetQuantity sets a line to an exact quantity.
func (ct *CartController) SetQuantity(c *ctx.Context) {
	var in quantityInput
	if !c.BindJSON(&in) {
		return
	}

	cart, err := ct.carts.SetQuantity(c.Context(), middleware.UserIDFromCtx(c.Context()), c.Param("id"), in.Quantity)
	if err != nil {
		fail(c, err)
		return
	}
	c.Success(cart)
}

// Remove deletes a whole line. Removing an absent product is a no-op.
func (ct *CartController) Remove(c *ctx.Context) {
	cart, err := ct.carts.RemoveItem(c.Context(), middleware.UserIDFromCtx(c.Context()), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.Success(cart)
}

// Clear empties the cart.
func (ct *CartController) Clear(c *ctx.Context) {
	cart, err := ct.carts.Clear(c.Context(), middleware.UserIDFromCtx(c.Context()))
	if err != nil {
		fail(c, err)
		return
	}
	c.Success(cart)
}
