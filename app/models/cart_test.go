package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCartRecalculate(t *testing.T) {
	cart := Cart{Items: []CartItem{
		{ProductID: "a", Price: 50, Quantity: 2},
		{ProductID: "b", Price: 30, Quantity: 1},
	}}
	cart.Recalculate()

	assert.Equal(t, 130.0, cart.Subtotal)
	assert.Equal(t, 13.0, cart.Tax)
	assert.Equal(t, 143.0, cart.Total)
}

func TestCartRecalculateRounds(t *testing.T) {
	cart := Cart{Items: []CartItem{
		{ProductID: "a", Price: 19.99, Quantity: 3},
	}}
	cart.Recalculate()

	assert.Equal(t, 59.97, cart.Subtotal)
	assert.Equal(t, 6.0, cart.Tax)
	assert.Equal(t, 65.97, cart.Total)
}

func TestCartTaxRateConfigurable(t *testing.T) {
	SetTaxRate(0.19)
	defer SetTaxRate(0.10)

	cart := Cart{Items: []CartItem{
		{ProductID: "a", Price: 100, Quantity: 1},
	}}
	cart.Recalculate()

	assert.Equal(t, 19.0, cart.Tax)
	assert.Equal(t, 119.0, cart.Total)

	// Negative rates are ignored.
	SetTaxRate(-1)
	assert.Equal(t, 0.19, TaxRate())
}

func TestCartRecalculateEmpty(t *testing.T) {
	var cart Cart
	cart.Recalculate()

	assert.Zero(t, cart.Subtotal)
	assert.Zero(t, cart.Tax)
	assert.Zero(t, cart.Total)
}

func TestCartFindAndRemove(t *testing.T) {
	cart := Cart{Items: []CartItem{
		{ProductID: "a", Quantity: 1},
		{ProductID: "b", Quantity: 2},
	}}

	line := cart.Find("b")
	assert.NotNil(t, line)
	line.Quantity = 5
	assert.Equal(t, 5, cart.Items[1].Quantity, "Find must return a live pointer")

	cart.Remove("a")
	assert.Len(t, cart.Items, 1)
	assert.Nil(t, cart.Find("a"))

	// Removing an absent line is a no-op.
	cart.Remove("a")
	assert.Len(t, cart.Items, 1)
}
