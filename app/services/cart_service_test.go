package services

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bargaoui/rideaux/app/models"
	"github.com/bargaoui/rideaux/app/repositories"
	"github.com/bargaoui/rideaux/pkg/apperr"
)

func newCartFixture() (*CartService, *fakeProductStore) {
	products := newFakeProductStore()
	return NewCartService(repositories.NewMemoryCartStore(), products), products
}

func TestAddItemMergesLines(t *testing.T) {
	svc, products := newCartFixture()
	ctx := context.Background()

	p := products.add(models.Product{Name: "Rideau Velours Royal", Price: 50})

	_, err := svc.AddItem(ctx, "user-1", p.ID.Hex(), 2)
	require.NoError(t, err)
	cart, err := svc.AddItem(ctx, "user-1", p.ID.Hex(), 3)
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 5, cart.Items[0].Quantity)
}

func TestCartTotals(t *testing.T) {
	svc, products := newCartFixture()
	ctx := context.Background()

	curtain := products.add(models.Product{Name: "Rideau", Price: 50})
	cushion := products.add(models.Product{Name: "Coussin", Price: 30})

	_, err := svc.AddItem(ctx, "user-1", curtain.ID.Hex(), 2)
	require.NoError(t, err)
	cart, err := svc.AddItem(ctx, "user-1", cushion.ID.Hex(), 1)
	require.NoError(t, err)

	assert.Equal(t, 130.0, cart.Subtotal)
	assert.Equal(t, 13.0, cart.Tax)
	assert.Equal(t, 143.0, cart.Total)
}

func TestAddItemSnapshotsPrice(t *testing.T) {
	svc, products := newCartFixture()
	ctx := context.Background()

	p := products.add(models.Product{Name: "Voilage", Price: 95})
	cart, err := svc.AddItem(ctx, "user-1", p.ID.Hex(), 1)
	require.NoError(t, err)

	// A later price change does not touch the line already in the cart.
	products.add(models.Product{ID: p.ID, Name: "Voilage", Price: 120})
	cart, err = svc.Get(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 95.0, cart.Items[0].Price)
}

func TestAddUnknownProduct(t *testing.T) {
	svc, _ := newCartFixture()

	_, err := svc.AddItem(context.Background(), "user-1", "000000000000000000000000", 1)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.NotFound))
}

func TestSetQuantity(t *testing.T) {
	svc, products := newCartFixture()
	ctx := context.Background()

	p := products.add(models.Product{Name: "Store Enrouleur", Price: 64})
	_, err := svc.AddItem(ctx, "user-1", p.ID.Hex(), 1)
	require.NoError(t, err)

	cart, err := svc.SetQuantity(ctx, "user-1", p.ID.Hex(), 4)
	require.NoError(t, err)
	assert.Equal(t, 4, cart.Items[0].Quantity)

	_, err = svc.SetQuantity(ctx, "user-1", p.ID.Hex(), 0)
	assert.True(t, apperr.IsKind(err, apperr.Validation))

	_, err = svc.SetQuantity(ctx, "user-1", "ffffffffffffffffffffffff", 2)
	assert.True(t, apperr.IsKind(err, apperr.NotFound))
}

func TestRemoveItemIdempotent(t *testing.T) {
	svc, products := newCartFixture()
	ctx := context.Background()

	p := products.add(models.Product{Name: "Coussin", Price: 38})
	_, err := svc.AddItem(ctx, "user-1", p.ID.Hex(), 1)
	require.NoError(t, err)

	cart, err := svc.RemoveItem(ctx, "user-1", p.ID.Hex())
	require.NoError(t, err)
	assert.Empty(t, cart.Items)

	// Removing again is a no-op, not an error.
	cart, err = svc.RemoveItem(ctx, "user-1", p.ID.Hex())
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestClear(t *testing.T) {
	svc, products := newCartFixture()
	ctx := context.Background()

	p := products.add(models.Product{Name: "Jeté de Lit", Price: 145})
	_, err := svc.AddItem(ctx, "user-1", p.ID.Hex(), 2)
	require.NoError(t, err)

	cart, err := svc.Clear(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
	assert.Zero(t, cart.Total)
}

func TestConcurrentAddsDoNotLoseUpdates(t *testing.T) {
	svc, products := newCartFixture()
	ctx := context.Background()

	p := products.add(models.Product{Name: "Rideau", Price: 10})

	const n = 50
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			_, err := svc.AddItem(ctx, "user-1", p.ID.Hex(), 1)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	cart, err := svc.Get(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, n, cart.Items[0].Quantity)
}

func TestCartsAreIsolatedPerUser(t *testing.T) {
	svc, products := newCartFixture()
	ctx := context.Background()

	p := products.add(models.Product{Name: "Rideau", Price: 10})
	_, err := svc.AddItem(ctx, "user-1", p.ID.Hex(), 1)
	require.NoError(t, err)

	cart, err := svc.Get(ctx, "user-2")
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}
