package repositories

import (
	"context"

	"github.com/bargaoui/rideaux/app/models"
)

// CartStore holds per-user carts. Two drivers exist: an in-process map for
// development/tests and a Redis-backed store for production, so carts
// survive restarts and are shared across instances.
type CartStore interface {
	// Load returns the user's cart, or an empty cart if none is stored.
	Load(ctx context.Context, userID string) (models.Cart, error)

	// Save replaces the user's cart.
	Save(ctx context.Context, userID string, cart models.Cart) error

	// Clear deletes the user's cart entirely.
	Clear(ctx context.Context, userID string) error
}
