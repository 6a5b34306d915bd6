package repositories

import (
	"context"
	"sync"

	"github.com/bargaoui/rideaux/app/models"
)

// MemoryCartStore keeps carts in a process-local map.
type MemoryCartStore struct {
	mu    sync.RWMutex
	carts map[string]models.Cart
}

func NewMemoryCartStore() *MemoryCartStore {
	return &MemoryCartStore{carts: make(map[string]models.Cart)}
}

func (s *MemoryCartStore) Load(_ context.Context, userID string) (models.Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cart, ok := s.carts[userID]
	if !ok {
		return models.Cart{Items: []models.CartItem{}}, nil
	}
	// Copy the slice so callers never share backing arrays with the store.
	items := make([]models.CartItem, len(cart.Items))
	copy(items, cart.Items)
	cart.Items = items
	return cart, nil
}

func (s *MemoryCartStore) Save(_ context.Context, userID string, cart models.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.carts[userID] = cart
	return nil
}

func (s *MemoryCartStore) Clear(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, userID)
	return nil
}
