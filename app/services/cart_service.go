package services

import (
	"context"
	"sync"

	"github.com/bargaoui/rideaux/app/models"
	"github.com/bargaoui/rideaux/app/repositories"
	"github.com/bargaoui/rideaux/pkg/apperr"
)

// CartService maintains per-user carts. All mutations for one user are
// serialized through a per-user mutex so concurrent adds never lose updates
// under the load-modify-save pattern; different users proceed in parallel.
type CartService struct {
	store    repositories.CartStore
	products ProductStore

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewCartService(store repositories.CartStore, products ProductStore) *CartService {
	return &CartService{
		store:    store,
		products: products,
		locks:    make(map[string]*sync.Mutex),
	}
}

func (s *CartService) userLock(userID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[userID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[userID] = l
	}
	return l
}

// Get returns the user's cart with fresh totals.
func (s *CartService) Get(ctx context.Context, userID string) (models.Cart, error) {
	cart, err := s.store.Load(ctx, userID)
	if err != nil {
		return models.Cart{}, err
	}
	cart.Recalculate()
	return cart, nil
}

// AddItem puts quantity units of a product into the cart, snapshotting the
// product's current name and price. Adding an existing product increments
// its line instead of appending a duplicate.
func (s *CartService) AddItem(ctx context.Context, userID, productID string, quantity int) (models.Cart, error) {
	if quantity < 1 {
		return models.Cart{}, apperr.New(apperr.Validation, "Quantity must be at least 1")
	}

	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return models.Cart{}, err
	}

	l := s.userLock(userID)
	l.Lock()
	defer l.Unlock()

	cart, err := s.store.Load(ctx, userID)
	if err != nil {
		return models.Cart{}, err
	}

	if line := cart.Find(productID); line != nil {
		line.Quantity += quantity
	} else {
		cart.Items = append(cart.Items, models.CartItem{
			ProductID: productID,
			Name:      product.Name,
			ImageURL:  product.ImageURL,
			Price:     product.Price,
			Quantity:  quantity,
		})
	}

	cart.Recalculate()
	if err := s.store.Save(ctx, userID, cart); err != nil {
		return models.Cart{}, err
	}
	return cart, nil
}

// SetQuantity sets a line to an exact quantity. Quantities below 1 are
// rejected; use RemoveItem to delete a line.
func (s *CartService) SetQuantity(ctx context.Context, userID, productID string, quantity int) (models.Cart, error) {
	if quantity < 1 {
		return models.Cart{}, apperr.New(apperr.Validation, "Quantity must be at least 1")
	}

	l := s.userLock(userID)
	l.Lock()
	defer l.Unlock()

	cart, err := s.store.Load(ctx, userID)
	if err != nil {
		return models.Cart{}, err
	}

	line := cart.Find(productID)
	if line == nil {
		return models.Cart{}, apperr.New(apperr.NotFound, "Product not in cart")
	}
	line.Quantity = quantity

	cart.Recalculate()
	if err := s.store.Save(ctx, userID, cart); err != nil {
		return models.Cart{}, err
	}
	return cart, nil
}

// RemoveItem deletes a whole line. Removing an absent product is a no-op.
func (s *CartService) RemoveItem(ctx context.Context, userID, productID string) (models.Cart, error) {
	l := s.userLock(userID)
	l.Lock()
	defer l.Unlock()

	cart, err := s.store.Load(ctx, userID)
	if err != nil {
		return models.Cart{}, err
	}

	cart.Remove(productID)
	cart.Recalculate()
	if err := s.store.Save(ctx, userID, cart); err != nil {
		return models.Cart{}, err
	}
	return cart, nil
}

// Clear empties the cart.
func (s *CartService) Clear(ctx context.Context, userID string) (models.Cart, error) {
	l := s.userLock(userID)
	l.Lock()
	defer l.Unlock()

	if err := s.store.Clear(ctx, userID); err != nil {
		return models.Cart{}, err
	}
	empty := models.Cart{Items: []models.CartItem{}}
	empty.Recalculate()
	return empty, nil
}
