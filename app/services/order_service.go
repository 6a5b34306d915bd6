package services

import (
	"context"
	"math"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bargaoui/rideaux/app/models"
	"github.com/bargaoui/rideaux/pkg/apperr"
	"github.com/bargaoui/rideaux/pkg/event"
)

// OrderRecorder is the slice of the order repository the service needs.
type OrderRecorder interface {
	Create(ctx context.Context, o *models.Order) error
	ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Order, error)
}

// OrderNotifier delivers the post-checkout confirmation. Implementations
// must be best-effort: a failure is logged, never propagated to the buyer.
type OrderNotifier interface {
	OrderCreated(order models.Order, email string)
}

// EventOrderCreated is fired on the event bus after every checkout.
const EventOrderCreated = "order.created"

// OrderService validates and persists checkouts.
type OrderService struct {
	orders   OrderRecorder
	users    UserStore
	products ProductStore
	notifier OrderNotifier
}

func NewOrderService(orders OrderRecorder, users UserStore, products ProductStore, notifier OrderNotifier) *OrderService {
	return &OrderService{orders: orders, users: users, products: products, notifier: notifier}
}

// Create places an order. The buyer and every referenced product must exist,
// and the submitted totalAmount must match the server-side recomputation.
// Nothing is persisted when any check fails. The confirmation email and the
// order.created event are dispatched after the write and never roll it back.
func (s *OrderService) Create(ctx context.Context, userID string, order *models.Order) (models.Order, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return models.Order{}, apperr.New(apperr.Validation, "User not found: "+userID)
	}
	order.User = user.ID

	if err := order.Validate(); err != nil {
		return models.Order{}, err
	}

	for _, item := range order.OrderItems {
		ok, err := s.products.Exists(ctx, item.Product)
		if err != nil {
			return models.Order{}, err
		}
		if !ok {
			return models.Order{}, apperr.New(apperr.Validation, "Product not found: "+item.Product.Hex())
		}
	}

	// The client-submitted total is advisory only.
	expected := order.ItemTotal()
	if math.Abs(order.TotalAmount-expected) > 0.01 {
		return models.Order{}, apperr.New(apperr.Validation, "Total amount does not match order items")
	}
	order.TotalAmount = expected

	if err := s.orders.Create(ctx, order); err != nil {
		return models.Order{}, err
	}

	if s.notifier != nil {
		s.notifier.OrderCreated(*order, user.Email)
	}
	event.FireAsync(EventOrderCreated, *order)

	return *order, nil
}

// ListForUser returns the caller's order history.
func (s *OrderService) ListForUser(ctx context.Context, userID string) ([]models.Order, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, apperr.New(apperr.NotFound, "User not found")
	}
	return s.orders.ListByUser(ctx, oid)
}
