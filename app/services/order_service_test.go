package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bargaoui/rideaux/app/models"
	"github.com/bargaoui/rideaux/pkg/apperr"
	"github.com/bargaoui/rideaux/pkg/auth"
)

func newOrderFixture(t *testing.T) (*OrderService, *fakeUserStore, *fakeProductStore, *fakeOrderRecorder, *fakeOrderNotifier, models.User) {
	t.Helper()

	users := newFakeUserStore()
	products := newFakeProductStore()
	recorder := &fakeOrderRecorder{}
	notifier := &fakeOrderNotifier{}
	svc := NewOrderService(recorder, users, products, notifier)

	hash, err := auth.HashPassword("secret123")
	require.NoError(t, err)
	buyer := models.NewUser("Rim", "Chaabane", "rim@example.com", hash)
	require.NoError(t, users.Create(context.Background(), buyer))

	return svc, users, products, recorder, notifier, *buyer
}

func validAddress() models.ShippingAddress {
	return models.ShippingAddress{
		Street:  "5 Rue de Carthage",
		City:    "Tunis",
		State:   "Tunis",
		ZipCode: "1000",
		Country: "Tunisie",
	}
}

func TestCreateOrder(t *testing.T) {
	svc, _, products, recorder, notifier, buyer := newOrderFixture(t)
	ctx := context.Background()

	p := products.add(models.Product{Name: "Rideau Velours", Price: 210})
	order := models.Order{
		OrderItems:      []models.OrderItem{{Product: p.ID, Quantity: 2, Price: 210}},
		ShippingAddress: validAddress(),
		PaymentMethod:   models.PaymentCashOnDelivery,
		TotalAmount:     420,
	}

	created, err := svc.Create(ctx, buyer.ID.Hex(), &order)
	require.NoError(t, err)
	assert.Equal(t, buyer.ID, created.User)
	assert.Equal(t, 420.0, created.TotalAmount)
	assert.Equal(t, 1, recorder.count())
	assert.Equal(t, []string{"rim@example.com"}, notifier.calls)
}

func TestCreateOrderUnknownUser(t *testing.T) {
	svc, _, products, recorder, _, _ := newOrderFixture(t)

	p := products.add(models.Product{Name: "Rideau", Price: 100})
	order := models.Order{
		OrderItems:      []models.OrderItem{{Product: p.ID, Quantity: 1, Price: 100}},
		ShippingAddress: validAddress(),
		PaymentMethod:   models.PaymentPaypal,
		TotalAmount:     100,
	}

	_, err := svc.Create(context.Background(), "000000000000000000000000", &order)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.Validation))
	assert.Zero(t, recorder.count())
}

func TestCreateOrderUnknownProductPersistsNothing(t *testing.T) {
	svc, _, products, recorder, notifier, buyer := newOrderFixture(t)

	known := products.add(models.Product{Name: "Rideau", Price: 100})
	ghost := primitive.NewObjectID()
	order := models.Order{
		OrderItems: []models.OrderItem{
			{Product: known.ID, Quantity: 1, Price: 100},
			{Product: ghost, Quantity: 1, Price: 50},
		},
		ShippingAddress: validAddress(),
		PaymentMethod:   models.PaymentCreditCard,
		TotalAmount:     150,
	}

	_, err := svc.Create(context.Background(), buyer.ID.Hex(), &order)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.Validation))
	assert.Equal(t, "Product not found: "+ghost.Hex(), apperr.Message(err))
	assert.Zero(t, recorder.count())
	assert.Empty(t, notifier.calls)
}

func TestCreateOrderTotalMismatchRejected(t *testing.T) {
	svc, _, products, recorder, _, buyer := newOrderFixture(t)

	p := products.add(models.Product{Name: "Rideau", Price: 100})
	order := models.Order{
		OrderItems:      []models.OrderItem{{Product: p.ID, Quantity: 2, Price: 100}},
		ShippingAddress: validAddress(),
		PaymentMethod:   models.PaymentCreditCard,
		TotalAmount:     150, // client lies; items sum to 200
	}

	_, err := svc.Create(context.Background(), buyer.ID.Hex(), &order)
	require.Error(t, err)
	assert.Equal(t, "Total amount does not match order items", apperr.Message(err))
	assert.Zero(t, recorder.count())
}

func TestCreateOrderInvalidPaymentMethod(t *testing.T) {
	svc, _, products, recorder, _, buyer := newOrderFixture(t)

	p := products.add(models.Product{Name: "Rideau", Price: 100})
	order := models.Order{
		OrderItems:      []models.OrderItem{{Product: p.ID, Quantity: 1, Price: 100}},
		ShippingAddress: validAddress(),
		PaymentMethod:   "bitcoin",
		TotalAmount:     100,
	}

	_, err := svc.Create(context.Background(), buyer.ID.Hex(), &order)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.Validation))
	assert.Zero(t, recorder.count())
}

func TestCreateOrderIncompleteAddress(t *testing.T) {
	svc, _, products, recorder, _, buyer := newOrderFixture(t)

	p := products.add(models.Product{Name: "Rideau", Price: 100})
	addr := validAddress()
	addr.ZipCode = ""
	order := models.Order{
		OrderItems:      []models.OrderItem{{Product: p.ID, Quantity: 1, Price: 100}},
		ShippingAddress: addr,
		PaymentMethod:   models.PaymentCashOnDelivery,
		TotalAmount:     100,
	}

	_, err := svc.Create(context.Background(), buyer.ID.Hex(), &order)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.Validation))
	assert.Equal(t, "Shipping address is incomplete", apperr.Message(err))
	assert.Zero(t, recorder.count())
}

func TestListForUser(t *testing.T) {
	svc, users, products, _, _, buyer := newOrderFixture(t)
	ctx := context.Background()

	otherHash, err := auth.HashPassword("secret456")
	require.NoError(t, err)
	other := models.NewUser("Wael", "Sassi", "wael@example.com", otherHash)
	require.NoError(t, users.Create(ctx, other))

	p := products.add(models.Product{Name: "Rideau", Price: 100})
	for _, id := range []string{buyer.ID.Hex(), buyer.ID.Hex(), other.ID.Hex()} {
		order := models.Order{
			OrderItems:      []models.OrderItem{{Product: p.ID, Quantity: 1, Price: 100}},
			ShippingAddress: validAddress(),
			PaymentMethod:   models.PaymentCreditCard,
			TotalAmount:     100,
		}
		_, err := svc.Create(ctx, id, &order)
		require.NoError(t, err)
	}

	mine, err := svc.ListForUser(ctx, buyer.ID.Hex())
	require.NoError(t, err)
	assert.Len(t, mine, 2)
}
