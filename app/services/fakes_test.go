package services

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bargaoui/rideaux/app/models"
	"github.com/bargaoui/rideaux/pkg/apperr"
)

// fakeUserStore is an in-memory UserStore.
type fakeUserStore struct {
	mu    sync.Mutex
	users map[string]models.User // keyed by id hex
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]models.User)}
}

func (f *fakeUserStore) Create(_ context.Context, user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == user.Email {
			return apperr.New(apperr.Duplicate, "User already exists")
		}
	}
	user.ID = primitive.NewObjectID()
	f.users[user.ID.Hex()] = *user
	return nil
}

func (f *fakeUserStore) FindByEmail(_ context.Context, email string) (models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, apperr.New(apperr.NotFound, "User not found")
}

func (f *fakeUserStore) FindByID(_ context.Context, id string) (models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return models.User{}, apperr.New(apperr.NotFound, "User not found")
}

func (f *fakeUserStore) FindByResetToken(_ context.Context, digest string) (models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.ResetPasswordToken != "" && u.ResetPasswordToken == digest {
			return u, nil
		}
	}
	return models.User{}, apperr.New(apperr.NotFound, "User not found")
}

func (f *fakeUserStore) Update(_ context.Context, user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[user.ID.Hex()]; !ok {
		return apperr.New(apperr.NotFound, "User not found")
	}
	f.users[user.ID.Hex()] = *user
	return nil
}

func (f *fakeUserStore) SetResetToken(_ context.Context, id primitive.ObjectID, digest string, expires time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id.Hex()]
	if !ok {
		return apperr.New(apperr.NotFound, "User not found")
	}
	u.ResetPasswordToken = digest
	u.ResetPasswordExpires = expires
	f.users[id.Hex()] = u
	return nil
}

func (f *fakeUserStore) ClearResetToken(_ context.Context, id primitive.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id.Hex()]
	if !ok {
		return apperr.New(apperr.NotFound, "User not found")
	}
	u.ResetPasswordToken = ""
	u.ResetPasswordExpires = time.Time{}
	f.users[id.Hex()] = u
	return nil
}

func (f *fakeUserStore) get(id primitive.ObjectID) models.User {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.users[id.Hex()]
}

// fakeProductStore is an in-memory ProductStore.
type fakeProductStore struct {
	mu       sync.Mutex
	products map[string]models.Product
}

func newFakeProductStore() *fakeProductStore {
	return &fakeProductStore{products: make(map[string]models.Product)}
}

func (f *fakeProductStore) add(p models.Product) models.Product {
	f.mu.Lock()
	defer f.mu.Unlock()
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	f.products[p.ID.Hex()] = p
	return p
}

func (f *fakeProductStore) List(_ context.Context, filter models.ProductFilter) ([]models.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []models.Product{}
	for _, p := range f.products {
		if filter.Matches(p) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProductStore) FindByID(_ context.Context, id string) (models.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if p, ok := f.products[id]; ok {
		return p, nil
	}
	return models.Product{}, apperr.New(apperr.NotFound, "Product not found")
}

func (f *fakeProductStore) Exists(_ context.Context, id primitive.ObjectID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.products[id.Hex()]
	return ok, nil
}

func (f *fakeProductStore) Create(_ context.Context, p *models.Product) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p.ID = primitive.NewObjectID()
	f.products[p.ID.Hex()] = *p
	return nil
}

func (f *fakeProductStore) Update(_ context.Context, id string, _ bson.M) (models.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if p, ok := f.products[id]; ok {
		return p, nil
	}
	return models.Product{}, apperr.New(apperr.NotFound, "Product not found")
}

func (f *fakeProductStore) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.products, id)
	return nil
}

// fakeMailer records every send and can be told to fail.
type fakeMailer struct {
	mu    sync.Mutex
	sent  []sentMail
	fail  error
}

type sentMail struct {
	To      string
	Subject string
	Body    string
}

func (f *fakeMailer) Send(to, subject, htmlBody string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail != nil {
		return f.fail
	}
	f.sent = append(f.sent, sentMail{To: to, Subject: subject, Body: htmlBody})
	return nil
}

func (f *fakeMailer) last() sentMail {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sent[len(f.sent)-1]
}

// fakeOrderRecorder records persisted orders.
type fakeOrderRecorder struct {
	mu     sync.Mutex
	orders []models.Order
}

func (f *fakeOrderRecorder) Create(_ context.Context, o *models.Order) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	o.ID = primitive.NewObjectID()
	f.orders = append(f.orders, *o)
	return nil
}

func (f *fakeOrderRecorder) ListByUser(_ context.Context, userID primitive.ObjectID) ([]models.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []models.Order{}
	for _, o := range f.orders {
		if o.User == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeOrderRecorder) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.orders)
}

// fakeOrderNotifier records confirmation dispatches.
type fakeOrderNotifier struct {
	mu    sync.Mutex
	calls []string // recipient emails
}

func (f *fakeOrderNotifier) OrderCreated(_ models.Order, email string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, email)
}

// fakeConsultationRecorder records bookings.
type fakeConsultationRecorder struct {
	mu       sync.Mutex
	bookings []models.Consultation
}

func (f *fakeConsultationRecorder) Create(_ context.Context, c *models.Consultation) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	c.ID = primitive.NewObjectID()
	f.bookings = append(f.bookings, *c)
	return nil
}

// fakeConsultationNotifier records confirmations.
type fakeConsultationNotifier struct {
	mu    sync.Mutex
	calls []models.Consultation
}

func (f *fakeConsultationNotifier) ConsultationReceived(c models.Consultation) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, c)
}
