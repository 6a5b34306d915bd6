package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bargaoui/rideaux/pkg/apperr"
)

// PaymentMethod is the fixed checkout payment enumeration.
type PaymentMethod string

const (
	PaymentCreditCard     PaymentMethod = "credit_card"
	PaymentPaypal         PaymentMethod = "paypal"
	PaymentCashOnDelivery PaymentMethod = "cash_on_delivery"
)

// ValidPaymentMethod reports whether m is a known method.
func ValidPaymentMethod(m PaymentMethod) bool {
	switch m {
	case PaymentCreditCard, PaymentPaypal, PaymentCashOnDelivery:
		return true
	}
	return false
}

// OrderItem is one purchased line: a product reference with the quantity and
// the unit price snapshotted at checkout.
type OrderItem struct {
	Product  primitive.ObjectID `bson:"product" json:"product"`
	Quantity int                `bson:"quantity" json:"quantity"`
	Price    float64            `bson:"price" json:"price"`
}

// ShippingAddress is the delivery destination. Completeness is enforced by
// Order.Validate.
type ShippingAddress struct {
	Street  string `bson:"street" json:"street"`
	City    string `bson:"city" json:"city"`
	State   string `bson:"state" json:"state"`
	ZipCode string `bson:"zipCode" json:"zipCode"`
	Country string `bson:"country" json:"country"`
}

// Order is immutable after creation; there are no edit or cancel operations.
type Order struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	User            primitive.ObjectID `bson:"user" json:"user"`
	OrderItems      []OrderItem        `bson:"orderItems" json:"orderItems"`
	ShippingAddress ShippingAddress    `bson:"shippingAddress" json:"shippingAddress"`
	PaymentMethod   PaymentMethod      `bson:"paymentMethod" json:"paymentMethod"`
	TotalAmount     float64            `bson:"totalAmount" json:"totalAmount"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
}

// ItemTotal is the sum of price × quantity across all lines.
func (o *Order) ItemTotal() float64 {
	var sum float64
	for _, it := range o.OrderItems {
		sum += it.Price * float64(it.Quantity)
	}
	return sum
}

// Validate enforces the checkout invariants that do not need the database:
// non-empty items, positive quantities, non-negative prices, a complete
// address and a known payment method.
func (o *Order) Validate() error {
	if len(o.OrderItems) == 0 {
		return apperr.New(apperr.Validation, "Order must contain at least one item")
	}
	for _, it := range o.OrderItems {
		if it.Quantity < 1 {
			return apperr.New(apperr.Validation, "Item quantity must be at least 1")
		}
		if it.Price < 0 {
			return apperr.New(apperr.Validation, "Item price must not be negative")
		}
	}
	a := o.ShippingAddress
	if a.Street == "" || a.City == "" || a.State == "" || a.ZipCode == "" || a.Country == "" {
		return apperr.New(apperr.Validation, "Shipping address is incomplete")
	}
	if !ValidPaymentMethod(o.PaymentMethod) {
		return apperr.New(apperr.Validation, "Invalid payment method")
	}
	return nil
}
