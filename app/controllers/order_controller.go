package controllers

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bargaoui/rideaux/app/models"
	"github.com/bargaoui/rideaux/app/services"
	"github.com/bargaoui/rideaux/pkg/apperr"
	"github.com/bargaoui/rideaux/pkg/ctx"
	"github.com/bargaoui/rideaux/pkg/middleware"
)

// OrderController handles checkout.
type OrderController struct {
	orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{orders: orders}
}

type orderItemInput struct {
	Product  string  `json:"product" validate:"required"`
	Quantity int     `json:"quantity" validate:"required,gte=1"`
	Price    float64 `json:"price" validate:"gte=0"`
}

type createOrderInput struct {
	User            string                 `json:"user" validate:"required"`
	OrderItems      []orderItemInput       `json:"orderItems" validate:"required"`
	ShippingAddress models.ShippingAddress `json:"shippingAddress"`
	PaymentMethod   models.PaymentMethod   `json:"paymentMethod" validate:"required"`
	TotalAmount     float64                `json:"totalAmount" validate:"gte=0"`
}

// Create places an order. Totals are recomputed server-side; a mismatching
// totalAmount is rejected.
func (o *OrderController) Create(c *ctx.Context) {
	var in createOrderInput
	if !c.BindJSON(&in) {
		return
	}

	items := make([]models.OrderItem, 0, len(in.OrderItems))
	for _, it := range in.OrderItems {
		pid, err := primitive.ObjectIDFromHex(it.Product)
		if err != nil {
			fail(c, apperr.New(apperr.Validation, "Product not found: "+it.Product))
			return
		}
		items = append(items, models.OrderItem{Product: pid, Quantity: it.Quantity, Price: it.Price})
	}

	order := models.Order{
		OrderItems:      items,
		ShippingAddress: in.ShippingAddress,
		PaymentMethod:   in.PaymentMethod,
		TotalAmount:     in.TotalAmount,
	}

	created, err := o.orders.Create(c.Context(), in.User, &order)
	if err != nil {
		fail(c, err)
		return
	}
	c.Created(created)
}

// ListMine returns the session user's order history, newest first.
func (o *OrderController) ListMine(c *ctx.Context) {
	orders, err := o.orders.ListForUser(c.Context(), middleware.UserIDFromCtx(c.Context()))
	if err != nil {
		fail(c, err)
		return
	}
	c.Success(orders)
}
