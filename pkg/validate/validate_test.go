package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type registerSchema struct {
	FirstName string `json:"firstName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
}

func TestStructRequired(t *testing.T) {
	errs := Struct(registerSchema{})
	assert.True(t, HasErrors(errs))
	assert.Contains(t, errs, "firstName")
	assert.Contains(t, errs, "email")
	assert.Contains(t, errs, "password")

	errs = Struct(registerSchema{FirstName: "Amira", Email: "amira@example.com", Password: "secret123"})
	assert.False(t, HasErrors(errs))
}

func TestStructEmail(t *testing.T) {
	errs := Struct(registerSchema{FirstName: "Amira", Email: "not-an-email", Password: "secret123"})
	assert.Equal(t, "The email must be a valid email address.", errs["email"])
}

func TestStructMinLength(t *testing.T) {
	errs := Struct(registerSchema{FirstName: "Amira", Email: "amira@example.com", Password: "abc"})
	assert.Equal(t, "The password must be at least 6 characters.", errs["password"])
}

func TestStructNumericRules(t *testing.T) {
	type schema struct {
		Price    float64 `json:"price" validate:"required,gte=0"`
		Quantity int     `json:"quantity" validate:"required,gte=1,lte=100"`
	}

	// required treats zero as missing.
	errs := Struct(schema{Quantity: 5})
	assert.Contains(t, errs, "price")

	errs = Struct(schema{Price: 10, Quantity: 500})
	assert.Equal(t, "The quantity must be less than or equal to 100.", errs["quantity"])

	errs = Struct(schema{Price: 10, Quantity: 5})
	assert.Empty(t, errs)
}

func TestStructNullableSkipsWhenEmpty(t *testing.T) {
	type schema struct {
		Phone string `json:"phone" validate:"nullable,min=8"`
	}

	assert.Empty(t, Struct(schema{}))
	assert.Contains(t, Struct(schema{Phone: "123"}), "phone")
}

func TestStructIn(t *testing.T) {
	type schema struct {
		Payment string `json:"paymentMethod" validate:"required,in=credit_card|paypal|cash_on_delivery"`
	}

	assert.Empty(t, Struct(schema{Payment: "paypal"}))
	errs := Struct(schema{Payment: "bitcoin"})
	assert.Equal(t, "The selected paymentMethod is invalid.", errs["paymentMethod"])
}

func TestStructPointerFields(t *testing.T) {
	type schema struct {
		InStock *bool `json:"inStock" validate:"required,boolean"`
	}

	assert.Contains(t, Struct(schema{}), "inStock")

	f := false
	assert.Empty(t, Struct(schema{InStock: &f}), "an explicit false is present, not missing")
}

func TestStructFirstFailingRuleWins(t *testing.T) {
	errs := Struct(registerSchema{FirstName: "Amira", Email: "", Password: "secret123"})
	assert.Equal(t, "The email field is required.", errs["email"])
}
