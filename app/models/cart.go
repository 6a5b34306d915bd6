package models

import "math"

// taxRate is the flat sales tax applied to the cart subtotal. The default
// matches the storefront's 10% rate; boot overrides it from TAX_RATE.
var taxRate = 0.10

// SetTaxRate overrides the sales-tax rate. Call once at boot, before any
// cart is served. Negative rates are ignored.
func SetTaxRate(r float64) {
	if r >= 0 {
		taxRate = r
	}
}

// TaxRate returns the active sales-tax rate.
func TaxRate() float64 { return taxRate }

// CartItem is one line in a user's cart. Name and Price are snapshotted from
// the product at add time.
type CartItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	ImageURL  string  `json:"imageUrl"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// Cart is the per-user collection of line items with derived totals.
type Cart struct {
	Items    []CartItem `json:"items"`
	Subtotal float64    `json:"subtotal"`
	Tax      float64    `json:"tax"`
	Total    float64    `json:"total"`
}

// Recalculate re-derives subtotal, tax and total from the line items.
// A full re-sum every time keeps the totals correct by construction.
func (c *Cart) Recalculate() {
	var subtotal float64
	for _, it := range c.Items {
		subtotal += it.Price * float64(it.Quantity)
	}
	c.Subtotal = round2(subtotal)
	c.Tax = round2(subtotal * taxRate)
	c.Total = round2(c.Subtotal + c.Tax)
}

// Find returns a pointer to the line item for productID, or nil.
func (c *Cart) Find(productID string) *CartItem {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return &c.Items[i]
		}
	}
	return nil
}

// Remove deletes the line item for productID. No-op when absent.
func (c *Cart) Remove(productID string) {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
