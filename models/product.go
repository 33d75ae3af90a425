package models

import "time"

// Product types accepted by the catalog. Memberships and subscriptions are
// recurring (they carry a billing interval); services and products are
// one-time purchases.
const (
	ProductTypeProduct      = "product"
	ProductTypeService      = "service"
	ProductTypeMembership   = "membership"
	ProductTypeSubscription = "subscription"
)

// Billing interval units for recurring products.
const (
	IntervalDay   = "day"
	IntervalWeek  = "week"
	IntervalMonth = "month"
	IntervalYear  = "year"
)

// Product is a catalog entry linked to the payment provider. The provider
// object IDs are populated once the product/price (and, for one-time
// products, the payment link) have been created on the connected account.
type Product struct {
	// ID is the unique identifier of the product (UUID).
	ID string `json:"id"`

	// GymID is the owning profile's ID.
	GymID string `json:"gym_id"`

	Name        string `json:"name"`
	Description string `json:"description"`

	// Price is the display price in major currency units (e.g. 19.99).
	// The provider receives the minor-unit conversion of this value.
	Price float64 `json:"price"`

	// Currency is the lowercase ISO 4217 code (e.g. "usd").
	Currency string `json:"currency"`

	// Type is one of the ProductType* constants.
	Type string `json:"type"`

	// IntervalUnit and IntervalCount describe the billing period of
	// recurring products. Both are zero for one-time products.
	IntervalUnit  string `json:"interval_unit,omitempty"`
	IntervalCount int    `json:"interval_count,omitempty"`

	// Provider-side linkage.
	StripeProductID string `json:"stripe_product_id,omitempty"`
	StripePriceID   string `json:"stripe_price_id,omitempty"`
	PaymentLinkURL  string `json:"payment_link_url,omitempty"`

	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Product model.
func (p Product) TableName() string {
	return "products"
}

// Recurring reports whether the product bills on an interval.
func (p Product) Recurring() bool {
	return p.IntervalUnit != ""
}

// ProductInput is the request body accepted by the create-product endpoint.
type ProductInput struct {
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Price         float64 `json:"price"`
	Type          string  `json:"type"`
	Currency      string  `json:"currency"`
	IntervalUnit  string  `json:"intervalUnit,omitempty"`
	IntervalCount int     `json:"intervalCount,omitempty"`
}

// CreateProductResponse mirrors the wire shape of the create-product
// operation: {success, product} on 200, {error} on 400.
type CreateProductResponse struct {
	Success bool    `json:"success"`
	Product Product `json:"product"`
}
