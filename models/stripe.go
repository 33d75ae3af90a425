package models

// StripeAccount is the subset of the payment provider's account object the
// application reads. Snapshots of it are held by the embedding session
// manager and surfaced to the onboarding views.
type StripeAccount struct {
	ID               string `json:"id"`
	Email            string `json:"email,omitempty"`
	ChargesEnabled   bool   `json:"charges_enabled"`
	PayoutsEnabled   bool   `json:"payouts_enabled"`
	DetailsSubmitted bool   `json:"details_submitted"`
	Country          string `json:"country,omitempty"`
	DefaultCurrency  string `json:"default_currency,omitempty"`
}

// StripeAccountSession is a short-lived embedding session created for a
// connected account. The client secret lets a browser render the provider's
// hosted components.
type StripeAccountSession struct {
	ClientSecret string         `json:"client_secret"`
	Account      string         `json:"account"`
	Components   map[string]any `json:"components,omitempty"`
}

// StripeProduct is the provider-side product object.
type StripeProduct struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Active      bool   `json:"active"`
}

// StripePrice is the provider-side price object attached to a product.
type StripePrice struct {
	ID         string           `json:"id"`
	Product    string           `json:"product"`
	UnitAmount int64            `json:"unit_amount"`
	Currency   string           `json:"currency"`
	Recurring  *StripeRecurring `json:"recurring,omitempty"`
}

// StripeRecurring describes the billing interval of a recurring price.
type StripeRecurring struct {
	Interval      string `json:"interval"`
	IntervalCount int    `json:"interval_count,omitempty"`
}

// StripePaymentLink is a provider-hosted shareable checkout URL.
type StripePaymentLink struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// AccountInfo is the response of the account-info operation: everything a
// browser needs to bootstrap the provider's embedded components, plus the
// current account snapshot.
type AccountInfo struct {
	ClientSecret    string         `json:"clientSecret"`
	Components      map[string]any `json:"components,omitempty"`
	StripeAccountID string         `json:"stripeAccountId"`
	Account         StripeAccount  `json:"account"`
}
