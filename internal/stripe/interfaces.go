package stripe

import (
	"context"

	"github.com/jb131997/gymdesk/models"
)

// Client is the surface of the payment provider the application depends on.
// The production implementation talks to the Connect API over HTTP; tests
// substitute function-field fakes.
type Client interface {
	// CreateAccount creates an express connected account for a gym owner.
	CreateAccount(ctx context.Context, email, profileID string) (models.StripeAccount, error)

	// RetrieveAccount fetches the current state of a connected account.
	RetrieveAccount(ctx context.Context, accountID string) (models.StripeAccount, error)

	// CreateAccountSession mints an embedding session (client secret) with
	// the notification-banner, onboarding, and management components enabled.
	CreateAccountSession(ctx context.Context, accountID string) (models.StripeAccountSession, error)

	// CreateProduct creates a product on the connected account.
	CreateProduct(ctx context.Context, accountID, name, description string) (models.StripeProduct, error)

	// CreatePrice attaches a price to a product. recurring is nil for
	// one-time prices.
	CreatePrice(ctx context.Context, accountID, productID string, unitAmount int64, currency string, recurring *models.StripeRecurring) (models.StripePrice, error)

	// CreatePaymentLink creates a shareable hosted checkout URL for a price.
	CreatePaymentLink(ctx context.Context, accountID, priceID string) (models.StripePaymentLink, error)
}
