package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/jb131997/gymdesk/internal/logger"
	"github.com/jb131997/gymdesk/internal/store"
	"github.com/jb131997/gymdesk/internal/stripe"
	"github.com/jb131997/gymdesk/internal/utils"
	"github.com/jb131997/gymdesk/internal/validators"
	"github.com/jb131997/gymdesk/models"
)

// productService is the concrete implementation of ProductService. Creating
// a catalog entry is a two-phase write: provider objects first (product,
// price, and a payment link for one-time products), then the local row. A
// provider failure leaves no local row; a local failure after the provider
// calls succeeded leaves orphaned provider objects, which are logged with
// their IDs and picked up by the reconciliation job.
type productService struct {
	productRepository store.ProductRepository
	profileRepository store.ProfileRepository
	stripeClient      stripe.Client
	validator         validators.Validator
	ids               *utils.UUIDGenerator
	logger            *logger.Logger
}

// NewProductService constructs a ProductService over the given repositories
// and provider client.
func NewProductService(
	productRepository store.ProductRepository,
	profileRepository store.ProfileRepository,
	stripeClient stripe.Client,
	logger *logger.Logger,
) ProductService {
	logger.Debug().Msg("creating product service")
	return &productService{
		productRepository: productRepository,
		profileRepository: profileRepository,
		stripeClient:      stripeClient,
		validator:         validators.NewProductValidator(),
		ids:               utils.NewUUIDGenerator(),
		logger:            logger,
	}
}

// CreateProduct validates the input, creates the provider-side objects on
// the gym's connected account, and persists the linked catalog entry.
//
// Returns:
//   - ErrInvalidDataProvided wrapping the validators sentinel on bad input.
//   - stripe.ErrAccountNotFound when the gym has no connected account yet.
//   - A wrapped provider or storage error otherwise.
func (s *productService) CreateProduct(ctx context.Context, gymID string, input models.ProductInput) (models.Product, error) {
	log := logger.FromContext(ctx)

	// Memberships and subscriptions always bill on an interval; a monthly
	// period is the default when the form omits one.
	if (input.Type == models.ProductTypeMembership || input.Type == models.ProductTypeSubscription) &&
		input.IntervalUnit == "" {
		input.IntervalUnit = models.IntervalMonth
	}
	if input.IntervalUnit != "" && input.IntervalCount == 0 {
		input.IntervalCount = 1
	}

	if err := s.validator.Validate(ctx, input); err != nil {
		log.Error().Err(err).Str("gymID", gymID).Msg("invalid product data provided")
		return models.Product{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	profile, err := s.profileRepository.FindProfileByID(ctx, gymID)
	if err != nil {
		log.Err(err).Str("gymID", gymID).Msg("profile lookup failed")
		return models.Product{}, fmt.Errorf("profile lookup failed: %w", err)
	}
	if profile.StripeAccountID == "" {
		log.Error().Str("gymID", gymID).Msg("no connected account for product creation")
		return models.Product{}, stripe.ErrAccountNotFound
	}

	currency := strings.ToLower(strings.TrimSpace(input.Currency))

	product := models.Product{
		ID:            s.ids.Generate(),
		GymID:         gymID,
		Name:          input.Name,
		Description:   input.Description,
		Price:         input.Price,
		Currency:      currency,
		Type:          input.Type,
		IntervalUnit:  input.IntervalUnit,
		IntervalCount: input.IntervalCount,
		Active:        true,
	}

	providerProduct, err := s.stripeClient.CreateProduct(ctx, profile.StripeAccountID, product.Name, product.Description)
	if err != nil {
		log.Err(err).Str("gymID", gymID).Msg("provider product creation failed")
		return models.Product{}, fmt.Errorf("provider product creation failed: %w", err)
	}
	product.StripeProductID = providerProduct.ID

	var recurring *models.StripeRecurring
	if product.Recurring() {
		recurring = &models.StripeRecurring{
			Interval:      product.IntervalUnit,
			IntervalCount: product.IntervalCount,
		}
	}

	price, err := s.stripeClient.CreatePrice(ctx, profile.StripeAccountID, providerProduct.ID,
		validators.MinorUnits(product.Price, currency), currency, recurring)
	if err != nil {
		log.Err(err).
			Str("gymID", gymID).
			Str("stripeProductID", providerProduct.ID).
			Msg("provider price creation failed, provider product orphaned")
		return models.Product{}, fmt.Errorf("provider price creation failed: %w", err)
	}
	product.StripePriceID = price.ID

	// Recurring prices need a subscription checkout the embedded components
	// drive; only one-time products get a shareable payment link.
	if !product.Recurring() {
		link, err := s.stripeClient.CreatePaymentLink(ctx, profile.StripeAccountID, price.ID)
		if err != nil {
			log.Err(err).
				Str("gymID", gymID).
				Str("stripePriceID", price.ID).
				Msg("provider payment link creation failed, provider objects orphaned")
			return models.Product{}, fmt.Errorf("provider payment link creation failed: %w", err)
		}
		product.PaymentLinkURL = link.URL
	}

	created, err := s.productRepository.CreateProduct(ctx, product)
	if err != nil {
		log.Err(err).
			Str("gymID", gymID).
			Str("stripeProductID", product.StripeProductID).
			Str("stripePriceID", product.StripePriceID).
			Msg("local product write failed after provider creation, provider objects orphaned")
		return models.Product{}, fmt.Errorf("product creation ended with error: %w", err)
	}

	return created, nil
}

// ListProducts returns the gym's catalog, newest first.
func (s *productService) ListProducts(ctx context.Context, gymID string) ([]models.Product, error) {
	log := logger.FromContext(ctx)

	products, err := s.productRepository.ListProducts(ctx, gymID)
	if err != nil {
		log.Err(err).Str("gymID", gymID).Msg("product listing failed")
		return nil, fmt.Errorf("product listing failed: %w", err)
	}

	return products, nil
}

// SetActive toggles a catalog entry's visibility without touching the
// provider objects.
func (s *productService) SetActive(ctx context.Context, id, gymID string, active bool) error {
	log := logger.FromContext(ctx)

	if err := s.productRepository.SetActive(ctx, id, gymID, active); err != nil {
		log.Err(err).Str("id", id).Str("gymID", gymID).Msg("product update ended with error")
		return fmt.Errorf("product update ended with error: %w", err)
	}

	return nil
}
