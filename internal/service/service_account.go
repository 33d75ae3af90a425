package service

import (
	"context"
	"fmt"

	"github.com/jb131997/gymdesk/internal/logger"
	"github.com/jb131997/gymdesk/internal/store"
	"github.com/jb131997/gymdesk/internal/stripe"
	"github.com/jb131997/gymdesk/models"
)

// accountService is the concrete implementation of AccountService. It owns
// the provider account lifecycle for a gym: express account creation during
// onboarding, and the account-info fetch the embedding session protocol
// retries against.
type accountService struct {
	profileRepository store.ProfileRepository
	stripeClient      stripe.Client
	logger            *logger.Logger
}

// NewAccountService constructs an AccountService over the given repository
// and provider client.
func NewAccountService(profileRepository store.ProfileRepository, stripeClient stripe.Client, logger *logger.Logger) AccountService {
	logger.Debug().Msg("creating account service")
	return &accountService{
		profileRepository: profileRepository,
		stripeClient:      stripeClient,
		logger:            logger,
	}
}

// ConnectAccount creates an express connected account for the gym and saves
// its ID on the profile.
//
// Returns ErrAccountAlreadyConnected when the profile already carries an
// account ID; onboarding runs once per gym.
func (s *accountService) ConnectAccount(ctx context.Context, gymID string) (models.StripeAccount, error) {
	log := logger.FromContext(ctx)

	profile, err := s.profileRepository.FindProfileByID(ctx, gymID)
	if err != nil {
		log.Err(err).Str("gymID", gymID).Msg("profile lookup failed")
		return models.StripeAccount{}, fmt.Errorf("profile lookup failed: %w", err)
	}
	if profile.StripeAccountID != "" {
		log.Error().Str("gymID", gymID).Str("accountID", profile.StripeAccountID).Msg("account already connected")
		return models.StripeAccount{}, ErrAccountAlreadyConnected
	}

	account, err := s.stripeClient.CreateAccount(ctx, profile.Email, profile.ID)
	if err != nil {
		log.Err(err).Str("gymID", gymID).Msg("provider account creation failed")
		return models.StripeAccount{}, fmt.Errorf("provider account creation failed: %w", err)
	}

	if err = s.profileRepository.SetStripeAccountID(ctx, profile.ID, account.ID); err != nil {
		log.Err(err).
			Str("gymID", gymID).
			Str("accountID", account.ID).
			Msg("error saving connected account ID, provider account orphaned")
		return models.StripeAccount{}, fmt.Errorf("error saving connected account ID: %w", err)
	}

	return account, nil
}

// FetchAccountInfo is the account-info operation the session establishment
// protocol runs: load the profile, mint an embedding session on its
// connected account, and snapshot the account state.
//
// Returns stripe.ErrAccountNotFound when the profile has no connected
// account yet. That is the one retryable condition: account provisioning
// runs out-of-band and may simply not have finished.
func (s *accountService) FetchAccountInfo(ctx context.Context, gymID string) (models.AccountInfo, error) {
	log := logger.FromContext(ctx)

	profile, err := s.profileRepository.FindProfileByID(ctx, gymID)
	if err != nil {
		// Terminal, not retryable: registration creates the profile row
		// synchronously, so a missing profile is never a provisioning race.
		log.Err(err).Str("gymID", gymID).Msg("profile lookup failed")
		return models.AccountInfo{}, fmt.Errorf("profile lookup failed: %w", err)
	}
	if profile.StripeAccountID == "" {
		return models.AccountInfo{}, stripe.ErrAccountNotFound
	}

	session, err := s.stripeClient.CreateAccountSession(ctx, profile.StripeAccountID)
	if err != nil {
		log.Err(err).Str("gymID", gymID).Msg("account session creation failed")
		return models.AccountInfo{}, fmt.Errorf("account session creation failed: %w", err)
	}

	account, err := s.stripeClient.RetrieveAccount(ctx, profile.StripeAccountID)
	if err != nil {
		log.Err(err).Str("gymID", gymID).Msg("account retrieval failed")
		return models.AccountInfo{}, fmt.Errorf("account retrieval failed: %w", err)
	}

	return models.AccountInfo{
		ClientSecret:    session.ClientSecret,
		Components:      session.Components,
		StripeAccountID: profile.StripeAccountID,
		Account:         account,
	}, nil
}
