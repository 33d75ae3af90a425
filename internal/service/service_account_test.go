package service

import (
	"context"
	"testing"

	"github.com/jb131997/gymdesk/internal/logger"
	"github.com/jb131997/gymdesk/internal/store"
	"github.com/jb131997/gymdesk/internal/stripe"
	"github.com/jb131997/gymdesk/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// ConnectAccount
// ─────────────────────────────────────────────

func TestAccountService_ConnectAccount_Success(t *testing.T) {
	var savedProfileID, savedAccountID string
	profiles := &mockProfileRepository{
		findProfileByIDFn: func(_ context.Context, id string) (models.Profile, error) {
			return models.Profile{ID: id, Email: "owner@example.com"}, nil
		},
		setStripeAccountIDFn: func(_ context.Context, profileID, accountID string) error {
			savedProfileID = profileID
			savedAccountID = accountID
			return nil
		},
	}
	client := &mockStripeClient{
		createAccountFn: func(_ context.Context, email, profileID string) (models.StripeAccount, error) {
			assert.Equal(t, "owner@example.com", email)
			assert.Equal(t, "gym-1", profileID)
			return models.StripeAccount{ID: "acct_new"}, nil
		},
	}
	svc := NewAccountService(profiles, client, logger.Nop())

	account, err := svc.ConnectAccount(context.Background(), "gym-1")

	require.NoError(t, err)
	assert.Equal(t, "acct_new", account.ID)
	assert.Equal(t, "gym-1", savedProfileID)
	assert.Equal(t, "acct_new", savedAccountID)
}

func TestAccountService_ConnectAccount_AlreadyConnected(t *testing.T) {
	profiles := &mockProfileRepository{
		findProfileByIDFn: func(_ context.Context, id string) (models.Profile, error) {
			return models.Profile{ID: id, StripeAccountID: "acct_existing"}, nil
		},
	}
	svc := NewAccountService(profiles, &mockStripeClient{}, logger.Nop())

	_, err := svc.ConnectAccount(context.Background(), "gym-1")

	require.ErrorIs(t, err, ErrAccountAlreadyConnected)
}

func TestAccountService_ConnectAccount_ProviderFailure(t *testing.T) {
	saveCalled := false
	profiles := &mockProfileRepository{
		findProfileByIDFn: func(_ context.Context, id string) (models.Profile, error) {
			return models.Profile{ID: id}, nil
		},
		setStripeAccountIDFn: func(_ context.Context, _, _ string) error {
			saveCalled = true
			return nil
		},
	}
	client := &mockStripeClient{
		createAccountFn: func(_ context.Context, _, _ string) (models.StripeAccount, error) {
			return models.StripeAccount{}, stripe.ErrUnauthorized
		},
	}
	svc := NewAccountService(profiles, client, logger.Nop())

	_, err := svc.ConnectAccount(context.Background(), "gym-1")

	require.ErrorIs(t, err, stripe.ErrUnauthorized)
	assert.False(t, saveCalled)
}

// ─────────────────────────────────────────────
// FetchAccountInfo
// ─────────────────────────────────────────────

func TestAccountService_FetchAccountInfo_Success(t *testing.T) {
	profiles := &mockProfileRepository{
		findProfileByIDFn: func(_ context.Context, id string) (models.Profile, error) {
			return models.Profile{ID: id, StripeAccountID: "acct_1"}, nil
		},
	}
	client := &mockStripeClient{
		createAccountSessionFn: func(_ context.Context, accountID string) (models.StripeAccountSession, error) {
			assert.Equal(t, "acct_1", accountID)
			return models.StripeAccountSession{ClientSecret: "cs_secret", Account: accountID}, nil
		},
		retrieveAccountFn: func(_ context.Context, accountID string) (models.StripeAccount, error) {
			return models.StripeAccount{ID: accountID, ChargesEnabled: true}, nil
		},
	}
	svc := NewAccountService(profiles, client, logger.Nop())

	info, err := svc.FetchAccountInfo(context.Background(), "gym-1")

	require.NoError(t, err)
	assert.Equal(t, "cs_secret", info.ClientSecret)
	assert.Equal(t, "acct_1", info.StripeAccountID)
	assert.True(t, info.Account.ChargesEnabled)
}

func TestAccountService_FetchAccountInfo_NoAccountYet(t *testing.T) {
	profiles := &mockProfileRepository{
		findProfileByIDFn: func(_ context.Context, id string) (models.Profile, error) {
			return models.Profile{ID: id}, nil
		},
	}
	svc := NewAccountService(profiles, &mockStripeClient{}, logger.Nop())

	_, err := svc.FetchAccountInfo(context.Background(), "gym-1")

	require.ErrorIs(t, err, stripe.ErrAccountNotFound)
	assert.Equal(t, stripe.Retryable, stripe.Classify(err))
}

func TestAccountService_FetchAccountInfo_ProfileLookupFailureIsTerminal(t *testing.T) {
	profiles := &mockProfileRepository{
		findProfileByIDFn: func(_ context.Context, _ string) (models.Profile, error) {
			return models.Profile{}, store.ErrProfileNotFound
		},
	}
	svc := NewAccountService(profiles, &mockStripeClient{}, logger.Nop())

	_, err := svc.FetchAccountInfo(context.Background(), "gym-1")

	require.ErrorIs(t, err, store.ErrProfileNotFound)
	assert.NotErrorIs(t, err, stripe.ErrAccountNotFound)
	assert.Equal(t, stripe.Terminal, stripe.Classify(err))
}

func TestAccountService_FetchAccountInfo_SessionFailure(t *testing.T) {
	profiles := &mockProfileRepository{
		findProfileByIDFn: func(_ context.Context, id string) (models.Profile, error) {
			return models.Profile{ID: id, StripeAccountID: "acct_1"}, nil
		},
	}
	client := &mockStripeClient{
		createAccountSessionFn: func(_ context.Context, _ string) (models.StripeAccountSession, error) {
			return models.StripeAccountSession{}, stripe.ErrUnauthorized
		},
	}
	svc := NewAccountService(profiles, client, logger.Nop())

	_, err := svc.FetchAccountInfo(context.Background(), "gym-1")

	require.ErrorIs(t, err, stripe.ErrUnauthorized)
	assert.Equal(t, stripe.Terminal, stripe.Classify(err))
}
