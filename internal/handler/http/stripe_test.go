package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/jb131997/gymdesk/internal/service"
	"github.com/jb131997/gymdesk/internal/stripe"
	"github.com/jb131997/gymdesk/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetStripeAccountInfo_Success(t *testing.T) {
	svcs := testServices()
	svcs.AccountService = &mockAccountService{
		fetchAccountInfoFn: func(_ context.Context, gymID string) (models.AccountInfo, error) {
			assert.Equal(t, "gym-1", gymID)
			return models.AccountInfo{
				ClientSecret:    "cs_secret",
				StripeAccountID: "acct_1",
				Account:         models.StripeAccount{ID: "acct_1", ChargesEnabled: true},
			}, nil
		},
	}
	h := newTestHandler(t, svcs)

	rec := doRequest(t, h, http.MethodGet, "/api/stripe/account-info", "", true)

	require.Equal(t, http.StatusOK, rec.Code)

	var info models.AccountInfo
	decodeBody(t, rec, &info)
	assert.Equal(t, "cs_secret", info.ClientSecret)
	assert.True(t, info.Account.ChargesEnabled)
}

func TestGetStripeAccountInfo_NotProvisioned(t *testing.T) {
	svcs := testServices()
	svcs.AccountService = &mockAccountService{
		fetchAccountInfoFn: func(_ context.Context, _ string) (models.AccountInfo, error) {
			return models.AccountInfo{}, stripe.ErrAccountNotFound
		},
	}
	h := newTestHandler(t, svcs)

	rec := doRequest(t, h, http.MethodGet, "/api/stripe/account-info", "", true)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateConnectAccount_Success(t *testing.T) {
	svcs := testServices()
	svcs.AccountService = &mockAccountService{
		connectAccountFn: func(_ context.Context, gymID string) (models.StripeAccount, error) {
			return models.StripeAccount{ID: "acct_new"}, nil
		},
	}
	h := newTestHandler(t, svcs)

	rec := doRequest(t, h, http.MethodPost, "/api/stripe/connect-account", "", true)

	require.Equal(t, http.StatusCreated, rec.Code)

	var account models.StripeAccount
	decodeBody(t, rec, &account)
	assert.Equal(t, "acct_new", account.ID)
}

func TestCreateConnectAccount_AlreadyConnected(t *testing.T) {
	svcs := testServices()
	svcs.AccountService = &mockAccountService{
		connectAccountFn: func(_ context.Context, _ string) (models.StripeAccount, error) {
			return models.StripeAccount{}, service.ErrAccountAlreadyConnected
		},
	}
	h := newTestHandler(t, svcs)

	rec := doRequest(t, h, http.MethodPost, "/api/stripe/connect-account", "", true)

	require.Equal(t, http.StatusConflict, rec.Code)
}

func TestGetStripeSession_EstablishesOnFirstCall(t *testing.T) {
	fetches := 0
	svcs := testServices()
	svcs.AccountService = &mockAccountService{
		fetchAccountInfoFn: func(_ context.Context, _ string) (models.AccountInfo, error) {
			fetches++
			return models.AccountInfo{
				ClientSecret: "cs_secret",
				Account:      models.StripeAccount{ID: "acct_1"},
			}, nil
		},
	}
	h := newTestHandler(t, svcs)

	rec := doRequest(t, h, http.MethodGet, "/api/stripe/session", "", true)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, fetches)

	var resp stripeSessionResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, "pk_test_123", resp.PublishableKey)
	assert.Equal(t, "cs_secret", resp.ClientSecret)
	assert.False(t, resp.Loading)
	assert.Empty(t, resp.Error)

	// a second call reuses the held session instead of re-running the protocol
	rec = doRequest(t, h, http.MethodGet, "/api/stripe/session", "", true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, fetches)
}

func TestGetStripeSession_TerminalFailureReported(t *testing.T) {
	svcs := testServices()
	svcs.AccountService = &mockAccountService{
		fetchAccountInfoFn: func(_ context.Context, _ string) (models.AccountInfo, error) {
			return models.AccountInfo{}, stripe.ErrUnauthorized
		},
	}
	h := newTestHandler(t, svcs)

	// the protocol failure is carried in the session state, not the HTTP status
	rec := doRequest(t, h, http.MethodGet, "/api/stripe/session", "", true)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp stripeSessionResponse
	decodeBody(t, rec, &resp)
	assert.Empty(t, resp.ClientSecret)
	assert.Equal(t, "Failed to initialize Stripe. Please try again later.", resp.Error)
}

func TestReinitializeStripeSession_RecoversAfterFailure(t *testing.T) {
	fetches := 0
	svcs := testServices()
	svcs.AccountService = &mockAccountService{
		fetchAccountInfoFn: func(_ context.Context, _ string) (models.AccountInfo, error) {
			fetches++
			if fetches == 1 {
				return models.AccountInfo{}, stripe.ErrUnauthorized
			}
			return models.AccountInfo{
				ClientSecret: "cs_fresh",
				Account:      models.StripeAccount{ID: "acct_1"},
			}, nil
		},
	}
	h := newTestHandler(t, svcs)

	rec := doRequest(t, h, http.MethodGet, "/api/stripe/session", "", true)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp stripeSessionResponse
	decodeBody(t, rec, &resp)
	require.NotEmpty(t, resp.Error)

	// a plain session fetch does not retry past a terminal failure
	rec = doRequest(t, h, http.MethodGet, "/api/stripe/session", "", true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, fetches)

	// an explicit reinitialize does
	rec = doRequest(t, h, http.MethodPost, "/api/stripe/session/reinitialize", "", true)
	require.Equal(t, http.StatusOK, rec.Code)

	resp = stripeSessionResponse{}
	decodeBody(t, rec, &resp)
	assert.Equal(t, "cs_fresh", resp.ClientSecret)
	assert.Empty(t, resp.Error)
}
