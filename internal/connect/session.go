// Package connect implements the embedding-session establishment protocol
// for the payment provider's hosted UI components.
//
// A freshly registered gym owner may not have a provisioned connected
// account yet: account creation runs out-of-band, so the first account-info
// fetches can come back "account not found". The session manager tolerates
// that one condition with a short exponential backoff and treats every other
// failure as terminal. A run makes at most three attempts; an explicit
// Reinitialize restarts from scratch and is the only recovery path after a
// terminal failure.
package connect

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/jb131997/gymdesk/internal/logger"
	"github.com/jb131997/gymdesk/internal/stripe"
	"github.com/jb131997/gymdesk/models"
)

const (
	maxAttempts = 3
	baseDelay   = time.Second
	maxDelay    = 8 * time.Second
)

// AccountInfoFetcher is the single operation the protocol runs against.
// The production implementation is service.AccountInfoService.
type AccountInfoFetcher interface {
	FetchAccountInfo(ctx context.Context, gymID string) (models.AccountInfo, error)
}

// EmbeddedClient is the handle handed to views once a session is
// established. It wraps the client-secret fetcher callback the provider's
// embedding loader expects, plus the publishable key the browser needs.
type EmbeddedClient struct {
	PublishableKey string

	// FetchClientSecret returns the secret of the established session.
	// Recreated wholesale on every (re)initialization.
	FetchClientSecret func() string
}

// State is a point-in-time snapshot of the session manager, safe to render
// concurrently with an in-flight initialization.
type State struct {
	Client  *EmbeddedClient
	Account *models.StripeAccount
	Loading bool
	Error   string
}

// SessionManager owns the embedding handle and account snapshot for one gym
// owner session. There is a single writer (the protocol itself); views read
// snapshots via State.
type SessionManager struct {
	fetcher        AccountInfoFetcher
	publishableKey string
	logger         *logger.Logger

	// sleep is injectable so tests can observe the backoff schedule
	// without waiting it out.
	sleep func(time.Duration)

	mu      sync.RWMutex
	client  *EmbeddedClient
	account *models.StripeAccount
	loading bool
	lastErr string
}

// NewSessionManager constructs a SessionManager for the given fetcher.
func NewSessionManager(fetcher AccountInfoFetcher, publishableKey string, log *logger.Logger) *SessionManager {
	return &SessionManager{
		fetcher:        fetcher,
		publishableKey: publishableKey,
		logger:         log,
		sleep:          time.Sleep,
	}
}

// Initialize runs the establishment protocol for the authenticated gym.
//
// Attempt i (0..2) calls the account-info fetch. A "not found" result waits
// min(1s·2^i, 8s) and retries; after the third wait the run gives up. Any
// other failure is terminal and reported immediately. On success the account
// snapshot is stored and the embedding handle is rebuilt around the fetched
// client secret.
func (m *SessionManager) Initialize(ctx context.Context, gymID string) error {
	m.mu.Lock()
	m.loading = true
	m.lastErr = ""
	m.mu.Unlock()

	defer func() {
		m.mu.Lock()
		m.loading = false
		m.mu.Unlock()
	}()

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		sessionAttempts.Inc()
		if attempt > 0 {
			sessionRetries.Inc()
		}

		info, err := m.fetcher.FetchAccountInfo(ctx, gymID)
		if err == nil && info.ClientSecret == "" {
			// Success with no payload cannot be retried into existence.
			m.fail(MsgNoData)
			return errors.New(MsgNoData)
		}
		if err == nil {
			m.succeed(info)
			return nil
		}

		if stripe.Classify(err) == stripe.Terminal {
			m.logger.Err(err).Int("attempt", attempt).Msg("error fetching client secret")
			m.fail(MsgInitFailed)
			return errors.New(MsgInitFailed)
		}

		lastErr = err
		m.sleep(backoffDelay(attempt))
	}

	m.logger.Err(lastErr).Msg("all retry attempts failed")
	m.fail(MsgAllAttemptsFailed)
	return errors.New(MsgAllAttemptsFailed)
}

// Reinitialize clears the handle, snapshot, and error, then restarts the
// protocol from attempt 0. It is the only way to recover from a terminal
// failure or to refresh after provider-hosted onboarding completes.
func (m *SessionManager) Reinitialize(ctx context.Context, gymID string) error {
	m.mu.Lock()
	m.client = nil
	m.account = nil
	m.lastErr = ""
	m.mu.Unlock()

	return m.Initialize(ctx, gymID)
}

// State returns a snapshot of the manager for rendering.
func (m *SessionManager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return State{
		Client:  m.client,
		Account: m.account,
		Loading: m.loading,
		Error:   m.lastErr,
	}
}

func (m *SessionManager) succeed(info models.AccountInfo) {
	account := info.Account
	secret := info.ClientSecret

	m.mu.Lock()
	defer m.mu.Unlock()

	m.account = &account
	m.client = &EmbeddedClient{
		PublishableKey:    m.publishableKey,
		FetchClientSecret: func() string { return secret },
	}
	m.lastErr = ""
}

func (m *SessionManager) fail(message string) {
	sessionFailures.Inc()

	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastErr = message
}

// backoffDelay returns min(1s·2^attempt, 8s).
func backoffDelay(attempt int) time.Duration {
	d := baseDelay << uint(attempt)
	if d > maxDelay {
		d = maxDelay
	}
	return d
}
