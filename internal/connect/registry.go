package connect

import (
	"sync"

	"github.com/jb131997/gymdesk/internal/logger"
)

// Registry hands out one SessionManager per gym. Each gym owner session
// carries its own embedding handle, account snapshot, and error state, so
// managers are never shared across gyms.
type Registry struct {
	fetcher        AccountInfoFetcher
	publishableKey string
	logger         *logger.Logger

	mu       sync.Mutex
	managers map[string]*SessionManager
}

// NewRegistry constructs a Registry producing managers over the given
// fetcher.
func NewRegistry(fetcher AccountInfoFetcher, publishableKey string, log *logger.Logger) *Registry {
	return &Registry{
		fetcher:        fetcher,
		publishableKey: publishableKey,
		logger:         log,
		managers:       make(map[string]*SessionManager),
	}
}

// For returns the gym's SessionManager, creating it on first use.
func (r *Registry) For(gymID string) *SessionManager {
	r.mu.Lock()
	defer r.mu.Unlock()

	if m, ok := r.managers[gymID]; ok {
		return m
	}

	m := NewSessionManager(r.fetcher, r.publishableKey, r.logger)
	r.managers[gymID] = m
	return m
}
