package connect

import (
	"context"
	"sync"
	"testing"

	"github.com/jb131997/gymdesk/internal/logger"
	"github.com/jb131997/gymdesk/models"
	"github.com/stretchr/testify/assert"
)

func TestRegistry_For_ReturnsSameManagerPerGym(t *testing.T) {
	fetcher := &mockFetcher{
		fetchFn: func(_ context.Context, _ string) (models.AccountInfo, error) {
			return accountInfo("s"), nil
		},
	}
	r := NewRegistry(fetcher, "pk_test_123", logger.Nop())

	a := r.For("gym-a")
	b := r.For("gym-b")

	assert.Same(t, a, r.For("gym-a"))
	assert.Same(t, b, r.For("gym-b"))
	assert.NotSame(t, a, b)
}

func TestRegistry_For_ConcurrentAccessYieldsOneManager(t *testing.T) {
	fetcher := &mockFetcher{
		fetchFn: func(_ context.Context, _ string) (models.AccountInfo, error) {
			return accountInfo("s"), nil
		},
	}
	r := NewRegistry(fetcher, "pk_test_123", logger.Nop())

	const goroutines = 16
	managers := make([]*SessionManager, goroutines)

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			managers[i] = r.For("gym-a")
		}(i)
	}
	wg.Wait()

	for i := 1; i < goroutines; i++ {
		assert.Same(t, managers[0], managers[i])
	}
}
