package memory

import (
	"context"
	"sync"
	"time"

	"github.com/natnat/flowershop_content_microservice/internal/core/domain"
	"github.com/natnat/flowershop_content_microservice/internal/core/ports"
)

type item struct {
	value     []byte
	expiresAt time.Time // zero => no expiry
}

// Store is the process-memory cache tier. It is lost on restart.
type Store struct {
	mu    sync.RWMutex
	items map[string]item
	now   func() time.Time
}

type Option func(*Store)

// WithClock replaces time.Now for expiry checks.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

func New(opts ...Option) *Store {
	s := &Store{
		items: make(map[string]item),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	it, ok := s.items[key]
	s.mu.RUnlock()
	if !ok {
		return nil, domain.ErrCacheMiss
	}

	if !it.expiresAt.IsZero() && !s.now().Before(it.expiresAt) {
		s.mu.Lock()
		// re-check: a Set may have landed between the locks
		if cur, ok := s.items[key]; ok && cur.expiresAt.Equal(it.expiresAt) {
			delete(s.items, key)
		}
		s.mu.Unlock()
		return nil, domain.ErrCacheMiss
	}

	out := make([]byte, len(it.value))
	copy(out, it.value)
	return out, nil
}

func (s *Store) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	stored := make([]byte, len(value))
	copy(stored, value)

	it := item{value: stored}
	if ttl > 0 {
		it.expiresAt = s.now().Add(ttl)
	}

	s.mu.Lock()
	s.items[key] = it
	s.mu.Unlock()
	return nil
}

func (s *Store) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.items, key)
	s.mu.Unlock()
	return nil
}

func (s *Store) Clear(_ context.Context) error {
	s.mu.Lock()
	s.items = make(map[string]item)
	s.mu.Unlock()
	return nil
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

var _ ports.CachePort = (*Store)(nil)
