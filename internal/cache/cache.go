package cache

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

type entry[V any] struct {
	value    V
	storedAt time.Time
}

// Store is an in-memory TTL key/value store. Get treats an entry as a miss
// once its age exceeds the TTL but leaves it in place; Sweep removes entries
// older than twice the TTL. There is no size-bounded eviction.
type Store[V any] struct {
	name    string
	ttl     time.Duration
	logger  zerolog.Logger
	mu      sync.RWMutex
	entries map[string]entry[V]
}

func New[V any](name string, ttl time.Duration, logger zerolog.Logger) *Store[V] {
	return &Store[V]{
		name:    name,
		ttl:     ttl,
		logger:  logger,
		entries: make(map[string]entry[V]),
	}
}

// Get returns the stored value unchanged, or a miss when the key is absent
// or the entry is older than the TTL. Stale entries are left for Sweep.
func (s *Store[V]) Get(key string) (V, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[key]
	if !ok || time.Since(e.storedAt) > s.ttl {
		var zero V
		return zero, false
	}
	return e.value, true
}

// Set stores the value under key, superseding any previous entry.
func (s *Store[V]) Set(key string, value V) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = entry[V]{value: value, storedAt: time.Now()}
}

// Sweep removes entries older than twice the TTL and logs the resulting size.
func (s *Store[V]) Sweep() {
	cutoff := 2 * s.ttl

	s.mu.Lock()
	for key, e := range s.entries {
		if time.Since(e.storedAt) > cutoff {
			delete(s.entries, key)
		}
	}
	size := len(s.entries)
	s.mu.Unlock()

	s.logger.Info().Str("cache", s.name).Int("size", size).Msg("cache sweep completed")
}

// Len reports the number of entries currently held, stale ones included.
func (s *Store[V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Run sweeps on the given interval until ctx is cancelled. A single pass
// holds the lock briefly, so concurrent Get/Set are not blocked for long.
func (s *Store[V]) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep()
		}
	}
}
