// README: In-memory distance cache with TTL eviction and a periodic sweeper.
package distance

import (
	"context"
	"sync"
	"time"
)

// Store is the cache behind the resolver. Implementations must be safe for
// concurrent use and must never hand out a torn entry.
type Store interface {
	Get(ctx context.Context, key string) (Result, bool)
	Set(ctx context.Context, key string, r Result)
}

type cacheEntry struct {
	result     Result
	insertedAt time.Time
}

// MemoryStore caches results in a plain map. Expired entries are dropped
// lazily on access and proactively by Run's hourly sweep.
type MemoryStore struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]cacheEntry

	now func() time.Time // stubbed in tests
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:     ttl,
		entries: make(map[string]cacheEntry),
		now:     time.Now,
	}
}

func (s *MemoryStore) Get(_ context.Context, key string) (Result, bool) {
	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		return Result{}, false
	}
	if s.now().Sub(e.insertedAt) >= s.ttl {
		s.mu.Lock()
		// Re-check under the write lock; a concurrent Set may have
		// refreshed the entry.
		if cur, ok := s.entries[key]; ok && s.now().Sub(cur.insertedAt) >= s.ttl {
			delete(s.entries, key)
		}
		s.mu.Unlock()
		return Result{}, false
	}
	return e.result, true
}

func (s *MemoryStore) Set(_ context.Context, key string, r Result) {
	s.mu.Lock()
	s.entries[key] = cacheEntry{result: r, insertedAt: s.now()}
	s.mu.Unlock()
}

// Sweep removes every expired entry and reports how many were dropped.
func (s *MemoryStore) Sweep() int {
	now := s.now()
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for key, e := range s.entries {
		if now.Sub(e.insertedAt) >= s.ttl {
			delete(s.entries, key)
			removed++
		}
	}
	return removed
}

// Len reports the current entry count.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Run sweeps expired entries on a ticker until ctx is done.
func (s *MemoryStore) Run(ctx context.Context, interval time.Duration) {
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
