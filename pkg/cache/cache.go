package cache

import (
	"sync"
	"time"
)

// Store is a thread-safe map with per-entry expiry. Suitable for caching
// read-mostly gateway responses inside a single process; for shared caches
// across instances, put a distributed store behind the same usage sites.
type Store struct {
	mu      sync.Mutex
	values  map[string]any
	expiry  map[string]time.Time
	ttl     time.Duration
	now     func() time.Time
}

// New creates a Store whose entries live for ttl. A non-positive ttl makes
// every Get miss.
func New(ttl time.Duration) *Store {
	return &Store{
		values: make(map[string]any),
		expiry: make(map[string]time.Time),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Get returns the cached value for key, or ok=false when absent or expired.
// Expired entries are removed on access.
func (s *Store) Get(key string) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	exp, exists := s.expiry[key]
	if !exists {
		return nil, false
	}
	if !s.now().Before(exp) {
		delete(s.values, key)
		delete(s.expiry, key)
		return nil, false
	}
	return s.values[key], true
}

// Set stores value under key for the store's TTL, replacing any previous entry.
func (s *Store) Set(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	s.expiry[key] = s.now().Add(s.ttl)
}

// Delete removes key if present.
func (s *Store) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	delete(s.expiry, key)
}

// Flush drops every entry.
func (s *Store) Flush() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values = make(map[string]any)
	s.expiry = make(map[string]time.Time)
}

// Len reports the number of stored entries, including not-yet-collected
// expired ones.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.values)
}
