package cache

import "time"

// SetNow swaps the store's clock for tests and returns a restore func.
func (s *Store) SetNow(now func() time.Time) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev := s.now
	s.now = now
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.now = prev
	}
}
