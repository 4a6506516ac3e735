package cart

import (
	"sync"
	"time"
)

// Store owns the carts of all active sessions. A cart is created empty the
// first time a session is seen and lives until the session ends or the
// sweeper decides it was abandoned. Carts are never persisted.
type Store struct {
	mu    sync.Mutex
	carts map[string]*Cart
}

func NewStore() *Store {
	return &Store{carts: make(map[string]*Cart)}
}

// Fetch returns the session's cart, creating an empty one on first access.
func (s *Store) Fetch(sessionID string) *Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.carts[sessionID]
	if !ok {
		c = New()
		s.carts[sessionID] = c
	}
	return c
}

// Drop ends a session, discarding its cart.
func (s *Store) Drop(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
}

// Sweep discards carts that have not been touched within maxIdle and
// reports how many were dropped.
func (s *Store) Sweep(maxIdle time.Duration) int {
	cutoff := time.Now().UTC().Add(-maxIdle)

	s.mu.Lock()
	defer s.mu.Unlock()

	dropped := 0
	for id, c := range s.carts {
		if c.lastTouched().Before(cutoff) {
			delete(s.carts, id)
			dropped++
		}
	}
	return dropped
}

// Len reports the number of active carts.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.carts)
}
