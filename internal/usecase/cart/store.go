package cart

import (
	"sync"

	"github.com/pedelocal/pedelocal-order-service/internal/domain"
)

// SessionStore keeps one cart per session, created lazily at first touch
// and discarded at session end. Carts are only ever replaced wholesale, so
// readers always see a consistent snapshot.
type SessionStore struct {
	mu    sync.RWMutex
	carts map[string]domain.Cart
}

func NewSessionStore() *SessionStore {
	return &SessionStore{carts: make(map[string]domain.Cart)}
}

func (s *SessionStore) Get(sessionID string) domain.Cart {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.carts[sessionID]
}

func (s *SessionStore) Put(sessionID string, cart domain.Cart) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.carts[sessionID] = cart
}

func (s *SessionStore) Clear(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
}
