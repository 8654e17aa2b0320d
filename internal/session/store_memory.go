package session

import (
	"sync"

	"github.com/google/uuid"

	"CartDesk/internal/directory"
)

type MemStore struct {
	mu        sync.RWMutex
	maxLogins int
	m         map[string]Session
	newToken  func() string
}

func NewMemStore(maxLogins int) *MemStore {
	if maxLogins <= 0 {
		maxLogins = DefaultMaxLogins
	}
	return &MemStore{
		maxLogins: maxLogins,
		m:         make(map[string]Session),
		newToken:  uuid.NewString,
	}
}

func NewStore() Store {
	return NewMemStore(DefaultMaxLogins)
}

// Create checks the limit and inserts under one lock so the count can never
// exceed maxLogins.
func (s *MemStore) Create(u directory.User) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.m) >= s.maxLogins {
		return Session{}, ErrMaxLogins
	}

	sess := Session{Token: s.newToken(), User: u}
	s.m[sess.Token] = sess
	return sess, nil
}

func (s *MemStore) Get(token string) (Session, bool) {
	if token == "" {
		return Session{}, false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.m[token]
	return sess, ok
}

func (s *MemStore) Delete(token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.m[token]; !ok {
		return false
	}
	delete(s.m, token)
	return true
}

func (s *MemStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.m)
}
