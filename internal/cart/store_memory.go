package cart

import (
	"errors"
	"sync"

	"CartDesk/internal/directory"
)

var ErrNoCart = errors.New("cart not found")

type MemStore struct {
	mu sync.RWMutex
	m  map[string][]directory.Product
}

func NewMemStore() *MemStore {
	return &MemStore{m: map[string][]directory.Product{}}
}

func NewStore() Store {
	return NewMemStore()
}

func (s *MemStore) Ensure(user string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.m[user]; !ok {
		s.m[user] = []directory.Product{}
	}
}

func (s *MemStore) Add(user string, p directory.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, ok := s.m[user]
	if !ok {
		return ErrNoCart
	}
	s.m[user] = append(items, p)
	return nil
}

func (s *MemStore) Clear(user string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, ok := s.m[user]
	if !ok {
		return ErrNoCart
	}
	s.m[user] = items[:0]
	return nil
}

// Items returns a copy; callers may keep it across later mutations.
func (s *MemStore) Items(user string) ([]directory.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items, ok := s.m[user]
	if !ok {
		return nil, ErrNoCart
	}
	out := make([]directory.Product, len(items))
	copy(out, items)
	return out, nil
}
