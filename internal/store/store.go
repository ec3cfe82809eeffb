package store

import (
	"sort"
	"sync"

	"qbank/internal/question"
)

// Store holds loaded question banks keyed by name. Bank contents are
// immutable after load; the lock only guards the name map.
type Store struct {
	mu    sync.RWMutex
	banks map[string]question.Bank
}

// New creates an empty store.
func New() *Store {
	return &Store{banks: map[string]question.Bank{}}
}

// Get returns the bank registered under a name, if present.
func (s *Store) Get(name string) (question.Bank, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	bank, ok := s.banks[name]
	return bank, ok
}

// Put registers or replaces a bank under a name.
func (s *Store) Put(name string, bank question.Bank) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.banks[name] = bank
}

// Names returns all registered bank names, sorted.
func (s *Store) Names() []string {
	s.mu.RLock()
	names := make([]string, 0, len(s.banks))
	for name := range s.banks {
		names = append(names, name)
	}
	s.mu.RUnlock()
	sort.Strings(names)
	return names
}
