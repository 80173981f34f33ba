package apiclient

import (
	"sync"
)

// Store holds one resource's in-memory list plus the load/error flags
// the table renders from. Every applied fetch replaces the whole list.
//
// The generation counter closes the stale-response race: a fetch
// started before a newer one began has its result discarded instead of
// clobbering the fresher list.
type Store[T any] struct {
	mu      sync.Mutex
	gen     uint64
	items   []T
	err     string
	loading bool
}

func NewStore[T any]() *Store[T] {
	return &Store[T]{}
}

func (s *Store[T]) Items() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.items
}

func (s *Store[T]) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *Store[T]) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// begin marks a new fetch generation and returns its ticket.
func (s *Store[T]) begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.loading = true
	return s.gen
}

// complete applies a fetch result unless a newer generation has begun.
// Reports whether the result was applied.
func (s *Store[T]) complete(gen uint64, items []T, err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		return false // stale response, discard
	}
	s.loading = false
	if err != nil {
		s.err = err.Error()
		return true
	}
	s.err = ""
	s.items = items
	return true
}
