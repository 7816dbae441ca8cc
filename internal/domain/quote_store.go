package domain

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// ErrQuoteNotFound indicates no quote is stored under the requested ID.
var ErrQuoteNotFound = errors.New("quote not found")

// InMemoryQuoteStore stores quotes in memory.
type InMemoryQuoteStore struct {
	mu     sync.RWMutex
	quotes map[string]Quote
}

// NewInMemoryQuoteStore creates a new in-memory quote store.
func NewInMemoryQuoteStore() *InMemoryQuoteStore {
	return &InMemoryQuoteStore{
		mu:     sync.RWMutex{},
		quotes: make(map[string]Quote),
	}
}

// Save stores a copy of the quote.
func (s *InMemoryQuoteStore) Save(_ context.Context, quote *Quote) error {
	if quote == nil {
		return errors.New("quote cannot be nil")
	}

	if quote.ID == "" {
		return errors.New("quote ID cannot be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.quotes[quote.ID] = *quote
	return nil
}

// Get retrieves a copy of a stored quote.
func (s *InMemoryQuoteStore) Get(_ context.Context, id string) (*Quote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	quote, exists := s.quotes[id]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrQuoteNotFound, id)
	}

	return &quote, nil
}
