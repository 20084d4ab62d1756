package animation

import (
	"context"
	"encoding/json"
	"sync"
	"time"
)

// Store holds the most recently fetched descriptor.
type Store struct {
	mu        sync.RWMutex
	data      json.RawMessage
	fetchedAt time.Time
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Set(data json.RawMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = data
	s.fetchedAt = time.Now()
}

// Get returns the descriptor and whether one is available.
func (s *Store) Get() (json.RawMessage, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data, len(s.data) > 0
}

func (s *Store) Available() bool {
	_, ok := s.Get()
	return ok
}

// FetchedAt reports when the descriptor was last stored; zero if never.
func (s *Store) FetchedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fetchedAt
}

// Loader fetches a descriptor into a store in one step.
type Loader struct {
	client *Client
	store  *Store
}

func NewLoader(client *Client, store *Store) *Loader {
	return &Loader{client: client, store: store}
}

// Load fetches the descriptor at url and stores it. On failure the store keeps
// whatever it held before.
func (l *Loader) Load(ctx context.Context, url string) error {
	data, err := l.client.Fetch(ctx, url)
	if err != nil {
		return err
	}
	l.store.Set(data)
	return nil
}
