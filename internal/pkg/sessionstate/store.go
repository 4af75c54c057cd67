// Package sessionstate persists the client-side authentication state the
// session synchronizer reconciles: an authenticated flag plus the cached
// identity, keyed by client id.
package sessionstate

import (
	"context"
	"sync"

	"github.com/oguzk/mentorlink/internal/app/models"
)

// State is the cached client authentication state
type State struct {
	Authenticated bool             `json:"authenticated"`
	Identity      *models.Identity `json:"identity,omitempty"`
}

// Store persists client session state.
// Load returns (nil, nil) when no state exists for the client.
type Store interface {
	Load(ctx context.Context, clientID string) (*State, error)
	Save(ctx context.Context, clientID string, state *State) error
	Clear(ctx context.Context, clientID string) error
}

// MemoryStore is an in-process Store for tests and single-node setups
type MemoryStore struct {
	mu     sync.RWMutex
	states map[string]*State
}

// NewMemoryStore creates a new MemoryStore
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{states: make(map[string]*State)}
}

// Load returns the state for a client, or nil if none is cached
func (s *MemoryStore) Load(_ context.Context, clientID string) (*State, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state, ok := s.states[clientID]
	if !ok {
		return nil, nil
	}
	copied := *state
	return &copied, nil
}

// Save stores the state for a client
func (s *MemoryStore) Save(_ context.Context, clientID string, state *State) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *state
	s.states[clientID] = &copied
	return nil
}

// Clear removes the state for a client. Clearing a missing client is a no-op.
func (s *MemoryStore) Clear(_ context.Context, clientID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.states, clientID)
	return nil
}
