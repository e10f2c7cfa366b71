package dialog

import "sync"

// StateStore holds each user's conversation state in memory. Unknown
// users are Idle. States are ephemeral: a restart drops everyone back
// to Idle, which every flow recovers from.
type StateStore struct {
	mu     sync.Mutex
	states map[string]State
}

// NewStateStore returns an empty state store.
func NewStateStore() *StateStore {
	return &StateStore{states: make(map[string]State)}
}

// Get returns the user's current state, defaulting to Idle.
func (s *StateStore) Get(userID string) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	if st, ok := s.states[userID]; ok {
		return st
	}
	return Idle
}

// Set replaces the user's state.
func (s *StateStore) Set(userID string, st State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states[userID] = st
}

// Clear resets the user back to Idle.
func (s *StateStore) Clear(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.states, userID)
}
