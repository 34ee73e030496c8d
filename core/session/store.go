package session

import "sync"

// Store maps session identifiers to their state for the process lifetime.
// Sessions are in-memory only and do not survive restarts.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

// GetOrCreate returns the session for id, creating it on first reference.
func (s *Store) GetOrCreate(id string) *Session {
	s.mu.RLock()
	existing, ok := s.sessions[id]
	s.mu.RUnlock()
	if ok {
		return existing
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.sessions[id]; ok {
		return existing
	}

	created := newSession(id)
	s.sessions[id] = created
	return created
}

// Get returns the session for id, or nil if it has never been seen.
func (s *Store) Get(id string) *Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.sessions[id]
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.sessions)
}
