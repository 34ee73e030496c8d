// Package session holds per-session conversational state for the lifetime of
// the process: the ordered turn history and the accumulated entity bag.
//
// The hosting web layer may dispatch concurrent requests for the same session
// id, so both the store map and each session are lock-guarded. Within one
// session, turns are appended in the call order observed by the dispatcher
// handling that session's requests; across sessions there is no ordering
// guarantee.
package session

import (
	"sync"

	"github.com/adalundhe/voyant/core/agent"
	"github.com/adalundhe/voyant/core/entities"
)

// Session is the state for one conversation. Created on first reference to an
// unseen identifier and never destroyed.
type Session struct {
	mu sync.Mutex

	id       string
	turns    []agent.Turn
	entities entities.Bag
}

func newSession(id string) *Session {
	return &Session{
		id:       id,
		entities: entities.NewBag(),
	}
}

// ID returns the opaque session identifier.
func (s *Session) ID() string {
	return s.id
}

// AppendTurn records a turn at the end of the history.
func (s *Session) AppendTurn(turn agent.Turn) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.turns = append(s.turns, turn)
}

// History returns a snapshot of the full turn history in insertion order.
func (s *Session) History() []agent.Turn {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]agent.Turn(nil), s.turns...)
}

// MergeEntities folds freshly extracted entities into the accumulated bag.
func (s *Session) MergeEntities(fresh entities.Bag) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entities.Merge(fresh)
}

// Entities returns a snapshot of the accumulated entity bag.
func (s *Session) Entities() entities.Bag {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.entities.Clone()
}
