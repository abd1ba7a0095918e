// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package session

import "sync"

// Store owns the current State of a session. It is safe for concurrent use.
type Store struct {
	mu        sync.RWMutex
	state     State
	listeners []func(State)
}

func NewStore(initial State) *Store {
	return &Store{state: initial}
}

// Dispatch applies ev to the current state and returns the new state. Listeners are called
// after the state has been replaced.
func (s *Store) Dispatch(ev Event) State {
	s.mu.Lock()
	s.state = Reduce(s.state, ev)
	state := s.state
	listeners := s.listeners
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(state)
	}
	return state
}

// Snapshot returns the current state.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Subscribe registers fn to be called with every new state.
func (s *Store) Subscribe(fn func(State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}
