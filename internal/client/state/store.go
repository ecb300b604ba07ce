// Package state holds the shared application state: the auth slice and the
// posts slice. The Store is an explicit, injectable container; every mutation
// goes through a named entry point and readers get consistent snapshots.
package state

import "sync"

// Status is the request status of the most recently initiated operation on a
// slice. It is not a history: a new dispatch overwrites it.
type Status string

const (
	StatusIdle      Status = "idle"
	StatusLoading   Status = "loading"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

// Store is the single shared state container. Concurrent operations may
// settle in any order; the last settle wins, which is accepted behavior.
type Store struct {
	mu    sync.RWMutex
	auth  AuthState
	posts PostsState

	// sessionChecked flips to true once the first session probe settles,
	// so gates can distinguish "not logged in" from "not yet known".
	sessionChecked bool

	subs []func()
}

// NewStore returns a store with both slices in their initial empty/idle state.
func NewStore() *Store {
	return &Store{
		auth:  AuthState{Status: StatusIdle},
		posts: PostsState{Status: StatusIdle},
	}
}

// Subscribe registers fn to run after every mutation. Subscribers must not
// call back into the store's mutation methods.
func (s *Store) Subscribe(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// notify runs outside the lock so subscribers can take snapshots.
func (s *Store) notify() {
	s.mu.RLock()
	subs := make([]func(), len(s.subs))
	copy(subs, s.subs)
	s.mu.RUnlock()
	for _, fn := range subs {
		fn()
	}
}

// SessionChecked reports whether the initial session probe has settled.
func (s *Store) SessionChecked() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessionChecked
}
