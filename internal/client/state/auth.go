package state

import "blogctl/internal/client/models"

// AuthState is the auth slice.
//
// Invariant: after every settled operation IsAuthenticated is true if and
// only if User is present and the last resolved session probe or login
// handshake succeeded.
type AuthState struct {
	User            *models.User
	IsAuthenticated bool
	Status          Status
	Err             string
}

// Auth returns a snapshot of the auth slice.
func (s *Store) Auth() AuthState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.auth
}

// AuthRequestStarted marks a new auth operation in flight. Register and login
// clear the previous error on dispatch; the session probe does not.
func (s *Store) AuthRequestStarted(clearError bool) {
	s.mu.Lock()
	s.auth.Status = StatusLoading
	if clearError {
		s.auth.Err = ""
	}
	s.mu.Unlock()
	s.notify()
}

// RegisterSucceeded records a successful registration. Registration does not
// authenticate the caller, so user and the auth flag are untouched.
func (s *Store) RegisterSucceeded() {
	s.mu.Lock()
	s.auth.Status = StatusSucceeded
	s.auth.Err = ""
	s.mu.Unlock()
	s.notify()
}

// LoginSucceeded records the first half of the login handshake. User and
// IsAuthenticated are set only when the chained session fetch resolves.
func (s *Store) LoginSucceeded() {
	s.mu.Lock()
	s.auth.Status = StatusSucceeded
	s.auth.Err = ""
	s.mu.Unlock()
	s.notify()
}

// AuthFailed records a register or login rejection.
func (s *Store) AuthFailed(msg string) {
	s.mu.Lock()
	s.auth.Status = StatusFailed
	s.auth.Err = msg
	s.mu.Unlock()
	s.notify()
}

// SessionResolved installs the authoritative profile from the "who am I"
// probe and marks the caller authenticated.
func (s *Store) SessionResolved(u *models.User) {
	s.mu.Lock()
	s.auth.User = u
	s.auth.IsAuthenticated = true
	s.auth.Status = StatusSucceeded
	s.sessionChecked = true
	s.mu.Unlock()
	s.notify()
}

// SessionRejected clears auth state after a failed session probe. This is how
// an expired or missing session is detected.
func (s *Store) SessionRejected() {
	s.mu.Lock()
	s.auth.User = nil
	s.auth.IsAuthenticated = false
	s.auth.Status = StatusFailed
	s.sessionChecked = true
	s.mu.Unlock()
	s.notify()
}

// ResetAuth returns the auth slice to its initial logged-out state. Logout
// applies this before the network call resolves (optimistic reset).
func (s *Store) ResetAuth() {
	s.mu.Lock()
	s.auth = AuthState{Status: StatusIdle}
	s.mu.Unlock()
	s.notify()
}

// ClearAuthError drops the last auth error without touching anything else.
func (s *Store) ClearAuthError() {
	s.mu.Lock()
	s.auth.Err = ""
	s.mu.Unlock()
	s.notify()
}
