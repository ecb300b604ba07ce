// Package routes maps client-side paths to views and gates the protected
// subtree behind authentication.
package routes

import (
	"strings"

	"blogctl/internal/client/state"
)

// Route describes one client-side path. Patterns may contain ":name"
// segments which match any single path segment.
type Route struct {
	Pattern    string
	Protected  bool
	AuthorOnly bool
}

// Table is the application route table.
var Table = []Route{
	{Pattern: "/", Protected: true},
	{Pattern: "/auth"},
	{Pattern: "/create", Protected: true},
	{Pattern: "/edit/:id", Protected: true, AuthorOnly: true},
}

// Match resolves path against the table. Named segments are returned as
// params, e.g. "/edit/p1" yields {"id": "p1"}.
func Match(path string) (Route, map[string]string, bool) {
	for _, r := range Table {
		if params, ok := matchPattern(r.Pattern, path); ok {
			return r, params, true
		}
	}
	return Route{}, nil, false
}

func matchPattern(pattern, path string) (map[string]string, bool) {
	if pattern == path {
		return nil, true
	}
	pparts := strings.Split(strings.Trim(pattern, "/"), "/")
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(pparts) != len(parts) {
		return nil, false
	}

	var params map[string]string
	for i, pp := range pparts {
		if strings.HasPrefix(pp, ":") {
			if parts[i] == "" {
				return nil, false
			}
			if params == nil {
				params = make(map[string]string)
			}
			params[pp[1:]] = parts[i]
			continue
		}
		if pp != parts[i] {
			return nil, false
		}
	}
	return params, true
}

// Decision is the guard's verdict for a navigation attempt.
type Decision int

const (
	// Allow renders the requested view.
	Allow Decision = iota
	// RedirectLogin sends the caller to the login view.
	RedirectLogin
	// Wait means the initial session probe has not settled yet; show a
	// loading indicator instead of prematurely redirecting, so an
	// already-authenticated user never sees a flash of the login view.
	Wait
)

// Guard gates protected routes on the auth slice.
type Guard struct {
	store *state.Store
}

func NewGuard(store *state.Store) *Guard {
	return &Guard{store: store}
}

// Decide returns the verdict for the given route.
func (g *Guard) Decide(r Route) Decision {
	if !r.Protected {
		return Allow
	}
	if !g.store.SessionChecked() {
		return Wait
	}
	if !g.store.Auth().IsAuthenticated {
		return RedirectLogin
	}
	return Allow
}
