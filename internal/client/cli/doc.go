// Package cli is the interactive terminal frontend of the blog client. It
// plays the role of the view layer: commands dispatch service operations and
// render the resulting state snapshots, with protected commands gated behind
// the route guard.
package cli
