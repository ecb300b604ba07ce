// Package session persists the browser-like session between CLI runs: the
// cookie jar contents and the last signed-in username live in a small local
// sqlite key/value table, the way a browser keeps its cookie store.
package session

import (
	"context"
)

// Well-known keys.
const (
	KeyCookies  = "cookies"
	KeyUsername = "username"
)

type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
