// Package api talks to the remote blog backend over HTTP. All requests carry
// the session cookie established by the login endpoint, so a single client
// value represents one browser-like session.
package api

import (
	"context"

	"blogctl/internal/client/models"
)

// RegisterParams is the payload for the registration endpoint.
type RegisterParams struct {
	Name     string `json:"name" validate:"required"`
	Username string `json:"username" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginParams is the payload for the login endpoint.
type LoginParams struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// PostParams is the payload for creating or updating a post.
// Image is an optional URL.
type PostParams struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
	Image   string `json:"image,omitempty" validate:"omitempty,url"`
}

// Client defines the remote operations the application needs.
//
// Contract:
//   - Register: create an account; does not authenticate the caller.
//   - Login: establish a server-side session (cookie); the response does not
//     carry the full profile, use CurrentUser for that.
//   - Logout: invalidate the server-side session.
//   - CurrentUser: cookie-authenticated "who am I" probe; fails with
//     ErrUnauthorized when the session is missing or expired.
//   - ListPosts/CreatePost/UpdatePost/DeletePost: posts CRUD.
//
// All methods must honor context cancellation/timeouts.
type Client interface {
	Register(ctx context.Context, params RegisterParams) error
	Login(ctx context.Context, params LoginParams) error
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*models.User, error)
	ListPosts(ctx context.Context) ([]models.Post, error)
	CreatePost(ctx context.Context, params PostParams) (*models.Post, error)
	UpdatePost(ctx context.Context, id string, params PostParams) (*models.Post, error)
	DeletePost(ctx context.Context, id string) error
	Close() error
}
