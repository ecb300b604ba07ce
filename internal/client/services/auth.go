// Package services contains the application services of the blog client.
// This file defines the authentication service: registration, the two-step
// login handshake, optimistic logout, and the session probe.
package services

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"blogctl/internal/client/api"
	"blogctl/internal/client/state"
	"blogctl/internal/logging"
)

// AuthService defines the auth operations of the client.
//
// Contract:
//   - Register: create an account; does not authenticate the caller.
//   - Login: establish a session, then chain a session fetch. The chained
//     fetch alone sets the user and the auth flag; its failure is observable
//     through the store, not through Login's return value.
//   - Logout: reset local auth state first, then invalidate the server
//     session. A server-side failure is non-fatal and never reverts the
//     local reset.
//   - FetchCurrentUser: validate the session cookie against /auth/me.
//
// All methods must honor context cancellation/timeouts.
type AuthService interface {
	Register(ctx context.Context, params api.RegisterParams) error
	Login(ctx context.Context, params api.LoginParams) error
	Logout(ctx context.Context) error
	FetchCurrentUser(ctx context.Context) error
}

type authService struct {
	client   api.Client
	store    *state.Store
	validate *validator.Validate
	log      logging.Logger
}

// NewAuthService constructs an AuthService bound to the given API client
// and state store.
func NewAuthService(client api.Client, store *state.Store, log logging.Logger) AuthService {
	return &authService{
		client:   client,
		store:    store,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		log:      log,
	}
}

// Register validates the profile locally, then submits it. A validation
// failure is returned before the slice status changes.
func (a *authService) Register(ctx context.Context, params api.RegisterParams) error {
	if err := validateParams(a.validate, params); err != nil {
		return err
	}

	a.store.AuthRequestStarted(true)
	if err := a.client.Register(ctx, params); err != nil {
		a.store.AuthFailed(api.ErrorMessage(err))
		return fmt.Errorf("registration error: %w", err)
	}
	a.store.RegisterSucceeded()
	return nil
}

// Login performs the two-step handshake: the login endpoint establishes the
// session cookie but returns no profile, so a successful first step chains a
// FetchCurrentUser for the authoritative record. Login returns the outcome of
// the first step only; callers read the store to see whether the chained
// fetch left them authenticated.
func (a *authService) Login(ctx context.Context, params api.LoginParams) error {
	if err := validateParams(a.validate, params); err != nil {
		return err
	}

	a.store.AuthRequestStarted(true)
	if err := a.client.Login(ctx, params); err != nil {
		a.store.AuthFailed(api.ErrorMessage(err))
		return fmt.Errorf("login error: %w", err)
	}
	a.store.LoginSucceeded()

	if err := a.FetchCurrentUser(ctx); err != nil {
		a.log.Warn(ctx, "session fetch after login failed", "error", err)
	}
	return nil
}

// Logout resets the local auth slice immediately so the caller observes the
// logged-out state regardless of server latency, then asks the server to
// invalidate the session. The local reset is never reverted.
func (a *authService) Logout(ctx context.Context) error {
	a.store.ResetAuth()

	if err := a.client.Logout(ctx); err != nil {
		a.log.Warn(ctx, "server logout failed, local state already cleared", "error", err)
		return fmt.Errorf("server logout failed: %w", err)
	}
	return nil
}

// FetchCurrentUser probes /auth/me. Failure clears the auth slice, which is
// how an expired or missing session is detected on startup.
func (a *authService) FetchCurrentUser(ctx context.Context) error {
	a.store.AuthRequestStarted(false)

	u, err := a.client.CurrentUser(ctx)
	if err != nil {
		a.store.SessionRejected()
		return fmt.Errorf("session fetch error: %w", err)
	}
	a.store.SessionResolved(u)
	return nil
}
