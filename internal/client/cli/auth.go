package cli

import (
	"context"
	"errors"
	"fmt"

	"blogctl/internal/client/api"
	"blogctl/internal/client/services"
)

// reportError renders a failure the way the SPA shows its alert banners:
// validation violations become per-field lines, anything else one message.
func (a *App) reportError(err error) {
	var verr *services.ValidationError
	if errors.As(err, &verr) {
		for field, reason := range verr.Fields {
			fmt.Fprintf(a.out, "%s %s\n", field, reason)
		}
		return
	}
	fmt.Fprintln(a.out, api.ErrorMessage(err))
}

// Register collects a profile and creates the account. Registration does not
// log the user in; they authenticate afterwards with their new credentials.
func (a *App) Register(ctx context.Context) error {
	// Starting a fresh form drops the previous attempt's banner.
	a.store.ClearAuthError()

	name, err := GetSimpleText(a.reader, "Enter your name", a.out)
	if err != nil {
		return err
	}
	username, err := GetSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}

	err = a.authService.Register(ctx, api.RegisterParams{
		Name:     name,
		Username: username,
		Email:    email,
		Password: password,
	})
	if err != nil {
		a.reportError(err)
		return err
	}

	fmt.Fprintln(a.out, "Registration successful, you can now log in.")
	return nil
}

// Login runs the two-step handshake. Whether the chained session fetch left
// us authenticated is read back from the store, not from the error value.
func (a *App) Login(ctx context.Context) error {
	a.store.ClearAuthError()

	username, err := GetSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}

	err = a.authService.Login(ctx, api.LoginParams{Username: username, Password: password})
	if err != nil {
		a.reportError(err)
		return err
	}

	auth := a.store.Auth()
	if !auth.IsAuthenticated {
		fmt.Fprintln(a.out, "Login succeeded but the session could not be established, please try again.")
		return nil
	}

	a.saveSession(ctx)
	fmt.Fprintf(a.out, "Logged in as %s\n", auth.User.Name)
	return nil
}

// Logout clears local state first; a server-side failure only produces a
// notice, the user stays logged out either way.
func (a *App) Logout(ctx context.Context) error {
	err := a.authService.Logout(ctx)
	a.clearSession(ctx)

	if err != nil {
		fmt.Fprintln(a.out, "Server logout failed, but you've been logged out locally.")
		return nil
	}
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

// Whoami re-validates the session cookie and prints the profile.
func (a *App) Whoami(ctx context.Context) error {
	if err := a.authService.FetchCurrentUser(ctx); err != nil {
		fmt.Fprintln(a.out, "Not logged in.")
		return err
	}

	u := a.store.Auth().User
	fmt.Fprintf(a.out, "%s (%s) <%s>\n", u.Name, u.Username, u.Email)
	return nil
}
