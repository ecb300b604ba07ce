package cli

import (
	"bufio"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"blogctl/internal/client/api"
	"blogctl/internal/client/config"
	"blogctl/internal/client/repositories/session"
	"blogctl/internal/client/routes"
	"blogctl/internal/client/services"
	"blogctl/internal/client/state"
	"blogctl/internal/logging"

	_ "modernc.org/sqlite"
)

// App wires the store, the services and the session persistence together and
// drives the REPL.
type App struct {
	config      *config.Config
	store       *state.Store
	client      *api.HTTPClient
	authService services.AuthService
	postService services.PostService
	guard       *routes.Guard
	sessionRepo session.Repository
	db          *sql.DB
	log         logging.Logger
	reader      *bufio.Reader
	out         io.Writer
}

func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := session.InitDatabase(ctx, c.SessionDBPath)
	if err != nil {
		log.Error(ctx, "error initializing session database", "error", err)
		return nil, err
	}

	apiClient, err := api.NewHTTPClient(c.BaseURL, c.RequestTimeout)
	if err != nil {
		return nil, err
	}

	store := state.NewStore()

	app := &App{
		config:      c,
		store:       store,
		client:      apiClient,
		authService: services.NewAuthService(apiClient, store, log),
		postService: services.NewPostService(apiClient, store, log),
		guard:       routes.NewGuard(store),
		sessionRepo: session.NewSQLiteRepository(db),
		db:          db,
		log:         log,
		reader:      bufio.NewReader(os.Stdin),
		out:         os.Stdout,
	}
	app.watchStore()
	return app, nil
}

// watchStore is the CLI's version of the SPA's re-render subscription: every
// store mutation traces the resulting auth snapshot, which is what the next
// prompt renders through getStatus.
func (a *App) watchStore() {
	a.store.Subscribe(func() {
		auth := a.store.Auth()
		a.log.Debug(context.Background(), "state changed",
			"status", string(auth.Status), "authenticated", auth.IsAuthenticated)
	})
}

// Run restores the persisted session, validates it against the backend and
// enters the REPL. The session probe settles before any command runs, so the
// guard never has to wait inside the loop.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	a.restoreSession(ctx)

	if err := a.authService.FetchCurrentUser(ctx); err != nil {
		a.log.Debug(ctx, "no active session", "error", err)
	}
	if auth := a.store.Auth(); auth.IsAuthenticated {
		fmt.Fprintf(a.out, "Welcome back, %s!\n", auth.User.Name)
	}

	fmt.Fprintln(a.out, "Welcome to the blogctl CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) Close() {
	if err := a.client.Close(); err != nil {
		a.log.Error(context.Background(), "error closing api client", "error", err)
	}
	if err := a.db.Close(); err != nil {
		a.log.Error(context.Background(), "error closing session database", "error", err)
	}
}

func (a *App) isLoggedIn() bool {
	return a.store.Auth().IsAuthenticated
}

// getStatus renders the prompt fragment: the signed-in user's name, like the
// navbar account label, or "guest".
func (a *App) getStatus() string {
	auth := a.store.Auth()
	if auth.IsAuthenticated && auth.User != nil {
		return auth.User.Name
	}
	return "guest"
}

// restoreSession seeds the cookie jar with the cookies persisted by the last
// run, the way a browser re-attaches its cookie store on startup.
func (a *App) restoreSession(ctx context.Context) {
	data, err := a.sessionRepo.Get(ctx, session.KeyCookies)
	if err != nil {
		a.log.Warn(ctx, "failed to read persisted session", "error", err)
		return
	}
	if len(data) == 0 {
		return
	}

	var cookies []*http.Cookie
	if err := json.Unmarshal(data, &cookies); err != nil {
		a.log.Warn(ctx, "failed to decode persisted session", "error", err)
		return
	}
	a.client.SetCookies(cookies)
}

// saveSession persists the current cookie jar and username.
func (a *App) saveSession(ctx context.Context) {
	data, err := json.Marshal(a.client.Cookies())
	if err != nil {
		a.log.Warn(ctx, "failed to encode session", "error", err)
		return
	}
	if err := a.sessionRepo.Set(ctx, session.KeyCookies, data); err != nil {
		a.log.Warn(ctx, "failed to persist session", "error", err)
		return
	}
	if auth := a.store.Auth(); auth.User != nil {
		_ = a.sessionRepo.Set(ctx, session.KeyUsername, []byte(auth.User.Username))
	}
}

// clearSession wipes the persisted session after logout.
func (a *App) clearSession(ctx context.Context) {
	if err := a.sessionRepo.Clear(ctx); err != nil {
		a.log.Warn(ctx, "failed to clear persisted session", "error", err)
	}
}
