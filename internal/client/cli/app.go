// Package cli implements the interactive QKart storefront: a command loop
// for auth and cart operations plus a full-screen browse view with live
// search.
package cli

import (
	"bufio"
	"context"
	"log/slog"
	"os"

	"qkart-cli/internal/client/api"
	"qkart-cli/internal/client/config"
	"qkart-cli/internal/client/models"
	"qkart-cli/internal/client/services"
	"qkart-cli/internal/client/session"
	"qkart-cli/internal/logging"
)

// App wires the services together and carries the current session. The
// REPL and the browse view both operate on it.
type App struct {
	config  *config.Config
	log     logging.Logger
	auth    services.AuthService
	catalog *services.CatalogService
	cart    services.CartService
	store   *session.Store
	session models.Session
	reader  *bufio.Reader

	// catalogStale is set when the initial catalog fetch failed; commands
	// that need the catalog retry it and keep showing the load error
	// until a fetch succeeds.
	catalogStale bool
}

func NewApp(c *config.Config) (*App, error) {
	level := slog.LevelWarn
	if c.Verbose {
		level = slog.LevelDebug
	}
	log := logging.NewTextLogger(os.Stderr, level)

	apiClient := api.NewHTTPClient(c.EndpointURL, c.RequestTimeout, log)
	store := session.NewStore(c.SessionFile)
	catalog := services.NewCatalogService(apiClient, log)
	cart := services.NewCartService(apiClient, catalog, log)
	auth := services.NewAuthService(apiClient, store, log)

	sess, err := store.Load()
	if err != nil {
		// A broken session file should not brick the app; start
		// anonymous and let the user log in again.
		log.Warn(context.Background(), "could not load session", "error", err)
		sess = models.Session{}
	}

	return &App{
		config:  c,
		log:     log,
		auth:    auth,
		catalog: catalog,
		cart:    cart,
		store:   store,
		session: sess,
		reader:  bufio.NewReader(os.Stdin),
	}, nil
}

// Run performs the initial load and enters the command loop. Load order
// matters: the catalog must be in place before the cart is reconciled.
func (a *App) Run(ctx context.Context) {
	if _, err := a.catalog.FetchAll(ctx); err != nil {
		a.catalogStale = true
		printlnFn("Could not load products:", userMessage(err))
	}
	if err := a.cart.Load(ctx, a.session); err != nil {
		printlnFn("Could not load your cart:", userMessage(err))
	}

	printlnFn("Welcome to QKart (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

func (a *App) isLoggedIn() bool {
	return !a.session.IsAnonymous()
}

func (a *App) status() string {
	if a.isLoggedIn() {
		return a.session.Username
	}
	return "guest"
}

// refreshCatalog re-fetches the catalog if the initial load failed, so a
// transient backend outage does not leave the session useless.
func (a *App) refreshCatalog(ctx context.Context) error {
	if !a.catalogStale {
		return nil
	}
	if _, err := a.catalog.FetchAll(ctx); err != nil {
		return err
	}
	a.catalogStale = false
	return nil
}
