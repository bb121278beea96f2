package cli

import (
	"bufio"
	"context"
	"log/slog"
	"os"

	_ "modernc.org/sqlite"

	"phonestock/internal/client/api"
	"phonestock/internal/client/catalog"
	"phonestock/internal/client/config"
	"phonestock/internal/client/db"
	"phonestock/internal/client/models"
	"phonestock/internal/client/repositories/creds"
	"phonestock/internal/client/services"
	"phonestock/internal/client/session"
	"phonestock/internal/logging"
)

// sessionManager is the slice of session.Manager the CLI depends on.
// Tests provide a lightweight stub.
type sessionManager interface {
	Login(ctx context.Context, email, password string) error
	Register(ctx context.Context, name, email, password, confirm, role string) error
	VerifyOnLoad(ctx context.Context) error
	Logout(ctx context.Context) error
	Guard(requireAuth bool) error
	IsAuthenticated() bool
	User() *models.User
	LastError() string
	ClearError()
}

// App wires the session manager, inventory service and interactive input
// into the REPL. Query params persist between commands until the user runs
// "clear".
type App struct {
	config    *config.Config
	session   sessionManager
	inventory services.InventoryService
	params    catalog.Params
	reader    *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	database, err := db.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		return nil, err
	}

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	apiClient := api.NewHTTPClient(c.APIBaseURL, c.RequestTimeout)
	credsRepo := creds.NewSQLiteRepository(database)

	return &App{
		config:    c,
		session:   session.NewManager(apiClient, credsRepo, logger),
		inventory: services.NewInventoryService(apiClient),
		params:    catalog.DefaultParams(),
		reader:    bufio.NewReader(os.Stdin),
	}, nil
}

// Run restores any persisted session first, so the prompt never shows a
// false authenticated state, then hands control to the REPL.
func (a *App) Run(ctx context.Context) error {
	if err := a.session.VerifyOnLoad(ctx); err != nil {
		return err
	}
	a.Root(ctx)
	return nil
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}
