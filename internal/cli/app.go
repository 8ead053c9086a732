package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/antonvlasov/voicenotes/internal/account"
	"github.com/antonvlasov/voicenotes/internal/blob"
	"github.com/antonvlasov/voicenotes/internal/config"
	"github.com/antonvlasov/voicenotes/internal/logging"
	"github.com/antonvlasov/voicenotes/internal/models"
	"github.com/antonvlasov/voicenotes/internal/platform"
	"github.com/antonvlasov/voicenotes/internal/recorder"
	"github.com/antonvlasov/voicenotes/internal/session"
	"github.com/antonvlasov/voicenotes/internal/store"
)

type App struct {
	config   *config.Config
	db       *sql.DB
	store    *store.Store
	accounts *account.Service
	recorder *recorder.Service
	boot     *session.Service
	log      logging.Logger
	reader   *bufio.Reader
	out      io.Writer
}

func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := blob.Open(ctx, cfg.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	repo := blob.NewSQLiteRepository(db)
	st := store.New()

	rec := recorder.NewService(
		st,
		repo,
		platform.NewLocalCapture(cfg.MediaDir),
		platform.NewLocalPlayback(),
		platform.NewLocalShare(cfg.ExportDir),
		log,
		cfg.TickInterval,
	)

	return &App{
		config:   cfg,
		db:       db,
		store:    st,
		accounts: account.NewService(db, st, log),
		recorder: rec,
		boot:     session.New(st, repo, log),
		log:      log,
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}, nil
}

// Run hydrates the store from durable storage and enters the REPL.
// Nothing is interactive until the bootstrap completes.
func (a *App) Run(ctx context.Context) {
	defer a.Close(ctx)

	fmt.Fprintln(a.out, "Loading...")
	a.boot.Bootstrap(ctx)

	a.recorder.SetTickHandler(func(seconds int) {
		fmt.Fprintf(a.out, "\r%s ", models.FormatDuration(seconds))
	})

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

// Close releases the recorder and the database handle.
func (a *App) Close(ctx context.Context) {
	a.recorder.Close(ctx)
	if err := a.db.Close(); err != nil {
		a.log.Warn(ctx, "error closing database", "error", err)
	}
}

func (a *App) isLoggedIn() bool {
	return a.store.State().Auth.IsAuthenticated
}

func (a *App) status() string {
	snap := a.store.State()
	who := "guest"
	if snap.Auth.User != nil {
		who = snap.Auth.User.UserName
	}
	if a.recorder.State() == recorder.StateCapturing {
		return who + " REC"
	}
	return who
}

// requireLogin prints a notice and returns false when no session user
// is present.
func (a *App) requireLogin() bool {
	if a.isLoggedIn() {
		return true
	}
	fmt.Fprintln(a.out, "Please login first.")
	return false
}
