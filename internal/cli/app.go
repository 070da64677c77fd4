package cli

import (
	"bufio"
	"context"
	"database/sql"
	"log/slog"
	"os"

	"golang.org/x/term"

	"github.com/okarpushin/otpdesk/internal/clipboard"
	"github.com/okarpushin/otpdesk/internal/codegen"
	"github.com/okarpushin/otpdesk/internal/config"
	"github.com/okarpushin/otpdesk/internal/logging"
	"github.com/okarpushin/otpdesk/internal/services"
	"github.com/okarpushin/otpdesk/internal/sound"
	"github.com/okarpushin/otpdesk/internal/storage"
)

type App struct {
	config      *config.Config
	svc         services.SessionService
	reader      *bufio.Reader
	log         logging.Logger
	db          *sql.DB
	interactive bool
}

func NewApp(cfg *config.Config) (*App, error) {
	ctx := context.Background()

	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	repos, err := storage.InitDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	svc := services.NewSessionService(
		codegen.New(nil),
		repos.Settings,
		repos.History,
		clipboard.NewSystem(),
		sound.NewOtoBeeper(),
		log,
	)

	if err := svc.Load(ctx); err != nil {
		return nil, err
	}

	return &App{
		config:      cfg,
		svc:         svc,
		reader:      bufio.NewReader(os.Stdin),
		log:         log,
		db:          repos.DB,
		interactive: term.IsTerminal(int(os.Stdin.Fd())),
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.db.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go a.StartCountdownWatcher(ctx, a.config.TickInterval)

	a.Root(ctx)
}
