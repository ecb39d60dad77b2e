package cli

import (
	"bufio"
	"context"
	"os"
	"time"

	"github.com/beautyease/beautyease/internal/client/analysis"
	"github.com/beautyease/beautyease/internal/client/api"
	"github.com/beautyease/beautyease/internal/client/capture"
	"github.com/beautyease/beautyease/internal/client/config"
	"github.com/beautyease/beautyease/internal/client/localstore"
	"github.com/beautyease/beautyease/internal/client/session"
	"github.com/beautyease/beautyease/internal/logging"

	_ "modernc.org/sqlite"
)

// Mode reflects the last known reachability of the backend.
type Mode string

const (
	ModeOnline  Mode = "online"
	ModeOffline Mode = "offline"
)

// App wires the client components behind the interactive CLI.
type App struct {
	config    *config.Config
	logger    logging.Logger
	apiClient api.Client
	session   *session.Session
	store     *localstore.Store
	capture   *capture.Controller
	analyzer  analysis.Analyzer
	Mode      Mode
	reader    *bufio.Reader
}

func NewApp(c *config.Config, logger logging.Logger) (*App, error) {
	ctx := context.Background()

	store, err := localstore.Open(ctx, c.LocalDBPath)
	if err != nil {
		logger.Error(ctx, "failed to open local database", "error", err)
		return nil, err
	}

	apiClient := api.NewHTTPClient(c.ServerBaseURL)

	return &App{
		config:    c,
		logger:    logger.With("module", "cli"),
		apiClient: apiClient,
		session:   session.New(apiClient, store.Metadata, logger),
		store:     store,
		capture:   capture.NewController(&capture.FileDevice{Path: c.CameraSource}),
		analyzer:  analysis.NewMockAnalyzer(nil, analysis.DefaultDelay),
		reader:    bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.session.IsLoggedIn()
}

func (a *App) getStatus() string {
	s := ""
	if p := a.session.Profile(); p != nil {
		s = p.FullName + " "
	}
	if a.Mode != "" {
		s += string(a.Mode)
	}
	if s != "" {
		s = "(" + s + ")"
	}
	return s
}

func (a *App) setMode(mode Mode) {
	if a.Mode != mode {
		a.Mode = mode
		printlnFn("Connection is now", string(mode))
	}
}

// StartOnlineStatusWatcher periodically pings the backend and flips the
// Mode indicator shown in the prompt.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			err := a.apiClient.Ping(pingCtx)
			cancel()

			if err != nil {
				a.setMode(ModeOffline)
			} else {
				a.setMode(ModeOnline)
			}

		case <-ctx.Done():
			return
		}
	}
}

// Run restores any saved session and drives the REPL until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	if a.session.Restore(ctx) {
		if p := a.session.Profile(); p != nil {
			printlnFn("Welcome back,", p.FullName+"!")
		}
	}

	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	printlnFn("Welcome to Beauty Ease (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

// Close releases the capture device and the local database.
func (a *App) Close() {
	a.capture.Close()
	if err := a.store.Close(); err != nil {
		a.logger.Warn(context.Background(), "failed to close local database", "error", err)
	}
}
