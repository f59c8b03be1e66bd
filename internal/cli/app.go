// Package cli implements the interactive videopick shell: a REPL dispatching
// user commands onto the history and pick services. No core logic lives in
// the command handlers themselves.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/videopick/videopick/internal/config"
	"github.com/videopick/videopick/internal/filex"
	"github.com/videopick/videopick/internal/logging"
	"github.com/videopick/videopick/internal/selector"
	"github.com/videopick/videopick/internal/services"
	"github.com/videopick/videopick/internal/storage"

	_ "modernc.org/sqlite"
)

// DatabaseFileName is the history database file created under the app data
// directory when no explicit path is configured.
const DatabaseFileName = "videopick.db"

type App struct {
	config  *config.Config
	history services.HistoryService
	picker  services.PickService
	db      *sql.DB
	reader  *bufio.Reader
	logger  logging.Logger
}

func NewApp(c *config.Config, logger logging.Logger) (*App, error) {
	ctx := context.Background()

	dbPath := c.DatabasePath
	if dbPath == "" {
		dir, err := filex.AppDataDir()
		if err != nil {
			return nil, fmt.Errorf("resolve data dir: %w", err)
		}
		dbPath = filepath.Join(dir, DatabaseFileName)
	}

	// First-run provisioning from a bundled template; migrations bring any
	// copy up to date.
	if err := filex.ProvisionFile(c.TemplatePath, dbPath); err != nil {
		return nil, err
	}

	db, repos, err := storage.InitDatabase(ctx, dbPath)
	if err != nil {
		logger.Error(ctx, "error initializing database", "path", dbPath, "error", err)
		return nil, err
	}
	logger.Info(ctx, "database ready", "path", dbPath)

	hs := services.NewHistoryService(db, logger)
	sel := selector.New(c.VideoExtensions, c.ScanTimeout, logger)
	ps := services.NewPickService(sel, hs, repos.Settings, logger)

	return &App{
		config:  c,
		history: hs,
		picker:  ps,
		db:      db,
		reader:  bufio.NewReader(os.Stdin),
		logger:  logger,
	}, nil
}

// Close releases the database handle.
func (a *App) Close() error {
	return a.db.Close()
}

func (a *App) Run(ctx context.Context) {
	defer a.Close()

	printlnFn("videopick (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

// getStatus renders the prompt suffix: the current directory base name and
// bias, when set.
func (a *App) getStatus() string {
	ctx := context.Background()

	s := ""
	if dir, err := a.picker.Directory(ctx); err == nil && dir != "" {
		s = filepath.Base(dir)
	}
	if bias, err := a.picker.Bias(ctx); err == nil {
		if s != "" {
			s += " "
		}
		s += fmt.Sprintf("bias=%d", bias)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}
