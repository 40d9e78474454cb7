package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tally-dev/tally/internal/auditlog"
	"github.com/tally-dev/tally/internal/config"
	"github.com/tally-dev/tally/internal/gitops"
	"github.com/tally-dev/tally/internal/ledger"
	"github.com/tally-dev/tally/internal/logging"
	"github.com/tally-dev/tally/internal/model"
	"github.com/tally-dev/tally/internal/notify"
	"github.com/tally-dev/tally/internal/store"
)

// app wires the config, store, engine, and logger for one command run.
type app struct {
	dir    string
	cfg    *config.Config
	store  store.Store
	ledger *ledger.Engine
	log    *zap.Logger
}

// openApp resolves the ledger directory (flag, then TALLY_DIR, then the
// working directory), loads tally.yaml, and builds the engine on the
// configured store backend.
func openApp(dir string) (*app, error) {
	_ = godotenv.Load()

	if dir == "" {
		dir = os.Getenv("TALLY_DIR")
	}
	if dir == "" {
		dir = "."
	}
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	cfg, err := config.Load(filepath.Join(absDir, "tally.yaml"))
	if err != nil {
		return nil, fmt.Errorf("not a tally directory (run \"tally init\" first): %w", err)
	}

	log := logging.NewLogger(cfg.Log.Level)

	var st store.Store
	switch cfg.Storage.Driver {
	case config.DriverSQLite:
		path := cfg.Storage.Path
		if path == "" {
			path = "tally.db"
		}
		st, err = store.NewSQLiteStore(filepath.Join(absDir, path))
	default:
		st, err = store.NewFileStore(filepath.Join(absDir, "data"))
	}
	if err != nil {
		return nil, err
	}

	eng, err := ledger.New(st, notify.NewLogger(log))
	if err != nil {
		_ = st.Close()
		return nil, err
	}

	return &app{dir: absDir, cfg: cfg, store: st, ledger: eng, log: log}, nil
}

func (a *app) close() {
	if err := a.store.Close(); err != nil {
		a.log.Warn("closing store", zap.Error(err))
	}
	_ = a.log.Sync()
}

// record appends an audit entry and, when configured, auto-commits the
// ledger directory.
func (a *app) record(action, details, entityID string) {
	entry := auditlog.Entry{
		Timestamp: time.Now(),
		Action:    action,
		Details:   details,
		EntityID:  entityID,
	}
	if err := auditlog.Append(a.dir, []auditlog.Entry{entry}); err != nil {
		a.log.Warn("writing ledger log", zap.Error(err))
	}

	if a.cfg.Git.AutoCommit && gitops.IsRepo(a.dir) {
		if _, err := gitops.CommitAll(a.dir, action+": "+details, a.cfg.Git.AuthorName, a.cfg.Git.AuthorEmail); err != nil {
			a.log.Warn("git auto-commit failed", zap.Error(err))
		}
	}
}

// addDirFlag registers the shared --dir flag; commands read it back with
// cmd.Flags().GetString("dir").
func addDirFlag(cmd *cobra.Command) {
	cmd.Flags().String("dir", "", "ledger directory (default: $TALLY_DIR or .)")
}

func parseAmount(s string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parsing amount %q: %w", s, err)
	}
	return amount, nil
}

// parseDateFlag parses a --date value, defaulting to today when empty.
func parseDateFlag(s string) (model.Date, error) {
	if s == "" {
		return model.Today(), nil
	}
	return model.ParseDate(s)
}
