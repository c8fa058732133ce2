package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/focussphere/internal/analytics"
	"github.com/blackwell-systems/focussphere/internal/calendar"
	"github.com/blackwell-systems/focussphere/internal/config"
	"github.com/blackwell-systems/focussphere/internal/output"
	"github.com/blackwell-systems/focussphere/internal/state"
	"github.com/blackwell-systems/focussphere/internal/store"
)

// workspace bundles what a command needs: config, the open store, the
// analytics engine and the persisted application state.
type workspace struct {
	ctx    context.Context
	cfg    *config.Config
	db     *store.DB
	engine *analytics.Engine
	state  state.AppState
	out    io.Writer
}

// openWorkspace loads config, opens the database and restores app state.
// Callers must Close the result.
func openWorkspace(cmd *cobra.Command) (*workspace, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if !cfg.Output.Color {
		output.SetNoColor(true)
	}

	db, err := store.Open(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	st, err := state.Load(ctx, db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	output.SetTheme(st.DarkMode)

	engine := analytics.NewEngine(db, logger)
	engine.MonthlyBudget, err = monthlyBudget(ctx, db, cfg)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &workspace{
		ctx:    ctx,
		cfg:    cfg,
		db:     db,
		engine: engine,
		state:  st,
		out:    cmd.OutOrStdout(),
	}, nil
}

// Close releases the database.
func (w *workspace) Close() error {
	return w.db.Close()
}

// today is the engine's current calendar date.
func (w *workspace) today() time.Time {
	return w.engine.Today()
}

// monthlyBudget prefers the stored monthlyBudget setting over config. An
// unparseable setting is logged and ignored.
func monthlyBudget(ctx context.Context, db *store.DB, cfg *config.Config) (decimal.Decimal, error) {
	raw, err := db.GetSetting(ctx, store.SettingMonthlyBudget, "")
	if err != nil {
		return decimal.Zero, fmt.Errorf("loading budget: %w", err)
	}
	if raw == "" {
		return cfg.MonthlyBudget(), nil
	}
	v, err := decimal.NewFromString(raw)
	if err != nil || !v.IsPositive() {
		logger.Warn("ignoring invalid monthlyBudget setting", "value", raw)
		return cfg.MonthlyBudget(), nil
	}
	return v, nil
}

// writeJSON encodes v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// parseID parses a record id argument.
func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}

// dateFlag parses an optional --date value, defaulting to today.
func dateFlag(value string, today time.Time) (time.Time, error) {
	if value == "" {
		return today, nil
	}
	return calendar.ParseDate(value)
}

// notFound rewrites store.ErrNotFound into a message naming the record.
func notFound(kind string, id int64, err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("no %s with id %d", kind, id)
	}
	return err
}

// joinArgs joins positional words into one string.
func joinArgs(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}
