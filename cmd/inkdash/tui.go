package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/altay/inkdash/internal/config"
	"github.com/altay/inkdash/internal/fetch"
	"github.com/altay/inkdash/internal/paths"
	"github.com/altay/inkdash/internal/store"
	"github.com/altay/inkdash/internal/tui"
	"github.com/altay/inkdash/internal/xslog"
)

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := config.Read()
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}

	loc, err := cfg.Location()
	if err != nil {
		return fmt.Errorf("invalid timezone %q: %w", cfg.Timezone, err)
	}

	dbPath, err := paths.DB()
	if err != nil {
		return err
	}

	st, err := store.OpenSQLite(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open snapshot store: %w", err)
	}
	defer func() { _ = st.Close() }()

	logger, closeLog := fileLogger()
	defer closeLog()

	deps := tui.Deps{
		Ctx:      cmd.Context(),
		Logger:   logger,
		Cfg:      cfg,
		Location: loc,
		Store:    st,
		Fetcher:  fetch.FromConfig(cfg),
	}
	model := tui.New(deps)

	p := tea.NewProgram(model)

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}

	return nil
}

// fileLogger writes to a log file next to the snapshot database so log
// lines never bleed into the alt screen. Falls back to a discard logger.
func fileLogger() (*slog.Logger, func()) {
	dir, err := paths.EnsureDir()
	if err != nil {
		return slog.New(slog.DiscardHandler), func() {}
	}

	f, err := os.OpenFile(filepath.Join(dir, "inkdash.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return slog.New(slog.DiscardHandler), func() {}
	}

	return xslog.NewLoggerFromEnv(f), func() { _ = f.Close() }
}
