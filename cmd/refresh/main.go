// Command refresh regenerates the static dashboard data files: one fetch
// across every upstream, then an atomic write of the JSON and JS
// artifacts. Intended to run from cron or CI.
package main

import (
	"context"
	"fmt"
	"os"
	"syscall"

	"github.com/charmbracelet/fang"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/altay/inkdash/internal/archive"
	"github.com/altay/inkdash/internal/config"
	"github.com/altay/inkdash/internal/refresh"
	"github.com/altay/inkdash/internal/version"
	"github.com/altay/inkdash/internal/xslog"
)

func main() {
	_ = godotenv.Load()

	var outDir string

	rootCmd := &cobra.Command{
		Use:     "refresh",
		Short:   "Regenerate the static dashboard data files",
		Version: version.Get(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), outDir)
		},
	}
	rootCmd.Flags().StringVarP(&outDir, "out", "o", "data", "output directory for the generated files")

	if err := fang.Execute(context.Background(), rootCmd, fang.WithNotifySignal(os.Interrupt, syscall.SIGTERM)); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, outDir string) error {
	logger := xslog.NewLoggerFromEnv(os.Stdout)

	cfg, err := config.Read()
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}

	var opts []refresh.Option
	if url := os.Getenv("DATABASE_URL"); url != "" {
		arc, err := archive.Open(ctx, url)
		if err != nil {
			return fmt.Errorf("failed to open close archive: %w", err)
		}
		defer arc.Close()
		opts = append(opts, refresh.WithArchive(arc))
	}

	job, err := refresh.New(cfg, logger, outDir, opts...)
	if err != nil {
		return err
	}

	if err := job.Run(ctx); err != nil {
		logger.ErrorContext(ctx, "refresh failed", xslog.Error(err))
		return err
	}

	logger.InfoContext(ctx, "refresh complete", xslog.Path(outDir))
	return nil
}
