package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"mccwk.com/poet/internal/database"
	"mccwk.com/poet/internal/logging"
	"mccwk.com/poet/internal/store"
	"mccwk.com/poet/internal/tui"
)

const VERSION = "1.0.0"

var (
	debug  bool
	dbFlag string
)

var rootCmd = &cobra.Command{
	Use:     "poet",
	Short:   "Compose Vietnamese poems with a generative model",
	Version: VERSION,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		loadEnv()
		setupLogging(os.Stderr)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return startTUI(cmd.Context())
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Display debugging output")
	rootCmd.PersistentFlags().StringVar(&dbFlag, "db", "", "Path to the poem library database (default $POET_DB_PATH or ~/.poet.db)")
}

func logLevel() slog.Level {
	if debug {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

func setupLogging(w io.Writer) {
	level := logLevel()

	if os.Getenv("MODE") == "production" {
		logger := slog.New(slog.NewJSONHandler(w,
			&slog.HandlerOptions{
				Level: level,
			}))
		slog.SetDefault(logger)
	} else {
		logger := slog.New(tint.NewHandler(w,
			&tint.Options{
				Level: level,
			}))
		slog.SetDefault(logger)
	}
	slog.Debug(fmt.Sprintf("Version: %s", VERSION))
}

func startTUI(ctx context.Context) error {
	// Log records would tear the alt screen; keep them for the Ctrl+L panel.
	sink := logging.NewMemorySink(logging.DefaultMaxEntries, logLevel())
	slog.SetDefault(slog.New(sink))

	generator, err := newGenerator(ctx, 0)
	if err != nil {
		return err
	}

	db, err := database.New(dbPath())
	if err != nil {
		return err
	}
	defer db.Close()

	model := tui.NewModel(generator, store.New(db, slog.Default()), sink, tui.Config{
		DownloadDir: downloadDir(),
	})
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
