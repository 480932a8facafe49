package cmd

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"mccwk.com/poet/internal/database"
	"mccwk.com/poet/internal/export"
	"mccwk.com/poet/internal/poem"
	"mccwk.com/poet/internal/store"
)

var libraryOut string

var libraryCmd = &cobra.Command{
	Use:     "library",
	Aliases: []string{"lib"},
	Short:   "Manage saved poems",
}

var libraryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved poems, newest first",
	Args:  cobra.NoArgs,
	RunE: withLibrary(func(cmd *cobra.Command, lib *store.Store, _ []string) error {
		poems := lib.List(cmd.Context())
		if len(poems) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No saved poems.")
			return nil
		}

		for _, p := range poems {
			fmt.Fprintf(cmd.OutOrStdout(), "%d  %s  %s\n",
				p.Timestamp,
				time.UnixMilli(p.Timestamp).Format("2006-01-02 15:04"),
				truncate(p.Title, 50),
			)
			fmt.Fprintf(cmd.OutOrStdout(), "    %s\n", truncate(firstLine(p.Content), 70))
		}
		return nil
	}),
}

var libraryShowCmd = &cobra.Command{
	Use:   "show <timestamp>",
	Short: "Print a saved poem",
	Args:  cobra.ExactArgs(1),
	RunE: withSavedPoem(func(cmd *cobra.Command, _ *store.Store, p poem.SavedPoem) error {
		fmt.Fprintln(cmd.OutOrStdout(), export.Compose(p.Title, p.Content))
		return nil
	}),
}

var libraryDeleteCmd = &cobra.Command{
	Use:   "delete <timestamp>",
	Short: "Delete a saved poem",
	Args:  cobra.ExactArgs(1),
	RunE: withSavedPoem(func(cmd *cobra.Command, lib *store.Store, p poem.SavedPoem) error {
		lib.Delete(cmd.Context(), p.Timestamp)
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted %q.\n", p.Title)
		return nil
	}),
}

var libraryExportCmd = &cobra.Command{
	Use:   "export <timestamp>",
	Short: "Write a saved poem to a .txt file",
	Args:  cobra.ExactArgs(1),
	RunE: withSavedPoem(func(cmd *cobra.Command, _ *store.Store, p poem.SavedPoem) error {
		path, err := export.WriteFile(libraryOut, p.Title, p.Content, time.Now())
		if err != nil {
			return fmt.Errorf("failed to write poem: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	}),
}

var libraryCopyCmd = &cobra.Command{
	Use:   "copy <timestamp>",
	Short: "Copy a saved poem to the clipboard",
	Args:  cobra.ExactArgs(1),
	RunE: withSavedPoem(func(cmd *cobra.Command, _ *store.Store, p poem.SavedPoem) error {
		if err := export.Copy(p.Title, p.Content); err != nil {
			return fmt.Errorf("failed to copy poem: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Copied to clipboard.")
		return nil
	}),
}

func init() {
	libraryExportCmd.Flags().StringVarP(&libraryOut, "out", "o", ".", "Directory to write into")

	libraryCmd.AddCommand(libraryListCmd, libraryShowCmd, libraryDeleteCmd, libraryExportCmd, libraryCopyCmd)
	rootCmd.AddCommand(libraryCmd)
}

func withLibrary(fn func(*cobra.Command, *store.Store, []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		db, err := database.New(dbPath())
		if err != nil {
			return err
		}
		defer db.Close()

		return fn(cmd, store.New(db, slog.Default()), args)
	}
}

func withSavedPoem(fn func(*cobra.Command, *store.Store, poem.SavedPoem) error) func(*cobra.Command, []string) error {
	return withLibrary(func(cmd *cobra.Command, lib *store.Store, args []string) error {
		ts, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid timestamp %q", args[0])
		}

		p, ok := lib.Get(cmd.Context(), ts)
		if !ok {
			return fmt.Errorf("no saved poem with timestamp %d", ts)
		}
		return fn(cmd, lib, p)
	})
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
