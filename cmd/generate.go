package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"mccwk.com/poet/internal/database"
	"mccwk.com/poet/internal/export"
	"mccwk.com/poet/internal/poem"
	"mccwk.com/poet/internal/services"
	"mccwk.com/poet/internal/store"
)

var (
	genPreset        string
	genType          string
	genStyle         string
	genContext       string
	genCustomContext string
	genLines         int
	genEmotions      []string
	genNoEmotions    bool
	genAudience      string
	genInspiration   string
	genSave          bool
	genOut           string
	genCopy          bool
	genPrintPrompt   bool
	genTimeout       time.Duration
)

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen"},
	Short:   "Compose a poem and print it",
	Long: `Compose a single poem from the given options and print it to stdout.

Options not given on the command line come from --preset (a YAML file) and
then from the defaults. Ctrl+C cancels the request.`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.StringVarP(&genPreset, "preset", "p", "", "YAML file with poem options")
	f.StringVarP(&genType, "type", "t", "", "Poem type")
	f.StringVarP(&genStyle, "style", "s", "", "Writing style")
	f.StringVarP(&genContext, "context", "c", "", "Poem context")
	f.StringVar(&genCustomContext, "custom-context", "", "Free-form context; overrides --context when not blank")
	f.IntVarP(&genLines, "lines", "n", 0, fmt.Sprintf("Approximate number of lines (%d-%d)", poem.MinLines, poem.MaxLines))
	f.StringArrayVarP(&genEmotions, "emotion", "e", nil, "Dominant emotion (repeatable)")
	f.BoolVar(&genNoEmotions, "no-emotions", false, "Do not request any particular emotion")
	f.StringVarP(&genAudience, "audience", "a", "", "Target audience")
	f.StringVarP(&genInspiration, "inspiration", "i", "", "Text, web page URL or YouTube URL to draw from")
	f.BoolVar(&genSave, "save", false, "Save the poem to the library")
	f.StringVarP(&genOut, "out", "o", "", "Also write the poem as a .txt file into this directory")
	f.BoolVar(&genCopy, "copy", false, "Copy the poem to the clipboard")
	f.BoolVar(&genPrintPrompt, "print-prompt", false, "Print the prompt instead of calling the service")
	f.DurationVar(&genTimeout, "timeout", 0, "Abort the request after this long (default $POET_TIMEOUT, no limit)")

	rootCmd.AddCommand(generateCmd)
}

func optionsFromFlags(cmd *cobra.Command) (poem.Options, error) {
	opts := poem.DefaultOptions()
	if genPreset != "" {
		var err error
		if opts, err = poem.LoadOptionsFile(genPreset); err != nil {
			return opts, fmt.Errorf("failed to load preset: %w", err)
		}
	}

	f := cmd.Flags()
	if f.Changed("type") {
		opts.Type = genType
	}
	if f.Changed("style") {
		opts.Style = genStyle
	}
	if f.Changed("context") {
		opts.Context = genContext
	}
	if f.Changed("custom-context") {
		opts.CustomContext = genCustomContext
	}
	if f.Changed("lines") {
		opts.Lines = genLines
	}
	if f.Changed("emotion") {
		opts.Emotions = genEmotions
	}
	if genNoEmotions {
		opts.Emotions = nil
	}
	if f.Changed("audience") {
		opts.Audience = genAudience
	}
	if f.Changed("inspiration") {
		opts.Inspiration = genInspiration
	}

	if opts.Lines < poem.MinLines || opts.Lines > poem.MaxLines {
		return opts, fmt.Errorf("lines must be between %d and %d, got %d", poem.MinLines, poem.MaxLines, opts.Lines)
	}
	return opts, nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	opts, err := optionsFromFlags(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if genPrintPrompt {
		fmt.Fprint(out, poem.BuildPrompt(opts))
		return nil
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	generator, err := newGenerator(ctx, genTimeout)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "Composing with %s...\n", generator.ModelName())
	result, err := generator.Generate(ctx, opts)
	if errors.Is(err, services.ErrCancelled) {
		fmt.Fprintln(cmd.ErrOrStderr(), services.UserMessage(err))
		return nil
	}
	if err != nil {
		return fmt.Errorf("%s (%w)", services.UserMessage(err), err)
	}

	fmt.Fprintln(out, export.Compose(result.Title, result.Content))

	if genSave {
		db, err := database.New(dbPath())
		if err != nil {
			return err
		}
		defer db.Close()

		if store.New(db, slog.Default()).Save(cmd.Context(), result.Title, result.Content) {
			fmt.Fprintln(cmd.ErrOrStderr(), "Saved to library.")
		} else {
			fmt.Fprintln(cmd.ErrOrStderr(), "Poem is already in the library.")
		}
	}

	if genOut != "" {
		path, err := export.WriteFile(genOut, result.Title, result.Content, time.Now())
		if err != nil {
			return fmt.Errorf("failed to write poem: %w", err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s\n", path)
	}

	if genCopy {
		if err := export.Copy(result.Title, result.Content); err != nil {
			return fmt.Errorf("failed to copy poem: %w", err)
		}
		fmt.Fprintln(cmd.ErrOrStderr(), "Copied to clipboard.")
	}

	return nil
}
