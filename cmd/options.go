package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"mccwk.com/poet/internal/poem"
)

var optionsPreset bool

var optionsCmd = &cobra.Command{
	Use:   "options",
	Short: "List the available poem options",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		if optionsPreset {
			data, err := yaml.Marshal(poem.DefaultOptions())
			if err != nil {
				return err
			}
			_, err = out.Write(data)
			return err
		}

		section := func(name string, values []string) {
			fmt.Fprintf(out, "%s:\n", name)
			for _, v := range values {
				fmt.Fprintf(out, "  %s\n", v)
			}
			fmt.Fprintln(out)
		}
		section("Types", poem.Types)
		section("Styles", poem.Styles)
		section("Contexts", poem.Contexts)
		section("Emotions", poem.Emotions)
		section("Audiences", poem.Audiences)
		section("Suggested topics", poem.SuggestedTopics)

		fmt.Fprintf(out, "Lines: %d to %d, step %d\n", poem.MinLines, poem.MaxLines, poem.LineStep)
		d := poem.DefaultOptions()
		fmt.Fprintf(out, "Defaults: %s\n", strings.Join([]string{d.Type, d.Style, d.Context, d.Audience}, " / "))
		return nil
	},
}

func init() {
	optionsCmd.Flags().BoolVar(&optionsPreset, "preset", false, "Print the defaults as a YAML preset")
	rootCmd.AddCommand(optionsCmd)
}
