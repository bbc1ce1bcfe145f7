package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// ThemeInfo describes one available vocabulary.
type ThemeInfo struct {
	Key    string   `json:"key"`
	Name   string   `json:"name"`
	Words  int      `json:"words"`
	Source string   `json:"source"`
	Sample []string `json:"sample,omitempty"`
}

// sampleSize is how many leading words --verbose and JSON output show.
const sampleSize = 5

// NewThemesCommand creates the themes command.
func NewThemesCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List available vocabularies",
		Long: `List the vocabularies found in the lexicon directory.

A vocabulary is a *.txt or *.lex file whose base name is the theme key. The
built-in latin vocabulary is always available.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runThemes(rootOpts, cmd)
		},
	}
}

func runThemes(opts *RootOptions, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	cat, err := LoadCatalog(opts.Config)
	if err != nil {
		return formatter.Fail(err)
	}
	reg := LoadRegistry(opts)

	var themes []ThemeInfo
	for _, key := range reg.Keys() {
		v, err := reg.Get(key)
		if err != nil {
			return formatter.Fail(err)
		}
		themes = append(themes, ThemeInfo{
			Key:    v.Key,
			Name:   cat.ThemeName(v.Key, v.Name),
			Words:  v.Len(),
			Source: v.Source,
			Sample: v.Sample(sampleSize),
		})
	}

	if formatter.Format == "json" {
		return formatter.Success(themes)
	}

	fmt.Fprintf(formatter.Writer, "Themes (%d):\n", len(themes))
	for _, th := range themes {
		fmt.Fprintf(formatter.Writer, "  %-12s %-20s %5d words  (%s)\n", th.Key, th.Name, th.Words, th.Source)
		formatter.VerboseLog("    %s: %v", th.Key, th.Sample)
	}
	return nil
}
