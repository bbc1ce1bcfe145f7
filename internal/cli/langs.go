package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/lipsum/internal/vocab"
)

// LangInfo describes one catalogued language tag.
type LangInfo struct {
	Tag      string `json:"tag"`
	Name     string `json:"name"`
	HasTheme bool   `json:"has_theme"` // a vocabulary is keyed by this tag
}

// NewLangsCommand creates the langs command.
func NewLangsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "langs",
		Short: "List known language tags",
		Long: `List the language tags in the catalog with their display names.

Tags marked with * have a vocabulary of the same name, which
encode --match-lang will pick.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLangs(rootOpts, cmd)
		},
	}
}

func runLangs(opts *RootOptions, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	cat, err := LoadCatalog(opts.Config)
	if err != nil {
		return formatter.Fail(err)
	}

	themed := make(map[string]bool)
	if dir := opts.Config.Paths.LexiconDir; dir != "" {
		keys, err := vocab.DiscoverKeys(os.DirFS(dir))
		if err != nil {
			opts.logger().Debug("no lexicon directory", "dir", dir, "error", err)
		}
		for _, k := range keys {
			themed[k] = true
		}
	}

	tags := cat.Tags()
	langs := make([]LangInfo, 0, len(tags))
	for _, tag := range tags {
		langs = append(langs, LangInfo{Tag: tag, Name: cat.Name(tag), HasTheme: themed[tag]})
	}

	if formatter.Format == "json" {
		return formatter.Success(langs)
	}

	fmt.Fprintf(formatter.Writer, "Languages (%d):\n", len(langs))
	for _, l := range langs {
		mark := " "
		if l.HasTheme {
			mark = "*"
		}
		fmt.Fprintf(formatter.Writer, "%s %-8s %s\n", mark, l.Tag, l.Name)
	}
	return nil
}
