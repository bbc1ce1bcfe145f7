package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/lipsum/internal/catalog"
	"github.com/roach88/lipsum/internal/codec"
	"github.com/roach88/lipsum/internal/engine"
	"github.com/roach88/lipsum/internal/ir"
	"github.com/roach88/lipsum/internal/vocab"
)

// EncodeOptions holds flags for the encode command.
type EncodeOptions struct {
	*RootOptions
	In        string // input file, stdin if empty
	Out       string // output file, stdout if empty
	Theme     string // vocabulary key
	Lang      string // source language tag
	MatchLang bool   // use the vocabulary named after --lang if one exists
}

// EncodeResult is the JSON payload of a successful encode.
type EncodeResult struct {
	MappingID string       `json:"mapping_id"`
	Theme     string       `json:"theme"`
	ThemeName string       `json:"theme_name"`
	Lang      string       `json:"lang"`
	Location  string       `json:"location"`
	Output    string       `json:"output,omitempty"`
	Text      string       `json:"text,omitempty"`
	Words     int          `json:"distinct_words"`
	Stats     engine.Stats `json:"stats"`
}

// NewEncodeCommand creates the encode command.
func NewEncodeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &EncodeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Replace every word with a themed stand-in",
		Long: `Encode a document into themed text.

Every distinct word (case-insensitive) gets one replacement from the chosen
vocabulary, or a synthesized word once the vocabulary runs out. Spacing,
punctuation, digits and casing are kept. The output starts with a header
line carrying the mapping id that decode needs; the mapping itself is saved
to the configured store.

Examples:
  lipsum encode --in notes.txt
  lipsum encode --theme pirate --lang en < notes.txt > themed.txt
  lipsum encode --lang nl --match-lang --in notities.txt --out themed.txt`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEncode(cmd.Context(), opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.In, "in", "i", "", "input file (default stdin)")
	cmd.Flags().StringVarP(&opts.Out, "out", "o", "", "output file (default stdout)")
	cmd.Flags().StringVarP(&opts.Theme, "theme", "t", "", "vocabulary key (default from config)")
	cmd.Flags().StringVarP(&opts.Lang, "lang", "l", ir.DefaultLang, "source language tag")
	cmd.Flags().BoolVar(&opts.MatchLang, "match-lang", false, "use the vocabulary named after --lang when present")

	return cmd
}

func runEncode(ctx context.Context, opts *EncodeOptions, cmd *cobra.Command) error {
	if ctx == nil {
		ctx = context.Background()
	}
	formatter := opts.formatter(cmd)
	logger := opts.logger()

	input, err := readInput(cmd, opts.In)
	if err != nil {
		return formatter.Fail(err)
	}
	if strings.TrimSpace(input) == "" {
		return formatter.Fail(codec.ErrEmptyInput)
	}

	cat, err := LoadCatalog(opts.Config)
	if err != nil {
		return formatter.Fail(err)
	}
	lang := catalog.Normalize(opts.Lang)
	if !cat.Known(lang) {
		logger.Debug("language tag not in catalog", "lang", lang)
	}

	voc, err := resolveTheme(opts, LoadRegistry(opts.RootOptions), cat, lang)
	if err != nil {
		return formatter.Fail(err)
	}

	st, err := OpenStore(opts.Config)
	if err != nil {
		return formatter.Fail(err)
	}
	defer st.Close()

	enc, err := NewCodec(opts.RootOptions, st).Encode(ctx, codec.EncodeRequest{
		Text:       input,
		Lang:       lang,
		Vocabulary: voc,
	})
	if err != nil {
		return formatter.Fail(err)
	}

	if opts.Out != "" {
		if err := writeOutput(cmd, opts.Out, enc.Text); err != nil {
			_ = formatter.Error(ErrCodeWriteFailed, err.Error(), nil)
			return WrapExitError(ExitCommandError, ErrCodeWriteFailed, err)
		}
	}

	formatter.VerboseLog("Theme: %s (%s), language: %s", voc.Key, voc.Name, cat.Name(lang))
	formatter.VerboseLog("Replaced %d distinct word(s): %d from vocabulary, %d synthesized",
		len(enc.Record.ForwardMap), enc.Stats.FromVocabulary, enc.Stats.Synthesized)
	formatter.VerboseLog("Mapping saved to %s", enc.Location)

	if formatter.Format == "json" {
		result := EncodeResult{
			MappingID: enc.MappingID,
			Theme:     voc.Key,
			ThemeName: voc.Name,
			Lang:      lang,
			Location:  enc.Location,
			Output:    opts.Out,
			Words:     len(enc.Record.ForwardMap),
			Stats:     enc.Stats,
		}
		if opts.Out == "" {
			result.Text = enc.Text
		}
		return formatter.Success(result)
	}

	if opts.Out == "" {
		return writeOutput(cmd, "", enc.Text)
	}
	fmt.Fprintf(formatter.Writer, "✓ Wrote themed text to %s (mapping %s)\n", opts.Out, enc.MappingID)
	return nil
}

// resolveTheme picks the vocabulary for an encode: --theme if given, the
// vocabulary named after the language with --match-lang, otherwise the
// configured default. The display name honours catalog overrides.
func resolveTheme(opts *EncodeOptions, reg *vocab.Registry, cat *catalog.Catalog, lang string) (*vocab.Vocabulary, error) {
	key := opts.Theme
	if key == "" {
		key = opts.Config.Encode.DefaultTheme
		if opts.MatchLang && lang != ir.DefaultLang {
			if reg.Has(lang) {
				key = lang
			} else {
				opts.logger().Warn("no vocabulary for language, using default theme",
					"lang", lang,
					"theme", key)
			}
		}
	}
	if key == "" {
		key = vocab.BuiltinKey
	}

	v, err := reg.Get(key)
	if err != nil {
		return nil, err
	}
	named := *v
	named.Name = cat.ThemeName(v.Key, v.Name)
	return &named, nil
}
