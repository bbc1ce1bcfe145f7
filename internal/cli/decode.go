package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// DecodeOptions holds flags for the decode command.
type DecodeOptions struct {
	*RootOptions
	In     string // input file, stdin if empty
	Out    string // output file, stdout if empty
	ID     string // mapping id; wins over the header
	Strict bool   // fail when words are left unresolved
}

// DecodeResult is the JSON payload of a successful decode.
type DecodeResult struct {
	MappingID  string `json:"mapping_id"`
	Theme      string `json:"theme"`
	Lang       string `json:"lang"`
	Output     string `json:"output,omitempty"`
	Text       string `json:"text,omitempty"`
	Unresolved int    `json:"unresolved"`
}

// NewDecodeCommand creates the decode command.
func NewDecodeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DecodeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "decode",
		Short: "Restore themed text to the original",
		Long: `Decode themed text back to the original document.

The mapping id comes from --id, or from the header line encode wrote. When
both are present and differ, --id wins and a warning is logged. Words the
mapping does not know, such as ones added by hand after encoding, pass
through unchanged.

Exit codes:
  0 - Decoded
  1 - Words left unresolved (only with --strict)
  2 - Command error (no mapping id, unknown mapping, unreadable input)

Examples:
  lipsum decode --in themed.txt
  lipsum decode --id 0190f3c1-7b2a-7c44-9a51-3f0e6c1d2b7a < body.txt`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecode(cmd.Context(), opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.In, "in", "i", "", "input file (default stdin)")
	cmd.Flags().StringVarP(&opts.Out, "out", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&opts.ID, "id", "", "mapping id (default from the header line)")
	cmd.Flags().BoolVar(&opts.Strict, "strict", false, "fail if any word is not in the mapping")

	return cmd
}

func runDecode(ctx context.Context, opts *DecodeOptions, cmd *cobra.Command) error {
	if ctx == nil {
		ctx = context.Background()
	}
	formatter := opts.formatter(cmd)

	input, err := readInput(cmd, opts.In)
	if err != nil {
		return formatter.Fail(err)
	}

	st, err := OpenStore(opts.Config)
	if err != nil {
		return formatter.Fail(err)
	}
	defer st.Close()

	dec, err := NewCodec(opts.RootOptions, st).Decode(ctx, input, opts.ID)
	if err != nil {
		return formatter.Fail(err)
	}

	if opts.Out != "" {
		if err := writeOutput(cmd, opts.Out, dec.Text); err != nil {
			_ = formatter.Error(ErrCodeWriteFailed, err.Error(), nil)
			return WrapExitError(ExitCommandError, ErrCodeWriteFailed, err)
		}
	}

	formatter.VerboseLog("Mapping %s (theme %s, language %s)", dec.MappingID, dec.Record.ThemeKey, dec.Record.SourceLang)
	if dec.Unresolved > 0 {
		formatter.VerboseLog("%d word(s) not in the mapping were left unchanged", dec.Unresolved)
	}

	if formatter.Format == "json" {
		result := DecodeResult{
			MappingID:  dec.MappingID,
			Theme:      dec.Record.ThemeKey,
			Lang:       dec.Record.SourceLang,
			Output:     opts.Out,
			Unresolved: dec.Unresolved,
		}
		if opts.Out == "" {
			result.Text = dec.Text
		}
		if err := formatter.Success(result); err != nil {
			return err
		}
	} else if opts.Out == "" {
		if err := writeOutput(cmd, "", dec.Text); err != nil {
			return err
		}
	} else {
		fmt.Fprintf(formatter.Writer, "✓ Wrote decoded text to %s\n", opts.Out)
	}

	if opts.Strict && dec.Unresolved > 0 {
		msg := fmt.Sprintf("%d word(s) not in mapping %s", dec.Unresolved, dec.MappingID)
		fmt.Fprintf(formatter.GetErrWriter(), "✗ %s\n", msg)
		return NewExitError(ExitFailure, msg)
	}
	return nil
}
