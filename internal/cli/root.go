package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/lipsum/internal/config"
)

// RootOptions holds global flags for all commands, and the configuration
// and logger resolved from them before any subcommand runs.
type RootOptions struct {
	Verbose    bool
	Format     string // "json" | "text"
	ConfigFile string

	Config config.Config
	Logger *slog.Logger
}

// logger returns the configured logger, or slog.Default before the root
// pre-run has resolved one.
func (o *RootOptions) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

// formatter builds the output formatter for cmd.
func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    o.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // Keep diagnostics out of stdout
		Verbose:   o.Verbose,
	}
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the lipsum CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}
	defaults := config.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "lipsum",
		Short: "lipsum - reversible themed text",
		Long: `Replace every word of a document with a themed stand-in while keeping
punctuation, spacing and casing, and restore the original later from the
stored mapping.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Validate format flag
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}

			loaded, err := config.Load(config.LoadOptions{
				Cmd:        cmd,
				ConfigFile: opts.ConfigFile,
				Defaults:   defaults,
			})
			if err != nil {
				_ = opts.formatter(cmd).Error(ErrCodeGeneric, fmt.Sprintf("failed to load configuration: %v", err), nil)
				return WrapExitError(ExitCommandError, "failed to load configuration", err)
			}
			if opts.Verbose {
				loaded.Log.Level = "debug"
			}
			opts.Config = loaded
			opts.Logger = config.NewLogger(cmd.ErrOrStderr(), loaded.Log)
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.ConfigFile, "config", "", "optional config file (yaml|toml|json)")
	config.RegisterFlags(cmd.PersistentFlags(), defaults)

	// Add subcommands
	cmd.AddCommand(NewEncodeCommand(opts))
	cmd.AddCommand(NewDecodeCommand(opts))
	cmd.AddCommand(NewThemesCommand(opts))
	cmd.AddCommand(NewLangsCommand(opts))
	cmd.AddCommand(NewMappingCommand(opts))
	cmd.AddCommand(NewTestCommand(opts))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
