package cli

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/lipsum/internal/ir"
	"github.com/roach88/lipsum/internal/store"
)

// MappingSummary is one row of mapping list.
type MappingSummary struct {
	ID        string `json:"id"`
	Created   int64  `json:"created"`
	Theme     string `json:"theme"`
	ThemeName string `json:"theme_name"`
	Lang      string `json:"lang"`
	Words     int    `json:"words"`
}

// NewMappingCommand creates the mapping command group.
func NewMappingCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mapping",
		Short: "Inspect and remove stored mappings",
		Long: `Inspect and remove the mappings saved by encode.

Removing a mapping makes every document encoded with it undecodable.`,
	}

	cmd.AddCommand(&cobra.Command{
		Use:           "show <mapping-id>",
		Short:         "Show one mapping and its word pairs",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMappingShow(cmd.Context(), rootOpts, args[0], cmd)
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:           "list",
		Short:         "List stored mappings, oldest first",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMappingList(cmd.Context(), rootOpts, cmd)
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:           "rm <mapping-id>",
		Short:         "Delete a stored mapping",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMappingRemove(cmd.Context(), rootOpts, args[0], cmd)
		},
	})

	return cmd
}

// withStore opens the configured store for the duration of fn.
func withStore(ctx context.Context, opts *RootOptions, fn func(context.Context, store.Store) error) error {
	if ctx == nil {
		ctx = context.Background()
	}
	st, err := OpenStore(opts.Config)
	if err != nil {
		return err
	}
	defer st.Close()
	return fn(ctx, st)
}

func runMappingShow(ctx context.Context, opts *RootOptions, id string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	var rec ir.Record
	err := withStore(ctx, opts, func(ctx context.Context, st store.Store) error {
		var err error
		rec, err = st.Load(ctx, id)
		return err
	})
	if err != nil {
		return formatter.Fail(err)
	}

	if formatter.Format == "json" {
		return formatter.Success(rec)
	}

	w := formatter.Writer
	fmt.Fprintf(w, "Mapping %s\n", rec.ID)
	fmt.Fprintf(w, "  Created:  %s\n", formatCreated(rec.Created))
	fmt.Fprintf(w, "  Theme:    %s (%s)\n", rec.ThemeKey, rec.ThemeName)
	fmt.Fprintf(w, "  Language: %s\n", rec.SourceLang)
	fmt.Fprintf(w, "  Words:    %d\n", len(rec.ForwardMap))

	sources := make([]string, 0, len(rec.ForwardMap))
	for src := range rec.ForwardMap {
		sources = append(sources, src)
	}
	sort.Strings(sources)
	for _, src := range sources {
		fmt.Fprintf(w, "    %s → %s\n", src, rec.ForwardMap[src])
	}
	return nil
}

func runMappingList(ctx context.Context, opts *RootOptions, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	var recs []ir.Record
	err := withStore(ctx, opts, func(ctx context.Context, st store.Store) error {
		var err error
		recs, err = st.List(ctx)
		return err
	})
	if err != nil {
		return formatter.Fail(err)
	}

	rows := make([]MappingSummary, 0, len(recs))
	for _, rec := range recs {
		rows = append(rows, MappingSummary{
			ID:        rec.ID,
			Created:   rec.Created,
			Theme:     rec.ThemeKey,
			ThemeName: rec.ThemeName,
			Lang:      rec.SourceLang,
			Words:     len(rec.ForwardMap),
		})
	}

	if formatter.Format == "json" {
		return formatter.Success(rows)
	}

	if len(rows) == 0 {
		fmt.Fprintln(formatter.Writer, "No mappings found.")
		return nil
	}
	fmt.Fprintf(formatter.Writer, "Mappings (%d):\n", len(rows))
	for _, r := range rows {
		fmt.Fprintf(formatter.Writer, "  %s  %s  %-10s %-8s %d words\n",
			r.ID, formatCreated(r.Created), r.Theme, r.Lang, r.Words)
	}
	return nil
}

func runMappingRemove(ctx context.Context, opts *RootOptions, id string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	err := withStore(ctx, opts, func(ctx context.Context, st store.Store) error {
		return st.Delete(ctx, id)
	})
	if err != nil {
		return formatter.Fail(err)
	}

	opts.logger().Info("mapping deleted", "mapping_id", id)
	if formatter.Format == "json" {
		return formatter.Success(map[string]string{"deleted": id})
	}
	fmt.Fprintf(formatter.Writer, "✓ Deleted mapping %s\n", id)
	return nil
}

func formatCreated(sec int64) string {
	return time.Unix(sec, 0).UTC().Format(time.RFC3339)
}
