package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/roach88/lipsum/internal/catalog"
	"github.com/roach88/lipsum/internal/codec"
	"github.com/roach88/lipsum/internal/config"
	"github.com/roach88/lipsum/internal/store"
	"github.com/roach88/lipsum/internal/vocab"
)

// OpenStore opens the mapping store selected by cfg.Store.Backend.
func OpenStore(cfg config.Config) (store.Store, error) {
	backend, err := config.NormalizeBackend(cfg.Store.Backend)
	if err != nil {
		return nil, err
	}

	switch backend {
	case config.BackendSQLite:
		if dir := filepath.Dir(cfg.Store.SQLitePath); dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("failed to create database directory: %w", err)
			}
		}
		st, err := store.OpenSQLite(cfg.Store.SQLitePath)
		if err != nil {
			return nil, err
		}
		return st, nil
	case config.BackendMemory:
		return store.NewMemoryStore(), nil
	default:
		return store.NewFileStore(cfg.Paths.MappingDir), nil
	}
}

// LoadRegistry discovers the vocabularies in the lexicon directory. A
// missing directory leaves only the built-in vocabulary.
func LoadRegistry(opts *RootOptions) *vocab.Registry {
	dir := opts.Config.Paths.LexiconDir
	if dir == "" {
		return vocab.NewRegistry()
	}
	return vocab.Discover(os.DirFS(dir), opts.logger())
}

// LoadCatalog returns the built-in language catalog, with overrides from
// the configured CUE file if there is one.
func LoadCatalog(cfg config.Config) (*catalog.Catalog, error) {
	if cfg.Paths.CatalogFile == "" {
		return catalog.Builtin(), nil
	}
	return catalog.LoadCUE(cfg.Paths.CatalogFile)
}

// NewCodec builds a codec over st using the configured seed and logger.
func NewCodec(opts *RootOptions, st store.Store) *codec.Codec {
	return codec.New(st,
		codec.WithSeed(opts.Config.Encode.Seed),
		codec.WithLogger(opts.logger()),
	)
}

// readInput reads the --in file, or stdin when path is empty or "-".
func readInput(cmd *cobra.Command, path string) (string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return string(data), nil
}

// writeOutput writes text to the --out file, or to stdout when path is
// empty or "-".
func writeOutput(cmd *cobra.Command, path, text string) error {
	if path == "" || path == "-" {
		_, err := io.WriteString(cmd.OutOrStdout(), text)
		return err
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
