// Package config loads lipsum settings from defaults, an optional config
// file, LIPSUM_* environment variables and command-line flags, in rising
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	Paths  PathsConfig  `mapstructure:"paths"`
	Store  StoreConfig  `mapstructure:"store"`
	Encode EncodeConfig `mapstructure:"encode"`
	Log    LogConfig    `mapstructure:"log"`
}

type PathsConfig struct {
	LexiconDir  string `mapstructure:"lexicon_dir"`
	MappingDir  string `mapstructure:"mapping_dir"`
	CatalogFile string `mapstructure:"catalog_file"`
}

type StoreConfig struct {
	Backend    string `mapstructure:"backend"`
	SQLitePath string `mapstructure:"sqlite_path"`
}

type EncodeConfig struct {
	Seed         uint64 `mapstructure:"seed"`
	DefaultTheme string `mapstructure:"default_theme"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Store backends.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

type LoadOptions struct {
	Cmd        flagBinder
	ConfigFile string
	Defaults   Config
}

type flagBinder interface {
	Flags() *pflag.FlagSet
}

func DefaultConfig() Config {
	return Config{
		Paths: PathsConfig{
			LexiconDir:  "lexicons",
			MappingDir:  "mappings",
			CatalogFile: "",
		},
		Store: StoreConfig{
			Backend:    BackendFile,
			SQLitePath: "mappings/lipsum.db",
		},
		Encode: EncodeConfig{
			Seed:         42,
			DefaultTheme: "latin",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// flagKeys maps flag names to config keys.
var flagKeys = map[string]string{
	"lexicon-dir":   "paths.lexicon_dir",
	"mapping-dir":   "paths.mapping_dir",
	"catalog-file":  "paths.catalog_file",
	"store":         "store.backend",
	"sqlite-path":   "store.sqlite_path",
	"seed":          "encode.seed",
	"default-theme": "encode.default_theme",
	"log-level":     "log.level",
	"log-format":    "log.format",
}

func RegisterFlags(fs *pflag.FlagSet, defaults Config) {
	fs.String("lexicon-dir", defaults.Paths.LexiconDir, "Directory of vocabulary files (*.txt, *.lex)")
	fs.String("mapping-dir", defaults.Paths.MappingDir, "Directory of mapping records (file store)")
	fs.String("catalog-file", defaults.Paths.CatalogFile, "Optional CUE file with language and theme names")
	fs.String("store", defaults.Store.Backend, "Mapping store backend (file|sqlite|memory)")
	fs.String("sqlite-path", defaults.Store.SQLitePath, "SQLite database path (sqlite store)")
	fs.Uint64("seed", defaults.Encode.Seed, "Random seed for replacement choice")
	fs.String("default-theme", defaults.Encode.DefaultTheme, "Vocabulary used when --theme is not given")
	fs.String("log-level", defaults.Log.Level, "Log level (debug|info|warn|error)")
	fs.String("log-format", defaults.Log.Format, "Log format (text|json)")
}

func Load(opts LoadOptions) (Config, error) {
	v := viper.New()

	setDefaults(v, opts.Defaults)
	if opts.Cmd != nil {
		if err := bindFlags(v, opts.Cmd.Flags()); err != nil {
			return Config{}, fmt.Errorf("bind flags: %w", err)
		}
	}

	v.SetEnvPrefix("LIPSUM")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	} else {
		v.SetConfigName("lipsum")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	backend, err := NormalizeBackend(cfg.Store.Backend)
	if err != nil {
		return Config{}, err
	}
	cfg.Store.Backend = backend

	return cfg, nil
}

// bindFlags binds each known flag present in fs to its config key. A flag
// only overrides other sources when it was set on the command line.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}

func setDefaults(v *viper.Viper, c Config) {
	v.SetDefault("paths.lexicon_dir", c.Paths.LexiconDir)
	v.SetDefault("paths.mapping_dir", c.Paths.MappingDir)
	v.SetDefault("paths.catalog_file", c.Paths.CatalogFile)
	v.SetDefault("store.backend", c.Store.Backend)
	v.SetDefault("store.sqlite_path", c.Store.SQLitePath)
	v.SetDefault("encode.seed", c.Encode.Seed)
	v.SetDefault("encode.default_theme", c.Encode.DefaultTheme)
	v.SetDefault("log.level", c.Log.Level)
	v.SetDefault("log.format", c.Log.Format)
}

// NormalizeBackend lowercases and validates a store backend name. Empty
// means the file store.
func NormalizeBackend(s string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", BackendFile:
		return BackendFile, nil
	case BackendSQLite, "sqlite3":
		return BackendSQLite, nil
	case BackendMemory:
		return BackendMemory, nil
	default:
		return "", fmt.Errorf("unknown store backend %q (want file|sqlite|memory)", s)
	}
}

// ParseLogLevel maps a level name to a slog.Level.
func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q (want debug|info|warn|error)", s)
	}
}

// NewLogger builds a logger writing to w in the configured format. An
// unknown level falls back to info.
func NewLogger(w io.Writer, c LogConfig) *slog.Logger {
	lvl, err := ParseLogLevel(c.Level)
	if err != nil {
		lvl = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if strings.EqualFold(c.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
