package cli

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "lipsum", cmd.Use)
	assert.Contains(t, cmd.Long, "themed stand-in")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	commands := [][]string{
		{"encode"}, {"decode"}, {"themes"}, {"langs"}, {"test"},
		{"mapping", "show"}, {"mapping", "list"}, {"mapping", "rm"},
	}

	for _, path := range commands {
		name := path[len(path)-1]
		t.Run(name, func(t *testing.T) {
			subCmd, _, err := cmd.Find(path)
			require.NoError(t, err, "Command %v should exist", path)
			require.NotNil(t, subCmd)
			assert.Equal(t, name, subCmd.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	verboseFlag := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verboseFlag)
	assert.Equal(t, "v", verboseFlag.Shorthand)
	assert.Equal(t, "false", verboseFlag.DefValue)

	formatFlag := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "text", formatFlag.DefValue)

	require.NotNil(t, cmd.PersistentFlags().Lookup("config"))

	for _, name := range []string{"lexicon-dir", "mapping-dir", "catalog-file", "store", "sqlite-path", "seed", "default-theme", "log-level", "log-format"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), name)
	}
	assert.Equal(t, "42", cmd.PersistentFlags().Lookup("seed").DefValue)
}

func TestEncodeCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	encodeCmd, _, err := cmd.Find([]string{"encode"})
	require.NoError(t, err)

	for _, name := range []string{"in", "out", "theme", "lang"} {
		f := encodeCmd.Flags().Lookup(name)
		require.NotNil(t, f, name)
		assert.Equal(t, name[:1], f.Shorthand)
	}
	assert.Equal(t, "unknown", encodeCmd.Flags().Lookup("lang").DefValue)
	assert.Equal(t, "false", encodeCmd.Flags().Lookup("match-lang").DefValue)
}

func TestDecodeCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	decodeCmd, _, err := cmd.Find([]string{"decode"})
	require.NoError(t, err)

	idFlag := decodeCmd.Flags().Lookup("id")
	require.NotNil(t, idFlag)
	assert.Equal(t, "", idFlag.DefValue)
	require.NotNil(t, decodeCmd.Flags().Lookup("strict"))
}

func TestInvalidFormat(t *testing.T) {
	workspace(t)

	res := execute(t, "", "--format", "xml", "themes")
	require.Error(t, res.Err)
	assert.Contains(t, res.Err.Error(), `invalid format "xml"`)
	assert.Equal(t, ExitFailure, GetExitCode(res.Err))
}

func TestBadConfigFile(t *testing.T) {
	workspace(t)
	require.NoError(t, os.WriteFile("broken.yaml", []byte("encode: [\n"), 0o644))

	res := execute(t, "", "--config", "broken.yaml", "themes")
	require.Error(t, res.Err)
	assert.Equal(t, ExitCommandError, GetExitCode(res.Err))
	assert.Contains(t, res.Stderr, "failed to load configuration")
}

func TestVerboseEnablesDebugLogs(t *testing.T) {
	workspace(t)

	res := execute(t, "Hello there", "--verbose", "encode")
	require.NoError(t, res.Err, res.Stderr)
	assert.Contains(t, res.Stderr, "encoded document")
	assert.Contains(t, res.Stderr, "Mapping saved to")

	quiet := execute(t, "Hello there", "encode")
	require.NoError(t, quiet.Err, quiet.Stderr)
	assert.NotContains(t, quiet.Stderr, "encoded document")
}

func TestEnvironmentOverridesDefaults(t *testing.T) {
	workspace(t)
	writeLexicon(t, "demo.txt", "ad", "mundus")
	t.Setenv("LIPSUM_ENCODE_DEFAULT_THEME", "demo")

	res := execute(t, "Hi, World!", "encode")
	require.NoError(t, res.Err, res.Stderr)
	assert.Contains(t, res.Stdout, "[THEME: demo]")
}
