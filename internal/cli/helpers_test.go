package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/roach88/lipsum/internal/codec"
)

// execResult captures one run of the root command.
type execResult struct {
	Stdout string
	Stderr string
	Err    error
}

// execute runs the root command with args, feeding stdin.
func execute(t *testing.T, stdin string, args ...string) execResult {
	t.Helper()

	cmd := NewRootCommand()
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return execResult{Stdout: out.String(), Stderr: errOut.String(), Err: err}
}

// workspace switches into a fresh directory so the default relative paths
// (lexicons, mappings, lipsum.yaml) resolve inside it.
func workspace(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.MkdirAll("lexicons", 0o755))
	return dir
}

// writeLexicon writes a vocabulary file into the workspace lexicon dir.
func writeLexicon(t *testing.T, name string, words ...string) {
	t.Helper()
	path := filepath.Join("lexicons", name)
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(words, "\n")+"\n"), 0o644))
}

// splitHeader returns the mapping id and body of encoded output.
func splitHeader(t *testing.T, themed string) (string, string) {
	t.Helper()
	body, id := codec.ExtractHeaderID(themed)
	require.NotEmpty(t, id, "no header in %q", themed)
	return id, body
}
