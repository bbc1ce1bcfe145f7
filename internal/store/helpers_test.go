package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/roach88/lipsum/internal/ir"
)

// backends returns a fresh instance of every adapter.
func backends(t *testing.T) map[string]Store {
	t.Helper()
	sq, err := OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { sq.Close() })

	return map[string]Store{
		"file":   NewFileStore(filepath.Join(t.TempDir(), "mappings")),
		"sqlite": sq,
		"memory": NewMemoryStore(),
	}
}

func testRecord(id string, created int64, fwd ir.ForwardMap) ir.Record {
	return ir.NewRecord(id, time.Unix(created, 0), "en", "latin", "Lipsum", fwd)
}
