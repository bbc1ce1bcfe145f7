package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/lipsum/internal/ir"
)

func TestOpenSQLite_CreatesNewDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	s, err := OpenSQLite(path)
	require.NoError(t, err)
	defer s.Close()

	_, err = os.Stat(path)
	assert.NoError(t, err, "database file was not created")
	assert.Equal(t, path, s.Path())
}

func TestOpenSQLite_Pragmas(t *testing.T) {
	s, err := OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer s.Close()

	assert.NoError(t, s.verifyPragma("journal_mode", "wal"))
	assert.NoError(t, s.verifyPragma("synchronous", "1"))
	assert.NoError(t, s.verifyPragma("busy_timeout", "5000"))
	assert.NoError(t, s.verifyPragma("user_version", "1"))
}

func TestOpenSQLite_ReopenKeepsRecords(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "test.db")

	s1, err := OpenSQLite(path)
	require.NoError(t, err)
	loc, err := s1.Save(ctx, testRecord("m1", 1, ir.ForwardMap{"hello": "lorem"}))
	require.NoError(t, err)
	assert.Equal(t, path+"#m1", loc)
	require.NoError(t, s1.Close())

	s2, err := OpenSQLite(path)
	require.NoError(t, err)
	defer s2.Close()

	rec, err := s2.Load(ctx, "m1")
	require.NoError(t, err)
	assert.Equal(t, ir.ForwardMap{"hello": "lorem"}, rec.ForwardMap)
}

func TestOpenSQLite_MigratesVersionZero(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	s, err := OpenSQLite(path)
	require.NoError(t, err)
	_, err = s.db.Exec("DROP INDEX idx_mappings_created")
	require.NoError(t, err)
	_, err = s.db.Exec("PRAGMA user_version = 0")
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = OpenSQLite(path)
	require.NoError(t, err)
	defer s.Close()

	var n int
	require.NoError(t, s.db.QueryRow(
		`SELECT COUNT(*) FROM sqlite_master WHERE type = 'index' AND name = 'idx_mappings_created'`).Scan(&n))
	assert.Equal(t, 1, n)
	assert.NoError(t, s.verifyPragma("user_version", "1"))
}

func TestSQLiteStore_CloseTwiceSafe(t *testing.T) {
	s, err := OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, s.Close())
	assert.NoError(t, s.Close())
}
