package store

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/roach88/lipsum/internal/ir"
)

//go:embed schema.sql
var schemaSQL string

// Schema version tracking:
// 0 - Initial schema (pre-migration)
// 1 - Added index on mappings(created, id) for List
const currentSchemaVersion = 1

// SQLiteStore keeps mapping records in a SQLite database.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

// OpenSQLite creates or opens a SQLite database at the given path.
// Applies required pragmas and migrations automatically.
//
// This function is idempotent - safe to call multiple times.
func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// SQLite only supports one writer at a time.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply pragmas: %w", err)
	}

	if err := applySchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &SQLiteStore{db: db, path: path}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file path.
func (s *SQLiteStore) Path() string {
	return s.path
}

// Save upserts rec. The returned location is "<path>#<id>".
func (s *SQLiteStore) Save(ctx context.Context, rec ir.Record) (string, error) {
	if err := ValidateID(rec.ID); err != nil {
		return "", fmt.Errorf("save mapping: %w", err)
	}
	if err := rec.Validate(); err != nil {
		return "", fmt.Errorf("save mapping: %w", err)
	}
	fwdJSON, err := ir.MarshalForwardMap(rec.ForwardMap)
	if err != nil {
		return "", fmt.Errorf("save mapping %s: %w", rec.ID, err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO mappings
		(id, created, source_lang, theme_key, theme_name, note, forward_map)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			created = excluded.created,
			source_lang = excluded.source_lang,
			theme_key = excluded.theme_key,
			theme_name = excluded.theme_name,
			note = excluded.note,
			forward_map = excluded.forward_map
	`,
		rec.ID,
		rec.Created,
		rec.SourceLang,
		rec.ThemeKey,
		rec.ThemeName,
		rec.Note,
		fwdJSON,
	)
	if err != nil {
		return "", fmt.Errorf("save mapping %s: %w", rec.ID, err)
	}
	return s.path + "#" + rec.ID, nil
}

const selectColumns = `SELECT id, created, source_lang, theme_key, theme_name, note, forward_map FROM mappings`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (ir.Record, error) {
	var rec ir.Record
	var fwdJSON string
	if err := row.Scan(&rec.ID, &rec.Created, &rec.SourceLang, &rec.ThemeKey, &rec.ThemeName, &rec.Note, &fwdJSON); err != nil {
		return ir.Record{}, err
	}
	fwd, err := ir.UnmarshalForwardMap(fwdJSON)
	if err != nil {
		return ir.Record{}, err
	}
	rec.ForwardMap = fwd
	if rec.SourceLang == "" {
		rec.SourceLang = ir.DefaultLang
	}
	return rec, nil
}

func (s *SQLiteStore) Load(ctx context.Context, id string) (ir.Record, error) {
	row := s.db.QueryRowContext(ctx, selectColumns+` WHERE id = ?`, id)
	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return ir.Record{}, fmt.Errorf("load mapping %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return ir.Record{}, fmt.Errorf("load mapping %s: %w", id, err)
	}
	return rec, nil
}

func (s *SQLiteStore) Exists(ctx context.Context, id string) (bool, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM mappings WHERE id = ?`, id).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("check mapping %s: %w", id, err)
	}
	return n > 0, nil
}

func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM mappings WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete mapping %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete mapping %s: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("delete mapping %s: %w", id, ErrNotFound)
	}
	return nil
}

func (s *SQLiteStore) List(ctx context.Context) ([]ir.Record, error) {
	rows, err := s.db.QueryContext(ctx, selectColumns+` ORDER BY created ASC, id ASC COLLATE BINARY`)
	if err != nil {
		return nil, fmt.Errorf("list mappings: %w", err)
	}
	defer rows.Close()

	var recs []ir.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("list mappings: %w", err)
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list mappings: %w", err)
	}
	return recs, nil
}

// applyPragmas sets required SQLite configuration.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("failed to execute %q: %w", pragma, err)
		}
	}

	return nil
}

// applySchema creates tables if they don't exist and runs migrations.
func applySchema(db *sql.DB) error {
	if _, err := db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}

	if err := runMigrations(db); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

// runMigrations applies incremental schema migrations based on user_version.
func runMigrations(db *sql.DB) error {
	var version int
	if err := db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("get user_version: %w", err)
	}

	if version < 1 {
		if err := migrateToV1(db); err != nil {
			return err
		}
	}

	if _, err := db.Exec(fmt.Sprintf("PRAGMA user_version = %d", currentSchemaVersion)); err != nil {
		return fmt.Errorf("set user_version: %w", err)
	}

	return nil
}

// migrateToV1 adds the listing index.
func migrateToV1(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_mappings_created
		ON mappings(created, id)
	`)
	if err != nil {
		return fmt.Errorf("migrate to v1: %w", err)
	}
	return nil
}

// verifyPragma checks that a pragma is set to the expected value.
// Used for testing.
func (s *SQLiteStore) verifyPragma(name, expected string) error {
	var value string
	query := fmt.Sprintf("PRAGMA %s", name)
	if err := s.db.QueryRow(query).Scan(&value); err != nil {
		return fmt.Errorf("failed to query %s: %w", name, err)
	}
	if value != expected {
		return fmt.Errorf("%s = %q, expected %q", name, value, expected)
	}
	return nil
}
