package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/roach88/lipsum/internal/ir"
)

var (
	// ErrNotFound is returned when no record exists for an id.
	ErrNotFound = errors.New("mapping not found")

	// ErrInvalidID is returned for ids that are empty, too long, or contain
	// anything other than ASCII letters, digits, '-' and '_'.
	ErrInvalidID = errors.New("invalid mapping id")
)

const maxIDLength = 128

// Store is a key-value store of mapping records.
type Store interface {
	// Save writes rec under rec.ID, replacing any prior record, and returns
	// a human-readable location.
	Save(ctx context.Context, rec ir.Record) (string, error)

	// Load returns the record for id, or an error wrapping ErrNotFound.
	Load(ctx context.Context, id string) (ir.Record, error)

	Exists(ctx context.Context, id string) (bool, error)

	// Delete removes the record for id, or returns an error wrapping
	// ErrNotFound.
	Delete(ctx context.Context, id string) error

	// List returns every record ordered by creation time, then id.
	List(ctx context.Context) ([]ir.Record, error)

	Close() error
}

// LoadReverse loads the record for id and inverts its forward map.
//
// A record whose forward map is not injective cannot be decoded losslessly.
// Each shared replacement is logged at ERROR and the later source word (in
// sorted order) wins, so decode still produces output.
func LoadReverse(ctx context.Context, s Store, id string, logger *slog.Logger) (ir.ReverseMap, ir.Record, error) {
	rec, err := s.Load(ctx, id)
	if err != nil {
		return nil, ir.Record{}, err
	}

	rev, collisions := rec.ForwardMap.Invert()
	if logger != nil {
		for _, c := range collisions {
			logger.Error("mapping is not injective",
				"mapping_id", id,
				"replacement", c.Replacement,
				"kept", c.Kept,
				"dropped", c.Dropped)
		}
	}
	return rev, rec, nil
}

// ValidateID checks that id is safe to use as a file name and row key.
func ValidateID(id string) error {
	if id == "" || len(id) > maxIDLength {
		return fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	for i := 0; i < len(id); i++ {
		c := id[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '-', c == '_':
		default:
			return fmt.Errorf("%w: %q", ErrInvalidID, id)
		}
	}
	return nil
}

// sortRecords orders by creation time, then id.
func sortRecords(recs []ir.Record) {
	sort.Slice(recs, func(i, j int) bool {
		if recs[i].Created != recs[j].Created {
			return recs[i].Created < recs[j].Created
		}
		return recs[i].ID < recs[j].ID
	})
}

func cloneRecord(rec ir.Record) ir.Record {
	fwd := make(ir.ForwardMap, len(rec.ForwardMap))
	for k, v := range rec.ForwardMap {
		fwd[k] = v
	}
	rec.ForwardMap = fwd
	return rec
}
