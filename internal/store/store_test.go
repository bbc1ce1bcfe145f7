package store

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/lipsum/internal/ir"
)

func TestStore_SaveLoad(t *testing.T) {
	ctx := context.Background()
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			rec := testRecord("0192f0c4-aaaa-7bbb-8ccc-000000000001", 1700000000, ir.ForwardMap{
				"hello": "lorem",
				"world": "ipsum",
				"café":  "dolor",
			})

			loc, err := s.Save(ctx, rec)
			require.NoError(t, err)
			assert.NotEmpty(t, loc)

			got, err := s.Load(ctx, rec.ID)
			require.NoError(t, err)
			assert.Equal(t, rec, got)
		})
	}
}

func TestStore_SaveOverwrites(t *testing.T) {
	ctx := context.Background()
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			_, err := s.Save(ctx, testRecord("m1", 1, ir.ForwardMap{"a": "b"}))
			require.NoError(t, err)
			_, err = s.Save(ctx, testRecord("m1", 2, ir.ForwardMap{"c": "d"}))
			require.NoError(t, err)

			got, err := s.Load(ctx, "m1")
			require.NoError(t, err)
			assert.Equal(t, ir.ForwardMap{"c": "d"}, got.ForwardMap)
			assert.Equal(t, int64(2), got.Created)
		})
	}
}

func TestStore_NotFound(t *testing.T) {
	ctx := context.Background()
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			_, err := s.Load(ctx, "missing")
			assert.ErrorIs(t, err, ErrNotFound)

			ok, err := s.Exists(ctx, "missing")
			require.NoError(t, err)
			assert.False(t, ok)

			assert.ErrorIs(t, s.Delete(ctx, "missing"), ErrNotFound)
		})
	}
}

func TestStore_ExistsAndDelete(t *testing.T) {
	ctx := context.Background()
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			_, err := s.Save(ctx, testRecord("m1", 1, ir.ForwardMap{}))
			require.NoError(t, err)

			ok, err := s.Exists(ctx, "m1")
			require.NoError(t, err)
			assert.True(t, ok)

			require.NoError(t, s.Delete(ctx, "m1"))

			ok, err = s.Exists(ctx, "m1")
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func TestStore_ListOrder(t *testing.T) {
	ctx := context.Background()
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			for _, rec := range []ir.Record{
				testRecord("c", 20, ir.ForwardMap{}),
				testRecord("b", 10, ir.ForwardMap{}),
				testRecord("a", 20, ir.ForwardMap{}),
			} {
				_, err := s.Save(ctx, rec)
				require.NoError(t, err)
			}

			recs, err := s.List(ctx)
			require.NoError(t, err)

			var ids []string
			for _, r := range recs {
				ids = append(ids, r.ID)
			}
			assert.Equal(t, []string{"b", "a", "c"}, ids)
		})
	}
}

func TestStore_ListEmpty(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			recs, err := s.List(context.Background())
			require.NoError(t, err)
			assert.Empty(t, recs)
		})
	}
}

func TestStore_RejectsInvalidIDs(t *testing.T) {
	ctx := context.Background()
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			for _, id := range []string{"", "../escape", "a/b", "with space"} {
				_, err := s.Save(ctx, testRecord(id, 1, ir.ForwardMap{}))
				assert.ErrorIs(t, err, ErrInvalidID, "id %q", id)
			}
		})
	}
}

func TestStore_StoredMapIsACopy(t *testing.T) {
	ctx := context.Background()
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			fwd := ir.ForwardMap{"hello": "lorem"}
			_, err := s.Save(ctx, testRecord("m1", 1, fwd))
			require.NoError(t, err)
			fwd["hello"] = "changed"

			got, err := s.Load(ctx, "m1")
			require.NoError(t, err)
			assert.Equal(t, "lorem", got.ForwardMap["hello"])
		})
	}
}

func TestLoadReverse(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	_, err := s.Save(ctx, testRecord("m1", 1, ir.ForwardMap{"hello": "lorem", "world": "ipsum"}))
	require.NoError(t, err)

	rev, rec, err := LoadReverse(ctx, s, "m1", nil)
	require.NoError(t, err)
	assert.Equal(t, ir.ReverseMap{"lorem": "hello", "ipsum": "world"}, rev)
	assert.Equal(t, "latin", rec.ThemeKey)
	assert.Equal(t, "en", rec.SourceLang)
}

func TestLoadReverse_NotFound(t *testing.T) {
	_, _, err := LoadReverse(context.Background(), NewMemoryStore(), "nope", nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoadReverse_LogsCollisions(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	_, err := s.Save(ctx, testRecord("m1", 1, ir.ForwardMap{"alpha": "lorem", "beta": "lorem"}))
	require.NoError(t, err)

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	rev, _, err := LoadReverse(ctx, s, "m1", logger)
	require.NoError(t, err)

	assert.Equal(t, "beta", rev["lorem"], "later source in sorted order wins")
	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), "mapping is not injective")
	assert.Contains(t, buf.String(), "dropped=alpha")
}

func TestValidateID(t *testing.T) {
	valid := []string{"a", "0192f0c4-aaaa-7bbb-8ccc-000000000001", "my_map-2"}
	for _, id := range valid {
		assert.NoError(t, ValidateID(id), id)
	}

	invalid := []string{"", ".", "..", "a.json", "a/b", `a\b`, "é", string(make([]byte, maxIDLength+1))}
	for _, id := range invalid {
		assert.ErrorIs(t, ValidateID(id), ErrInvalidID, "%q", id)
	}
}

func TestMemoryStore_CloseDropsRecords(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	loc, err := s.Save(ctx, testRecord("m1", 1, ir.ForwardMap{"hello": "lorem"}))
	require.NoError(t, err)
	assert.Equal(t, "memory:m1", loc)

	require.NoError(t, s.Close())

	ok, err := s.Exists(ctx, "m1")
	require.NoError(t, err)
	assert.False(t, ok)
}
