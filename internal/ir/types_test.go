package ir

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForwardMapInvert(t *testing.T) {
	fwd := ForwardMap{"hello": "halo", "world": "mundus"}

	rev, collisions := fwd.Invert()

	assert.Empty(t, collisions)
	assert.Equal(t, ReverseMap{"halo": "hello", "mundus": "world"}, rev)
	assert.NoError(t, fwd.Injective())
}

func TestForwardMapInvert_LaterEntryWins(t *testing.T) {
	fwd := ForwardMap{"alpha": "lorem", "beta": "lorem", "gamma": "ipsum"}

	rev, collisions := fwd.Invert()

	require.Len(t, collisions, 1)
	assert.Equal(t, Collision{Replacement: "lorem", Kept: "beta", Dropped: "alpha"}, collisions[0])
	assert.Equal(t, "beta", rev["lorem"])
	assert.Equal(t, "gamma", rev["ipsum"])

	err := fwd.Injective()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"lorem"`)
}

func TestForwardMapInvert_Empty(t *testing.T) {
	rev, collisions := ForwardMap{}.Invert()
	assert.Empty(t, rev)
	assert.Empty(t, collisions)
}

func TestNewRecordDefaults(t *testing.T) {
	created := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	r := NewRecord("id-1", created, "", "latin", "Lipsum", nil)

	assert.Equal(t, DefaultLang, r.SourceLang)
	assert.Equal(t, created.Unix(), r.Created)
	assert.Equal(t, created, r.CreatedAt())
	assert.NotNil(t, r.ForwardMap)
	assert.Equal(t, RecordNote, r.Note)
	assert.NoError(t, r.Validate())
}

func TestRecordValidate(t *testing.T) {
	assert.Error(t, Record{ForwardMap: ForwardMap{}}.Validate())
	assert.Error(t, Record{ID: "x"}.Validate())
	assert.NoError(t, Record{ID: "x", ForwardMap: ForwardMap{}}.Validate())
}

func TestMarshalRecord(t *testing.T) {
	r := NewRecord("id-1", time.Unix(1700000000, 0), "de", "latin", "Lipsum",
		ForwardMap{"straße": "via", "<b>": "et"})

	data, err := MarshalRecord(r)
	require.NoError(t, err)

	assert.Contains(t, string(data), `"straße": "via"`, "non-ASCII must not be escaped")
	assert.Contains(t, string(data), `"<b>": "et"`, "HTML must not be escaped")
	assert.Contains(t, string(data), `"created": 1700000000`)

	back, err := UnmarshalRecord(data)
	require.NoError(t, err)
	assert.Equal(t, r, back)
}

func TestUnmarshalRecord_LegacyDefaults(t *testing.T) {
	data := []byte(`{"id":"abc","created":1,"theme_key":"latin","forward_map":{"a":"b"}}`)

	r, err := UnmarshalRecord(data)
	require.NoError(t, err)
	assert.Equal(t, DefaultLang, r.SourceLang)
	assert.Equal(t, ForwardMap{"a": "b"}, r.ForwardMap)
}

func TestUnmarshalRecord_Errors(t *testing.T) {
	_, err := UnmarshalRecord([]byte(`{not json`))
	assert.Error(t, err)

	_, err = UnmarshalRecord([]byte(`{"id":"abc"}`))
	assert.Error(t, err, "forward map is required")
}

func TestForwardMapColumn(t *testing.T) {
	s, err := MarshalForwardMap(ForwardMap{"hello": "halo"})
	require.NoError(t, err)
	assert.Equal(t, `{"hello":"halo"}`, s)

	f, err := UnmarshalForwardMap(s)
	require.NoError(t, err)
	assert.Equal(t, ForwardMap{"hello": "halo"}, f)

	empty, err := MarshalForwardMap(nil)
	require.NoError(t, err)
	assert.Equal(t, "{}", empty)

	f, err = UnmarshalForwardMap("")
	require.NoError(t, err)
	assert.NotNil(t, f)

	_, err = UnmarshalForwardMap("[")
	assert.Error(t, err)
}
