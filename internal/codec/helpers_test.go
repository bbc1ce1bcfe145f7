package codec

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/roach88/lipsum/internal/store"
	"github.com/roach88/lipsum/internal/testutil"
	"github.com/roach88/lipsum/internal/vocab"
)

const testMappingID = testutil.DefaultMappingID

// newTestCodec returns a codec over a fresh memory store with a fixed id
// and a deterministic clock.
func newTestCodec(t *testing.T, opts ...Option) (*Codec, *store.MemoryStore) {
	t.Helper()
	s := store.NewMemoryStore()
	base := []Option{
		WithIDGenerator(testutil.NewFixedIDGenerator(testMappingID)),
		WithClock(testutil.NewDeterministicClock()),
	}
	return New(s, append(base, opts...)...), s
}

func demoVocab(words ...string) *vocab.Vocabulary {
	return vocab.New("demo", "Demo", words)
}

func captureLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), &buf
}
