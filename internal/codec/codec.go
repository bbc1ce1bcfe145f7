package codec

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"
	"unicode/utf8"

	"github.com/roach88/lipsum/internal/engine"
	"github.com/roach88/lipsum/internal/ir"
	"github.com/roach88/lipsum/internal/store"
	"github.com/roach88/lipsum/internal/text"
	"github.com/roach88/lipsum/internal/vocab"
)

// DefaultSeed seeds the per-call random source when no seed is configured.
const DefaultSeed uint64 = 42

var (
	// ErrEmptyInput is returned for an empty document.
	ErrEmptyInput = errors.New("empty input")

	// ErrMissingMappingID is returned by Decode when the text carries no
	// header and no id was supplied.
	ErrMissingMappingID = errors.New("no mapping id supplied or embedded")

	// ErrNonInjective is returned by Encode if two source words ended up
	// with the same replacement. The map is not saved.
	ErrNonInjective = errors.New("forward map is not injective")
)

// Codec encodes and decodes documents against one mapping store.
//
// A Codec holds no per-document state. Every Encode call gets its own
// random source, used set and forward map, so concurrent calls are safe as
// long as the store is.
type Codec struct {
	store  store.Store
	ids    engine.IDGenerator
	clock  engine.Clock
	seed   uint64
	logger *slog.Logger
}

// Option configures a Codec.
type Option func(*Codec)

// WithIDGenerator sets the mapping id source. Default: UUIDv7.
func WithIDGenerator(g engine.IDGenerator) Option {
	return func(c *Codec) { c.ids = g }
}

// WithClock sets the record creation clock. Default: wall clock.
func WithClock(clk engine.Clock) Option {
	return func(c *Codec) { c.clock = clk }
}

// WithSeed sets the per-call random seed. Default: DefaultSeed.
func WithSeed(seed uint64) Option {
	return func(c *Codec) { c.seed = seed }
}

// WithLogger sets the logger. Default: slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(c *Codec) { c.logger = l }
}

// New creates a Codec that saves and loads mappings through s.
func New(s store.Store, opts ...Option) *Codec {
	c := &Codec{
		store:  s,
		ids:    engine.UUIDv7Generator{},
		clock:  engine.SystemClock{},
		seed:   DefaultSeed,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// EncodeRequest is one document to encode.
type EncodeRequest struct {
	Text string
	// Lang is the source language tag; empty means ir.DefaultLang.
	Lang string
	// Vocabulary is the active vocabulary; nil means the built-in one.
	Vocabulary *vocab.Vocabulary
}

// Encoded is the result of Encode.
type Encoded struct {
	Text      string // header line plus Body
	Body      string
	MappingID string
	Location  string // where the store put the record
	Record    ir.Record
	Stats     engine.Stats
}

// Encode themes req.Text and saves the mapping.
func (c *Codec) Encode(ctx context.Context, req EncodeRequest) (*Encoded, error) {
	if req.Text == "" {
		return nil, ErrEmptyInput
	}
	lang := strings.TrimSpace(req.Lang)
	if lang == "" {
		lang = ir.DefaultLang
	}
	voc := req.Vocabulary
	if voc == nil {
		voc = vocab.Builtin()
	}
	if err := checkHeaderField("language tag", lang); err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}
	if err := checkHeaderField("vocabulary key", voc.Key); err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}

	rng := rand.New(rand.NewPCG(c.seed, c.seed))
	used := engine.NewUsedSet()
	sel := engine.NewSelector(voc.Words, engine.BuildSyllables(voc.Words), used, rng)
	fwd := ir.ForwardMap{}

	var b strings.Builder
	b.Grow(len(req.Text))
	for tok := range text.Tokens(req.Text) {
		if !tok.IsWord() {
			b.WriteString(tok.Text)
			continue
		}
		src := text.Lower(tok.Text)
		repl, ok := fwd[src]
		if !ok {
			repl = sel.Select(src, utf8.RuneCountInString(tok.Text))
			fwd[src] = repl
		}
		b.WriteString(text.ApplyCase(text.Classify(tok.Text), repl))
	}
	body := b.String()

	if err := fwd.Injective(); err != nil {
		return nil, fmt.Errorf("encode: %w: %v", ErrNonInjective, err)
	}

	id := c.ids.Generate()
	rec := ir.NewRecord(id, c.clock.Now(), lang, voc.Key, voc.Name, fwd)
	loc, err := c.store.Save(ctx, rec)
	if err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}

	stats := sel.Stats()
	if stats.Ineligible > 0 {
		c.logger.Debug("vocabulary words skipped",
			"theme", voc.Key,
			"count", stats.Ineligible)
	}
	c.logger.Debug("encoded document",
		"mapping_id", id,
		"theme", voc.Key,
		"lang", lang,
		"distinct_words", len(fwd),
		"from_vocabulary", stats.FromVocabulary,
		"synthesized", stats.Synthesized)

	return &Encoded{
		Text:      joinHeader(FormatHeader(id, voc.Key, lang), body),
		Body:      body,
		MappingID: id,
		Location:  loc,
		Record:    rec,
		Stats:     stats,
	}, nil
}

// Decoded is the result of Decode.
type Decoded struct {
	Text      string
	MappingID string
	Record    ir.Record
	// Unresolved counts word tokens the mapping did not produce.
	Unresolved int
}

// Decode restores the original text.
//
// A leading header line is removed. An explicit id wins over the header's
// id; if both are present and differ, a warning is logged. With neither,
// Decode fails with ErrMissingMappingID.
func (c *Codec) Decode(ctx context.Context, themed, id string) (*Decoded, error) {
	if themed == "" {
		return nil, ErrEmptyInput
	}
	body, embedded := ExtractHeaderID(themed)
	switch {
	case id == "" && embedded == "":
		return nil, ErrMissingMappingID
	case id == "":
		id = embedded
	case embedded != "" && !strings.EqualFold(embedded, id):
		c.logger.Warn("mapping id differs from header, using supplied id",
			"mapping_id", id,
			"header_id", embedded)
	}

	rev, rec, err := store.LoadReverse(ctx, c.store, id, c.logger)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	unresolved := 0
	var b strings.Builder
	b.Grow(len(body))
	for tok := range text.Tokens(body) {
		if !tok.IsWord() {
			b.WriteString(tok.Text)
			continue
		}
		src, ok := rev[text.Lower(tok.Text)]
		if !ok {
			unresolved++
			b.WriteString(tok.Text)
			continue
		}
		b.WriteString(text.ApplyCase(text.Classify(tok.Text), src))
	}

	if unresolved > 0 {
		c.logger.Debug("words not in mapping left unchanged",
			"mapping_id", id,
			"count", unresolved)
	}

	return &Decoded{
		Text:       b.String(),
		MappingID:  id,
		Record:     rec,
		Unresolved: unresolved,
	}, nil
}
