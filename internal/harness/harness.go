package harness

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/roach88/lipsum/internal/codec"
	"github.com/roach88/lipsum/internal/store"
	"github.com/roach88/lipsum/internal/testutil"
	"github.com/roach88/lipsum/internal/vocab"
)

// Run executes a scenario and returns the result.
//
// Each scenario runs against a fresh in-memory database for isolation.
// Deterministic helpers ensure reproducible results.
//
// Execution flow:
// 1. Create fresh in-memory database
// 2. Encode the input with a fixed id, clock and seed
// 3. Apply edits to the themed body
// 4. Decode, taking the id from the header
// 5. Evaluate expectations
func Run(scenario *Scenario) (*Result, error) {
	st, err := store.OpenSQLite(":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to create in-memory store: %w", err)
	}
	defer st.Close()

	opts := []codec.Option{
		codec.WithIDGenerator(testutil.NewFixedIDGenerator(scenario.MappingID)),
		codec.WithClock(testutil.NewDeterministicClock()),
		codec.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	}
	if scenario.Seed != nil {
		opts = append(opts, codec.WithSeed(*scenario.Seed))
	}
	c := codec.New(st, opts...)

	ctx := context.Background()
	enc, err := c.Encode(ctx, codec.EncodeRequest{
		Text:       scenario.Input,
		Lang:       scenario.Lang,
		Vocabulary: scenarioVocabulary(scenario.Vocabulary),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode: %w", err)
	}

	// Edits only touch the body; the header is kept as encoded.
	header := strings.TrimSuffix(enc.Text, enc.Body)
	body := enc.Body
	for _, e := range scenario.Edits {
		body = strings.ReplaceAll(body, e.Find, e.Replace)
	}

	dec, err := c.Decode(ctx, header+body, "")
	if err != nil {
		return nil, fmt.Errorf("failed to decode: %w", err)
	}

	result := NewResult()
	result.MappingID = enc.MappingID
	result.Output = enc.Text
	result.Body = enc.Body
	result.Decoded = dec.Text
	result.ForwardMap = enc.Record.ForwardMap
	result.Stats = enc.Stats

	actx := &AssertionContext{
		Store: st,
		Ctx:   ctx,
	}
	for _, errMsg := range EvaluateExpectations(scenario, result, actx) {
		result.AddError(errMsg)
	}

	return result, nil
}

func scenarioVocabulary(spec *VocabularySpec) *vocab.Vocabulary {
	if spec == nil {
		return vocab.Builtin()
	}
	name := spec.Name
	if name == "" {
		name = vocab.DisplayName(spec.Key)
	}
	return vocab.New(spec.Key, name, spec.Words)
}
