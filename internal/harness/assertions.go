package harness

import (
	"context"
	"fmt"
	"strings"

	"github.com/roach88/lipsum/internal/store"
	"github.com/roach88/lipsum/internal/text"
)

// AssertionError is returned when an expectation fails.
type AssertionError struct {
	Type     string // Expectation name
	Expected string // Human-readable expected outcome
	Actual   string // Human-readable actual outcome
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	return fmt.Sprintf("%s: expected %s, got %s", e.Type, e.Expected, e.Actual)
}

// AssertionContext provides store access for the stored expectation.
type AssertionContext struct {
	Store store.Store
	Ctx   context.Context
}

// EvaluateExpectations checks every expectation the scenario sets.
// Returns a slice of error messages for failed expectations.
func EvaluateExpectations(s *Scenario, r *Result, actx *AssertionContext) []string {
	var errors []string
	add := func(err error) {
		if err != nil {
			errors = append(errors, err.Error())
		}
	}
	exp := s.Expect

	if exp.Output != nil && r.Body != *exp.Output {
		add(&AssertionError{Type: "output", Expected: fmt.Sprintf("%q", *exp.Output), Actual: fmt.Sprintf("%q", r.Body)})
	}
	if len(exp.OneOf) > 0 && !contains(exp.OneOf, r.Body) {
		add(&AssertionError{Type: "one_of", Expected: fmt.Sprintf("one of %q", exp.OneOf), Actual: fmt.Sprintf("%q", r.Body)})
	}
	if exp.Decoded != nil && r.Decoded != *exp.Decoded {
		add(&AssertionError{Type: "decoded", Expected: fmt.Sprintf("%q", *exp.Decoded), Actual: fmt.Sprintf("%q", r.Decoded)})
	}
	if exp.RoundTrip && r.Decoded != s.Input {
		add(&AssertionError{Type: "round_trip", Expected: fmt.Sprintf("%q", s.Input), Actual: fmt.Sprintf("%q", r.Decoded)})
	}
	if exp.Distinct {
		if err := r.ForwardMap.Injective(); err != nil {
			add(&AssertionError{Type: "distinct", Expected: "pairwise distinct replacements", Actual: err.Error()})
		}
	}
	if exp.Consistent {
		add(assertConsistent(s.Input, r.Body))
	}
	if exp.Synthesized != nil && r.Stats.Synthesized != *exp.Synthesized {
		add(&AssertionError{Type: "synthesized", Expected: fmt.Sprint(*exp.Synthesized), Actual: fmt.Sprint(r.Stats.Synthesized)})
	}
	if exp.Stored {
		if actx == nil || actx.Store == nil {
			add(fmt.Errorf("stored: requires store context"))
		} else {
			add(assertStored(actx, r))
		}
	}

	return errors
}

// assertConsistent walks input and themed body token by token: kinds and
// filler must match, every repeat of a source word (case-insensitive) must
// get the same replacement, and upper, title and lower words must keep
// their casing class.
func assertConsistent(input, body string) error {
	src := text.Tokenize(input)
	out := text.Tokenize(body)
	if len(src) != len(out) {
		return &AssertionError{Type: "consistent", Expected: fmt.Sprintf("%d tokens", len(src)), Actual: fmt.Sprintf("%d tokens", len(out))}
	}

	seen := make(map[string]string)
	for i := range src {
		s, o := src[i], out[i]
		if s.Kind != o.Kind {
			return &AssertionError{Type: "consistent", Expected: fmt.Sprintf("token %d to be %s", i, s.Kind), Actual: o.Kind.String()}
		}
		if !s.IsWord() {
			if s.Text != o.Text {
				return &AssertionError{Type: "consistent", Expected: fmt.Sprintf("filler %q", s.Text), Actual: fmt.Sprintf("%q", o.Text)}
			}
			continue
		}

		key, got := text.Lower(s.Text), text.Lower(o.Text)
		if prev, ok := seen[key]; ok && prev != got {
			return &AssertionError{Type: "consistent", Expected: fmt.Sprintf("%q to map to %q", key, prev), Actual: fmt.Sprintf("%q", got)}
		}
		seen[key] = got

		if class := text.Classify(s.Text); class != text.Mixed && text.Classify(o.Text) != class {
			return &AssertionError{Type: "consistent", Expected: fmt.Sprintf("%q to stay %s", s.Text, class), Actual: fmt.Sprintf("%q", o.Text)}
		}
	}
	return nil
}

func assertStored(actx *AssertionContext, r *Result) error {
	rec, err := actx.Store.Load(actx.Ctx, r.MappingID)
	if err != nil {
		return &AssertionError{Type: "stored", Expected: "a saved record", Actual: err.Error()}
	}
	if len(rec.ForwardMap) != len(r.ForwardMap) {
		return &AssertionError{Type: "stored", Expected: fmt.Sprintf("%d entries", len(r.ForwardMap)), Actual: fmt.Sprintf("%d", len(rec.ForwardMap))}
	}
	var diffs []string
	for src, repl := range r.ForwardMap {
		if rec.ForwardMap[src] != repl {
			diffs = append(diffs, fmt.Sprintf("%s: %q != %q", src, rec.ForwardMap[src], repl))
		}
	}
	if len(diffs) > 0 {
		return &AssertionError{Type: "stored", Expected: "matching forward map", Actual: strings.Join(diffs, ", ")}
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
