package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssertConsistent(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		body    string
		wantErr string
	}{
		{"ok", "Cats cats CATS!", "Rexus rexus REXUS!", ""},
		{"mixed case not checked", "iPhone", "lorem", ""},
		{"token count", "a b", "a", "consistent: expected 3 tokens"},
		{"filler changed", "a, b", "x; y", `filler ", "`},
		{"repeat differs", "cat cat", "rex lex", `"cat" to map to "rex"`},
		{"casing lost", "Cat", "rex", `"Cat" to stay title`},
		{"kind changed", "a1", "1a", "token 0 to be word"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := assertConsistent(tt.input, tt.body)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestEvaluateExpectations_Distinct(t *testing.T) {
	s := &Scenario{Input: "a b", Expect: Expectations{Distinct: true}}
	r := NewResult()
	r.ForwardMap = map[string]string{"a": "lorem", "b": "lorem"}

	errs := EvaluateExpectations(s, r, nil)

	assert.Len(t, errs, 1)
	assert.Contains(t, errs[0], "distinct")
}

func TestEvaluateExpectations_StoredNeedsContext(t *testing.T) {
	s := &Scenario{Input: "a", Expect: Expectations{Stored: true}}

	errs := EvaluateExpectations(s, NewResult(), nil)

	assert.Equal(t, []string{"stored: requires store context"}, errs)
}
