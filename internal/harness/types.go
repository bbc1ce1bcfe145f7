package harness

import (
	"github.com/roach88/lipsum/internal/engine"
	"github.com/roach88/lipsum/internal/ir"
)

// Result is the outcome of a scenario execution.
type Result struct {
	// Pass indicates overall success: true if every expectation held.
	Pass bool `json:"pass"`

	MappingID string `json:"mapping_id"`

	// Output is the header-prefixed themed text. Golden files store it.
	Output string `json:"output"`

	// Body is Output without the header line.
	Body string `json:"body"`

	// Decoded is the decode result after edits.
	Decoded string `json:"decoded"`

	ForwardMap ir.ForwardMap `json:"forward_map"`
	Stats      engine.Stats  `json:"stats"`

	// Errors contains failed expectation messages.
	// Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a new passing result.
func NewResult() *Result {
	return &Result{
		Pass:   true,
		Errors: []string{},
	}
}

// AddError adds a validation error and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}
