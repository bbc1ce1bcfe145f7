package testutil

// FixedIDGenerator generates the same mapping id every time.
//
// Re-encoding into a fixed id overwrites the previous record, which is what
// golden scenarios want: the stored mapping always matches the last run.
//
// Thread-safety: FixedIDGenerator is stateless and safe for concurrent use.
type FixedIDGenerator struct {
	id string
}

// DefaultMappingID is used when NewFixedIDGenerator is given no id. It has
// the same shape as a real UUID so it survives header extraction.
const DefaultMappingID = "00000000-0000-7000-8000-000000000001"

// NewFixedIDGenerator creates a new fixed id generator.
//
// The id is typically set in the scenario YAML:
//
//	mapping_id: "00000000-0000-7000-8000-00000000000a"
//
// If id is empty, Generate() returns DefaultMappingID.
func NewFixedIDGenerator(id string) *FixedIDGenerator {
	if id == "" {
		id = DefaultMappingID
	}
	return &FixedIDGenerator{id: id}
}

// Generate returns the fixed id.
//
// Implements engine.IDGenerator.
func (g *FixedIDGenerator) Generate() string {
	return g.id
}
