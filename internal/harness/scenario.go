package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario defines one encode/decode round.
type Scenario struct {
	// Name uniquely identifies this scenario. It names the golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Vocabulary is the active vocabulary. If nil, the built-in one is used.
	Vocabulary *VocabularySpec `yaml:"vocabulary,omitempty"`

	// Lang is the source language tag written into the header.
	Lang string `yaml:"lang,omitempty"`

	// Seed overrides the default random seed.
	Seed *uint64 `yaml:"seed,omitempty"`

	// MappingID is an optional fixed mapping id for deterministic output.
	// If empty, defaults to testutil.DefaultMappingID.
	MappingID string `yaml:"mapping_id,omitempty"`

	// Input is the plain text to encode.
	Input string `yaml:"input"`

	// Edits are applied to the themed body, in order, before decoding.
	Edits []Edit `yaml:"edits,omitempty"`

	// Expect holds the checks run after decoding.
	Expect Expectations `yaml:"expect"`
}

// VocabularySpec is an inline vocabulary.
type VocabularySpec struct {
	Key   string   `yaml:"key"`
	Name  string   `yaml:"name,omitempty"`
	Words []string `yaml:"words"`
}

// Edit replaces every occurrence of Find with Replace.
type Edit struct {
	Find    string `yaml:"find"`
	Replace string `yaml:"replace"`
}

// Expectations lists the checks for a scenario. Unset fields are skipped.
type Expectations struct {
	Output      *string  `yaml:"output,omitempty"`
	OneOf       []string `yaml:"one_of,omitempty"`
	Decoded     *string  `yaml:"decoded,omitempty"`
	RoundTrip   bool     `yaml:"round_trip,omitempty"`
	Distinct    bool     `yaml:"distinct,omitempty"`
	Consistent  bool     `yaml:"consistent,omitempty"`
	Synthesized *int     `yaml:"synthesized,omitempty"`
	Stored      bool     `yaml:"stored,omitempty"`
}

func (e Expectations) empty() bool {
	return e.Output == nil && len(e.OneOf) == 0 && e.Decoded == nil &&
		!e.RoundTrip && !e.Distinct && !e.Consistent && e.Synthesized == nil && !e.Stored
}

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario parses scenario YAML.
func ParseScenario(data []byte) (*Scenario, error) {
	// Strict field validation catches typos like "expects:" vs "expect:".
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if s.Input == "" {
		return fmt.Errorf("input is required")
	}

	if s.Vocabulary != nil && s.Vocabulary.Key == "" {
		return fmt.Errorf("vocabulary: key is required")
	}

	for i, e := range s.Edits {
		if e.Find == "" {
			return fmt.Errorf("edits[%d]: find is required", i)
		}
	}

	if s.Expect.empty() {
		return fmt.Errorf("expect must set at least one check")
	}

	return nil
}
