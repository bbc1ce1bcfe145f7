package ir

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// MarshalRecord renders a record as indented JSON.
// HTML escaping is disabled so non-ASCII and markup-like words stay readable.
func MarshalRecord(r Record) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return nil, fmt.Errorf("marshal record: %w", err)
	}
	return buf.Bytes(), nil
}

// UnmarshalRecord parses a record. Missing language tags default to
// DefaultLang, and a missing forward map is an error.
func UnmarshalRecord(data []byte) (Record, error) {
	var r Record
	if err := json.Unmarshal(data, &r); err != nil {
		return Record{}, fmt.Errorf("unmarshal record: %w", err)
	}
	if r.SourceLang == "" {
		r.SourceLang = DefaultLang
	}
	if err := r.Validate(); err != nil {
		return Record{}, fmt.Errorf("unmarshal record: %w", err)
	}
	return r, nil
}

// MarshalForwardMap renders just the forward map as compact JSON, the form
// stored in a SQLite column.
func MarshalForwardMap(f ForwardMap) (string, error) {
	if f == nil {
		f = ForwardMap{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(f); err != nil {
		return "", fmt.Errorf("marshal forward map: %w", err)
	}
	return string(bytes.TrimSpace(buf.Bytes())), nil
}

// UnmarshalForwardMap parses a forward map column.
func UnmarshalForwardMap(data string) (ForwardMap, error) {
	f := ForwardMap{}
	if data == "" || data == "{}" {
		return f, nil
	}
	if err := json.Unmarshal([]byte(data), &f); err != nil {
		return nil, fmt.Errorf("unmarshal forward map: %w", err)
	}
	return f, nil
}
