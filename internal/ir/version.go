package ir

// Version constants for the persisted record format.
const (
	// RecordVersion is the mapping record schema version.
	RecordVersion = "1"

	// DefaultLang is the source language tag used when none is supplied.
	DefaultLang = "unknown"
)
