// Package harness runs encode/decode scenarios described in YAML files.
//
// Each scenario encodes its input with a fixed mapping id, a deterministic
// clock and a fixed seed against a fresh in-memory SQLite store, optionally
// hand-edits the themed body, decodes it back, and checks the expectations.
//
// # Scenario Format
//
//	name: cats
//	description: "Repeated words keep one replacement"
//	vocabulary:
//	  key: rex
//	  words: [rex, rexus]
//	lang: en
//	input: "cats CATS Cats"
//	edits:
//	  - find: "REXUS"
//	    replace: "REXUS zebra"
//	expect:
//	  output: "rexus REXUS Rexus"
//	  decoded: "cats CATS zebra Cats"
//	  distinct: true
//	  consistent: true
//
// Supported expectations: output (exact themed body), one_of (themed body
// is one of the listed values), decoded (exact decode result), round_trip
// (decode reproduces the input), distinct (no two source words share a
// replacement), consistent (repeats agree and casing shape is kept),
// synthesized (number of synthesized replacements) and stored (the saved
// record matches the session's forward map).
//
// Golden files hold the full header-prefixed themed output and live in
// testdata/golden/{name}.golden. Regenerate them with:
//
//	go test ./internal/harness -update
package harness
