// Package codec turns plain text into themed text and back.
//
// Encode replaces every word with a word from the active vocabulary (or a
// synthesized one), keeps filler untouched, re-applies each word's casing,
// saves the forward map through a store.Store, and prefixes the result with
// a header line naming the mapping:
//
//	[LI-MAP-ID: <id>] [THEME: <vocabulary key>] [LANG: <language tag>]
//
// Decode reverses the substitution using the stored map. Words the map does
// not know, such as ones added by hand after encoding, pass through as-is.
package codec
