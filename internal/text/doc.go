// Package text splits documents into word and filler tokens and carries
// casing between a source word and its replacement.
//
// A word is a maximal run of Unicode letters. Everything else (digits,
// punctuation, whitespace, symbols, combining marks) is filler. Joining the
// tokens of a document in order reproduces the document byte for byte.
package text
