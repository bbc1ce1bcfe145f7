// Package ir holds the persisted data model shared by the codec and the
// mapping stores.
//
// This package contains type definitions and pure helpers only. Other
// internal packages import ir; ir imports nothing internal.
//
// Key constraints:
//   - ForwardMap keys and values are lowercase forms (text.Lower)
//   - A ForwardMap must be injective for decode to be lossless
//   - All JSON tags use snake_case and match the on-disk mapping format
package ir
