// Package engine chooses replacement words for an encode session.
//
// A Selector draws candidates from the active vocabulary, preferring words
// of similar length, and falls back to Synthesize when the vocabulary has
// nothing suitable left. Both share one UsedSet per session, which is what
// keeps the session's forward map injective.
//
// Determinism: every random choice flows from explicit sources. The
// selector uses the session generator passed in by the caller; the
// synthesizer seeds its own generator from a hash of the source word. Two
// sessions with the same seed, vocabulary and document make the same
// choices.
//
// Case faithfulness: a replacement is only usable if its upper, title and
// lower renderings classify back to those classes and lowercase back to the
// replacement. Otherwise decoding could not restore the source word's
// casing. Vocabulary words that fail the check are never chosen, and
// synthesized words that fail it are treated as collisions.
package engine
