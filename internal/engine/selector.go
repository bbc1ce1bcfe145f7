package engine

import (
	"math/rand/v2"
	"strings"
	"unicode/utf8"

	"github.com/roach88/lipsum/internal/ir"
	"github.com/roach88/lipsum/internal/text"
)

// pluralEndings are the replacement endings preferred for source words that
// end in "s". The list is stylistic flavor, not linguistics.
var pluralEndings = []string{"a", "ae", "i", "es", "um", "us"}

type candidate struct {
	word   string
	length int
}

// Stats counts how a session's replacements were produced.
type Stats struct {
	FromVocabulary int `json:"from_vocabulary"`
	Synthesized    int `json:"synthesized"`
	Ineligible     int `json:"ineligible"` // vocabulary words that cannot carry casing
}

// Selector picks replacements for one encode session. It owns no global
// state: the random source and the used set are supplied by the caller and
// only live as long as the session.
type Selector struct {
	candidates []candidate
	syllables  []string
	used       UsedSet
	rng        *rand.Rand
	stats      Stats
}

// NewSelector prepares the vocabulary for selection.
//
// Words are lowercased and kept in order. Words that are not case-faithful
// (non-letters, uncased scripts, casing that does not round-trip) are
// dropped here so they can never be chosen.
func NewSelector(words, syllables []string, used UsedSet, rng *rand.Rand) *Selector {
	s := &Selector{syllables: syllables, used: used, rng: rng}
	seen := make(map[string]bool, len(words))
	for _, w := range words {
		lw := text.Lower(w)
		if seen[lw] {
			continue
		}
		seen[lw] = true
		if !text.CaseFaithful(lw) {
			s.stats.Ineligible++
			continue
		}
		s.candidates = append(s.candidates, candidate{word: lw, length: utf8.RuneCountInString(lw)})
	}
	return s
}

// Select chooses a lowercase replacement for srcLower and marks it used.
//
//  1. Keep vocabulary words within one rune of desiredLen that are unused.
//  2. If srcLower ends in "s" and some kept words end in a plural-looking
//     suffix, keep only those.
//  3. Pick uniformly with the session random source.
//  4. With no candidate left, synthesize max(3, desiredLen) runes.
func (s *Selector) Select(srcLower string, desiredLen int) string {
	var pool []string
	for _, c := range s.candidates {
		if abs(c.length-desiredLen) <= 1 && !s.used.Has(c.word) {
			pool = append(pool, c.word)
		}
	}

	if strings.HasSuffix(srcLower, "s") {
		var plural []string
		for _, w := range pool {
			if hasAnySuffix(w, pluralEndings) {
				plural = append(plural, w)
			}
		}
		if len(plural) > 0 {
			pool = plural
		}
	}

	if len(pool) > 0 {
		choice := pool[s.rng.IntN(len(pool))]
		s.used.Add(choice)
		s.stats.FromVocabulary++
		return choice
	}

	hi, lo := ir.SynthSeed(srcLower)
	s.stats.Synthesized++
	return Synthesize(max(3, desiredLen), hi, lo, s.syllables, s.used)
}

// Stats returns the session counters.
func (s *Selector) Stats() Stats {
	return s.stats
}

func hasAnySuffix(w string, suffixes []string) bool {
	for _, suf := range suffixes {
		if strings.HasSuffix(w, suf) {
			return true
		}
	}
	return false
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
