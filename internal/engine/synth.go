package engine

import (
	"math/rand/v2"
	"strings"
	"unicode/utf8"

	"github.com/roach88/lipsum/internal/text"
)

// maxMutations bounds the suffix-mutation attempts before the synthesizer
// switches to ordinal disambiguators.
const maxMutations = 10

var mutationSuffixes = []string{"x", "um", "us", "ix", "on", "a"}

// Synthesize fabricates a replacement of exactly target runes from the
// syllable inventory, seeded by the source word's seed pair, and adds it to
// used.
//
// Collisions with used are resolved by appending a suffix from a small pool
// (re-truncating to the longer of target and one past the base), then after
// maxMutations attempts by appending a letter ordinal. Words that could not
// carry a source word's casing through a decode are treated as collisions,
// and a base built from such syllables is rebuilt from the fallback set.
func Synthesize(target int, seedHi, seedLo uint64, syllables []string, used UsedSet) string {
	if len(syllables) == 0 {
		syllables = fallbackSyllables
	}
	rng := rand.New(rand.NewPCG(seedHi, seedLo))

	base := assemble(rng, syllables, target)
	if !text.CaseFaithful(base) {
		base = assemble(rng, fallbackSyllables, target)
	}

	token := base
	for attempt := 1; !available(token, used); attempt++ {
		if attempt <= maxMutations {
			suffix := mutationSuffixes[rng.IntN(len(mutationSuffixes))]
			token = truncate(base+suffix, max(target, utf8.RuneCountInString(base)+1))
			continue
		}
		token = base + Ordinal(attempt)
		if !text.CaseFaithful(token) {
			// Context-sensitive casing (final sigma and the like) can break
			// on extension; ASCII syllables cannot.
			base = assemble(rng, fallbackSyllables, target)
			token = base + Ordinal(attempt)
		}
	}

	used.Add(token)
	return token
}

// Ordinal renders n >= 1 in bijective base 26: a, b, ... z, aa, ab, ...
// Letters keep a disambiguated word a single token, which digits would not.
func Ordinal(n int) string {
	var b []byte
	for n > 0 {
		n--
		b = append(b, byte('a'+n%26))
		n /= 26
	}
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}

func available(w string, used UsedSet) bool {
	return !used.Has(w) && text.CaseFaithful(w)
}

// assemble concatenates random syllables until at least target runes, then
// truncates to exactly target.
func assemble(rng *rand.Rand, syllables []string, target int) string {
	var b strings.Builder
	n := 0
	for n < target {
		s := syllables[rng.IntN(len(syllables))]
		b.WriteString(s)
		n += utf8.RuneCountInString(s)
	}
	return truncate(b.String(), target)
}

func truncate(s string, n int) string {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
