package engine

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/lipsum/internal/ir"
	"github.com/roach88/lipsum/internal/text"
)

func TestSynthesize_Deterministic(t *testing.T) {
	syllables := BuildSyllables([]string{"lorem", "ipsum", "dolor"})
	hi, lo := ir.SynthSeed("world")

	a := Synthesize(6, hi, lo, syllables, NewUsedSet())
	b := Synthesize(6, hi, lo, syllables, NewUsedSet())

	assert.Equal(t, a, b, "same seed and inventory must give the same word")
}

func TestSynthesize_ExactLength(t *testing.T) {
	syllables := BuildSyllables([]string{"consectetur", "adipiscing"})
	for target := 3; target <= 12; target++ {
		hi, lo := ir.SynthSeed("source")
		w := Synthesize(target, hi, lo, syllables, NewUsedSet())
		assert.Equal(t, target, utf8.RuneCountInString(w), "word %q", w)
	}
}

func TestSynthesize_AddsToUsed(t *testing.T) {
	used := NewUsedSet()
	hi, lo := ir.SynthSeed("alpha")

	w := Synthesize(5, hi, lo, fallbackSyllables, used)

	assert.True(t, used.Has(w))
	assert.Equal(t, 1, used.Len())
}

func TestSynthesize_UniqueUnderCollisions(t *testing.T) {
	// Same seed every time forces the collision path, then the ordinal path.
	used := NewUsedSet()
	hi, lo := ir.SynthSeed("same")
	seen := map[string]bool{}

	for i := 0; i < 60; i++ {
		w := Synthesize(4, hi, lo, []string{"ab"}, used)
		require.False(t, seen[w], "word %q produced twice", w)
		seen[w] = true
		assert.True(t, text.IsLetters(w), "word %q must stay a single token", w)
		assert.True(t, text.CaseFaithful(w), "word %q must carry casing", w)
	}
	assert.Equal(t, 60, used.Len())
}

func TestSynthesize_UncasedSyllablesFallBack(t *testing.T) {
	hi, lo := ir.SynthSeed("hello")

	w := Synthesize(5, hi, lo, []string{"日本", "中文"}, NewUsedSet())

	assert.True(t, text.CaseFaithful(w), "word %q must carry casing", w)
	assert.Equal(t, 5, utf8.RuneCountInString(w))
}

func TestSynthesize_TinyTargets(t *testing.T) {
	hi, lo := ir.SynthSeed("x")
	for _, target := range []int{0, 1, 2} {
		w := Synthesize(target, hi, lo, fallbackSyllables, NewUsedSet())
		assert.True(t, text.CaseFaithful(w), "target %d gave %q", target, w)
	}
}

func TestOrdinal(t *testing.T) {
	tests := map[int]string{
		1:   "a",
		2:   "b",
		26:  "z",
		27:  "aa",
		52:  "az",
		53:  "ba",
		702: "zz",
		703: "aaa",
	}
	for n, want := range tests {
		assert.Equal(t, want, Ordinal(n), "Ordinal(%d)", n)
	}
	assert.Equal(t, "", Ordinal(0))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "lor", truncate("lorem", 3))
	assert.Equal(t, "lorem", truncate("lorem", 9))
	assert.Equal(t, "日本", truncate("日本語", 2))
	assert.Equal(t, "", truncate("abc", 0))
}
