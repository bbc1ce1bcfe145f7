package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSynthSeedDeterminism(t *testing.T) {
	a1, b1 := SynthSeed("world")
	a2, b2 := SynthSeed("world")

	assert.Equal(t, a1, a2, "SynthSeed must be deterministic")
	assert.Equal(t, b1, b2, "SynthSeed must be deterministic")
}

func TestSynthSeedChangesWithInput(t *testing.T) {
	a1, b1 := SynthSeed("world")
	a2, b2 := SynthSeed("worlds")

	assert.False(t, a1 == a2 && b1 == b2, "different words should produce different seeds")
}

func TestHashWithDomainSeparation(t *testing.T) {
	h1 := hashWithDomain("a", []byte("bc"))
	h2 := hashWithDomain("ab", []byte("c"))

	assert.NotEqual(t, h1, h2, "null separator must prevent boundary ambiguity")
}
