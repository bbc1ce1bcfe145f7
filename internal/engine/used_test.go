package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUsedSet(t *testing.T) {
	u := NewUsedSet()
	assert.Equal(t, 0, u.Len())
	assert.False(t, u.Has("lorem"))

	u.Add("lorem")
	u.Add("lorem")
	u.Add("ipsum")

	assert.True(t, u.Has("lorem"))
	assert.True(t, u.Has("ipsum"))
	assert.False(t, u.Has("Lorem"), "keys are compared exactly")
	assert.Equal(t, 2, u.Len())
}
