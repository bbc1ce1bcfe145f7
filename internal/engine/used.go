package engine

// UsedSet holds the lowercase replacements already assigned in one encode
// session. It is the uniqueness guard: the selector and the synthesizer
// both consult and extend it.
type UsedSet map[string]struct{}

// NewUsedSet returns an empty set.
func NewUsedSet() UsedSet {
	return make(UsedSet)
}

// Has reports whether w is taken.
func (u UsedSet) Has(w string) bool {
	_, ok := u[w]
	return ok
}

// Add marks w as taken.
func (u UsedSet) Add(w string) {
	u[w] = struct{}{}
}

// Len returns the number of taken words.
func (u UsedSet) Len() int {
	return len(u)
}
