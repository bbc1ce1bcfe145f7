package engine

import (
	"unicode"

	"github.com/roach88/lipsum/internal/text"
)

// fallbackSyllables is used when a vocabulary yields no syllables, and to
// rebuild synthesized words whose own syllables cannot carry casing.
var fallbackSyllables = []string{"lo", "rem", "ip", "sum", "ne", "on", "vec", "tor", "syn", "th"}

// BuildSyllables derives the syllable inventory of a vocabulary.
//
// Each word is lowercased and trimmed of leading and trailing non-letters,
// then cut into consecutive 2-rune chunks and consecutive 3-rune chunks.
// Chunks made only of letters are kept, deduplicated in first-seen order.
func BuildSyllables(words []string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, w := range words {
		runes := trimNonLetters([]rune(text.Lower(w)))
		for _, size := range []int{2, 3} {
			for i := 0; i+size <= len(runes); i += size {
				piece := string(runes[i : i+size])
				if seen[piece] || !text.IsLetters(piece) {
					continue
				}
				seen[piece] = true
				out = append(out, piece)
			}
		}
	}

	if len(out) == 0 {
		return append([]string(nil), fallbackSyllables...)
	}
	return out
}

func trimNonLetters(runes []rune) []rune {
	start, end := 0, len(runes)
	for start < end && !unicode.IsLetter(runes[start]) {
		start++
	}
	for end > start && !unicode.IsLetter(runes[end-1]) {
		end--
	}
	return runes[start:end]
}
