package text

import (
	"iter"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Kind classifies a token.
type Kind int

const (
	// Filler is any run of non-letter runes.
	Filler Kind = iota
	// Word is a run of letters only.
	Word
)

func (k Kind) String() string {
	if k == Word {
		return "word"
	}
	return "filler"
}

// Token is a contiguous, non-empty slice of the source text.
type Token struct {
	Kind Kind
	Text string
}

// IsWord reports whether the token is a letter run.
func (t Token) IsWord() bool {
	return t.Kind == Word
}

// Tokens yields the tokens of s in order. The sequence is restartable:
// every call to the returned iterator walks s from the beginning.
func Tokens(s string) iter.Seq[Token] {
	return func(yield func(Token) bool) {
		start := 0
		for start < len(s) {
			r, size := utf8.DecodeRuneInString(s[start:])
			letter := unicode.IsLetter(r)
			end := start + size
			for end < len(s) {
				r, size = utf8.DecodeRuneInString(s[end:])
				if unicode.IsLetter(r) != letter {
					break
				}
				end += size
			}

			kind := Filler
			if letter {
				kind = Word
			}
			if !yield(Token{Kind: kind, Text: s[start:end]}) {
				return
			}
			start = end
		}
	}
}

// Tokenize collects Tokens(s) into a slice.
func Tokenize(s string) []Token {
	var tokens []Token
	for tok := range Tokens(s) {
		tokens = append(tokens, tok)
	}
	return tokens
}

// Join concatenates token text in order.
func Join(tokens []Token) string {
	var b strings.Builder
	for _, tok := range tokens {
		b.WriteString(tok.Text)
	}
	return b.String()
}

// IsLetters reports whether s is non-empty and made of letters only, i.e.
// whether it would survive tokenization as a single word.
func IsLetters(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
