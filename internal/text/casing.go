package text

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Class is the casing shape of a word.
type Class int

const (
	Lower Class = iota
	Upper
	Title
	Mixed
)

func (c Class) String() string {
	switch c {
	case Upper:
		return "upper"
	case Title:
		return "title"
	case Lower:
		return "lower"
	default:
		return "mixed"
	}
}

// Classify derives the casing class of word.
//
// Rules are checked in order: all cased runes upper (at least one) is
// Upper; a leading upper rune followed by a lowercase remainder is Title;
// all cased runes lower is Lower; anything else, including words with no
// cased runes at all, is Mixed.
func Classify(word string) Class {
	if isUpper(word) {
		return Upper
	}
	r, size := utf8.DecodeRuneInString(word)
	if unicode.IsUpper(r) && isLower(word[size:]) {
		return Title
	}
	if isLower(word) {
		return Lower
	}
	return Mixed
}

// ApplyCase renders the lowercase replacement in the given class. Mixed
// returns the replacement unchanged.
func ApplyCase(c Class, lower string) string {
	switch c {
	case Upper:
		return cases.Upper(language.Und).String(lower)
	case Title:
		_, size := utf8.DecodeRuneInString(lower)
		if size == 0 {
			return lower
		}
		return cases.Upper(language.Und).String(lower[:size]) + cases.Lower(language.Und).String(lower[size:])
	default:
		return lower
	}
}

// Lower returns the language-neutral lowercase form of s. All map keys use
// this form.
func Lower(s string) string {
	return cases.Lower(language.Und).String(s)
}

// CaseFaithful reports whether w can stand in for a source word of any
// casing class and still carry that class through a decode: w must be its
// own lowercase form, made of letters, and its upper and title renderings
// must stay letters, classify as such and lowercase back to w.
func CaseFaithful(w string) bool {
	if !IsLetters(w) || Lower(w) != w || Classify(w) != Lower {
		return false
	}
	for _, c := range []Class{Upper, Title} {
		rendered := ApplyCase(c, w)
		if !IsLetters(rendered) || Classify(rendered) != c || Lower(rendered) != w {
			return false
		}
	}
	return true
}

// isUpper reports whether s has at least one cased rune and none that are
// lower or title case.
func isUpper(s string) bool {
	cased := false
	for _, r := range s {
		switch {
		case unicode.IsLower(r), unicode.IsTitle(r):
			return false
		case unicode.IsUpper(r):
			cased = true
		}
	}
	return cased
}

// isLower reports whether s has at least one cased rune and none that are
// upper or title case.
func isLower(s string) bool {
	cased := false
	for _, r := range s {
		switch {
		case unicode.IsUpper(r), unicode.IsTitle(r):
			return false
		case unicode.IsLower(r):
			cased = true
		}
	}
	return cased
}
