package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// verifyTokens checks the invariants every tokenization must satisfy.
func verifyTokens(t *testing.T, input string, tokens []Token) {
	t.Helper()
	assert.Equal(t, input, Join(tokens), "joined tokens must reproduce input")
	for i, tok := range tokens {
		require.NotEmpty(t, tok.Text, "token %d is empty", i)
		if i > 0 {
			assert.NotEqual(t, tokens[i-1].Kind, tok.Kind, "tokens %d and %d share a kind", i-1, i)
		}
		if tok.IsWord() {
			assert.True(t, IsLetters(tok.Text), "word token %q has non-letters", tok.Text)
		}
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Token
	}{
		{
			name:  "punctuation",
			input: "Hello, World!",
			want: []Token{
				{Word, "Hello"}, {Filler, ", "}, {Word, "World"}, {Filler, "!"},
			},
		},
		{
			name:  "digits split words",
			input: "abc123def",
			want:  []Token{{Word, "abc"}, {Filler, "123"}, {Word, "def"}},
		},
		{
			name:  "underscore is filler",
			input: "snake_case",
			want:  []Token{{Word, "snake"}, {Filler, "_"}, {Word, "case"}},
		},
		{
			name:  "leading and trailing filler",
			input: "  ok\n",
			want:  []Token{{Filler, "  "}, {Word, "ok"}, {Filler, "\n"}},
		},
		{
			name:  "composed accent stays in word",
			input: "na\u00efve caf\u00e9",
			want:  []Token{{Word, "na\u00efve"}, {Filler, " "}, {Word, "caf\u00e9"}},
		},
		{
			name:  "combining mark is filler",
			input: "e\u0301t",
			want:  []Token{{Word, "e"}, {Filler, "\u0301"}, {Word, "t"}},
		},
		{
			name:  "non-latin script",
			input: "Привет, мир",
			want:  []Token{{Word, "Привет"}, {Filler, ", "}, {Word, "мир"}},
		},
		{
			name:  "invalid utf8 is filler",
			input: "ab\xffcd",
			want:  []Token{{Word, "ab"}, {Filler, "\xff"}, {Word, "cd"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.input)
			assert.Equal(t, tt.want, got)
			verifyTokens(t, tt.input, got)
		})
	}
}

func TestTokenize_Empty(t *testing.T) {
	assert.Empty(t, Tokenize(""))
	assert.Equal(t, "", Join(nil))
}

func TestTokenize_ConcatenationInvariant(t *testing.T) {
	inputs := []string{
		"",
		" ",
		"a",
		"1",
		"The quick brown fox, 42 times!\r\n\tDone.",
		"日本語のテキスト、そして English.",
		"مرحبا بالعالم",
		"emoji 🎉 party 🎉🎉",
		"tabs\tand\u00a0nbsp",
		"x\u200dy",
		"\xff\xfe broken",
	}
	for _, input := range inputs {
		verifyTokens(t, input, Tokenize(input))
	}
}

func TestTokens_Restartable(t *testing.T) {
	seq := Tokens("one two")

	var first, second []Token
	for tok := range seq {
		first = append(first, tok)
	}
	for tok := range seq {
		second = append(second, tok)
	}

	assert.Equal(t, first, second)
	assert.Len(t, first, 3)
}

func TestTokens_EarlyBreak(t *testing.T) {
	count := 0
	for range Tokens("a b c d") {
		count++
		if count == 2 {
			break
		}
	}
	assert.Equal(t, 2, count)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "word", Word.String())
	assert.Equal(t, "filler", Filler.String())
}

func TestIsLetters(t *testing.T) {
	assert.True(t, IsLetters("lorem"))
	assert.True(t, IsLetters("\u00fcn\u00efc\u00f6d\u00e9"))
	assert.False(t, IsLetters(""))
	assert.False(t, IsLetters("don't"))
	assert.False(t, IsLetters("abc1"))
}
