package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean(t *testing.T) {
	nz := New()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercases", "Hello World", "hello world"},
		{"strips punctuation and digits", "Hello, World! 123", "hello world"},
		{"collapses whitespace", "a  b\t\nc", "a b c"},
		{"trims edges", "  spaced out  ", "spaced out"},
		{"empty input", "", ""},
		{"only symbols", "!!! 42 ???", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, nz.Clean(tt.in))
		})
	}
}

func TestTokens(t *testing.T) {
	nz := New()

	t.Run("removes stop words", func(t *testing.T) {
		tokens := nz.Tokens("the wizard and the dark lord")
		assert.Equal(t, []string{"wizard", "dark", "lord"}, tokens)
	})

	t.Run("drops short tokens", func(t *testing.T) {
		tokens := nz.Tokens("go up to mt doom")
		// "go", "up", "to", "mt" are all below the minimum length.
		assert.Equal(t, []string{"doom"}, tokens)
	})

	t.Run("stems to base form", func(t *testing.T) {
		tokens := nz.Tokens("wizard fights stories")
		assert.Equal(t, []string{"wizard", "fight", "stori"}, tokens)
	})

	t.Run("empty text yields no tokens", func(t *testing.T) {
		assert.Empty(t, nz.Tokens(""))
		assert.Empty(t, nz.Tokens("the of and"))
	})
}

func TestNormalize(t *testing.T) {
	nz := New()

	t.Run("joins tokens with single spaces", func(t *testing.T) {
		got := nz.Normalize("The wizard boy fights a dark lord!")
		assert.Equal(t, "wizard boy fight dark lord", got)
	})

	t.Run("is deterministic", func(t *testing.T) {
		in := "A reclusive keeper discovers a message hidden inside the lamp room."
		assert.Equal(t, nz.Normalize(in), nz.Normalize(in))
	})

	t.Run("query path matches corpus path", func(t *testing.T) {
		// Same raw text must normalize identically regardless of caller.
		corpus := New()
		query := New()
		in := "Space pirates steal the governor's treasure."
		assert.Equal(t, corpus.Normalize(in), query.Normalize(in))
	})
}

func TestWithMinTokenLen(t *testing.T) {
	nz := New(WithMinTokenLen(1))
	tokens := nz.Tokens("mt doom")
	assert.Equal(t, []string{"mt", "doom"}, tokens)

	clamped := New(WithMinTokenLen(0))
	assert.NotEmpty(t, clamped.Tokens("ox"))
}
