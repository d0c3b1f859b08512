package normalize

import (
	"strings"
	"unicode"

	snowballeng "github.com/kljensen/snowball/english"
)

// DefaultMinTokenLen drops one- and two-letter tokens, which are almost
// always noise in storyline text.
const DefaultMinTokenLen = 3

// Normalizer converts raw text into a normalized token sequence.
// The zero-cost construction makes it cheap to share one instance between
// the corpus-build path and the query path.
type Normalizer struct {
	minTokenLen int
}

// Option configures a Normalizer.
type Option func(*Normalizer)

// WithMinTokenLen sets the minimum token length kept after cleaning.
// Values below 1 are treated as 1.
func WithMinTokenLen(n int) Option {
	return func(nz *Normalizer) {
		if n < 1 {
			n = 1
		}
		nz.minTokenLen = n
	}
}

// New creates a Normalizer.
func New(opts ...Option) *Normalizer {
	nz := &Normalizer{
		minTokenLen: DefaultMinTokenLen,
	}
	for _, opt := range opts {
		opt(nz)
	}
	return nz
}

// Clean lowercases text, strips every non-letter rune, and collapses
// whitespace runs into single spaces.
func (nz *Normalizer) Clean(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	lastSpace := true // also trims leading whitespace
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) {
			b.WriteRune(r)
			lastSpace = false
			continue
		}
		if !lastSpace {
			b.WriteByte(' ')
			lastSpace = true
		}
	}

	return strings.TrimRight(b.String(), " ")
}

// Tokens returns the normalized token sequence for text: cleaned words
// with stop words and short tokens removed, each reduced to its base form.
// Stop words are matched before stemming so the list stays readable.
func (nz *Normalizer) Tokens(text string) []string {
	words := strings.Fields(nz.Clean(text))
	tokens := make([]string, 0, len(words))

	for _, word := range words {
		if len(word) < nz.minTokenLen || stopWords[word] {
			continue
		}
		tokens = append(tokens, snowballeng.Stem(word, false))
	}

	return tokens
}

// Normalize returns the space-joined token string for text. This is the
// document form consumed by the vectorizer.
func (nz *Normalizer) Normalize(text string) string {
	return strings.Join(nz.Tokens(text), " ")
}
