package vectorize

import (
	"fmt"
	"math"
	"slices"
	"strings"
)

// Defaults chosen for corpora of a few thousand storylines.
const (
	DefaultMaxFeatures     = 5000
	DefaultMinDocFreq      = 2
	DefaultMaxDocFreqRatio = 0.8
)

// Config controls vocabulary construction.
type Config struct {
	// MaxFeatures caps the vocabulary size, keeping the most frequent
	// terms. 0 selects the default; a negative value disables the cap.
	MaxFeatures int

	// MinDocFreq drops terms appearing in fewer than this many documents.
	// 0 selects the default.
	MinDocFreq int

	// MaxDocFreqRatio drops terms appearing in more than this fraction of
	// documents; near-universal terms carry no discriminative signal.
	// 0 selects the default.
	MaxDocFreqRatio float64
}

func (c Config) withDefaults() Config {
	if c.MaxFeatures == 0 {
		c.MaxFeatures = DefaultMaxFeatures
	}
	if c.MinDocFreq == 0 {
		c.MinDocFreq = DefaultMinDocFreq
	}
	if c.MaxDocFreqRatio == 0 {
		c.MaxDocFreqRatio = DefaultMaxDocFreqRatio
	}
	return c
}

// Matrix holds one unit-length document vector per corpus row. Row order
// matches the corpus order used at fit time and is the join key between
// vectors and documents.
type Matrix [][]float64

// Rows returns the number of document vectors.
func (m Matrix) Rows() int {
	return len(m)
}

// Cols returns the vector width, 0 for an empty matrix.
func (m Matrix) Cols() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// Vectorizer learns a term vocabulary with IDF weights and converts
// normalized token strings into weighted vectors. A fitted Vectorizer is
// immutable and safe for concurrent Transform calls.
type Vectorizer struct {
	cfg    Config
	terms  []string       // vocabulary in column order
	vocab  map[string]int // term -> column index
	idf    []float64
	fitted bool
}

// New creates an unfitted Vectorizer. Zero-valued config fields fall back
// to the package defaults.
func New(cfg Config) *Vectorizer {
	return &Vectorizer{cfg: cfg.withDefaults()}
}

// Restore rebuilds a fitted, query-only Vectorizer from a persisted
// vocabulary and its IDF weights. Terms must be listed in column order.
func Restore(terms []string, idf []float64) (*Vectorizer, error) {
	if len(terms) != len(idf) {
		return nil, fmt.Errorf("%w: %d terms, %d weights", ErrInvalidModel, len(terms), len(idf))
	}

	vocab := make(map[string]int, len(terms))
	for i, term := range terms {
		if _, dup := vocab[term]; dup {
			return nil, fmt.Errorf("%w: duplicate term %q", ErrInvalidModel, term)
		}
		vocab[term] = i
	}

	return &Vectorizer{
		cfg:    Config{}.withDefaults(),
		terms:  slices.Clone(terms),
		vocab:  vocab,
		idf:    slices.Clone(idf),
		fitted: true,
	}, nil
}

// FitTransform learns the vocabulary and IDF weights from docs and
// returns the row-normalized corpus matrix. Each doc is a normalized
// token string; row i of the result corresponds to docs[i].
func (v *Vectorizer) FitTransform(docs []string) (Matrix, error) {
	if err := v.Fit(docs); err != nil {
		return nil, err
	}

	matrix := make(Matrix, len(docs))
	for i, doc := range docs {
		matrix[i] = v.vectorize(doc)
	}
	return matrix, nil
}

// Fit learns the vocabulary and IDF weights from docs without producing
// the corpus matrix.
func (v *Vectorizer) Fit(docs []string) error {
	if len(docs) == 0 {
		return ErrEmptyCorpus
	}

	df := make(map[string]int)
	totals := make(map[string]int)
	for _, doc := range docs {
		for term, count := range termCounts(doc) {
			df[term]++
			totals[term] += count
		}
	}

	n := len(docs)
	maxDF := int(v.cfg.MaxDocFreqRatio * float64(n))

	candidates := make([]string, 0, len(df))
	for term, freq := range df {
		if freq < v.cfg.MinDocFreq || freq > maxDF {
			continue
		}
		candidates = append(candidates, term)
	}
	if len(candidates) == 0 {
		return fmt.Errorf("%w: corpus of %d documents", ErrDegenerateVocabulary, n)
	}

	// Keep the most frequent terms when over the cap. Ties break on the
	// term itself so repeated fits produce identical vocabularies.
	if v.cfg.MaxFeatures > 0 && len(candidates) > v.cfg.MaxFeatures {
		slices.SortFunc(candidates, func(a, b string) int {
			if totals[a] != totals[b] {
				return totals[b] - totals[a]
			}
			return strings.Compare(a, b)
		})
		candidates = candidates[:v.cfg.MaxFeatures]
	}

	// Column indices follow lexicographic term order.
	slices.Sort(candidates)

	vocab := make(map[string]int, len(candidates))
	idf := make([]float64, len(candidates))
	for i, term := range candidates {
		vocab[term] = i
		idf[i] = math.Log(float64(1+n)/float64(1+df[term])) + 1
	}

	v.terms = candidates
	v.vocab = vocab
	v.idf = idf
	v.fitted = true
	return nil
}

// Transform converts a normalized token string into a weighted vector
// over the fitted vocabulary, normalized to unit length. Terms outside
// the vocabulary contribute nothing; a query sharing no vocabulary terms
// yields an all-zero vector, which is a valid result rather than an error.
func (v *Vectorizer) Transform(doc string) ([]float64, error) {
	if !v.fitted {
		return nil, ErrNotFitted
	}
	return v.vectorize(doc), nil
}

// Vocabulary returns the fitted terms in column order.
func (v *Vectorizer) Vocabulary() []string {
	return slices.Clone(v.terms)
}

// Weights returns the fitted IDF weights in column order.
func (v *Vectorizer) Weights() []float64 {
	return slices.Clone(v.idf)
}

// Features returns the vocabulary size, 0 before fitting.
func (v *Vectorizer) Features() int {
	return len(v.terms)
}

// vectorize builds the count*idf vector for doc and scales it to unit
// length. The zero vector is left untouched.
func (v *Vectorizer) vectorize(doc string) []float64 {
	vec := make([]float64, len(v.terms))

	var sumSquares float64
	for term, count := range termCounts(doc) {
		col, ok := v.vocab[term]
		if !ok {
			continue
		}
		w := float64(count) * v.idf[col]
		vec[col] = w
		sumSquares += w * w
	}

	if sumSquares > 0 {
		norm := math.Sqrt(sumSquares)
		for i := range vec {
			vec[i] /= norm
		}
	}

	return vec
}

// termCounts counts every unigram and adjacent bigram in a normalized
// token string. Bigram terms join their tokens with a single space.
func termCounts(doc string) map[string]int {
	tokens := strings.Fields(doc)
	counts := make(map[string]int, 2*len(tokens))

	for i, tok := range tokens {
		counts[tok]++
		if i+1 < len(tokens) {
			counts[tok+" "+tokens[i+1]]++
		}
	}

	return counts
}
