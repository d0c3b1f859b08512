package vectorize

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Normalized three-document corpus used across tests. The chef document
// shares no terms with the other two.
var testDocs = []string{
	"wizard boy fight dark lord",
	"wizard boy battl dark lord",
	"chef bake bread small town",
}

func TestFit_EmptyCorpus(t *testing.T) {
	v := New(Config{})
	err := v.Fit(nil)
	assert.ErrorIs(t, err, ErrEmptyCorpus)

	_, err = v.FitTransform([]string{})
	assert.ErrorIs(t, err, ErrEmptyCorpus)
}

func TestFit_DegenerateVocabulary(t *testing.T) {
	t.Run("all terms too rare", func(t *testing.T) {
		v := New(Config{})
		err := v.Fit([]string{"alpha beta", "gamma delta", "epsilon zeta"})
		assert.ErrorIs(t, err, ErrDegenerateVocabulary)
	})

	t.Run("all terms too common", func(t *testing.T) {
		// With two identical documents every term has df=2, above the
		// floor(0.8*2)=1 ceiling.
		v := New(Config{})
		err := v.Fit([]string{"same story twice", "same story twice"})
		assert.ErrorIs(t, err, ErrDegenerateVocabulary)
	})
}

func TestFit_DocumentFrequencyFilters(t *testing.T) {
	v := New(Config{})
	require.NoError(t, v.Fit(testDocs))

	// Only terms shared by the two wizard documents survive df >= 2; the
	// chef document's terms are all singletons.
	want := []string{"boy", "dark", "dark lord", "lord", "wizard", "wizard boy"}
	assert.Equal(t, want, v.Vocabulary())
	assert.Equal(t, len(want), v.Features())
}

func TestFit_MaxDocFreqExcludesUniversalTerms(t *testing.T) {
	v := New(Config{MinDocFreq: 1, MaxFeatures: -1})
	docs := []string{"common alpha", "common beta", "common alpha", "common beta"}
	require.NoError(t, v.Fit(docs))

	// df("common") = 4 > floor(0.8*4) = 3.
	assert.NotContains(t, v.Vocabulary(), "common")
	assert.Contains(t, v.Vocabulary(), "alpha")
	assert.Contains(t, v.Vocabulary(), "beta")
}

func TestFit_MaxFeaturesKeepsMostFrequent(t *testing.T) {
	v := New(Config{MaxFeatures: 2, MinDocFreq: 1, MaxDocFreqRatio: 1})
	docs := []string{"apple apple banana", "apple cherry banana"}
	require.NoError(t, v.Fit(docs))

	// Corpus counts: apple=3, banana=2, everything else below.
	assert.Equal(t, []string{"apple", "banana"}, v.Vocabulary())
}

func TestFit_SmoothedIDF(t *testing.T) {
	v := New(Config{})
	require.NoError(t, v.Fit(testDocs))

	// Every surviving term has df=2 in a corpus of 3.
	wantIDF := math.Log(4.0/3.0) + 1
	for i, w := range v.Weights() {
		assert.InDelta(t, wantIDF, w, 1e-12, "column %d", i)
	}
}

func TestFitTransform_RowNormalization(t *testing.T) {
	v := New(Config{})
	matrix, err := v.FitTransform(testDocs)
	require.NoError(t, err)

	require.Equal(t, 3, matrix.Rows())
	require.Equal(t, v.Features(), matrix.Cols())

	for i, row := range matrix[:2] {
		var sumSquares float64
		for _, x := range row {
			require.GreaterOrEqual(t, x, 0.0)
			sumSquares += x * x
		}
		assert.InDelta(t, 1.0, sumSquares, 1e-12, "row %d", i)
	}

	// The chef document holds no vocabulary terms; its row stays zero.
	for _, x := range matrix[2] {
		assert.Zero(t, x)
	}
}

func TestTransform(t *testing.T) {
	t.Run("before fit", func(t *testing.T) {
		_, err := New(Config{}).Transform("wizard")
		assert.ErrorIs(t, err, ErrNotFitted)
	})

	v := New(Config{})
	_, err := v.FitTransform(testDocs)
	require.NoError(t, err)

	t.Run("out-of-vocabulary text yields zero vector", func(t *testing.T) {
		vec, err := v.Transform("space pirat steal treasur")
		require.NoError(t, err)
		require.Len(t, vec, v.Features())
		for _, x := range vec {
			assert.Zero(t, x)
		}
	})

	t.Run("term counts weight the vector", func(t *testing.T) {
		vec, err := v.Transform("wizard wizard dark")
		require.NoError(t, err)

		terms := v.Vocabulary()
		wizard := indexOf(t, terms, "wizard")
		dark := indexOf(t, terms, "dark")
		// Equal IDF, double the count.
		assert.InDelta(t, 2*vec[dark], vec[wizard], 1e-12)
	})

	t.Run("empty text yields zero vector", func(t *testing.T) {
		vec, err := v.Transform("")
		require.NoError(t, err)
		for _, x := range vec {
			assert.Zero(t, x)
		}
	})
}

func TestFitTransform_Deterministic(t *testing.T) {
	a := New(Config{})
	b := New(Config{})

	ma, err := a.FitTransform(testDocs)
	require.NoError(t, err)
	mb, err := b.FitTransform(testDocs)
	require.NoError(t, err)

	assert.Equal(t, a.Vocabulary(), b.Vocabulary())
	assert.Equal(t, a.Weights(), b.Weights())
	assert.Equal(t, ma, mb)
}

func TestRestore(t *testing.T) {
	v := New(Config{})
	_, err := v.FitTransform(testDocs)
	require.NoError(t, err)

	t.Run("round trip preserves transforms", func(t *testing.T) {
		restored, err := Restore(v.Vocabulary(), v.Weights())
		require.NoError(t, err)

		want, err := v.Transform("wizard boy dark lord")
		require.NoError(t, err)
		got, err := restored.Transform("wizard boy dark lord")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("length mismatch", func(t *testing.T) {
		_, err := Restore([]string{"a", "b"}, []float64{1})
		assert.ErrorIs(t, err, ErrInvalidModel)
	})

	t.Run("duplicate term", func(t *testing.T) {
		_, err := Restore([]string{"a", "a"}, []float64{1, 1})
		assert.ErrorIs(t, err, ErrInvalidModel)
	})
}

func indexOf(t *testing.T, terms []string, term string) int {
	t.Helper()
	for i, candidate := range terms {
		if candidate == term {
			return i
		}
	}
	t.Fatalf("term %q not in vocabulary %v", term, terms)
	return -1
}
