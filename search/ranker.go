package search

import (
	"fmt"
	"slices"
	"strings"

	"github.com/poiesic/reelrank/core"
	"github.com/poiesic/reelrank/vectorize"
)

// Hit is a single ranked corpus row.
type Hit struct {
	Row   int
	Score float64
}

// RankRow ranks every corpus row against the row at index row and returns
// up to topN hits, best first. The query row itself is excluded. Returns
// ErrRowOutOfRange when row falls outside the matrix.
func RankRow(matrix vectorize.Matrix, row, topN int) ([]Hit, error) {
	if row < 0 || row >= matrix.Rows() {
		return nil, fmt.Errorf("%w: row %d, matrix of %d", ErrRowOutOfRange, row, matrix.Rows())
	}

	hits := make([]Hit, 0, matrix.Rows()-1)
	for i, candidate := range matrix {
		if i == row {
			continue
		}
		hits = append(hits, Hit{Row: i, Score: dotProduct(matrix[row], candidate)})
	}

	return top(hits, topN), nil
}

// RankVector ranks every corpus row against an external query vector and
// returns up to topN hits, best first. No row is excluded; an all-zero
// query scores every row at zero and therefore returns the first topN
// rows in matrix order.
func RankVector(matrix vectorize.Matrix, query []float64, topN int) []Hit {
	hits := make([]Hit, 0, matrix.Rows())
	for i, candidate := range matrix {
		hits = append(hits, Hit{Row: i, Score: dotProduct(query, candidate)})
	}

	return top(hits, topN)
}

// FindTitle resolves a user-supplied name to a corpus row by
// case-insensitive substring containment, taking the first match in
// corpus order. Returns ErrTitleNotFound when nothing matches.
func FindTitle(movies []*core.Movie, name string) (int, error) {
	needle := strings.ToLower(name)
	for i, movie := range movies {
		if strings.Contains(strings.ToLower(movie.Name), needle) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrTitleNotFound, name)
}

// top sorts hits by descending score with ties on ascending row index and
// truncates to topN. topN below 1 yields no hits.
func top(hits []Hit, topN int) []Hit {
	slices.SortFunc(hits, func(a, b Hit) int {
		if a.Score != b.Score {
			if a.Score > b.Score {
				return -1
			}
			return 1
		}
		return a.Row - b.Row
	})

	if topN < 0 {
		topN = 0
	}
	if len(hits) > topN {
		hits = hits[:topN]
	}
	return hits
}

// dotProduct tolerates length mismatches by ignoring the excess of the
// longer vector.
func dotProduct(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var sum float64
	for i := 0; i < n; i++ {
		sum += a[i] * b[i]
	}
	return sum
}
