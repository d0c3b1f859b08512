package model

import (
	"fmt"

	"github.com/poiesic/reelrank/core"
	"github.com/poiesic/reelrank/vectorize"
)

// Artifact is the persisted model: the corpus in training order, the
// vocabulary terms in column order with their IDF weights, and one
// unit-length vector per corpus row. Row i of Matrix belongs to
// Movies[i]; that index is the only join key between the two.
type Artifact struct {
	Movies  []*core.Movie
	Terms   []string
	Weights []float64
	Matrix  vectorize.Matrix
}

// validate checks the shape invariants shared by save and load: one
// matrix row per movie, one weight per term, and every row as wide as
// the vocabulary.
func (a *Artifact) validate() error {
	if len(a.Movies) != a.Matrix.Rows() {
		return fmt.Errorf("%d movies but %d matrix rows", len(a.Movies), a.Matrix.Rows())
	}
	if len(a.Terms) != len(a.Weights) {
		return fmt.Errorf("%d terms but %d weights", len(a.Terms), len(a.Weights))
	}
	for i, row := range a.Matrix {
		if len(row) != len(a.Terms) {
			return fmt.Errorf("row %d has %d columns, vocabulary has %d terms", i, len(row), len(a.Terms))
		}
	}
	return nil
}
