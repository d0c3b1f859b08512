package model

import (
	"fmt"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"
	"github.com/poiesic/reelrank/core"
	"github.com/poiesic/reelrank/vectorize"
)

// artifactMagic identifies a reelrank model file.
const artifactMagic = "RRNK"

// ArtifactVersion is the current artifact format version. Bump it on any
// change to the encoding below or to the MUS codecs it relies on.
const ArtifactVersion = 1

// encode serializes an artifact: magic, version, movies, vocabulary
// terms, IDF weights, then the matrix as row and column counts followed
// by values in row-major order.
func encode(a *Artifact) []byte {
	size := len(artifactMagic)
	size += varint.Int.Size(ArtifactVersion)

	size += varint.Int.Size(len(a.Movies))
	for _, movie := range a.Movies {
		size += core.MovieMUS.Size(*movie)
	}

	size += varint.Int.Size(len(a.Terms))
	for _, term := range a.Terms {
		size += ord.String.Size(term)
	}

	size += varint.Int.Size(len(a.Weights))
	for _, w := range a.Weights {
		size += raw.Float64.Size(w)
	}

	size += varint.Int.Size(a.Matrix.Rows())
	size += varint.Int.Size(a.Matrix.Cols())
	for _, row := range a.Matrix {
		for _, x := range row {
			size += raw.Float64.Size(x)
		}
	}

	bs := make([]byte, size)
	n := copy(bs, artifactMagic)
	n += varint.Int.Marshal(ArtifactVersion, bs[n:])

	n += varint.Int.Marshal(len(a.Movies), bs[n:])
	for _, movie := range a.Movies {
		n += core.MovieMUS.Marshal(*movie, bs[n:])
	}

	n += varint.Int.Marshal(len(a.Terms), bs[n:])
	for _, term := range a.Terms {
		n += ord.String.Marshal(term, bs[n:])
	}

	n += varint.Int.Marshal(len(a.Weights), bs[n:])
	for _, w := range a.Weights {
		n += raw.Float64.Marshal(w, bs[n:])
	}

	n += varint.Int.Marshal(a.Matrix.Rows(), bs[n:])
	n += varint.Int.Marshal(a.Matrix.Cols(), bs[n:])
	for _, row := range a.Matrix {
		for _, x := range row {
			n += raw.Float64.Marshal(x, bs[n:])
		}
	}

	return bs
}

// decode deserializes an artifact, reporting every failure as
// ErrCorruptArtifact with the underlying cause preserved.
func decode(bs []byte) (*Artifact, error) {
	if len(bs) < len(artifactMagic) || string(bs[:len(artifactMagic)]) != artifactMagic {
		return nil, fmt.Errorf("%w: bad magic", ErrCorruptArtifact)
	}
	n := len(artifactMagic)

	version, n1, err := varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return nil, fmt.Errorf("%w: reading version: %w", ErrCorruptArtifact, err)
	}
	if version != ArtifactVersion {
		return nil, fmt.Errorf("%w: unsupported format version %d (want %d)",
			ErrCorruptArtifact, version, ArtifactVersion)
	}

	movieCount, n1, err := varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return nil, fmt.Errorf("%w: reading movie count: %w", ErrCorruptArtifact, err)
	}
	if movieCount < 0 {
		return nil, fmt.Errorf("%w: negative movie count", ErrCorruptArtifact)
	}
	movies := make([]*core.Movie, 0, movieCount)
	for i := 0; i < movieCount; i++ {
		movie, n2, err := core.MovieMUS.Unmarshal(bs[n:])
		n += n2
		if err != nil {
			return nil, fmt.Errorf("%w: reading movie %d: %w", ErrCorruptArtifact, i, err)
		}
		movies = append(movies, &movie)
	}

	termCount, n1, err := varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return nil, fmt.Errorf("%w: reading term count: %w", ErrCorruptArtifact, err)
	}
	if termCount < 0 {
		return nil, fmt.Errorf("%w: negative term count", ErrCorruptArtifact)
	}
	terms := make([]string, 0, termCount)
	for i := 0; i < termCount; i++ {
		term, n2, err := ord.String.Unmarshal(bs[n:])
		n += n2
		if err != nil {
			return nil, fmt.Errorf("%w: reading term %d: %w", ErrCorruptArtifact, i, err)
		}
		terms = append(terms, term)
	}

	weightCount, n1, err := varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return nil, fmt.Errorf("%w: reading weight count: %w", ErrCorruptArtifact, err)
	}
	if weightCount < 0 {
		return nil, fmt.Errorf("%w: negative weight count", ErrCorruptArtifact)
	}
	weights := make([]float64, 0, weightCount)
	for i := 0; i < weightCount; i++ {
		w, n2, err := raw.Float64.Unmarshal(bs[n:])
		n += n2
		if err != nil {
			return nil, fmt.Errorf("%w: reading weight %d: %w", ErrCorruptArtifact, i, err)
		}
		weights = append(weights, w)
	}

	rows, n1, err := varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return nil, fmt.Errorf("%w: reading row count: %w", ErrCorruptArtifact, err)
	}
	cols, n1, err := varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return nil, fmt.Errorf("%w: reading column count: %w", ErrCorruptArtifact, err)
	}
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%w: negative matrix dimensions", ErrCorruptArtifact)
	}

	matrix := make(vectorize.Matrix, rows)
	for i := 0; i < rows; i++ {
		row := make([]float64, cols)
		for j := 0; j < cols; j++ {
			x, n2, err := raw.Float64.Unmarshal(bs[n:])
			n += n2
			if err != nil {
				return nil, fmt.Errorf("%w: reading matrix value (%d,%d): %w", ErrCorruptArtifact, i, j, err)
			}
			row[j] = x
		}
		matrix[i] = row
	}

	if n != len(bs) {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrCorruptArtifact, len(bs)-n)
	}

	artifact := &Artifact{
		Movies:  movies,
		Terms:   terms,
		Weights: weights,
		Matrix:  matrix,
	}
	if err := artifact.validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptArtifact, err)
	}
	return artifact, nil
}
