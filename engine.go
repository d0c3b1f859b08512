// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package reelrank

import (
	"log/slog"
	"math"
	"strings"

	"github.com/poiesic/reelrank/core"
	"github.com/poiesic/reelrank/model"
	"github.com/poiesic/reelrank/normalize"
	"github.com/poiesic/reelrank/search"
	"github.com/poiesic/reelrank/vectorize"
)

// Engine holds a trained recommendation model: the corpus, the fitted
// vectorizer, and the row-normalized document matrix. An Engine is
// immutable once built; retraining produces a new Engine.
type Engine struct {
	movies     []*core.Movie
	vectorizer *vectorize.Vectorizer
	matrix     vectorize.Matrix
	normalizer *normalize.Normalizer
	logger     *slog.Logger
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger == nil {
			logger = slog.Default()
		}
		e.logger = logger
	}
}

// WithNormalizer sets the normalizer used for free-text queries. It
// must match the normalizer the corpus tokens were produced with, or
// query terms will miss the vocabulary.
func WithNormalizer(nz *normalize.Normalizer) EngineOption {
	return func(e *Engine) {
		if nz != nil {
			e.normalizer = nz
		}
	}
}

// Train fits a model over the given movies. Movies must already carry
// normalized tokens; any without tokens get them from the engine's
// normalizer. Row i of the resulting matrix corresponds to movies[i].
func Train(movies []*core.Movie, cfg vectorize.Config, opts ...EngineOption) (*Engine, error) {
	e := &Engine{
		movies:     movies,
		normalizer: normalize.New(),
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}

	docs := make([]string, len(movies))
	for i, movie := range movies {
		if len(movie.Tokens) == 0 {
			movie.Tokens = e.normalizer.Tokens(movie.Storyline)
		}
		docs[i] = strings.Join(movie.Tokens, " ")
	}

	e.vectorizer = vectorize.New(cfg)
	matrix, err := e.vectorizer.FitTransform(docs)
	if err != nil {
		return nil, err
	}
	e.matrix = matrix

	e.logger.Info("model trained",
		"movies", len(movies),
		"features", e.vectorizer.Features())
	return e, nil
}

// LoadEngine restores an engine from a model artifact on disk.
func LoadEngine(path string, opts ...EngineOption) (*Engine, error) {
	artifact, err := model.Load(path)
	if err != nil {
		return nil, err
	}

	vectorizer, err := vectorize.Restore(artifact.Terms, artifact.Weights)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		movies:     artifact.Movies,
		vectorizer: vectorizer,
		matrix:     artifact.Matrix,
		normalizer: normalize.New(),
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}

	e.logger.Debug("model loaded",
		"movies", len(e.movies),
		"features", e.vectorizer.Features())
	return e, nil
}

// SaveModel persists the trained model to path.
func (e *Engine) SaveModel(path string) error {
	artifact := &model.Artifact{
		Movies:  e.movies,
		Terms:   e.vectorizer.Vocabulary(),
		Weights: e.vectorizer.Weights(),
		Matrix:  e.matrix,
	}
	return model.Save(artifact, path)
}

// MovieCount returns the number of movies in the trained corpus.
func (e *Engine) MovieCount() int {
	return len(e.movies)
}

// FeatureCount returns the vocabulary size of the trained model.
func (e *Engine) FeatureCount() int {
	return e.vectorizer.Features()
}

// Movies returns the trained corpus in row order.
func (e *Engine) Movies() []*core.Movie {
	return e.movies
}

// RecommendByTitle finds the catalog movie matching name and returns
// the topN most similar other movies. Returns search.ErrTitleNotFound
// when no catalog title matches.
func (e *Engine) RecommendByTitle(name string, topN int) ([]core.Recommendation, error) {
	row, err := search.FindTitle(e.movies, name)
	if err != nil {
		return nil, err
	}

	hits, err := search.RankRow(e.matrix, row, topN)
	if err != nil {
		return nil, err
	}
	return e.recommendations(hits), nil
}

// RecommendByText normalizes free text, projects it into the model's
// vector space, and returns the topN most similar movies. Text sharing
// no vocabulary with the corpus yields hits with zero scores.
func (e *Engine) RecommendByText(text string, topN int) ([]core.Recommendation, error) {
	doc := e.normalizer.Normalize(text)
	query, err := e.vectorizer.Transform(doc)
	if err != nil {
		return nil, err
	}

	hits := search.RankVector(e.matrix, query, topN)
	return e.recommendations(hits), nil
}

func (e *Engine) recommendations(hits []search.Hit) []core.Recommendation {
	recs := make([]core.Recommendation, len(hits))
	for i, hit := range hits {
		movie := e.movies[hit.Row]
		recs[i] = core.Recommendation{
			Name:         movie.Name,
			Storyline:    movie.Storyline,
			ScorePercent: math.Round(hit.Score*10000) / 100,
		}
	}
	return recs
}
