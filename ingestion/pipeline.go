package ingestion

import (
	"context"
	"io"
	"log/slog"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/reelrank/core"
	"github.com/poiesic/reelrank/normalize"
	"github.com/poiesic/reelrank/storage"
)

// Pipeline orchestrates the import of movie catalogs. It validates
// records, normalizes storylines into token lists using a worker pool,
// and stores the results.
type Pipeline struct {
	repository storage.MovieRepository
	normalizer *normalize.Normalizer
	pool       *ants.Pool
	tracker    *ProgressTracker
	logger     *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for concurrent normalization.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}
		if p.pool != nil {
			p.pool.Release()
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		p.pool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// WithProgress attaches a progress tracker that is updated as records
// are normalized.
func WithProgress(tracker *ProgressTracker) Option {
	return func(p *Pipeline) error {
		p.tracker = tracker
		return nil
	}
}

// NewPipeline creates a new import pipeline.
func NewPipeline(
	repository storage.MovieRepository,
	normalizer *normalize.Normalizer,
	opts ...Option,
) (*Pipeline, error) {
	if repository == nil {
		return nil, ErrRepositoryRequired
	}
	if normalizer == nil {
		return nil, ErrNormalizerRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		repository: repository,
		normalizer: normalizer,
		pool:       pool,
		logger:     slog.Default(),
	}

	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	return p, nil
}

// ImportStats summarizes an import run.
type ImportStats struct {
	Read       int // records parsed from the catalog
	Invalid    int // records rejected by validation
	Inserted   int // records newly added to storage
	Duplicates int // records already present in storage
}

// Import validates, normalizes, and stores the given movies. Invalid
// records are logged and counted but do not fail the import. Records
// whose content ID already exists in storage count as duplicates.
func (p *Pipeline) Import(ctx context.Context, movies []*core.Movie) (ImportStats, error) {
	stats := ImportStats{Read: len(movies)}

	valid := make([]*core.Movie, 0, len(movies))
	for _, movie := range movies {
		if err := core.ValidateMovie(movie); err != nil {
			stats.Invalid++
			p.logger.Debug("skipping invalid record", "name", movie.Name, "err", err)
			continue
		}
		valid = append(valid, movie)
	}

	if p.tracker != nil {
		p.tracker.Start()
	}

	// Normalize concurrently. Each worker owns exactly one movie, so no
	// locking is needed beyond the WaitGroup.
	var wg sync.WaitGroup
	for _, movie := range valid {
		movie := movie
		wg.Add(1)
		err := p.pool.Submit(func() {
			defer wg.Done()
			movie.Tokens = p.normalizer.Tokens(movie.Storyline)
			if p.tracker != nil {
				p.tracker.Increment(1)
			}
		})
		if err != nil {
			wg.Done()
			return stats, err
		}
	}
	wg.Wait()

	if p.tracker != nil {
		p.tracker.Finish()
	}

	inserted, err := p.repository.AddMovies(ctx, valid...)
	if err != nil {
		return stats, err
	}

	stats.Inserted = len(inserted)
	stats.Duplicates = len(valid) - len(inserted)
	return stats, nil
}

// ImportReader parses a catalog CSV stream and imports it.
func (p *Pipeline) ImportReader(ctx context.Context, r io.Reader) (ImportStats, error) {
	movies, err := ReadCatalog(r)
	if err != nil {
		return ImportStats{}, err
	}
	return p.Import(ctx, movies)
}

// Release releases the worker pool.
// The pipeline should not be used after calling Release.
func (p *Pipeline) Release() {
	if p.pool != nil {
		p.pool.Release()
	}
}
