package storage

import (
	"context"

	"github.com/poiesic/reelrank/core"
)

// Repository provides common storage operations shared across all repositories.
// Implementations must be thread-safe and support concurrent access.
type Repository interface {
	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the storage backend and releases resources.
	Close() error
}

// MovieRepository provides operations for managing the movie catalog.
type MovieRepository interface {
	Repository

	// AddMovies adds one or more movies to the catalog.
	// Movies with Id=0 get content-based IDs derived from name and
	// storyline, so re-importing the same row is a no-op rather than a
	// duplicate. Sets AddedAt if not already set.
	// Returns the movies that were actually inserted.
	AddMovies(ctx context.Context, movies ...*core.Movie) ([]*core.Movie, error)

	// GetMovie retrieves a single movie by ID.
	// Returns ErrNotFound if the movie doesn't exist.
	GetMovie(ctx context.Context, id core.ID) (*core.Movie, error)

	// GetMovies retrieves multiple movies by their IDs.
	// Returns only the movies that exist (no error for missing movies).
	GetMovies(ctx context.Context, ids ...core.ID) ([]*core.Movie, error)

	// AllMovies retrieves every movie in the catalog in insertion order.
	// The order is stable across calls; training relies on it to map
	// matrix rows back to movies.
	AllMovies(ctx context.Context) ([]*core.Movie, error)

	// Count returns the number of movies in the catalog.
	Count(ctx context.Context) (int, error)

	// DeleteMovies removes movies by their IDs.
	// Returns ErrNotFound if any movie doesn't exist.
	DeleteMovies(ctx context.Context, ids ...core.ID) error
}
