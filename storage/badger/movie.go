package badger

import (
	"context"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/reelrank/core"
	"github.com/poiesic/reelrank/storage"
)

// MovieRepository implements storage.MovieRepository for BadgerDB.
type MovieRepository struct {
	backend *Backend
	seq     *badger.Sequence
}

var _ storage.MovieRepository = (*MovieRepository)(nil)

// NewMovieRepository creates a new MovieRepository.
func NewMovieRepository(backend *Backend) (*MovieRepository, error) {
	seq, err := backend.GetSequence(movieOrdinalSeq)
	if err != nil {
		return nil, err
	}
	return &MovieRepository{
		backend: backend,
		seq:     seq,
	}, nil
}

// Close releases the ordinal sequence.
func (r *MovieRepository) Close() error {
	return r.seq.Release()
}

// WithTransaction delegates to the backend.
func (r *MovieRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// AddMovies adds one or more movies to the catalog. Movies whose
// content-based ID already exists are skipped, so re-importing a catalog
// file is idempotent. Returns only the movies that were inserted.
func (r *MovieRepository) AddMovies(ctx context.Context, movies ...*core.Movie) ([]*core.Movie, error) {
	var inserted []*core.Movie
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, movie := range movies {
			if movie.Id == 0 {
				movie.Id = core.MovieID(movie.Name, movie.Storyline)
			}

			key := makeMovieKey(movie.Id)
			_, err := tx.Get(key)
			if err == nil {
				// Already in the catalog
				continue
			}
			if err != badger.ErrKeyNotFound {
				return err
			}

			if movie.AddedAt.IsZero() {
				movie.AddedAt = time.Now().UTC()
			}

			if err := tx.Set(key, storage.MarshalMovie(movie)); err != nil {
				return err
			}

			ordinal, err := r.seq.Next()
			if err != nil {
				return err
			}
			if err := tx.Set(makeOrdinalKey(ordinal), storage.MarshalID(movie.Id)); err != nil {
				return err
			}

			inserted = append(inserted, movie)
		}
		return tx.Commit()
	}, true)

	if err != nil {
		return nil, err
	}
	return inserted, nil
}

// GetMovie retrieves a single movie by ID.
func (r *MovieRepository) GetMovie(ctx context.Context, id core.ID) (*core.Movie, error) {
	var result *core.Movie
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		result, err = readMovie(tx, makeMovieKey(id))
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// GetMovies retrieves multiple movies by their IDs.
// Missing movies are skipped without error.
func (r *MovieRepository) GetMovies(ctx context.Context, ids ...core.ID) ([]*core.Movie, error) {
	var result []*core.Movie
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			movie, err := readMovie(tx, makeMovieKey(id))
			if err != nil {
				return err
			}
			if movie != nil {
				result = append(result, movie)
			}
		}
		return nil
	}, false)
	return result, err
}

// AllMovies retrieves every movie in insertion order by walking the
// ordinal index. Dangling index entries left behind by deletes are
// skipped.
func (r *MovieRepository) AllMovies(ctx context.Context) ([]*core.Movie, error) {
	var results []*core.Movie
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(movieOrdinalPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var id core.ID
			err := iter.Item().Value(func(val []byte) error {
				var err error
				id, err = storage.UnmarshalID(val)
				return err
			})
			if err != nil {
				return err
			}

			movie, err := readMovie(tx, makeMovieKey(id))
			if err != nil {
				return err
			}
			if movie != nil {
				results = append(results, movie)
			}
		}
		return nil
	}, false)

	if err != nil {
		return nil, err
	}
	return results, nil
}

// Count returns the number of movies in the catalog.
func (r *MovieRepository) Count(ctx context.Context) (int, error) {
	count := 0
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(movieRecordPrefix + ":")
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			count++
		}
		return nil
	}, false)
	return count, err
}

// DeleteMovies removes movies by their IDs along with their ordinal
// index entries.
func (r *MovieRepository) DeleteMovies(ctx context.Context, ids ...core.ID) error {
	victims := make(map[core.ID]bool, len(ids))
	for _, id := range ids {
		victims[id] = true
	}

	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeMovieKey(id)
			movie, err := readMovie(tx, key)
			if err != nil {
				return err
			}
			if movie == nil {
				return storage.ErrNotFound
			}
			if err := tx.Delete(key); err != nil {
				return err
			}
		}

		// Sweep the ordinal index in one pass
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(movieOrdinalPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		var stale [][]byte
		for iter.Rewind(); iter.Valid(); iter.Next() {
			item := iter.Item()
			var id core.ID
			err := item.Value(func(val []byte) error {
				var err error
				id, err = storage.UnmarshalID(val)
				return err
			})
			if err != nil {
				return err
			}
			if victims[id] {
				stale = append(stale, item.KeyCopy(nil))
			}
		}
		iter.Close()

		for _, key := range stale {
			if err := tx.Delete(key); err != nil {
				return err
			}
		}

		return tx.Commit()
	}, true)
}

// readMovie reads a movie from the transaction. Returns nil without
// error when the key does not exist.
func readMovie(tx *badger.Txn, key []byte) (*core.Movie, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var movie *core.Movie
	err = item.Value(func(val []byte) error {
		var err error
		movie, err = storage.UnmarshalMovie(val)
		return err
	})
	return movie, err
}
