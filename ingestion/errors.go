package ingestion

import "errors"

var (
	// ErrRepositoryRequired is returned when a movie repository is not provided.
	ErrRepositoryRequired = errors.New("movie repository required")

	// ErrNormalizerRequired is returned when a normalizer is not provided.
	ErrNormalizerRequired = errors.New("normalizer required")

	// ErrEmptyCatalog is returned when the catalog file has no data rows.
	ErrEmptyCatalog = errors.New("catalog file has no data rows")

	// ErrMissingColumns is returned when the catalog header lacks a
	// recognizable name or storyline column.
	ErrMissingColumns = errors.New("catalog header missing name or storyline column")
)
