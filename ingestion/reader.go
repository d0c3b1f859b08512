package ingestion

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/poiesic/reelrank/core"
)

// Column headers accepted for each field, checked case-insensitively in
// order. Catalog exports in the wild disagree on naming, so several
// aliases are recognized.
var (
	nameColumns      = []string{"movie_name", "name", "title", "movie_title"}
	storylineColumns = []string{"storyline", "plot", "description", "overview", "synopsis"}
)

// ReadCatalog parses a catalog CSV stream into movie records. The first
// row must be a header containing a name column and a storyline column.
// Rows too short to hold both columns are skipped. No validation or
// normalization happens here; the pipeline does both.
func ReadCatalog(r io.Reader) ([]*core.Movie, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, ErrEmptyCatalog
	}
	if err != nil {
		return nil, fmt.Errorf("reading catalog header: %w", err)
	}

	nameIdx := findColumn(header, nameColumns)
	storyIdx := findColumn(header, storylineColumns)
	if nameIdx < 0 || storyIdx < 0 {
		return nil, fmt.Errorf("%w: %v", ErrMissingColumns, header)
	}

	var movies []*core.Movie
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading catalog row: %w", err)
		}
		if len(row) <= nameIdx || len(row) <= storyIdx {
			continue
		}

		movies = append(movies, &core.Movie{
			Name:      strings.TrimSpace(row[nameIdx]),
			Storyline: strings.TrimSpace(row[storyIdx]),
		})
	}

	if len(movies) == 0 {
		return nil, ErrEmptyCatalog
	}
	return movies, nil
}

func findColumn(header []string, candidates []string) int {
	for _, candidate := range candidates {
		for i, col := range header {
			if strings.EqualFold(strings.TrimSpace(col), candidate) {
				return i
			}
		}
	}
	return -1
}
