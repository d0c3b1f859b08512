package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateMovie(t *testing.T) {
	valid := &Movie{
		Name:      "The Lighthouse Keeper",
		Storyline: "A reclusive keeper discovers a message hidden inside the lamp room.",
	}
	require.NoError(t, ValidateMovie(valid))

	tests := []struct {
		name    string
		movie   *Movie
		wantErr error
	}{
		{
			name:    "nil movie",
			movie:   nil,
			wantErr: ErrInvalidMovie,
		},
		{
			name:    "empty name",
			movie:   &Movie{Name: "", Storyline: valid.Storyline},
			wantErr: ErrEmptyName,
		},
		{
			name:    "whitespace name",
			movie:   &Movie{Name: "   ", Storyline: valid.Storyline},
			wantErr: ErrEmptyName,
		},
		{
			name:    "empty storyline",
			movie:   &Movie{Name: "Some Movie", Storyline: ""},
			wantErr: ErrMissingStoryline,
		},
		{
			name:    "placeholder storyline",
			movie:   &Movie{Name: "Some Movie", Storyline: "No storyline available"},
			wantErr: ErrMissingStoryline,
		},
		{
			name:    "short storyline",
			movie:   &Movie{Name: "Some Movie", Storyline: "too short"},
			wantErr: ErrStorylineTooShort,
		},
		{
			name:    "padded short storyline",
			movie:   &Movie{Name: "Some Movie", Storyline: "  short  " + strings.Repeat(" ", 30)},
			wantErr: ErrStorylineTooShort,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateMovie(tt.movie)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidMovie)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("exactly minimum length passes", func(t *testing.T) {
		movie := &Movie{Name: "Edge", Storyline: strings.Repeat("x", MinStorylineLen)}
		assert.NoError(t, ValidateMovie(movie))
	})
}
