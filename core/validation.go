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


package core

import (
	"fmt"
	"strings"
)

// storylinePlaceholder is emitted by upstream sources for movies without
// a published storyline.
const storylinePlaceholder = "no storyline available"

// ValidateMovie validates a Movie according to domain rules.
//
// Validation rules:
//   - Name must not be empty
//   - Storyline must be present and not a known placeholder
//   - Storyline must be at least MinStorylineLen bytes after trimming
//
// NOT validated (populated by processors):
//   - Tokens (can be empty until the normalization processor runs)
//   - ID (computed from content at storage time)
func ValidateMovie(movie *Movie) error {
	if movie == nil {
		return fmt.Errorf("%w: movie is nil", ErrInvalidMovie)
	}

	if strings.TrimSpace(movie.Name) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidMovie, ErrEmptyName)
	}

	storyline := strings.TrimSpace(movie.Storyline)
	if storyline == "" || strings.EqualFold(storyline, storylinePlaceholder) {
		return fmt.Errorf("%w: %w", ErrInvalidMovie, ErrMissingStoryline)
	}

	if len(storyline) < MinStorylineLen {
		return fmt.Errorf("%w: %w (%d bytes)", ErrInvalidMovie, ErrStorylineTooShort, len(storyline))
	}

	return nil
}
