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


package vectorize

import "errors"

var (
	// ErrEmptyCorpus is returned when Fit is given zero documents.
	ErrEmptyCorpus = errors.New("empty corpus")

	// ErrDegenerateVocabulary is returned when no term survives the
	// document-frequency filters, typically because the corpus is too
	// small or too homogeneous.
	ErrDegenerateVocabulary = errors.New("no terms survive frequency filters")

	// ErrNotFitted is returned when Transform is called before Fit.
	ErrNotFitted = errors.New("vectorizer has not been fitted")

	// ErrInvalidModel is returned when a vectorizer is restored from
	// inconsistent vocabulary and weight data.
	ErrInvalidModel = errors.New("inconsistent vocabulary and weights")
)
