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


// Package normalize turns raw storyline text into a normalized token string.
//
// The same Normalizer instance is used when building the corpus and when
// transforming free-text queries. Vocabulary lookups only work when both
// paths tokenize identically, so callers must never normalize text through
// any other route.
//
// Normalization steps, in order: lowercase, strip non-letter runes,
// collapse whitespace, drop stop words and tokens shorter than three
// characters, then reduce each surviving token to its base form with the
// Snowball English stemmer.
package normalize
