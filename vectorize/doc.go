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


// Package vectorize implements TF-IDF vectorization over normalized
// token strings.
//
// A Vectorizer learns a fixed vocabulary of unigrams and adjacent bigrams
// from a training corpus, weights each term by smoothed inverse document
// frequency, and produces unit-length document vectors. Once fitted it is
// immutable: later queries are transformed against the frozen vocabulary
// and weights, and terms unseen at training time contribute nothing.
//
// The weighting contract is fixed at idf(t) = ln((1+N)/(1+df(t))) + 1,
// where N is the corpus size and df(t) the number of documents containing
// t. Persisted models depend on this formula staying stable.
package vectorize
