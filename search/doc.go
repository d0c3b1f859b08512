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


// Package search ranks corpus vectors by cosine similarity.
//
// Corpus rows are unit-length, so cosine similarity reduces to a dot
// product. Ranking is deterministic: descending score with ties broken by
// ascending row index, which also makes the all-zero query degenerate
// case well defined (the first rows in matrix order).
package search
