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


// Package model persists and restores a trained recommendation model.
//
// The artifact is a single binary file holding the ordered movie list,
// the vocabulary with its IDF weights, and the row-normalized corpus
// matrix. The three sections form one generation: none is usable without
// the others, so they are written and read as a unit.
//
// The file starts with a 4-byte magic and a format version so that an
// incompatible schema is rejected instead of silently misread. Writes go
// to a temporary file in the target directory followed by an atomic
// rename; a crash mid-write never leaves a partial artifact behind.
package model
