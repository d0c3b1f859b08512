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


package model

import "errors"

var (
	// ErrNotFound indicates no model artifact exists at the given path.
	// Callers should treat this as "not trained yet", distinct from a
	// corrupt artifact.
	ErrNotFound = errors.New("model artifact not found")

	// ErrCorruptArtifact indicates the artifact could not be decoded:
	// wrong magic, unsupported format version, truncated or undecodable
	// bytes, or violated shape invariants.
	ErrCorruptArtifact = errors.New("corrupt model artifact")

	// ErrInvalidArtifact indicates an artifact failed invariant checks
	// before being written.
	ErrInvalidArtifact = errors.New("invalid model artifact")
)
