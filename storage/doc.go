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


// Package storage provides the storage abstraction layer for reelrank.
//
// This package defines repository interfaces that decouple storage
// implementation from business logic, so different backends (BadgerDB,
// in-memory, etc.) can be used interchangeably.
//
// # Constructor Return Type Pattern
//
// Public constructors return interfaces to enforce abstraction:
//
//	repo, err := badger.NewMovieRepository(backend)  // storage.MovieRepository
//
// Internal package constructors may return concrete types since they're
// only used within the implementation package.
//
// # Usage
//
// Create a repository instance:
//
//	backend, err := badger.OpenBackend("/path/to/catalog", false)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	repo, err := badger.NewMovieRepository(backend)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer repo.Close()
//
// Use in tests with in-memory storage:
//
//	repo, backend, err := badger.NewMemoryRepository()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer backend.Close()
//
// # Thread Safety
//
// All repository implementations must be thread-safe and support
// concurrent access from multiple goroutines.
//
// # Context Support
//
// All repository methods accept context.Context for cancellation
// and timeout support. Pass context.Background() for operations
// without specific timeout requirements.
package storage
