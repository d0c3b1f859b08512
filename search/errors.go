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


package search

import "errors"

var (
	// ErrRowOutOfRange is returned when a query row index falls outside
	// the corpus matrix.
	ErrRowOutOfRange = errors.New("row index out of range")

	// ErrTitleNotFound is returned when no stored title contains the
	// queried name. This is a normal user-input outcome; callers should
	// check it with errors.Is and present it as "no match".
	ErrTitleNotFound = errors.New("title not found")
)
