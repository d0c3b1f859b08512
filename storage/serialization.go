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


package storage

import (
	"github.com/poiesic/reelrank/core"
)

// MarshalID serializes an ID to bytes.
func MarshalID(id core.ID) []byte {
	buf := make([]byte, core.IDMUS.Size(id))
	core.IDMUS.Marshal(id, buf)
	return buf
}

// UnmarshalID deserializes an ID from bytes.
func UnmarshalID(data []byte) (core.ID, error) {
	id, _, err := core.IDMUS.Unmarshal(data)
	return id, err
}

// MarshalMovie serializes a Movie to bytes.
func MarshalMovie(movie *core.Movie) []byte {
	buf := make([]byte, core.MovieMUS.Size(*movie))
	core.MovieMUS.Marshal(*movie, buf)
	return buf
}

// UnmarshalMovie deserializes a Movie from bytes.
func UnmarshalMovie(data []byte) (*core.Movie, error) {
	movie, _, err := core.MovieMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &movie, nil
}
