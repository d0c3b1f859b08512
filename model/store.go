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

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Save writes the artifact to path atomically. The bytes land in a
// temporary file in the same directory which is then renamed over the
// target, so a crash mid-write never leaves a partial artifact behind.
func Save(a *Artifact, path string) error {
	if err := a.validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidArtifact, err)
	}

	bs := encode(a)

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(bs); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing artifact: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing artifact: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing artifact: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing artifact: %w", err)
	}
	return nil
}

// Load reads an artifact from path. Returns ErrNotFound when the file
// does not exist and ErrCorruptArtifact when it cannot be decoded or
// fails shape validation.
func Load(path string) (*Artifact, error) {
	bs, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("reading artifact: %w", err)
	}
	return decode(bs)
}
