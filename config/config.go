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


// Package config loads and persists reelrank configuration from a TOML
// file, defaulting to ~/.reelrank/config.toml. Missing files yield the
// default configuration; missing keys keep their defaults.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/poiesic/reelrank/normalize"
	"github.com/poiesic/reelrank/vectorize"
)

const (
	defaultDirName  = ".reelrank"
	defaultFileName = "config.toml"
	defaultTopN     = 5
)

// Config holds the full reelrank configuration.
type Config struct {
	Data   DataConfig   `toml:"data"`
	Engine EngineConfig `toml:"engine"`
	Log    LogConfig    `toml:"log"`
}

// DataConfig locates the catalog database and the model artifact.
type DataConfig struct {
	CatalogPath string `toml:"catalog_path"`
	ModelPath   string `toml:"model_path"`
}

// EngineConfig holds the vectorizer and ranking parameters.
type EngineConfig struct {
	MaxFeatures     int     `toml:"max_features"`
	MinDocFreq      int     `toml:"min_doc_freq"`
	MaxDocFreqRatio float64 `toml:"max_doc_freq_ratio"`
	MinTokenLen     int     `toml:"min_token_len"`
	TopN            int     `toml:"top_n"`
}

// LogConfig holds logging parameters.
type LogConfig struct {
	Level string `toml:"level"`
}

// Default returns the default configuration rooted in the user's home
// directory.
func Default() Config {
	dir := defaultDir()
	return Config{
		Data: DataConfig{
			CatalogPath: filepath.Join(dir, "catalog"),
			ModelPath:   filepath.Join(dir, "model.rrnk"),
		},
		Engine: EngineConfig{
			MaxFeatures:     vectorize.DefaultMaxFeatures,
			MinDocFreq:      vectorize.DefaultMinDocFreq,
			MaxDocFreqRatio: vectorize.DefaultMaxDocFreqRatio,
			MinTokenLen:     normalize.DefaultMinTokenLen,
			TopN:            defaultTopN,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	return filepath.Join(defaultDir(), defaultFileName)
}

func defaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return defaultDirName
	}
	return filepath.Join(home, defaultDirName)
}

// Load reads configuration from path. An empty path means DefaultPath().
// A missing file is not an error; defaults are returned. Keys absent
// from the file keep their default values.
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultPath()
	}

	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes configuration to path, creating parent directories as
// needed. An empty path means DefaultPath().
func Save(cfg Config, path string) error {
	if path == "" {
		path = DefaultPath()
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
