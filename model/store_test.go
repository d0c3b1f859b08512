package model

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/reelrank/core"
	"github.com/poiesic/reelrank/vectorize"
)

func testArtifact(t *testing.T) *Artifact {
	t.Helper()
	added := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	movies := []*core.Movie{
		{
			Id:        core.MovieID("Spellbound", "A wizard boy fights a dark lord."),
			Name:      "Spellbound",
			Storyline: "A wizard boy fights a dark lord.",
			Tokens:    []string{"wizard", "boy", "fight", "dark", "lord"},
			AddedAt:   added,
		},
		{
			Id:        core.MovieID("Rising Crust", "A chef bakes bread in a small town."),
			Name:      "Rising Crust",
			Storyline: "A chef bakes bread in a small town.",
			Tokens:    []string{"chef", "bake", "bread", "small", "town"},
			AddedAt:   added,
		},
	}
	return &Artifact{
		Movies:  movies,
		Terms:   []string{"boy", "wizard"},
		Weights: []float64{1.2876, 1.2876},
		Matrix: vectorize.Matrix{
			{0.7071, 0.7071},
			{0, 0},
		},
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.rrnk")
	original := testArtifact(t)

	require.NoError(t, Save(original, path))

	loaded, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, original.Terms, loaded.Terms)
	assert.Equal(t, original.Weights, loaded.Weights)
	assert.Equal(t, original.Matrix, loaded.Matrix)
	require.Len(t, loaded.Movies, len(original.Movies))
	for i, movie := range original.Movies {
		assert.Equal(t, *movie, *loaded.Movies[i])
	}
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.rrnk"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoadCorrupt(t *testing.T) {
	dir := t.TempDir()

	t.Run("bad magic", func(t *testing.T) {
		path := filepath.Join(dir, "magic.rrnk")
		require.NoError(t, os.WriteFile(path, []byte("NOPE\x01"), 0o644))
		_, err := Load(path)
		assert.ErrorIs(t, err, ErrCorruptArtifact)
	})

	t.Run("truncated", func(t *testing.T) {
		path := filepath.Join(dir, "full.rrnk")
		require.NoError(t, Save(testArtifact(t), path))
		bs, err := os.ReadFile(path)
		require.NoError(t, err)

		short := filepath.Join(dir, "short.rrnk")
		require.NoError(t, os.WriteFile(short, bs[:len(bs)/2], 0o644))
		_, err = Load(short)
		assert.ErrorIs(t, err, ErrCorruptArtifact)
	})

	t.Run("trailing bytes", func(t *testing.T) {
		path := filepath.Join(dir, "full2.rrnk")
		require.NoError(t, Save(testArtifact(t), path))
		bs, err := os.ReadFile(path)
		require.NoError(t, err)

		long := filepath.Join(dir, "long.rrnk")
		require.NoError(t, os.WriteFile(long, append(bs, 0xFF), 0o644))
		_, err = Load(long)
		assert.ErrorIs(t, err, ErrCorruptArtifact)
	})
}

func TestSaveInvalidArtifact(t *testing.T) {
	a := testArtifact(t)
	a.Weights = a.Weights[:1] // now shorter than Terms

	err := Save(a, filepath.Join(t.TempDir(), "model.rrnk"))
	assert.ErrorIs(t, err, ErrInvalidArtifact)
}

func TestSaveOverwritesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.rrnk")
	first := testArtifact(t)
	require.NoError(t, Save(first, path))

	second := testArtifact(t)
	second.Terms = []string{"bread", "chef"}
	second.Weights = []float64{1.1, 1.1}
	second.Matrix = vectorize.Matrix{{0, 0}, {0.7071, 0.7071}}
	require.NoError(t, Save(second, path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, second.Terms, loaded.Terms)
}
