package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIDFromContent(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		id1 := IDFromContent("a wizard boy fights a dark lord")
		id2 := IDFromContent("a wizard boy fights a dark lord")
		assert.Equal(t, id1, id2)
	})

	t.Run("different content different ID", func(t *testing.T) {
		id1 := IDFromContent("content one")
		id2 := IDFromContent("content two")
		assert.NotEqual(t, id1, id2)
	})

	t.Run("empty content produces valid ID", func(t *testing.T) {
		id := IDFromContent("")
		assert.NotZero(t, id)
	})
}

func TestMovieID(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		assert.Equal(t, MovieID("Dune", "desert planet"), MovieID("Dune", "desert planet"))
	})

	t.Run("field boundary does not collide", func(t *testing.T) {
		// Without a separator, "ab"+"c" and "a"+"bc" would hash identically.
		assert.NotEqual(t, MovieID("ab", "c"), MovieID("a", "bc"))
	})
}
