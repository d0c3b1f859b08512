package ingestion

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/reelrank/core"
	"github.com/poiesic/reelrank/normalize"
	"github.com/poiesic/reelrank/storage/badger"
)

func newTestPipeline(t *testing.T, opts ...Option) *Pipeline {
	t.Helper()
	repo, backend, err := badger.NewMemoryRepository()
	require.NoError(t, err)
	t.Cleanup(func() {
		repo.Close()
		backend.Close()
	})

	p, err := NewPipeline(repo, normalize.New(), opts...)
	require.NoError(t, err)
	t.Cleanup(p.Release)
	return p
}

func TestNewPipelineValidation(t *testing.T) {
	_, err := NewPipeline(nil, normalize.New())
	assert.ErrorIs(t, err, ErrRepositoryRequired)

	repo, backend, err := badger.NewMemoryRepository()
	require.NoError(t, err)
	defer func() { repo.Close(); backend.Close() }()

	_, err = NewPipeline(repo, nil)
	assert.ErrorIs(t, err, ErrNormalizerRequired)
}

func TestImportNormalizesAndStores(t *testing.T) {
	p := newTestPipeline(t)

	movies := []*core.Movie{
		{Name: "Spellbound", Storyline: "The wizard boy fights a dark lord!"},
	}
	stats, err := p.Import(context.Background(), movies)
	require.NoError(t, err)

	assert.Equal(t, 1, stats.Read)
	assert.Equal(t, 1, stats.Inserted)
	assert.Equal(t, 0, stats.Invalid)

	all, err := p.repository.AllMovies(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, []string{"wizard", "boy", "fight", "dark", "lord"}, all[0].Tokens)
}

func TestImportSkipsInvalidRecords(t *testing.T) {
	p := newTestPipeline(t)

	movies := []*core.Movie{
		{Name: "Spellbound", Storyline: "A wizard boy fights a dark lord."},
		{Name: "", Storyline: "A valid storyline with no name attached."},
		{Name: "Empty", Storyline: ""},
		{Name: "Placeholder", Storyline: "No Storyline Available"},
		{Name: "Short", Storyline: "Too short."},
	}
	stats, err := p.Import(context.Background(), movies)
	require.NoError(t, err)

	assert.Equal(t, 5, stats.Read)
	assert.Equal(t, 4, stats.Invalid)
	assert.Equal(t, 1, stats.Inserted)
}

func TestImportCountsDuplicates(t *testing.T) {
	p := newTestPipeline(t)

	movies := []*core.Movie{
		{Name: "Spellbound", Storyline: "A wizard boy fights a dark lord."},
	}
	_, err := p.Import(context.Background(), movies)
	require.NoError(t, err)

	// Same content, fresh record values
	again := []*core.Movie{
		{Name: "Spellbound", Storyline: "A wizard boy fights a dark lord."},
	}
	stats, err := p.Import(context.Background(), again)
	require.NoError(t, err)

	assert.Equal(t, 0, stats.Inserted)
	assert.Equal(t, 1, stats.Duplicates)
}

func TestImportReader(t *testing.T) {
	p := newTestPipeline(t)

	csv := `Movie_Name,Storyline
Spellbound,"A wizard boy fights a dark lord."
Rising Crust,"A chef bakes bread in a small town."
`
	stats, err := p.ImportReader(context.Background(), strings.NewReader(csv))
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Inserted)
}

func TestImportWithProgress(t *testing.T) {
	var buf bytes.Buffer
	tracker := NewProgressTracker(&buf, 2, 1)
	p := newTestPipeline(t, WithProgress(tracker), WithPoolSize(2))

	movies := []*core.Movie{
		{Name: "Spellbound", Storyline: "A wizard boy fights a dark lord."},
		{Name: "Rising Crust", Storyline: "A chef bakes bread in a small town."},
	}
	_, err := p.Import(context.Background(), movies)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "2/2")
}
