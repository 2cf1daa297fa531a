package semlayer

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/semlayer/ai/mock"
	"github.com/poiesic/semlayer/core"
)

const (
	testConceptsPath = "data/concepts.yaml"
	testDocsDir      = "data/documents"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	engine, err := NewEngine(context.Background(), testConceptsPath, testDocsDir,
		WithEmbedder(mock.NewWordOverlapEmbedder(256)),
		WithEmbeddingPoolSize(1),
	)
	require.NoError(t, err)
	return engine
}

func TestNewEngine(t *testing.T) {
	engine := newTestEngine(t)

	assert.Len(t, engine.Graph().All(), 5)
	assert.Len(t, engine.Store().All(), 5)
	assert.NotNil(t, engine.Pipeline())
}

func TestEngineClose(t *testing.T) {
	engine := newTestEngine(t)
	assert.NoError(t, engine.Close())
}

func TestNewEngine_BadPaths(t *testing.T) {
	ctx := context.Background()
	missing := filepath.Join(t.TempDir(), "nope")

	t.Run("missing concepts file", func(t *testing.T) {
		_, err := NewEngine(ctx, missing, testDocsDir,
			WithEmbedder(mock.NewMockEmbedder()))
		assert.Error(t, err)
	})

	t.Run("missing documents dir", func(t *testing.T) {
		_, err := NewEngine(ctx, testConceptsPath, missing,
			WithEmbedder(mock.NewMockEmbedder()))
		assert.Error(t, err)
	})
}

func TestEngineQuery(t *testing.T) {
	engine := newTestEngine(t)
	ctx := context.Background()

	t.Run("concept filtered query", func(t *testing.T) {
		results, err := engine.Query(ctx, "how do new hires get benefits?", 3)
		require.NoError(t, err)
		require.NotEmpty(t, results)

		assert.Equal(t, "doc_onboarding", results[0].DocId)
		assert.Contains(t, results[0].MatchedConcepts, "Employee Onboarding")
		assert.NotEmpty(t, results[0].Snippet)
	})

	t.Run("vendor invoice query", func(t *testing.T) {
		results, err := engine.Query(ctx, "how do we approve vendor invoices?", 2)
		require.NoError(t, err)
		require.NotEmpty(t, results)
		assert.Equal(t, "doc_procurement", results[0].DocId)
	})

	t.Run("no concept match searches everything", func(t *testing.T) {
		results, err := engine.Query(ctx, "completely unrelated gibberish", 10)
		require.NoError(t, err)
		assert.Len(t, results, 5)
	})

	t.Run("empty query is rejected", func(t *testing.T) {
		_, err := engine.Query(ctx, "", 5)
		assert.ErrorIs(t, err, core.ErrEmptyQuery)
	})

	t.Run("results ordered by score", func(t *testing.T) {
		results, err := engine.Query(ctx, "budget allocation and spending limits", 5)
		require.NoError(t, err)
		require.NotEmpty(t, results)
		assert.Equal(t, "doc_budget", results[0].DocId)
		for i := 0; i < len(results)-1; i++ {
			assert.GreaterOrEqual(t, results[i].Score, results[i+1].Score)
		}
	})
}
