package search

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sort"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/poiesic/semlayer/ai"
	"github.com/poiesic/semlayer/core"
)

// Scored pairs a document with its similarity score for a query.
type Scored struct {
	Doc   *core.Document
	Score float32
}

// Ranker scores candidate documents against a query by cosine similarity.
// Document vectors are computed once at construction, normalized to unit
// length and cached in memory keyed by document id; only the query is
// embedded per request.
type Ranker struct {
	embedder ai.Embedder
	vectors  map[string][]float32
	poolSize int
	logger   *slog.Logger
}

// RankerOption configures a Ranker.
type RankerOption func(*Ranker)

// WithPoolSize sets the worker pool size used to embed documents at
// construction. Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) RankerOption {
	return func(r *Ranker) {
		if size < 1 {
			size = 1
		}
		r.poolSize = size
	}
}

// WithRankerLogger sets a custom logger.
// Default is slog.Default().
func WithRankerLogger(logger *slog.Logger) RankerOption {
	return func(r *Ranker) {
		if logger == nil {
			logger = slog.Default()
		}
		r.logger = logger
	}
}

// NewRanker creates a ranker and precomputes an embedding for every document.
// Embedding runs concurrently on a worker pool; any single failure aborts
// construction, so a ranker is never exposed with a partial vector cache.
func NewRanker(ctx context.Context, embedder ai.Embedder, docs []*core.Document, opts ...RankerOption) (*Ranker, error) {
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	r := &Ranker{
		embedder: embedder,
		vectors:  make(map[string][]float32, len(docs)),
		poolSize: poolSize,
		logger:   slog.Default().With("component", "ranker"),
	}
	for _, opt := range opts {
		opt(r)
	}

	if err := r.embedDocuments(ctx, docs); err != nil {
		return nil, err
	}
	return r, nil
}

// embedDocuments fills the vector cache, one embedding task per document.
func (r *Ranker) embedDocuments(ctx context.Context, docs []*core.Document) error {
	if len(docs) == 0 {
		return nil
	}

	pool, err := ants.NewPool(r.poolSize)
	if err != nil {
		return err
	}
	defer pool.Release()

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)

	r.logger.Debug("embedding documents", "documents", len(docs), "workers", r.poolSize)

	for _, doc := range docs {
		wg.Add(1)
		doc := doc
		submitErr := pool.Submit(func() {
			defer wg.Done()

			vector, err := r.embedder.EmbedText(ctx, doc.EmbeddingText())
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if firstErr == nil {
					firstErr = fmt.Errorf("embedding document %s: %w", doc.Id, err)
				}
				return
			}
			r.vectors[doc.Id] = NormalizeVector(vector)
		})
		if submitErr != nil {
			wg.Done()
			mu.Lock()
			if firstErr == nil {
				firstErr = submitErr
			}
			mu.Unlock()
		}
	}

	wg.Wait()
	return firstErr
}

// Vector returns the cached unit-length embedding for a document id, or
// nil if absent.
func (r *Ranker) Vector(docId string) []float32 {
	return r.vectors[docId]
}

// Rank scores each candidate against the query and returns candidates in
// descending score order. The sort is stable: candidates with equal scores
// keep their input order. Candidates without a cached vector are skipped.
// An empty candidate set returns ErrNoCandidates.
func (r *Ranker) Rank(ctx context.Context, query string, candidates []*core.Document) ([]Scored, error) {
	if len(candidates) == 0 {
		return nil, ErrNoCandidates
	}

	queryVector, err := r.embedder.EmbedText(ctx, query)
	if err != nil {
		r.logger.Error("error generating embedding for query", "query", query, "err", err)
		return nil, fmt.Errorf("embedding query: %w", err)
	}
	queryVector = NormalizeVector(queryVector)

	scored := make([]Scored, 0, len(candidates))
	for _, doc := range candidates {
		vector, ok := r.vectors[doc.Id]
		if !ok {
			r.logger.Warn("candidate has no cached vector, skipping", "doc", doc.Id)
			continue
		}
		scored = append(scored, Scored{
			Doc:   doc,
			Score: CosineSimilarity(queryVector, vector),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored, nil
}
