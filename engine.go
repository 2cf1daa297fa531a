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


// Package semlayer assembles the concept-filtered retrieval engine: a
// concept catalogue, a tagged document store and a similarity ranker wired
// into one query pipeline.
package semlayer

import (
	"context"
	"log/slog"

	"github.com/poiesic/semlayer/ai"
	"github.com/poiesic/semlayer/ai/openai"
	"github.com/poiesic/semlayer/concepts"
	"github.com/poiesic/semlayer/core"
	"github.com/poiesic/semlayer/documents"
	"github.com/poiesic/semlayer/search"
)

// Engine owns the immutable stores and the retrieval pipeline.
// Construction performs all load-time work: concept loading, document
// tagging and embedding precomputation. After NewEngine returns, every
// structure is read-only and Query may be called concurrently without
// locking.
type Engine struct {
	graph    *concepts.Graph
	store    *documents.Store
	embedder ai.Embedder
	ranker   *search.Ranker
	pipeline *search.Pipeline
	logger   *slog.Logger
}

// EngineOption configures an Engine.
type EngineOption func(*engineOptions)

type engineOptions struct {
	aiConfig *ai.Config
	embedder ai.Embedder
	poolSize int
}

// WithAIConfig sets the embedding provider configuration used when no
// explicit embedder is injected.
func WithAIConfig(config *ai.Config) EngineOption {
	return func(o *engineOptions) {
		if config != nil {
			o.aiConfig = config
		}
	}
}

// WithEmbedder injects an embedder, bypassing provider construction.
// Tests use this to run the engine against a deterministic double.
func WithEmbedder(embedder ai.Embedder) EngineOption {
	return func(o *engineOptions) {
		o.embedder = embedder
	}
}

// WithEmbeddingPoolSize sets the worker pool size for startup document
// embedding.
func WithEmbeddingPoolSize(size int) EngineOption {
	return func(o *engineOptions) {
		o.poolSize = size
	}
}

// NewEngine loads the concept catalogue from conceptsPath and the document
// set from docsDir, precomputes document embeddings and wires the retrieval
// pipeline. Any failure aborts construction; no partially initialized
// engine is ever returned.
func NewEngine(ctx context.Context, conceptsPath, docsDir string, opts ...EngineOption) (*Engine, error) {
	options := &engineOptions{
		aiConfig: ai.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(options)
	}

	graph, err := concepts.Load(conceptsPath)
	if err != nil {
		return nil, err
	}

	store, err := documents.Load(docsDir, graph)
	if err != nil {
		return nil, err
	}

	embedder := options.embedder
	if embedder == nil {
		embedder, err = openai.NewEmbedder(options.aiConfig)
		if err != nil {
			return nil, err
		}
	}

	var rankerOpts []search.RankerOption
	if options.poolSize > 0 {
		rankerOpts = append(rankerOpts, search.WithPoolSize(options.poolSize))
	}
	ranker, err := search.NewRanker(ctx, embedder, store.All(), rankerOpts...)
	if err != nil {
		return nil, err
	}

	pipeline, err := search.NewPipeline(graph, store, ranker)
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("component", "engine")
	logger.Info("engine ready",
		"concepts", len(graph.All()),
		"documents", len(store.All()))

	return &Engine{
		graph:    graph,
		store:    store,
		embedder: embedder,
		ranker:   ranker,
		pipeline: pipeline,
		logger:   logger,
	}, nil
}

// Query runs the retrieval pipeline and returns up to topK ranked results.
func (e *Engine) Query(ctx context.Context, text string, topK int) ([]*core.RankedResult, error) {
	return e.pipeline.Query(ctx, text, topK)
}

// QueryWithMonitor runs the retrieval pipeline with stage callbacks.
func (e *Engine) QueryWithMonitor(ctx context.Context, text string, topK int, monitor search.QueryMonitor) ([]*core.RankedResult, error) {
	return e.pipeline.QueryWithMonitor(ctx, text, topK, monitor)
}

// Close releases the engine's resources. The catalogue, document store and
// vector cache are held in memory, so nothing is flushed to disk.
func (e *Engine) Close() error {
	e.logger.Info("engine closed")
	return nil
}

// Graph returns the concept catalogue.
func (e *Engine) Graph() *concepts.Graph {
	return e.graph
}

// Store returns the document catalogue.
func (e *Engine) Store() *documents.Store {
	return e.store
}

// Pipeline returns the retrieval pipeline.
func (e *Engine) Pipeline() *search.Pipeline {
	return e.pipeline
}
