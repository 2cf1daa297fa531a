package search

import (
	"context"
	"log/slog"
	"sort"

	"github.com/poiesic/semlayer/concepts"
	"github.com/poiesic/semlayer/core"
	"github.com/poiesic/semlayer/documents"
)

// Pipeline orchestrates a query end to end: concept matching, candidate
// filtering, similarity ranking, truncation and snippet assembly.
// A Pipeline is stateless per request and safe for concurrent use.
type Pipeline struct {
	graph   *concepts.Graph
	matcher concepts.Matcher
	store   *documents.Store
	ranker  *Ranker
	logger  *slog.Logger
}

// PipelineOption configures a Pipeline.
type PipelineOption func(*Pipeline) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) PipelineOption {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// WithMatcher replaces the concept matching strategy. The graph still
// supplies display names; only the "which concepts does this text mention"
// decision changes. Default is the graph's substring matcher.
func WithMatcher(matcher concepts.Matcher) PipelineOption {
	return func(p *Pipeline) error {
		if matcher != nil {
			p.matcher = matcher
		}
		return nil
	}
}

// NewPipeline creates a retrieval pipeline over the given catalogue, store
// and ranker.
func NewPipeline(graph *concepts.Graph, store *documents.Store, ranker *Ranker, opts ...PipelineOption) (*Pipeline, error) {
	if graph == nil {
		return nil, ErrGraphRequired
	}
	if store == nil {
		return nil, ErrStoreRequired
	}
	if ranker == nil {
		return nil, ErrRankerRequired
	}

	p := &Pipeline{
		graph:   graph,
		matcher: graph,
		store:   store,
		ranker:  ranker,
		logger:  slog.Default().With("component", "pipeline"),
	}

	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// Query runs the retrieval pipeline and returns up to topK ranked results.
func (p *Pipeline) Query(ctx context.Context, text string, topK int) ([]*core.RankedResult, error) {
	return p.QueryWithMonitor(ctx, text, topK, nil)
}

// QueryWithMonitor runs the retrieval pipeline with monitoring.
// The monitor receives callbacks at each stage of the query.
//
// An invalid request (blank text, topK < 1) fails before any stage runs.
// When matched concepts filter out every document, the pipeline falls back
// to the full document set so a tagging gap never empties the results.
func (p *Pipeline) QueryWithMonitor(ctx context.Context, text string, topK int, monitor QueryMonitor) ([]*core.RankedResult, error) {
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	if err := core.ValidateQuery(text, topK); err != nil {
		return nil, err
	}

	monitor.Start(text)

	// 1. Match concepts in the query
	matched := p.matcher.Match(text)
	p.logger.Debug("matched concepts", "query", text, "concepts", matched)
	monitor.AfterConceptMatch(matched)

	// 2. Narrow the candidate set, falling back to the full set when the
	// filter comes up empty
	var candidates []*core.Document
	if len(matched) > 0 {
		candidates = p.store.FilterByConcepts(matched)
		if len(candidates) == 0 {
			p.logger.Debug("matched concepts tag no documents, using full set")
			monitor.Fallback("no documents tagged with matched concepts")
			candidates = p.store.All()
		}
	} else {
		p.logger.Debug("no concept matched, using full set")
		candidates = p.store.All()
	}
	monitor.AfterFilter(candidates)

	if len(candidates) == 0 {
		monitor.Finish(nil)
		return []*core.RankedResult{}, nil
	}

	// 3. Rank by embedding similarity
	scored, err := p.ranker.Rank(ctx, text, candidates)
	if err != nil {
		p.logger.Error("error ranking candidates", "err", err)
		return nil, err
	}
	monitor.AfterRank(scored)

	// 4. Truncate and assemble results
	if len(scored) > topK {
		scored = scored[:topK]
	}

	results := make([]*core.RankedResult, 0, len(scored))
	for _, hit := range scored {
		results = append(results, &core.RankedResult{
			DocId:           hit.Doc.Id,
			Title:           hit.Doc.Title,
			MatchedConcepts: p.conceptNames(hit.Doc, matched),
			Score:           hit.Score,
			Snippet:         ExtractSnippet(hit.Doc.Body, snippetMaxChars),
		})
	}

	monitor.Finish(results)
	return results, nil
}

// conceptNames returns the sorted display names a result reports.
// With query-side matches, only the intersection of the document's tags and
// the matched set; with none, every tag, so the result still says what the
// document is about.
func (p *Pipeline) conceptNames(doc *core.Document, matched []string) []string {
	ids := doc.ConceptIds
	if len(matched) > 0 {
		ids = nil
		for _, id := range matched {
			if doc.HasConcept(id) {
				ids = append(ids, id)
			}
		}
	}

	names := p.graph.Names(ids)
	sort.Strings(names)
	return names
}
