package search

import "github.com/poiesic/semlayer/core"

// QueryMonitor provides hooks to observe the retrieval pipeline.
// Implement this interface to track intermediate steps during a query.
type QueryMonitor interface {
	Start(query string)
	AfterConceptMatch(conceptIds []string)
	AfterFilter(candidates []*core.Document)
	Fallback(reason string)
	AfterRank(scored []Scored)
	Finish(results []*core.RankedResult)
}

// noopMonitor is a no-op implementation of QueryMonitor
type noopMonitor struct{}

var _ QueryMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                 {}
func (n *noopMonitor) AfterConceptMatch(_ []string)   {}
func (n *noopMonitor) AfterFilter(_ []*core.Document) {}
func (n *noopMonitor) Fallback(_ string)              {}
func (n *noopMonitor) AfterRank(_ []Scored)           {}
func (n *noopMonitor) Finish(_ []*core.RankedResult)  {}

