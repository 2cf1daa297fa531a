package concepts

// Matcher matches free text against the concept catalogue.
// Implementations must be safe for concurrent use after construction.
type Matcher interface {
	// Match returns the ids of every concept mentioned in text, in
	// catalogue order. Empty text matches nothing. The result carries
	// no scores; concept matching is a filter, not a ranking.
	Match(text string) []string
}
