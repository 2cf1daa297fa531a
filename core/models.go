package core

// Concept represents a business concept in the semantic catalogue.
// Concepts are loaded once at startup and never mutated afterward.
type Concept struct {
	Id       string
	Name     string
	Synonyms []string
	// RelatedTo references other concept ids. Dangling references are
	// tolerated; the links are reserved for future query expansion and
	// unused by matching.
	RelatedTo []string
}

// Terms returns every string that identifies the concept: its display
// name followed by its synonyms. Matching tests each term against text.
func (c *Concept) Terms() []string {
	terms := make([]string, 0, len(c.Synonyms)+1)
	terms = append(terms, c.Name)
	terms = append(terms, c.Synonyms...)
	return terms
}

// Document represents a process document enriched with concept tags.
// ConceptIds is computed exactly once at load time from the document
// text and is never recomputed.
type Document struct {
	Id         string
	Title      string
	Body       string
	ConceptIds []string
}

// HasConcept reports whether the document was tagged with the given concept.
func (d *Document) HasConcept(conceptId string) bool {
	for _, id := range d.ConceptIds {
		if id == conceptId {
			return true
		}
	}
	return false
}

// TaggingText returns the text used for concept tagging at load time.
func (d *Document) TaggingText() string {
	return d.Title + " " + d.Body
}

// EmbeddingText returns the text used to embed the document.
func (d *Document) EmbeddingText() string {
	return d.Title + ". " + d.Body
}

// RankedResult is a single entry in a query's result list.
// Result lists are ordered by descending Score with stable ties.
type RankedResult struct {
	DocId           string   `json:"doc_id"`
	Title           string   `json:"title"`
	MatchedConcepts []string `json:"matched_concepts"`
	Score           float32  `json:"score"`
	Snippet         string   `json:"snippet"`
}
