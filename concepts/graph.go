package concepts

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/poiesic/semlayer/core"
)

// Graph holds the concept catalogue and implements Matcher via
// case-insensitive substring matching of names and synonyms.
// A Graph is immutable after Load.
type Graph struct {
	concepts []*core.Concept
	byId     map[string]*core.Concept
	// lowered holds the pre-lowercased match terms per concept,
	// indexed in step with concepts.
	lowered [][]string
	logger  *slog.Logger
}

var _ Matcher = (*Graph)(nil)

type conceptRecord struct {
	Id        string   `yaml:"id"`
	Name      string   `yaml:"name"`
	Synonyms  []string `yaml:"synonyms"`
	RelatedTo []string `yaml:"related_to"`
}

type conceptsFile struct {
	Concepts []conceptRecord `yaml:"concepts"`
}

// Load reads the concept catalogue from a YAML file.
// It fails if a record is missing id or name, or if an id is duplicated.
// Load-time failures are fatal: callers must not serve queries against a
// partially loaded catalogue.
func Load(path string) (*Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading concepts file: %w", err)
	}

	var file conceptsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing concepts file %s: %w", path, err)
	}
	if len(file.Concepts) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoConcepts, path)
	}

	g := &Graph{
		byId:   make(map[string]*core.Concept, len(file.Concepts)),
		logger: slog.Default().With("component", "concept-graph"),
	}

	for _, record := range file.Concepts {
		concept := &core.Concept{
			Id:        record.Id,
			Name:      record.Name,
			Synonyms:  record.Synonyms,
			RelatedTo: record.RelatedTo,
		}
		if err := core.ValidateConcept(concept); err != nil {
			return nil, err
		}
		if _, exists := g.byId[concept.Id]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateConceptId, concept.Id)
		}

		g.concepts = append(g.concepts, concept)
		g.byId[concept.Id] = concept

		terms := concept.Terms()
		loweredTerms := make([]string, len(terms))
		for i, term := range terms {
			loweredTerms[i] = strings.ToLower(term)
		}
		g.lowered = append(g.lowered, loweredTerms)
	}

	g.logger.Debug("loaded concept catalogue", "path", path, "concepts", len(g.concepts))
	return g, nil
}

// Match returns the ids of every concept whose name or any synonym occurs
// as a case-insensitive substring of text, in catalogue order.
func (g *Graph) Match(text string) []string {
	if text == "" {
		return nil
	}

	lowered := strings.ToLower(text)
	var matched []string
	for i, concept := range g.concepts {
		for _, term := range g.lowered[i] {
			if term != "" && strings.Contains(lowered, term) {
				matched = append(matched, concept.Id)
				break
			}
		}
	}
	return matched
}

// Get returns the concept with the given id, or nil if unknown.
func (g *Graph) Get(id string) *core.Concept {
	return g.byId[id]
}

// All returns every concept in catalogue order.
// The returned slice must not be mutated.
func (g *Graph) All() []*core.Concept {
	return g.concepts
}

// Names translates concept ids to display names, skipping unknown ids.
func (g *Graph) Names(ids []string) []string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if concept := g.byId[id]; concept != nil {
			names = append(names, concept.Name)
		}
	}
	return names
}
