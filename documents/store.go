package documents

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/poiesic/semlayer/concepts"
	"github.com/poiesic/semlayer/core"
)

// Store holds the document catalogue in load order.
// Documents are tagged with concepts exactly once, during Load.
type Store struct {
	docs   []*core.Document
	byId   map[string]*core.Document
	logger *slog.Logger
}

// Load reads every markdown document from dir, sorted by file name, and
// tags each one with the concepts mentioned in its title and body.
// A file whose frontmatter cannot be parsed is skipped with a warning,
// matching the permissive loading behavior for hand-authored content.
// Duplicate document ids and an empty result set are fatal.
func Load(dir string, matcher concepts.Matcher) (*Store, error) {
	if matcher == nil {
		return nil, ErrMatcherRequired
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading documents directory: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(paths)

	s := &Store{
		byId:   make(map[string]*core.Document),
		logger: slog.Default().With("component", "document-store"),
	}

	for _, path := range paths {
		doc, err := parseDocument(path)
		if err != nil {
			s.logger.Warn("skipping unreadable document", "path", path, "err", err)
			continue
		}
		if err := core.ValidateDocument(doc); err != nil {
			return nil, err
		}
		if _, exists := s.byId[doc.Id]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateDocId, doc.Id)
		}

		doc.ConceptIds = matcher.Match(doc.TaggingText())

		s.docs = append(s.docs, doc)
		s.byId[doc.Id] = doc
		s.logger.Debug("tagged document", "doc", doc.Id, "concepts", len(doc.ConceptIds))
	}

	if len(s.docs) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoDocuments, dir)
	}

	s.logger.Debug("loaded document catalogue", "dir", dir, "documents", len(s.docs))
	return s, nil
}

// parseDocument reads one markdown file, extracting frontmatter metadata.
// Missing doc_id or title fall back to values derived from the file name.
func parseDocument(path string) (*core.Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	meta, body, err := parseFrontmatter(string(content))
	if err != nil {
		return nil, err
	}

	stem := strings.TrimSuffix(filepath.Base(path), ".md")
	if meta.DocId == "" {
		meta.DocId = stem
	}
	if meta.Title == "" {
		meta.Title = fallbackTitle(stem)
	}

	return &core.Document{
		Id:    meta.DocId,
		Title: meta.Title,
		Body:  body,
	}, nil
}

// All returns every document in load order.
// The returned slice must not be mutated.
func (s *Store) All() []*core.Document {
	return s.docs
}

// Get returns the document with the given id, or nil if unknown.
func (s *Store) Get(id string) *core.Document {
	return s.byId[id]
}

// FilterByConcepts returns every document whose concept tags intersect
// conceptIds, in load order. An empty conceptIds yields an empty result;
// callers wanting the full set use All explicitly.
func (s *Store) FilterByConcepts(conceptIds []string) []*core.Document {
	if len(conceptIds) == 0 {
		return nil
	}

	var filtered []*core.Document
	for _, doc := range s.docs {
		for _, id := range conceptIds {
			if doc.HasConcept(id) {
				filtered = append(filtered, doc)
				break
			}
		}
	}
	return filtered
}
