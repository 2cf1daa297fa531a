package documents

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// matcherFunc adapts a function to the concepts.Matcher interface.
type matcherFunc func(text string) []string

func (f matcherFunc) Match(text string) []string { return f(text) }

// keywordMatcher tags a concept id when its keyword occurs in the text.
func keywordMatcher() matcherFunc {
	keywords := []struct{ id, term string }{
		{"employee_onboarding", "onboarding"},
		{"payroll_processing", "payroll"},
		{"compliance_audit", "audit"},
	}
	return func(text string) []string {
		lowered := strings.ToLower(text)
		var matched []string
		for _, kw := range keywords {
			if strings.Contains(lowered, kw.term) {
				matched = append(matched, kw.id)
			}
		}
		return matched
	}
}

func writeDoc(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func fixtureDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeDoc(t, dir, "01_onboarding.md", `---
doc_id: doc1
title: Employee Onboarding Procedure
---
New hires complete onboarding and orientation during their first week. HR collects tax forms.
`)
	writeDoc(t, dir, "02_payroll.md", `---
doc_id: doc2
title: Payroll Processing Guide
---
Payroll runs on the last business day of each month.
`)
	writeDoc(t, dir, "03_notes.md", "Free-form notes without any frontmatter block.\n")
	return dir
}

func TestLoad(t *testing.T) {
	store, err := Load(fixtureDir(t), keywordMatcher())
	require.NoError(t, err)

	docs := store.All()
	require.Len(t, docs, 3)

	// Load order follows sorted file names.
	assert.Equal(t, "doc1", docs[0].Id)
	assert.Equal(t, "doc2", docs[1].Id)
	assert.Equal(t, "03_notes", docs[2].Id)

	assert.Equal(t, "Employee Onboarding Procedure", docs[0].Title)
	assert.Equal(t, "03 Notes", docs[2].Title)
	assert.Equal(t, "Free-form notes without any frontmatter block.", docs[2].Body)

	assert.Equal(t, []string{"employee_onboarding"}, docs[0].ConceptIds)
	assert.Equal(t, []string{"payroll_processing"}, docs[1].ConceptIds)
	assert.Empty(t, docs[2].ConceptIds)
}

func TestLoad_TaggingIsDeterministic(t *testing.T) {
	dir := fixtureDir(t)

	first, err := Load(dir, keywordMatcher())
	require.NoError(t, err)
	second, err := Load(dir, keywordMatcher())
	require.NoError(t, err)

	require.Len(t, second.All(), len(first.All()))
	for i, doc := range first.All() {
		assert.Equal(t, doc.ConceptIds, second.All()[i].ConceptIds)
	}
}

func TestLoad_NilMatcher(t *testing.T) {
	_, err := Load(fixtureDir(t), nil)
	assert.ErrorIs(t, err, ErrMatcherRequired)
}

func TestLoad_MissingDir(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope"), keywordMatcher())
	assert.Error(t, err)
}

func TestLoad_EmptyDir(t *testing.T) {
	_, err := Load(t.TempDir(), keywordMatcher())
	assert.ErrorIs(t, err, ErrNoDocuments)
}

func TestLoad_DuplicateId(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "a.md", "---\ndoc_id: doc1\ntitle: A\n---\nbody\n")
	writeDoc(t, dir, "b.md", "---\ndoc_id: doc1\ntitle: B\n---\nbody\n")

	_, err := Load(dir, keywordMatcher())
	assert.ErrorIs(t, err, ErrDuplicateDocId)
}

func TestLoad_SkipsMalformedFrontmatter(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "bad.md", "---\n\t: not yaml\n---\nbody\n")
	writeDoc(t, dir, "good.md", "---\ndoc_id: doc1\ntitle: Good\n---\nAudit checklist.\n")

	store, err := Load(dir, keywordMatcher())
	require.NoError(t, err)
	assert.Len(t, store.All(), 1)
	assert.Equal(t, "doc1", store.All()[0].Id)
}

func TestFilterByConcepts(t *testing.T) {
	store, err := Load(fixtureDir(t), keywordMatcher())
	require.NoError(t, err)

	t.Run("single concept", func(t *testing.T) {
		filtered := store.FilterByConcepts([]string{"payroll_processing"})
		require.Len(t, filtered, 1)
		assert.Equal(t, "doc2", filtered[0].Id)
	})

	t.Run("multiple concepts keep load order", func(t *testing.T) {
		filtered := store.FilterByConcepts([]string{"payroll_processing", "employee_onboarding"})
		require.Len(t, filtered, 2)
		assert.Equal(t, "doc1", filtered[0].Id)
		assert.Equal(t, "doc2", filtered[1].Id)
	})

	t.Run("every result intersects the filter", func(t *testing.T) {
		ids := []string{"employee_onboarding", "compliance_audit"}
		for _, doc := range store.FilterByConcepts(ids) {
			found := false
			for _, id := range ids {
				if doc.HasConcept(id) {
					found = true
					break
				}
			}
			assert.True(t, found, "document %s has no matching concept", doc.Id)
		}
	})

	t.Run("unknown concept", func(t *testing.T) {
		assert.Empty(t, store.FilterByConcepts([]string{"unknown"}))
	})

	t.Run("empty filter", func(t *testing.T) {
		assert.Empty(t, store.FilterByConcepts(nil))
	})
}

func TestGet(t *testing.T) {
	store, err := Load(fixtureDir(t), keywordMatcher())
	require.NoError(t, err)

	require.NotNil(t, store.Get("doc1"))
	assert.Nil(t, store.Get("unknown"))
}
