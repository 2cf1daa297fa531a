package documents

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// frontmatter holds the structured metadata block at the top of a document.
type frontmatter struct {
	DocId string `yaml:"doc_id"`
	Title string `yaml:"title"`
}

var titleCaser = cases.Title(language.English)

// parseFrontmatter splits a document into its YAML frontmatter and body.
// The frontmatter block is delimited by "---" lines at the very start of
// the file. Content without a frontmatter block is returned whole as the
// body with empty metadata.
func parseFrontmatter(content string) (frontmatter, string, error) {
	var meta frontmatter

	rest, found := strings.CutPrefix(content, "---\n")
	if !found {
		rest, found = strings.CutPrefix(content, "---\r\n")
	}
	if !found {
		return meta, strings.TrimSpace(content), nil
	}

	block, body, found := strings.Cut(rest, "\n---")
	if !found {
		return meta, strings.TrimSpace(content), nil
	}
	// Drop the remainder of the closing delimiter line.
	if _, after, ok := strings.Cut(body, "\n"); ok {
		body = after
	} else {
		body = ""
	}

	if err := yaml.Unmarshal([]byte(block), &meta); err != nil {
		return meta, "", fmt.Errorf("parsing frontmatter: %w", err)
	}
	return meta, strings.TrimSpace(body), nil
}

// fallbackTitle derives a display title from a file stem,
// e.g. "employee_onboarding" becomes "Employee Onboarding".
func fallbackTitle(stem string) string {
	return titleCaser.String(strings.ReplaceAll(stem, "_", " "))
}
