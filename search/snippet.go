package search

import (
	"strings"
	"unicode/utf8"
)

// snippetMaxChars is the default snippet length budget.
const snippetMaxChars = 200

var sentenceDelimiters = []string{". ", "? ", "! "}

// ExtractSnippet returns up to maxChars characters of body, preferring to
// end at a sentence boundary. A boundary is only used when it preserves at
// least half of the window; otherwise the text is cut at the last space and
// marked with an ellipsis.
func ExtractSnippet(body string, maxChars int) string {
	if body == "" {
		return ""
	}
	if len(body) <= maxChars {
		return body
	}

	// Back up to a rune boundary so the window never splits a
	// multi-byte character.
	cut := maxChars
	for cut > 0 && !utf8.RuneStart(body[cut]) {
		cut--
	}
	snippet := body[:cut]

	for _, delimiter := range sentenceDelimiters {
		if idx := strings.LastIndex(snippet, delimiter); idx > maxChars/2 {
			return strings.TrimSpace(snippet[:idx+1])
		}
	}

	if idx := strings.LastIndex(snippet, " "); idx > 0 {
		snippet = snippet[:idx]
	}
	return strings.TrimSpace(snippet) + "..."
}
