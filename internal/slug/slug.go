// Package slug derives URL-safe heading anchors for the table-of-contents
// directive and for every heading token's "id" attribute.
package slug

import (
	"fmt"

	"github.com/shurcooL/sanitized_anchor_name"
)

// Generator hands out anchors for a single document's headings, appending
// "-2", "-3", ... to disambiguate repeats, the same scheme GitHub's own
// Markdown renderer uses.
type Generator struct {
	seen map[string]int
}

// NewGenerator returns an empty Generator, good for exactly one document.
func NewGenerator() *Generator {
	return &Generator{seen: make(map[string]int)}
}

// Anchor returns a unique anchor for heading text, creating one from
// sanitized_anchor_name.Create and disambiguating against prior calls.
func (g *Generator) Anchor(text string) string {
	base := sanitized_anchor_name.Create(text)
	if base == "" {
		base = "section"
	}
	n := g.seen[base]
	g.seen[base] = n + 1
	if n == 0 {
		return base
	}
	return fmt.Sprintf("%s-%d", base, n+1)
}

// Reset discards all anchors seen so far, for reuse across documents.
func (g *Generator) Reset() {
	g.seen = make(map[string]int)
}
