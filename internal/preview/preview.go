// Package preview renders a width-bounded plain-text outline of a parsed
// document, the terminal-preview surface cmd/gomark's --outline flag uses.
// It has nothing to do with parsing: every helper here is adapted from the
// teacher's ANSI-output width accounting, reused against an already-built
// token tree instead of a live render stream.
package preview

import (
	"strings"

	"github.com/muesli/reflow/ansi"

	"pkt.systems/gomark"
)

// Outline renders one line per heading in doc, indented by level and
// truncated to width. It lists headings only; LinkSummary lists links.
func Outline(doc *gomark.Token, width int) string {
	var b strings.Builder
	doc.Walk(func(tok *gomark.Token) bool {
		if tok.Type != "heading" {
			return true
		}
		level := tok.AttrInt("level")
		indent := strings.Repeat("  ", max(level-1, 0))
		line := indent + truncateWithEllipsis(tok.Text, width-len(indent))
		b.WriteString(line)
		b.WriteString("\n")
		return true
	})
	return b.String()
}

// LinkSummary renders one "title -> url" line per link in doc, each column
// fit independently to half of width.
func LinkSummary(doc *gomark.Token, width int) string {
	half := width / 2
	var b strings.Builder
	doc.Walk(func(tok *gomark.Token) bool {
		if tok.Type != "link" {
			return true
		}
		title := truncateWithEllipsis(flattenText(tok), half)
		url := fitURL(tok.AttrString("href"), half)
		b.WriteString(title)
		b.WriteString(" -> ")
		b.WriteString(url)
		b.WriteString("\n")
		return true
	})
	return b.String()
}

func flattenText(tok *gomark.Token) string {
	if tok.Text != "" {
		return tok.Text
	}
	var b strings.Builder
	for _, c := range tok.Children {
		b.WriteString(flattenText(c))
	}
	return b.String()
}

func truncateWithEllipsis(text string, limit int) string {
	if ansi.PrintableRuneWidth(text) <= limit {
		return text
	}
	if limit <= 0 {
		return ""
	}
	if limit == 1 {
		return "…"
	}
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit-1]) + "…"
}

func fitURL(url string, limit int) string {
	if ansi.PrintableRuneWidth(url) <= limit {
		return url
	}
	if idx := strings.Index(url, "://"); idx != -1 {
		trimmed := url[idx+3:]
		if ansi.PrintableRuneWidth(trimmed) <= limit {
			return trimmed
		}
	}
	return truncateWithEllipsis(url, limit)
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
