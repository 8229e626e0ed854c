// Package gomark parses CommonMark/GFM Markdown into a token tree and
// renders it to HTML or to a plain-data AST.
//
// Parsing runs in two phases (spec §4): a block phase turns source lines
// into a tree of block-level tokens (paragraphs, headings, lists, block
// quotes, tables, fenced/indented code, directives), then an inline phase
// parses each block's accumulated text into spans (emphasis, links,
// images, code spans, raw HTML, footnote references). Both phases are
// built from a priority-ordered, per-Parser rule registry rather than a
// fixed grammar, so a Plugin can add or replace rules by name without
// touching the built-in set.
//
// A Parser is built once via New and is then immutable; every Parse,
// Render, or Convert call allocates its own BlockState, InlineState, and
// Env, so one Parser is safe to use concurrently from multiple goroutines.
//
// Example:
//
//	p := gomark.New(gomark.WithPlugins(gomark.PluginFrontMatter, gomark.PluginStrikethrough))
//	html, err := p.Convert("# Hello\n\n~~old~~ *new* world.\n")
//	if err != nil {
//		log.Fatal(err)
//	}
package gomark
