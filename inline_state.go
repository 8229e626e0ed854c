package gomark

import "unicode/utf8"

// InlineState is the inline-parser cursor over one block of already-
// unescaped-at-the-block-level source text (a paragraph's Text, a heading's
// Text, a table cell's Text, ...). It accumulates a flat token sequence plus
// a delimiter stack and a bracket stack. Each bracket pair is resolved when
// its ']' is scanned; ParseInline folds the remaining delimiter stack into
// the final nested Children slice once scanning reaches the end (spec §4.D).
type InlineState struct {
	parser *Parser
	env    *Env
	src    string
	pos    int

	tokens []*Token
	delims []delimiter
	// brackets holds indices into tokens/delims-adjacent bracket markers
	// ('[' or '![') still awaiting a matching ']'.
	brackets []bracketMarker

	// Scratch is lazily-allocated, per-scan storage for plugin inline
	// rules that need their own delimiter-like stack (e.g. strikethrough's
	// "~~" pairing) without widening InlineState itself for every plugin.
	Scratch map[string]any
}

type bracketMarker struct {
	tokenIndex int
	isImage    bool
	active     bool
}

func newInlineState(p *Parser, env *Env, src string) *InlineState {
	return &InlineState{parser: p, env: env, src: src}
}

func (s *InlineState) eof() bool {
	return s.pos >= len(s.src)
}

// appendToken appends a finished (non-delimiter) token to the flat sequence.
func (s *InlineState) appendToken(tok *Token) {
	s.tokens = append(s.tokens, tok)
}

// appendText appends literal text, coalescing into a trailing plain "text"
// token so runs of untouched characters don't produce one token per rune.
func (s *InlineState) appendText(text string) {
	if n := len(s.tokens); n > 0 && s.tokens[n-1].Type == "text" && !s.tokens[n-1].AttrBool("delim") {
		s.tokens[n-1].Text += text
		return
	}
	s.appendToken(NewToken("text").withText(text))
}

func (t *Token) withText(text string) *Token {
	t.Text = text
	return t
}

// ParseInline scans src to EOF, running the parser's inline rules in
// priority order at each position and falling back to one-rune literal text
// when nothing matches, then resolves the delimiter/bracket stacks into a
// nested token tree.
func ParseInline(p *Parser, env *Env, src string) []*Token {
	s := newInlineState(p, env, src)
	for !s.eof() {
		matched := false
		for _, rule := range p.inlineRules {
			if n := rule.Match(s); n > 0 {
				rule.Parse(s, n)
				matched = true
				break
			}
		}
		if !matched {
			r, size := decodeRuneSafe(s.src[s.pos:])
			s.appendText(r)
			s.pos += size
		}
	}
	return resolveEmphasis(s.tokens, s.delims, 0, len(s.tokens))
}

// decodeRuneSafe returns the next rune of s as a string plus its byte width,
// falling back to a single byte for invalid UTF-8 so malformed input can
// never stall the scanner. ValidateInput already rejects non-UTF-8 input
// before it reaches the parser, so the fallback path is a defensive-only
// backstop here.
func decodeRuneSafe(s string) (string, int) {
	if s == "" {
		return "", 0
	}
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size <= 1 {
		return s[:1], 1
	}
	return s[:size], size
}
