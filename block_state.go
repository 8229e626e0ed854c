package gomark

import "strings"

// BlockState is the block-parser state for one container's worth of source:
// the line cursor, the token list accumulated so far, and back-references to
// the document-scoped Env and owning Parser (spec §4.B). A child container
// (list item, block quote, directive body) gets its own BlockState via
// child(), seeing a virtual, prefix-stripped sub-source; on close its
// Tokens become the container token's Children.
type BlockState struct {
	parser *Parser
	env    *Env

	lines []string
	line  int // index of the current line within lines

	tokens []*Token

	// blankBefore reports whether the line immediately preceding `line`
	// was blank. process() maintains it; no built-in rule reads it
	// (block_list.go scans for blank lines itself).
	blankBefore bool

	// parent is the container token this state's tokens will become the
	// children of, or nil at the document root. Rules may consult it for
	// context (e.g. the directive handler needs to know its own token).
	parent *Token

	// baseDir is the directory the include directive resolves relative
	// paths against; inherited by child states unchanged.
	baseDir string
}

// newRootBlockState splits src into lines and returns the root BlockState for a Parse call.
func newRootBlockState(p *Parser, env *Env, src string) *BlockState {
	return &BlockState{
		parser:  p,
		env:     env,
		lines:   splitLines(src),
		baseDir: p.cfg.includeBaseDir,
	}
}

// splitLines splits src into lines, treating "\r\n" and a lone "\r" as
// line endings like "\n", and tab-expanding none of it yet -- rules expand
// tabs themselves where indentation matters, since raw tab bytes must
// survive into code-block content verbatim.
func splitLines(src string) []string {
	src = strings.ReplaceAll(src, "\r\n", "\n")
	src = strings.ReplaceAll(src, "\r", "\n")
	lines := strings.Split(src, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// child returns a new BlockState over subLines, sharing this state's parser,
// env, and baseDir, but with its own independent cursor and token list.
func (s *BlockState) child(subLines []string, parent *Token) *BlockState {
	return &BlockState{
		parser:  s.parser,
		env:     s.env,
		lines:   subLines,
		parent:  parent,
		baseDir: s.baseDir,
	}
}

func (s *BlockState) eof() bool {
	return s.line >= len(s.lines)
}

func (s *BlockState) peek() string {
	if s.eof() {
		return ""
	}
	return s.lines[s.line]
}

func (s *BlockState) peekAt(offset int) (string, bool) {
	i := s.line + offset
	if i < 0 || i >= len(s.lines) {
		return "", false
	}
	return s.lines[i], true
}

func (s *BlockState) advance() {
	s.line++
}

// append emits a finished token into the current container's child list.
func (s *BlockState) append(tok *Token) {
	s.tokens = append(s.tokens, tok)
}

// isBlank reports whether a line is empty or all whitespace.
func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// addParagraphLine appends a line of text to the paragraph currently being
// built (the last token if it is an open paragraph raw-leaf) or opens one.
func (s *BlockState) addParagraphLine(line string) {
	if n := len(s.tokens); n > 0 && s.tokens[n-1].Type == "paragraph_open" {
		p := s.tokens[n-1]
		if p.Text != "" {
			p.Text += "\n"
		}
		p.Text += line
		return
	}
	p := NewToken("paragraph_open")
	p.Text = line
	s.append(p)
}

// closeParagraph finalizes the trailing open paragraph raw-leaf, if any,
// renaming it to "paragraph" so later passes don't keep appending to it.
func (s *BlockState) closeParagraph() {
	if n := len(s.tokens); n > 0 && s.tokens[n-1].Type == "paragraph_open" {
		s.tokens[n-1].Type = "paragraph"
	}
}

// process drives the main block-parsing loop: at each line, try registered
// block rules in priority order; on the first match, emit tokens and
// advance the cursor; otherwise coalesce the line into an open paragraph.
func (s *BlockState) process() {
	for !s.eof() {
		if isBlank(s.peek()) {
			s.closeParagraph()
			s.blankBefore = true
			s.advance()
			continue
		}
		matched := false
		for _, rule := range s.parser.blockRules {
			if rule.Match(s) {
				// Each rule's Parse decides whether it interrupts an open
				// paragraph (closing it) or continues one (setext heading
				// promotion, lazy block-quote continuation); process() does
				// not close paragraphs on its own behalf here.
				rule.Parse(s)
				matched = true
				break
			}
		}
		if !matched {
			s.addParagraphLine(s.peek())
			s.advance()
		}
		s.blankBefore = false
	}
	s.closeParagraph()
}
