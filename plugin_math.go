package gomark

import (
	"regexp"
	"strings"
)

var reMathBlock = regexp.MustCompile(`^ {0,3}\$\$\s*$`)
var reMathInline = regexp.MustCompile(`^\$([^$\n]+)\$`)

// PluginMath registers "$$ ... $$" display-math blocks and "$...$" inline
// math spans, left as opaque text for a downstream renderer (MathJax,
// KaTeX) to typeset -- gomark itself does no LaTeX parsing.
func PluginMath(p *Parser) {
	p.RegisterBlockRule(BlockRule{
		Name:     "math_block",
		Priority: 5,
		Match: func(s *BlockState) bool {
			return reMathBlock.MatchString(s.peek())
		},
		Parse: func(s *BlockState) {
			s.closeParagraph()
			s.advance()
			var content []string
			for !s.eof() && !reMathBlock.MatchString(s.peek()) {
				content = append(content, s.peek())
				s.advance()
			}
			if !s.eof() {
				s.advance()
			}
			tok := NewToken("math_block")
			tok.Text = strings.Join(content, "\n")
			s.append(tok)
		},
	})

	p.RegisterInlineRule(InlineRule{
		Name:     "math_inline",
		Priority: 15,
		Match: func(s *InlineState) int {
			if s.src[s.pos] != '$' {
				return 0
			}
			groups, ok := matchAt(reMathInline, s.src, s.pos)
			if !ok {
				return 0
			}
			return len(groups[0])
		},
		Parse: func(s *InlineState, n int) {
			m := reMathInline.FindStringSubmatch(s.src[s.pos : s.pos+n])
			tok := NewToken("math_inline")
			tok.Text = m[1]
			s.appendToken(tok)
			s.pos += n
		},
	})

	p.RegisterRenderHTML("math_block", func(tok *Token, children string, opts *config) string {
		return "<div class=\"math display\">\\[" + tok.Text + "\\]</div>\n"
	})
	p.RegisterRenderHTML("math_inline", func(tok *Token, children string, opts *config) string {
		return "<span class=\"math inline\">\\(" + tok.Text + "\\)</span>"
	})
}
