package gomark

import "regexp"

// reRawHTMLInline matches a single inline HTML tag: open, closing, comment,
// processing instruction, declaration, or CDATA (CommonMark §6.8), the
// inline-scope counterpart of the html_block rule's type 1-5 forms.
var reRawHTMLInline = regexp.MustCompile(
	`^(?:<[a-zA-Z][a-zA-Z0-9-]*(?:\s+[a-zA-Z_:][a-zA-Z0-9_.:-]*(?:\s*=\s*(?:[^\s"'=<>` + "`" + `]+|'[^']*'|"[^"]*"))?)*\s*/?>` +
		`|</[a-zA-Z][a-zA-Z0-9-]*\s*>` +
		`|<!--(?:[^-]|-[^-])*-->` +
		`|<\?[^?]*\?>` +
		`|<![A-Z]+\s+[^>]*>` +
		`|<!\[CDATA\[.*?\]\]>)`,
)

func inlineRuleRawHTML() InlineRule {
	return InlineRule{
		Name:     "raw_html",
		Priority: 30,
		Match: func(s *InlineState) int {
			if s.src[s.pos] != '<' {
				return 0
			}
			groups, ok := matchAt(reRawHTMLInline, s.src, s.pos)
			if !ok {
				return 0
			}
			return len(groups[0])
		},
		Parse: func(s *InlineState, n int) {
			tok := NewToken("html_inline")
			tok.Raw = s.src[s.pos : s.pos+n]
			s.appendToken(tok)
			s.pos += n
		},
	}
}
