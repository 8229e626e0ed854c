package gomark

import "strings"

// inlineRuleCodeSpan matches a backtick-delimited code span: an opening run
// of N backticks, content up to the first run of exactly N backticks, with
// the content's single leading/trailing space stripped if it isn't all
// whitespace (CommonMark §6.1).
func inlineRuleCodeSpan() InlineRule {
	return InlineRule{
		Name:     "code_span",
		Priority: 10,
		Match: func(s *InlineState) int {
			if s.src[s.pos] != '`' {
				return 0
			}
			openLen := runLength(s.src, s.pos, '`')
			closeAt := findBacktickRun(s.src, s.pos+openLen, openLen)
			if closeAt < 0 {
				return 0
			}
			return closeAt + openLen - s.pos
		},
		Parse: func(s *InlineState, n int) {
			openLen := runLength(s.src, s.pos, '`')
			content := s.src[s.pos+openLen : s.pos+n-openLen]
			content = strings.ReplaceAll(content, "\n", " ")
			if len(content) >= 2 && strings.HasPrefix(content, " ") && strings.HasSuffix(content, " ") &&
				strings.TrimSpace(content) != "" {
				content = content[1 : len(content)-1]
			}
			tok := NewToken("code_span")
			tok.Text = content
			s.appendToken(tok)
			s.pos += n
		},
	}
}

func runLength(s string, pos int, ch byte) int {
	n := 0
	for pos+n < len(s) && s[pos+n] == ch {
		n++
	}
	return n
}

// findBacktickRun returns the start index (relative to the whole string) of
// the first run of exactly runLen backticks at or after pos, or -1.
func findBacktickRun(s string, pos int, runLen int) int {
	for pos < len(s) {
		i := strings.IndexByte(s[pos:], '`')
		if i < 0 {
			return -1
		}
		at := pos + i
		n := runLength(s, at, '`')
		if n == runLen {
			return at
		}
		pos = at + n
	}
	return -1
}
