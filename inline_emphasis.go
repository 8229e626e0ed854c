package gomark

import "regexp"

var reWhitespaceChar = regexp.MustCompile(`^\s`)
var rePunctuationChar = regexp.MustCompile("^[ -⁯⸀-⹿'!\"#$%&()*+,\\-./:;<=>?@\\[\\]^_`{|}~]")

// scanDelims classifies a run of ch starting at pos: its length and whether
// it is left-/right-flanking per CommonMark §6.2, ported from
// rtfb-blackfriday/ast_inline.go's scanDelims (same character classes,
// rewritten as a pure function over (src, pos) instead of parser state).
func scanDelims(src string, pos int, ch byte) (length int, canOpen, canClose bool) {
	start := pos
	for pos < len(src) && src[pos] == ch {
		pos++
	}
	length = pos - start
	if length == 0 {
		return 0, false, false
	}

	before := byte('\n')
	if start > 0 {
		before = src[start-1]
	}
	after := byte('\n')
	if pos < len(src) {
		after = src[pos]
	}

	beforeWS := reWhitespaceChar.Match([]byte{before})
	beforePunct := rePunctuationChar.Match([]byte{before})
	afterWS := reWhitespaceChar.Match([]byte{after})
	afterPunct := rePunctuationChar.Match([]byte{after})

	leftFlanking := !afterWS && !(afterPunct && !beforeWS && !beforePunct)
	rightFlanking := !beforeWS && !(beforePunct && !afterWS && !afterPunct)

	if ch == '_' {
		canOpen = leftFlanking && (!rightFlanking || beforePunct)
		canClose = rightFlanking && (!leftFlanking || afterPunct)
	} else {
		canOpen = leftFlanking
		canClose = rightFlanking
	}
	return length, canOpen, canClose
}

func inlineRuleEmphasis() InlineRule {
	return InlineRule{
		Name:     "emphasis",
		Priority: 60,
		Match: func(s *InlineState) int {
			ch := s.src[s.pos]
			if ch != '*' && ch != '_' {
				return 0
			}
			n, canOpen, canClose := scanDelims(s.src, s.pos, ch)
			if !canOpen && !canClose {
				return 0
			}
			return n
		},
		Parse: func(s *InlineState, n int) {
			ch := s.src[s.pos]
			_, canOpen, canClose := scanDelims(s.src, s.pos, ch)

			if len(s.delims) >= s.parser.cfg.maxDelimiters {
				s.appendText(s.src[s.pos : s.pos+n])
				s.pos += n
				return
			}

			tok := NewToken("text")
			tok.Text = s.src[s.pos : s.pos+n]
			tok.SetAttr("delim", true)
			s.appendToken(tok)
			s.delims = append(s.delims, delimiter{
				tokenIndex: len(s.tokens) - 1,
				char:       ch,
				length:     n,
				canOpen:    canOpen,
				canClose:   canClose,
				active:     true,
			})
			s.pos += n
		},
	}
}
