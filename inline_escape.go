package gomark

import "strings"

const escapablePunct = "!\"#$%&'()*+,-./:;<=>?@[]\\^_`{|}~"

func inlineRuleEscape() InlineRule {
	return InlineRule{
		Name:     "escape",
		Priority: 0,
		Match: func(s *InlineState) int {
			if s.pos+1 >= len(s.src) || s.src[s.pos] != '\\' {
				return 0
			}
			c := s.src[s.pos+1]
			if c == '\n' {
				return 2
			}
			if strings.IndexByte(escapablePunct, c) >= 0 {
				return 2
			}
			return 0
		},
		Parse: func(s *InlineState, n int) {
			if s.src[s.pos+1] == '\n' {
				s.appendToken(NewToken("hardbreak"))
				s.pos += n
				return
			}
			s.appendText(string(s.src[s.pos+1]))
			s.pos += n
		},
	}
}
