package gomark

func inlineRuleEntity() InlineRule {
	return InlineRule{
		Name:     "entity",
		Priority: 40,
		Match: func(s *InlineState) int {
			if s.src[s.pos] != '&' {
				return 0
			}
			_, n := decodeEntity(s.src[s.pos:])
			return n
		},
		Parse: func(s *InlineState, n int) {
			text, _ := decodeEntity(s.src[s.pos:])
			s.appendText(text)
			s.pos += n
		},
	}
}

func inlineRuleLineBreak() InlineRule {
	return InlineRule{
		Name:     "linebreak",
		Priority: 50,
		Match: func(s *InlineState) int {
			if s.src[s.pos] != '\n' {
				return 0
			}
			return 1
		},
		Parse: func(s *InlineState, n int) {
			hard := false
			if m := len(s.tokens); m > 0 && s.tokens[m-1].Type == "text" {
				trailing := s.tokens[m-1].Text
				trimmed := trimTrailingSpaces(trailing)
				if len(trailing)-len(trimmed) >= 2 {
					hard = true
				}
				s.tokens[m-1].Text = trimmed
			}
			if hard {
				s.appendToken(NewToken("hardbreak"))
			} else {
				s.appendToken(NewToken("softbreak"))
			}
			s.pos++
		},
	}
}

func trimTrailingSpaces(s string) string {
	i := len(s)
	for i > 0 && s[i-1] == ' ' {
		i--
	}
	return s[:i]
}
