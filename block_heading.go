package gomark

import "regexp"

// reATXHeading matches a line with 1-6 leading '#'s, per CommonMark's ATX
// heading rule. The heading text is the line with leading/trailing '#'s and
// surrounding whitespace stripped.
var reATXHeading = regexp.MustCompile(`^ {0,3}(#{1,6})(?:[ \t]+(.*?))?[ \t]*$`)
var reATXTrailingHashes = regexp.MustCompile(`[ \t]+#+[ \t]*$|^#+[ \t]*$`)

func blockRuleATXHeading() BlockRule {
	return BlockRule{
		Name:     "atx_heading",
		Priority: 10,
		Match: func(s *BlockState) bool {
			return reATXHeading.MatchString(s.peek())
		},
		Parse: func(s *BlockState) {
			s.closeParagraph()
			m := reATXHeading.FindStringSubmatch(s.peek())
			level := len(m[1])
			text := reATXTrailingHashes.ReplaceAllString(m[2], "")
			tok := NewToken("heading")
			tok.SetAttr("level", level)
			tok.Text = text
			s.env.Headings = append(s.env.Headings, tok)
			s.append(tok)
			s.advance()
		},
	}
}

var reSetextUnderline = regexp.MustCompile(`^ {0,3}(=+|-+)[ \t]*$`)

func blockRuleSetextHeading() BlockRule {
	return BlockRule{
		Name:     "setext_heading",
		Priority: 20,
		Match: func(s *BlockState) bool {
			if n := len(s.tokens); n == 0 || s.tokens[n-1].Type != "paragraph_open" {
				return false
			}
			return reSetextUnderline.MatchString(s.peek())
		},
		Parse: func(s *BlockState) {
			m := reSetextUnderline.FindStringSubmatch(s.peek())
			level := 1
			if m[1][0] == '-' {
				level = 2
			}
			p := s.tokens[len(s.tokens)-1]
			tok := NewToken("heading")
			tok.SetAttr("level", level)
			tok.Text = p.Text
			s.env.Headings = append(s.env.Headings, tok)
			s.tokens[len(s.tokens)-1] = tok
			s.advance()
		},
	}
}
