package gomark

import "regexp"

// reThematicBreak matches a line of 3+ matching *, -, or _ characters,
// optionally space-separated, per CommonMark's thematic break rule.
var reThematicBreak = regexp.MustCompile(`^ {0,3}((?:\*[ \t]*){3,}|(?:-[ \t]*){3,}|(?:_[ \t]*){3,})$`)

func blockRuleThematicBreak() BlockRule {
	return BlockRule{
		Name:     "thematic_break",
		Priority: 30,
		Match: func(s *BlockState) bool {
			return reThematicBreak.MatchString(s.peek())
		},
		Parse: func(s *BlockState) {
			s.closeParagraph()
			s.append(NewToken("thematic_break"))
			s.advance()
		},
	}
}
