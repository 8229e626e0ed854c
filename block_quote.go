package gomark

import "regexp"

// reQuoteMarker matches a block-quote marker: up to 3 leading spaces, '>',
// and an optional single following space (stripped from the content).
var reQuoteMarker = regexp.MustCompile(`^ {0,3}>[ ]?`)

func blockRuleBlockQuote() BlockRule {
	return BlockRule{
		Name:     "block_quote",
		Priority: 70,
		Match: func(s *BlockState) bool {
			return reQuoteMarker.MatchString(s.peek())
		},
		Parse: func(s *BlockState) {
			s.closeParagraph()
			var sub []string
			seenMarker := false
			for !s.eof() {
				line := s.peek()
				if loc := reQuoteMarker.FindStringIndex(line); loc != nil {
					sub = append(sub, line[loc[1]:])
					seenMarker = true
					s.advance()
					continue
				}
				if isBlank(line) {
					break
				}
				// Lazy continuation: an unmarked, non-blank line continues
				// the block quote's trailing paragraph (spec §4.C).
				if seenMarker {
					sub = append(sub, line)
					s.advance()
					continue
				}
				break
			}
			quote := NewContainer("block_quote")
			child := s.child(sub, quote)
			child.process()
			quote.Children = child.tokens
			s.append(quote)
		},
	}
}
