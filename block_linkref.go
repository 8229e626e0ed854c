package gomark

import (
	"regexp"
	"strings"
)

// reLinkRefLabel matches the "[label]:" opening of a link reference
// definition; the destination and optional title may follow on the same
// line or continuation lines.
var reLinkRefLabel = regexp.MustCompile(`^ {0,3}\[([^\]\n]+)\]:[ \t]*`)
var reLinkDest = regexp.MustCompile(`^<([^<>\n]*)>|^(\S+)`)
var reLinkTitle = regexp.MustCompile(`^"([^"]*)"|^'([^']*)'|^\(([^)]*)\)`)

func blockRuleLinkRef() BlockRule {
	return BlockRule{
		Name:     "link_ref_def",
		Priority: 60,
		Match: func(s *BlockState) bool {
			if n := len(s.tokens); n > 0 && s.tokens[n-1].Type == "paragraph_open" {
				return false
			}
			return reLinkRefLabel.MatchString(s.peek())
		},
		Parse: func(s *BlockState) {
			// Link reference definitions may span up to 3 physical lines
			// (label+colon, destination, title); join a small lookahead
			// window and re-match so destination/title can wrap.
			window := s.peek()
			consumedLines := 1
			for extra := 1; extra <= 2; extra++ {
				if next, ok := s.peekAt(extra); ok && !isBlank(next) && !reLinkRefLabel.MatchString(next) {
					window += "\n" + next
				} else {
					break
				}
			}

			m := reLinkRefLabel.FindStringSubmatchIndex(window)
			if m == nil {
				// Shouldn't happen since Match already confirmed it on line 1.
				s.addParagraphLine(s.peek())
				s.advance()
				return
			}
			label := window[m[2]:m[3]]
			rest := strings.TrimLeft(window[m[1]:], " \t\n")
			destStart := len(window) - len(rest)

			destGroups, ok := matchAt(reLinkDest, rest, 0)
			if !ok {
				s.addParagraphLine(s.peek())
				s.advance()
				return
			}
			dest := destGroups[1]
			if dest == "" {
				dest = destGroups[2]
			}
			consumedBytes := destStart + len(destGroups[0])

			title := ""
			titleRest := strings.TrimLeft(rest[len(destGroups[0]):], " \t\n")
			if titleGroups, ok := matchAt(reLinkTitle, titleRest, 0); ok {
				for _, g := range titleGroups[1:] {
					if g != "" {
						title = g
						break
					}
				}
				consumedBytes = len(window) - len(titleRest) + len(titleGroups[0])
			}

			consumedLines = strings.Count(window[:consumedBytes], "\n") + 1

			s.env.AddRef(label, RefDef{URL: percentEncodeURL(unescapeString(dest)), Title: unescapeString(title)})
			for i := 0; i < consumedLines; i++ {
				s.advance()
			}
		},
	}
}
