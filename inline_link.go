package gomark

import (
	"regexp"
	"strings"
)

var reLinkInlineDest = regexp.MustCompile(`^\(\s*(?:<([^<>\n]*)>|((?:[^\s()]|\([^\s()]*\))*))(?:\s+(?:"([^"]*)"|'([^']*)'|\(([^)]*)\)))?\s*\)`)
var reLinkRefLabelTail = regexp.MustCompile(`^\[([^\]]*)\]`)

func inlineRuleBracketOpen() InlineRule {
	return InlineRule{
		Name:     "bracket_open",
		Priority: 70,
		Match: func(s *InlineState) int {
			if s.src[s.pos] == '[' {
				return 1
			}
			if s.src[s.pos] == '!' && s.pos+1 < len(s.src) && s.src[s.pos+1] == '[' {
				return 2
			}
			return 0
		},
		Parse: func(s *InlineState, n int) {
			isImage := n == 2
			tok := NewToken("text")
			tok.Text = s.src[s.pos : s.pos+n]
			s.appendToken(tok)
			s.brackets = append(s.brackets, bracketMarker{
				tokenIndex: len(s.tokens) - 1,
				isImage:    isImage,
				active:     true,
			})
			s.pos += n
		},
	}
}

func inlineRuleBracketClose() InlineRule {
	return InlineRule{
		Name:     "bracket_close",
		Priority: 80,
		Match: func(s *InlineState) int {
			if s.src[s.pos] != ']' {
				return 0
			}
			return 1
		},
		Parse: func(s *InlineState, n int) {
			bi := topActiveBracket(s.brackets)
			if bi < 0 {
				s.appendText("]")
				s.pos++
				return
			}
			bracket := &s.brackets[bi]
			openIdx := bracket.tokenIndex
			labelStart := openIdx + 1

			// Plain text right after the marker was coalesced into the
			// marker token itself by appendText; split it back out.
			markerLen := 1
			if bracket.isImage {
				markerLen = 2
			}
			var lead []*Token
			if openText := s.tokens[openIdx].Text; len(openText) > markerLen {
				lead = []*Token{NewToken("text").withText(openText[markerLen:])}
			}

			label := flattenText(lead) + flattenText(s.tokens[labelStart:])
			rest := s.src[s.pos+1:]

			href, title, consumed, ok := matchLinkTail(rest, label, s.env)
			if !ok {
				bracket.active = false
				s.appendText("]")
				s.pos++
				return
			}

			childDelims := make([]delimiter, 0, len(s.delims))
			for _, d := range s.delims {
				if d.tokenIndex >= labelStart {
					childDelims = append(childDelims, d)
				}
			}
			children := resolveEmphasis(s.tokens, childDelims, labelStart, len(s.tokens))
			if lead != nil {
				children = append(lead, children...)
			}

			kept := make([]delimiter, 0, len(s.delims))
			for _, d := range s.delims {
				if d.tokenIndex < labelStart {
					kept = append(kept, d)
				}
			}
			s.delims = kept

			var linkTok *Token
			if bracket.isImage {
				linkTok = NewToken("image")
				linkTok.SetAttr("src", percentEncodeURL(href))
				linkTok.SetAttr("alt", flattenText(children))
			} else {
				linkTok = NewContainer("link")
				linkTok.Children = children
			}
			if title != "" {
				linkTok.SetAttr("title", title)
			}
			if !bracket.isImage {
				linkTok.SetAttr("href", percentEncodeURL(href))
			}

			s.tokens = append(s.tokens[:openIdx], linkTok)
			s.brackets = s.brackets[:bi]
			if !bracket.isImage {
				// A link cannot contain another link; any brackets still
				// open to the left become permanently inactive.
				for i := range s.brackets {
					if !s.brackets[i].isImage {
						s.brackets[i].active = false
					}
				}
			}
			s.pos += 1 + consumed
		},
	}
}

func topActiveBracket(brackets []bracketMarker) int {
	for i := len(brackets) - 1; i >= 0; i-- {
		if brackets[i].active {
			return i
		}
	}
	return -1
}

// matchLinkTail parses the syntax following a link/image closing "]":
// an inline "(dest \"title\")", a full/collapsed/shortcut reference, or
// nothing recognizable. Returns the resolved destination, title, and the
// number of bytes of rest consumed (not counting the "]" itself).
func matchLinkTail(rest, label string, env *Env) (href, title string, consumed int, ok bool) {
	if groups, ok := matchAt(reLinkInlineDest, rest, 0); ok {
		dest := groups[1]
		if dest == "" {
			dest = groups[2]
		}
		for _, g := range groups[3:] {
			if g != "" {
				title = g
				break
			}
		}
		return unescapeString(dest), unescapeString(title), len(groups[0]), true
	}

	refLabel := label
	consumedRef := 0
	if m := reLinkRefLabelTail.FindStringSubmatch(rest); m != nil {
		if strings.TrimSpace(m[1]) != "" {
			refLabel = m[1]
		}
		consumedRef = len(m[0])
	}
	if def, ok := env.LookupRef(refLabel); ok {
		return def.URL, def.Title, consumedRef, true
	}
	return "", "", 0, false
}

// flattenText renders a token subtree down to its plain-text content, used
// for an image's alt text and for resolving shortcut reference labels.
func flattenText(tokens []*Token) string {
	var b strings.Builder
	for _, t := range tokens {
		switch {
		case t.Children != nil:
			b.WriteString(flattenText(t.Children))
		case t.Text != "":
			b.WriteString(t.Text)
		case t.Raw != "":
			b.WriteString(t.Raw)
		}
	}
	return b.String()
}
