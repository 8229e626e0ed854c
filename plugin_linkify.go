package gomark

import "regexp"

// reLinkifyURL matches a bare http(s):// URL or www. address, GFM's
// "extended autolinks" extension -- unlike inline_autolink.go's <...> form,
// these appear unbracketed in running text.
var reLinkifyURL = regexp.MustCompile(`^(?:https?://|www\.)[^\s<>]+`)

// PluginLinkify registers GFM extended autolinks for bare URLs.
func PluginLinkify(p *Parser) {
	p.RegisterInlineRule(InlineRule{
		Name:     "linkify",
		Priority: 25,
		Match: func(s *InlineState) int {
			c := s.src[s.pos]
			if c != 'h' && c != 'w' {
				return 0
			}
			groups, ok := matchAt(reLinkifyURL, s.src, s.pos)
			if !ok {
				return 0
			}
			return len(trimLinkifyTrailingPunct(groups[0]))
		},
		Parse: func(s *InlineState, n int) {
			raw := s.src[s.pos : s.pos+n]
			href := raw
			if href[0] == 'w' {
				href = "http://" + href
			}
			tok := NewToken("link")
			tok.SetAttr("href", percentEncodeURL(href))
			tok.SetAttr("autolink", true)
			tok.Text = raw
			s.appendToken(tok)
			s.pos += n
		},
	})
}

// trimLinkifyTrailingPunct drops trailing punctuation GFM excludes from an
// autolinked URL match (trailing '.', ',', ';', ':', '!', '?', and a
// closing bracket with no matching opener inside the match).
func trimLinkifyTrailingPunct(s string) string {
	for len(s) > 0 {
		last := s[len(s)-1]
		switch last {
		case '.', ',', ';', ':', '!', '?', '\'', '"':
			s = s[:len(s)-1]
			continue
		case ')':
			if countByte(s, '(') < countByte(s, ')') {
				s = s[:len(s)-1]
				continue
			}
		}
		break
	}
	return s
}

func countByte(s string, b byte) int {
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] == b {
			n++
		}
	}
	return n
}
