package gomark

import "regexp"

// reAutolinkURI matches a CommonMark "<scheme:...>" absolute-URI autolink.
var reAutolinkURI = regexp.MustCompile(`^<[a-zA-Z][a-zA-Z0-9+.-]{1,31}:[^<>\x00-\x20]*>`)

// reAutolinkEmail matches a CommonMark "<email>" autolink.
var reAutolinkEmail = regexp.MustCompile(`^<[a-zA-Z0-9.!#$%&'*+/=?^_` + "`" + `{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*>`)

func inlineRuleAutolink() InlineRule {
	return InlineRule{
		Name:     "autolink",
		Priority: 20,
		Match: func(s *InlineState) int {
			if groups, ok := matchAt(reAutolinkURI, s.src, s.pos); ok {
				return len(groups[0])
			}
			if groups, ok := matchAt(reAutolinkEmail, s.src, s.pos); ok {
				return len(groups[0])
			}
			return 0
		},
		Parse: func(s *InlineState, n int) {
			raw := s.src[s.pos+1 : s.pos+n-1]
			tok := NewToken("link")
			href := raw
			if reAutolinkEmail.MatchString(s.src[s.pos : s.pos+n]) {
				href = "mailto:" + raw
			}
			tok.SetAttr("href", percentEncodeURL(href))
			tok.Text = raw
			tok.SetAttr("autolink", true)
			s.appendToken(tok)
			s.pos += n
		},
	}
}
