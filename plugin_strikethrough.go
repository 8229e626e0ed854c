package gomark

// PluginStrikethrough registers the GFM "~~text~~" strikethrough span.
// Pairing uses the same open/close-marker-stack shape as bracket_open's
// link handling, kept independent of it since strikethrough delimiters
// never interact with emphasis or link delimiter resolution.
func PluginStrikethrough(p *Parser) {
	p.RegisterInlineRule(InlineRule{
		Name:     "strikethrough",
		Priority: 65,
		Match: func(s *InlineState) int {
			if s.pos+1 >= len(s.src) || s.src[s.pos] != '~' || s.src[s.pos+1] != '~' {
				return 0
			}
			return 2
		},
		Parse: func(s *InlineState, n int) {
			stack, _ := s.Scratch["strike"].([]int)
			if len(stack) > 0 {
				openIdx := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				s.Scratch["strike"] = stack

				// Plain text right after the opener was coalesced into the
				// opener token by appendText; split it back out.
				children := make([]*Token, 0, len(s.tokens)-openIdx)
				if openText := s.tokens[openIdx].Text; len(openText) > 2 {
					children = append(children, NewToken("text").withText(openText[2:]))
				}
				children = append(children, s.tokens[openIdx+1:]...)
				wrap := NewContainer("strikethrough")
				wrap.Children = children
				s.tokens = append(s.tokens[:openIdx], wrap)
				s.pos += n
				return
			}
			tok := NewToken("text")
			tok.Text = "~~"
			s.appendToken(tok)
			if s.Scratch == nil {
				s.Scratch = map[string]any{}
			}
			stack = append(stack, len(s.tokens)-1)
			s.Scratch["strike"] = stack
			s.pos += n
		},
	})
	p.RegisterRenderHTML("strikethrough", func(tok *Token, children string, opts *config) string {
		return "<del>" + children + "</del>"
	})
}
