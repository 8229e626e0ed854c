package gomark

import "regexp"

// reDefMarker matches a definition-list definition line: "optional indent,
// ':', whitespace, content".
var reDefMarker = regexp.MustCompile(`^ {0,3}:[ \t]+(.*)$`)

// PluginDefinitionList registers PHP-Markdown-Extra-style definition lists:
//
//	Term
//	: Definition one
//	: Definition two
func PluginDefinitionList(p *Parser) {
	p.RegisterBlockRule(BlockRule{
		Name:     "definition_list",
		Priority: 75,
		Match: func(s *BlockState) bool {
			if n := len(s.tokens); n == 0 || s.tokens[n-1].Type != "paragraph_open" {
				return false
			}
			return reDefMarker.MatchString(s.peek())
		},
		Parse: func(s *BlockState) {
			n := len(s.tokens)
			term := s.tokens[n-1]
			term.Type = "definition_term"
			s.tokens = s.tokens[:n-1]

			dl := NewContainer("definition_list")
			dt := NewContainer("definition_item_term")
			dt.Text = term.Text
			dl.AppendChild(dt)

			for !s.eof() {
				m := reDefMarker.FindStringSubmatch(s.peek())
				if m == nil {
					break
				}
				s.advance()
				sub := []string{m[1]}
				for !s.eof() {
					line := s.peek()
					if isBlank(line) {
						break
					}
					if reDefMarker.MatchString(line) {
						break
					}
					w, _ := indentWidth(line)
					if w < 4 {
						break
					}
					sub = append(sub, stripIndentColumns(expandTabs(line), 4))
					s.advance()
				}
				dd := NewContainer("definition_item_description")
				child := s.child(sub, dd)
				child.process()
				dd.Children = child.tokens
				dl.AppendChild(dd)
			}
			s.append(dl)
		},
	})

	p.RegisterRenderHTML("definition_list", func(tok *Token, children string, opts *config) string {
		return "<dl>\n" + children + "</dl>\n"
	})
	p.RegisterRenderHTML("definition_item_term", func(tok *Token, children string, opts *config) string {
		return "<dt>" + renderLeafOrChildren(tok, children, opts) + "</dt>\n"
	})
	p.RegisterRenderHTML("definition_item_description", func(tok *Token, children string, opts *config) string {
		return "<dd>" + children + "</dd>\n"
	})
}
