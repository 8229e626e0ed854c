package gomark

import (
	"regexp"
	"strings"
)

// reAbbrDef matches a PHP-Markdown-Extra abbreviation definition line:
// "*[HTML]: Hyper Text Markup Language".
var reAbbrDef = regexp.MustCompile(`^\*\[([^\]\n]+)\]:[ \t]*(.+)$`)

// PluginAbbreviation registers abbreviation definitions and rewrites
// occurrences of their literal text anywhere in the document, before or
// after the definition, into <abbr title="..."> spans.
func PluginAbbreviation(p *Parser) {
	p.RegisterBlockRule(BlockRule{
		Name:     "abbr_def",
		Priority: 62,
		Match: func(s *BlockState) bool {
			return reAbbrDef.MatchString(s.peek())
		},
		Parse: func(s *BlockState) {
			m := reAbbrDef.FindStringSubmatch(s.peek())
			s.env.Abbrevs[m[1]] = strings.TrimSpace(m[2])
			s.advance()
		},
	})

	p.RegisterTreeTransform(func(doc *Token, env *Env) {
		if len(env.Abbrevs) == 0 {
			return
		}
		doc.Walk(func(tok *Token) bool {
			if tok.Children == nil {
				return true
			}
			tok.Children = expandAbbreviations(tok.Children, env.Abbrevs)
			return true
		})
	})

	p.RegisterRenderHTML("abbr", func(tok *Token, children string, opts *config) string {
		return `<abbr title="` + tok.AttrString("title") + `">` + tok.Text + "</abbr>"
	})
}

// expandAbbreviations splits every plain "text" child on each abbreviation
// term, replacing whole-word matches with an "abbr" token.
func expandAbbreviations(children []*Token, abbrevs map[string]string) []*Token {
	var out []*Token
	for _, c := range children {
		if c.Type != "text" {
			out = append(out, c)
			continue
		}
		out = append(out, splitAbbrText(c.Text, abbrevs)...)
	}
	return out
}

func splitAbbrText(text string, abbrevs map[string]string) []*Token {
	for term, title := range abbrevs {
		idx := strings.Index(text, term)
		if idx < 0 {
			continue
		}
		if !isWordBoundary(text, idx) || !isWordBoundary(text, idx+len(term)) {
			continue
		}
		var result []*Token
		if idx > 0 {
			result = append(result, splitAbbrText(text[:idx], abbrevs)...)
		}
		abbr := NewToken("abbr")
		abbr.Text = term
		abbr.SetAttr("title", title)
		result = append(result, abbr)
		if idx+len(term) < len(text) {
			result = append(result, splitAbbrText(text[idx+len(term):], abbrevs)...)
		}
		return result
	}
	return []*Token{NewToken("text").withText(text)}
}

func isWordBoundary(s string, i int) bool {
	if i <= 0 || i >= len(s) {
		return true
	}
	c := s[i-1]
	d := s[i]
	isWord := func(b byte) bool {
		return b == '_' || (b >= '0' && b <= '9') || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
	}
	return !(isWord(c) && isWord(d))
}
