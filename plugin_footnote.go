package gomark

import (
	"regexp"
	"strconv"
)

// reFootnoteDef matches a footnote definition's opening line: "[^label]:".
var reFootnoteDef = regexp.MustCompile(`^ {0,3}\[\^([^\]\n]+)\]:[ \t]?(.*)$`)

// reFootnoteRef matches an inline footnote reference: "[^label]".
var reFootnoteRef = regexp.MustCompile(`^\[\^([^\]\n]+)\]`)

// PluginFootnote registers GFM-style footnote definitions and references.
// A definition's body may continue on indented lines, same as a list item's
// content; processFootnotes (always run by Parse) collects every
// registered definition into a rendered footnotes section at document end.
func PluginFootnote(p *Parser) {
	p.RegisterBlockRule(blockRuleFootnoteDef())
	p.RegisterInlineRule(inlineRuleFootnoteRef())
	p.RegisterRenderHTML("footnote_ref", func(tok *Token, children string, opts *config) string {
		label := tok.AttrString("label")
		n := tok.AttrInt("number")
		return "<sup id=\"fnref-" + label + "\"><a href=\"#fn-" + label + "\">" + strconv.Itoa(n) + "</a></sup>"
	})
	p.RegisterRenderHTML("footnotes", func(tok *Token, children string, opts *config) string {
		return "<section class=\"footnotes\">\n<ol>\n" + children + "</ol>\n</section>\n"
	})
	p.RegisterRenderHTML("footnote_item", func(tok *Token, children string, opts *config) string {
		label := tok.AttrString("label")
		return "<li id=\"fn-" + label + "\">" + children + " <a href=\"#fnref-" + label + "\">↩</a></li>\n"
	})
}

func blockRuleFootnoteDef() BlockRule {
	return BlockRule{
		Name: "footnote_def",
		// Runs before link_ref_def (priority 60), whose label pattern also
		// matches a "[^label]:" line.
		Priority: 55,
		Match: func(s *BlockState) bool {
			return reFootnoteDef.MatchString(s.peek())
		},
		Parse: func(s *BlockState) {
			s.closeParagraph()
			m := reFootnoteDef.FindStringSubmatch(s.peek())
			label := m[1]
			sub := []string{m[2]}
			s.advance()
			for !s.eof() {
				line := s.peek()
				if isBlank(line) {
					j := s.line
					for j < len(s.lines) && isBlank(s.lines[j]) {
						j++
					}
					if j >= len(s.lines) {
						break
					}
					if w, _ := indentWidth(s.lines[j]); w < 4 {
						break
					}
					sub = append(sub, "")
					s.advance()
					continue
				}
				w, _ := indentWidth(line)
				if w < 4 {
					break
				}
				sub = append(sub, stripIndentColumns(expandTabs(line), 4))
				s.advance()
			}
			container := NewContainer("footnote_def")
			child := s.child(sub, container)
			child.process()
			container.Children = child.tokens
			s.env.AddFootnote(label, container)
		},
	}
}

func inlineRuleFootnoteRef() InlineRule {
	return InlineRule{
		Name:     "footnote_ref",
		Priority: 55,
		Match: func(s *InlineState) int {
			groups, ok := matchAt(reFootnoteRef, s.src, s.pos)
			if !ok {
				return 0
			}
			return len(groups[0])
		},
		Parse: func(s *InlineState, n int) {
			m := reFootnoteRef.FindStringSubmatch(s.src[s.pos : s.pos+n])
			label := m[1]
			tok := NewToken("footnote_ref")
			tok.SetAttr("label", normalizeLabel(label))
			s.appendToken(tok)
			s.pos += n
		},
	}
}

// processFootnotes numbers every footnote_ref token in first-reference
// order and appends a rendered footnotes section built from Env.Footnotes,
// a no-op when the footnote plugin was never registered (Env.Footnotes is
// then always empty). Footnote bodies are parsed by blockRuleFootnoteDef's
// own child BlockState, but that container is never attached under doc
// until here, after runInlinePhase has already walked the tree once --
// so the section built from Env.Footnotes needs its own inline pass before
// it's appended.
func processFootnotes(doc *Token, env *Env, p *Parser) {
	if len(env.Footnotes) == 0 {
		return
	}
	numbers := map[string]int{}
	order := []string{}
	doc.Walk(func(tok *Token) bool {
		if tok.Type == "footnote_ref" {
			label := tok.AttrString("label")
			if _, ok := numbers[label]; !ok {
				numbers[label] = len(order) + 1
				order = append(order, label)
			}
			tok.SetAttr("number", numbers[label])
		}
		return true
	})
	if len(order) == 0 {
		return
	}

	section := NewContainer("footnotes")
	for _, label := range order {
		def, ok := env.Footnotes[label]
		if !ok {
			continue
		}
		item := NewContainer("footnote_item")
		item.SetAttr("label", label)
		item.Children = def.Children
		section.Children = append(section.Children, item)
	}
	runInlinePhase(section, p, env)
	doc.Children = append(doc.Children, section)
}
