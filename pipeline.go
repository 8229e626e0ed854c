package gomark

import (
	"pkt.systems/gomark/internal/slug"
)

// inlineEligible lists the raw-leaf token types whose Text carries unparsed
// inline content for runInlinePhase to parse into Children.
var inlineEligible = map[string]bool{
	"paragraph":             true,
	"heading":               true,
	"table_cell":            true,
	"definition_item_term":  true,
	"figure_caption":        false, // directiveFigure already stores plain text
}

// Parse runs the block phase then the inline phase over source, returning
// the document root token (Type "document") and the Env accumulated along
// the way (reference definitions, footnotes, collected headings, ...).
func (p *Parser) Parse(source string) (*Token, *Env, error) {
	if err := ValidateInput([]byte(source)); err != nil {
		return nil, nil, err
	}

	env := NewEnv()
	for _, init := range p.envInits {
		init(env)
	}
	for _, pre := range p.sourcePreprocessors {
		source = pre(env, source)
	}

	root := newRootBlockState(p, env, source)
	root.process()

	doc := NewContainer("document")
	doc.Children = root.tokens

	assignHeadingSlugs(doc)
	runInlinePhase(doc, p, env)
	resolveTOC(doc, env)
	processFootnotes(doc, env, p)
	for _, transform := range p.treeTransforms {
		transform(doc, env)
	}

	return doc, env, nil
}

// Render converts an already-parsed document with the Parser's configured
// Renderer (HTMLRenderer by default, or whatever WithRenderer selected).
func (p *Parser) Render(doc *Token, env *Env) (string, error) {
	out, err := p.cfg.renderer.Render(doc, env, p.cfg)
	if err != nil {
		return "", err
	}
	s, ok := out.(string)
	if !ok {
		return "", &RendererMissingMethodError{TokenType: "document"}
	}
	return s, nil
}

// RenderAST converts doc to its plain-data AST form, independent of
// whatever Renderer WithRenderer selected for Render/Convert -- spec §6's
// two render modes are both always available from one Parser.
func (p *Parser) RenderAST(doc *Token, env *Env) (map[string]any, error) {
	out, err := (&ASTRenderer{}).Render(doc, env, p.cfg)
	if err != nil {
		return nil, err
	}
	return out.(map[string]any), nil
}

// Convert parses and renders source in one call, the common case for
// callers that don't need the intermediate token tree or Env.
func (p *Parser) Convert(source string) (string, error) {
	doc, env, err := p.Parse(source)
	if err != nil {
		return "", err
	}
	return p.Render(doc, env)
}

// runInlinePhase walks the block tree depth-first, setting each raw-leaf
// token's Children, in place, from its inline-parsed Text (spec §4.D).
// Text itself is kept; heading slugs and TOC entries read it.
// A token type absent from inlineEligible is left untouched (code_block,
// html_block, thematic_break, ... never carry inline content).
func runInlinePhase(tok *Token, p *Parser, env *Env) {
	if inlineEligible[tok.Type] && tok.Text != "" {
		tok.Children = ParseInline(p, env, tok.Text)
	}
	for _, c := range tok.Children {
		runInlinePhase(c, p, env)
	}
}

// assignHeadingSlugs sets each heading token's "id" attribute from its raw
// text, in document order, using internal/slug to disambiguate repeats.
func assignHeadingSlugs(doc *Token) {
	gen := slug.NewGenerator()
	doc.Walk(func(tok *Token) bool {
		if tok.Type == "heading" {
			tok.SetAttr("id", gen.Anchor(tok.Text))
		}
		return true
	})
}

// resolveTOC replaces every toc_placeholder token with a nested list of
// links to the document's own headings, honoring an optional "depth"
// option (maximum heading level to include, default 3).
func resolveTOC(doc *Token, env *Env) {
	doc.Walk(func(tok *Token) bool {
		for i, c := range tok.Children {
			if c.Type != "toc_placeholder" {
				continue
			}
			depth := 3
			if d := c.AttrString("depth"); d != "" {
				if n := parsePositiveInt(d); n > 0 {
					depth = n
				}
			}
			tok.Children[i] = buildTOC(env.Headings, depth)
		}
		return true
	})
}

func buildTOC(headings []*Token, depth int) *Token {
	toc := NewContainer("toc")
	list := NewContainer("bullet_list")
	list.SetAttr("tight", true)
	for _, h := range headings {
		if h.AttrInt("level") > depth {
			continue
		}
		item := NewContainer("list_item")
		item.SetAttr("tight", true)
		link := NewContainer("link")
		link.SetAttr("href", "#"+h.AttrString("id"))
		text := NewToken("text")
		text.Text = h.Text
		link.Children = []*Token{text}
		item.Children = []*Token{link}
		list.Children = append(list.Children, item)
	}
	toc.Children = []*Token{list}
	return toc
}

func parsePositiveInt(s string) int {
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0
		}
		n = n*10 + int(r-'0')
	}
	return n
}
