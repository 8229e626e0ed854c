package gomark

import (
	"fmt"
	"html"
	"strings"
)

// HTMLRenderer converts a token tree to an HTML string by dispatching each
// token through the owning Parser's per-type function map, never through an
// ad-hoc type switch, so a plugin-registered renderer method is used for
// every token it was registered for (spec §6).
type HTMLRenderer struct{}

// NewHTMLRenderer returns the default renderer used by Convert and by
// Parser.Render when no other Renderer was selected via WithRenderer.
func NewHTMLRenderer() *HTMLRenderer {
	return &HTMLRenderer{}
}

func (r *HTMLRenderer) Render(doc *Token, env *Env, opts *config) (any, error) {
	out, err := renderChildrenHTML(doc.Children, opts)
	if err != nil {
		return "", err
	}
	return out, nil
}

func renderChildrenHTML(tokens []*Token, opts *config) (string, error) {
	var b strings.Builder
	for _, tok := range tokens {
		s, err := renderTokenHTML(tok, opts)
		if err != nil {
			return "", err
		}
		b.WriteString(s)
	}
	return b.String(), nil
}

func renderTokenHTML(tok *Token, opts *config) (string, error) {
	fn, ok := opts.htmlFuncs[tok.Type]
	if !ok {
		return "", &RendererMissingMethodError{TokenType: tok.Type}
	}
	var children string
	var err error
	if tok.Children != nil {
		if tok.Type == "list_item" && tok.AttrBool("tight") {
			children, err = renderTightListItemChildrenHTML(tok.Children, opts)
		} else {
			children, err = renderChildrenHTML(tok.Children, opts)
		}
		if err != nil {
			return "", err
		}
	}
	return fn(tok, children, opts), nil
}

// renderTightListItemChildrenHTML renders a tight list item's children,
// unwrapping a direct paragraph child to its inline content instead of
// going through paragraph's own <p>-wrapping renderer (CommonMark's Tight
// list rule; grounded on rtfb-blackfriday/ast_block.go's "tight bool //
// skip <p>s around list item data").
func renderTightListItemChildrenHTML(tokens []*Token, opts *config) (string, error) {
	var b strings.Builder
	for _, tok := range tokens {
		if tok.Type != "paragraph" {
			s, err := renderTokenHTML(tok, opts)
			if err != nil {
				return "", err
			}
			b.WriteString(s)
			continue
		}
		if tok.Children != nil {
			s, err := renderChildrenHTML(tok.Children, opts)
			if err != nil {
				return "", err
			}
			b.WriteString(s)
		} else {
			b.WriteString(html.EscapeString(tok.Text))
		}
	}
	return b.String(), nil
}

// registerBuiltinHTMLRenderers installs the HTML render method for every
// token type the built-in block and inline rules can emit.
func registerBuiltinHTMLRenderers(p *Parser) {
	p.RegisterRenderHTML("paragraph", func(tok *Token, children string, opts *config) string {
		return "<p>" + renderLeafOrChildren(tok, children, opts) + "</p>\n"
	})
	p.RegisterRenderHTML("heading", func(tok *Token, children string, opts *config) string {
		level := tok.AttrInt("level")
		tag := fmt.Sprintf("h%d", level)
		id := tok.AttrString("id")
		idAttr := ""
		if id != "" {
			idAttr = fmt.Sprintf(` id="%s"`, html.EscapeString(id))
		}
		return fmt.Sprintf("<%s%s>%s</%s>\n", tag, idAttr, renderLeafOrChildren(tok, children, opts), tag)
	})
	p.RegisterRenderHTML("thematic_break", func(tok *Token, children string, opts *config) string {
		return "<hr />\n"
	})
	p.RegisterRenderHTML("code_block", func(tok *Token, children string, opts *config) string {
		langAttr := ""
		if lang := tok.AttrString("lang"); lang != "" {
			langAttr = fmt.Sprintf(` class="language-%s"`, html.EscapeString(lang))
		}
		return fmt.Sprintf("<pre><code%s>%s</code></pre>\n", langAttr, html.EscapeString(tok.Text))
	})
	p.RegisterRenderHTML("html_block", func(tok *Token, children string, opts *config) string {
		if opts.escape {
			return html.EscapeString(tok.Raw) + "\n"
		}
		return tok.Raw
	})
	p.RegisterRenderHTML("html_inline", func(tok *Token, children string, opts *config) string {
		if opts.escape {
			return html.EscapeString(tok.Raw)
		}
		return tok.Raw
	})
	p.RegisterRenderHTML("block_quote", func(tok *Token, children string, opts *config) string {
		return "<blockquote>\n" + children + "</blockquote>\n"
	})
	p.RegisterRenderHTML("bullet_list", func(tok *Token, children string, opts *config) string {
		return "<ul>\n" + children + "</ul>\n"
	})
	p.RegisterRenderHTML("ordered_list", func(tok *Token, children string, opts *config) string {
		start := tok.AttrInt("start")
		startAttr := ""
		if start != 1 {
			startAttr = fmt.Sprintf(` start="%d"`, start)
		}
		return fmt.Sprintf("<ol%s>\n%s</ol>\n", startAttr, children)
	})
	p.RegisterRenderHTML("list_item", func(tok *Token, children string, opts *config) string {
		return "<li>" + children + "</li>\n"
	})
	p.RegisterRenderHTML("table", func(tok *Token, children string, opts *config) string {
		return "<table>\n" + children + "</table>\n"
	})
	p.RegisterRenderHTML("table_head", func(tok *Token, children string, opts *config) string {
		return "<thead>\n" + children + "</thead>\n"
	})
	p.RegisterRenderHTML("table_body", func(tok *Token, children string, opts *config) string {
		return "<tbody>\n" + children + "</tbody>\n"
	})
	p.RegisterRenderHTML("table_row", func(tok *Token, children string, opts *config) string {
		return "<tr>\n" + children + "</tr>\n"
	})
	p.RegisterRenderHTML("table_cell", func(tok *Token, children string, opts *config) string {
		tag := "td"
		if tok.AttrBool("header") {
			tag = "th"
		}
		alignAttr := ""
		if align := tok.AttrString("align"); align != "" {
			alignAttr = fmt.Sprintf(` style="text-align:%s"`, align)
		}
		return fmt.Sprintf("<%s%s>%s</%s>\n", tag, alignAttr, renderLeafOrChildren(tok, children, opts), tag)
	})
	p.RegisterRenderHTML("text", func(tok *Token, children string, opts *config) string {
		return html.EscapeString(tok.Text)
	})
	p.RegisterRenderHTML("code_span", func(tok *Token, children string, opts *config) string {
		return "<code>" + html.EscapeString(tok.Text) + "</code>"
	})
	p.RegisterRenderHTML("emphasis", func(tok *Token, children string, opts *config) string {
		return "<em>" + children + "</em>"
	})
	p.RegisterRenderHTML("strong", func(tok *Token, children string, opts *config) string {
		return "<strong>" + children + "</strong>"
	})
	p.RegisterRenderHTML("link", func(tok *Token, children string, opts *config) string {
		href := tok.AttrString("href")
		if !opts.allowHarmfulProtocols && isHarmfulProtocol(href) {
			href = ""
		}
		titleAttr := ""
		if title := tok.AttrString("title"); title != "" {
			titleAttr = fmt.Sprintf(` title="%s"`, html.EscapeString(title))
		}
		label := children
		if tok.AttrBool("autolink") {
			label = html.EscapeString(tok.Text)
		}
		return fmt.Sprintf(`<a href="%s"%s>%s</a>`, html.EscapeString(href), titleAttr, label)
	})
	p.RegisterRenderHTML("image", func(tok *Token, children string, opts *config) string {
		src := tok.AttrString("src")
		if !opts.allowHarmfulProtocols && isHarmfulProtocol(src) {
			src = ""
		}
		titleAttr := ""
		if title := tok.AttrString("title"); title != "" {
			titleAttr = fmt.Sprintf(` title="%s"`, html.EscapeString(title))
		}
		return fmt.Sprintf(`<img src="%s" alt="%s"%s />`, html.EscapeString(src), html.EscapeString(tok.AttrString("alt")), titleAttr)
	})
	p.RegisterRenderHTML("softbreak", func(tok *Token, children string, opts *config) string {
		if opts.hardWrap {
			return "<br />\n"
		}
		return "\n"
	})
	p.RegisterRenderHTML("hardbreak", func(tok *Token, children string, opts *config) string {
		return "<br />\n"
	})
	p.RegisterRenderHTML("admonition", func(tok *Token, children string, opts *config) string {
		return fmt.Sprintf(`<div class="admonition %s"><p class="admonition-title">%s</p>%s</div>`+"\n",
			html.EscapeString(tok.AttrString("class")), html.EscapeString(tok.AttrString("title")), children)
	})
	p.RegisterRenderHTML("toc_placeholder", func(tok *Token, children string, opts *config) string {
		// resolveTOC replaces every placeholder in the parsed tree, even
		// when there are no headings (an empty list); one only reaches
		// this renderer if it was not in the tree during that pass, e.g.
		// inside a footnote body appended afterwards.
		return ""
	})
	p.RegisterRenderHTML("toc", func(tok *Token, children string, opts *config) string {
		return `<nav class="table-of-contents">` + "\n" + children + "</nav>\n"
	})
	p.RegisterRenderHTML("directive_error", func(tok *Token, children string, opts *config) string {
		return "<pre>" + html.EscapeString(tok.Text) + "</pre>\n"
	})
	p.RegisterRenderHTML("include", func(tok *Token, children string, opts *config) string {
		return children
	})
	p.RegisterRenderHTML("figure", func(tok *Token, children string, opts *config) string {
		return "<figure>\n" + children + "</figure>\n"
	})
	p.RegisterRenderHTML("figure_caption", func(tok *Token, children string, opts *config) string {
		return "<figcaption>" + html.EscapeString(tok.Text) + "</figcaption>\n"
	})
}

// renderLeafOrChildren renders an inline-bearing token: if it still carries
// unparsed Text (the inline phase hasn't run, or a renderer is used
// standalone against raw block output), escape it directly; otherwise use
// its already-rendered children.
func renderLeafOrChildren(tok *Token, children string, opts *config) string {
	if tok.Children != nil {
		return children
	}
	return html.EscapeString(tok.Text)
}

func isHarmfulProtocol(url string) bool {
	lower := strings.ToLower(strings.TrimSpace(url))
	for _, proto := range []string{"javascript:", "vbscript:", "data:", "file:"} {
		if strings.HasPrefix(lower, proto) {
			return true
		}
	}
	return false
}
