package gomark

import (
	"path/filepath"
	"strings"
)

// registerBuiltinDirectives installs the directive handlers every Parser
// carries unconditionally: admonition (plus note, warning, tip, danger,
// caution, important), table-of-contents, include, image, figure, and a
// code-block directive as an alternative to ``` fences.
func registerBuiltinDirectives(p *Parser) {
	p.RegisterDirective("admonition", directiveAdmonition)
	for _, kind := range []string{"note", "warning", "tip", "danger", "caution", "important"} {
		kind := kind
		p.RegisterDirective(kind, func(d *Directive, s *BlockState) *Token {
			d2 := *d
			if d2.Options == nil {
				d2.Options = map[string]string{}
			}
			d2.Options["class"] = kind
			return directiveAdmonition(&d2, s)
		})
	}
	p.RegisterDirective("toc", directiveTOC)
	p.RegisterDirective("include", directiveInclude)
	p.RegisterDirective("image", directiveImage)
	p.RegisterDirective("figure", directiveFigure)
	p.RegisterDirective("code-block", directiveCodeBlock)
}

// directiveAdmonition renders a titled callout box; its body is parsed as
// ordinary Markdown so admonitions can contain paragraphs, lists, etc.
func directiveAdmonition(d *Directive, s *BlockState) *Token {
	tok := NewContainer("admonition")
	class := d.Options["class"]
	if class == "" {
		class = "admonition"
	}
	tok.SetAttr("class", class)
	title := d.Argument
	if title == "" {
		title = strings.Title(class)
	}
	tok.SetAttr("title", title)

	child := s.child(d.Body, tok)
	child.process()
	tok.Children = child.tokens
	return tok
}

// directiveTOC emits a placeholder token; the actual table of contents is
// filled in during the post-parse pass in pipeline.go, once every heading in
// the document has been collected into Env.Headings.
func directiveTOC(d *Directive, s *BlockState) *Token {
	tok := NewToken("toc_placeholder")
	if depth := d.Options["depth"]; depth != "" {
		tok.SetAttr("depth", depth)
	}
	return tok
}

// directiveInclude reads another file's contents through the configured
// IncludeResolver and parses them as a nested document. A resolver failure
// falls back to a literal block carrying the directive's own source text,
// per spec §7's IncludeResolutionFailed handling.
func directiveInclude(d *Directive, s *BlockState) *Token {
	path := d.Argument
	resolver := s.parser.cfg.includeResolver
	content, err := resolver(path, s.baseDir)
	if err != nil {
		tok := NewToken("directive_error")
		tok.SetAttr("error", err.Error())
		tok.Text = rawDirectiveLiteral("include", d.Argument, d.Body)
		return tok
	}

	container := NewContainer("include")
	container.SetAttr("path", path)
	child := s.child(splitLines(content), container)
	child.baseDir = filepath.Dir(filepath.Join(s.baseDir, path))
	child.process()
	container.Children = child.tokens
	return container
}

// directiveImage renders a standalone image from "..  image:: path" plus
// :alt:/:title: options, distinct from an inline image span.
func directiveImage(d *Directive, s *BlockState) *Token {
	tok := NewToken("image")
	tok.SetAttr("src", percentEncodeURL(d.Argument))
	if alt := d.Options["alt"]; alt != "" {
		tok.SetAttr("alt", alt)
	}
	if title := d.Options["title"]; title != "" {
		tok.SetAttr("title", title)
	}
	return tok
}

// directiveFigure wraps an image with an optional caption taken from the
// directive body as plain text (lines joined with spaces; the caption is
// not inline-parsed). Supplements the CommonMark/GFM surface
// with a feature original_source's renderer exposes under a different name.
func directiveFigure(d *Directive, s *BlockState) *Token {
	fig := NewContainer("figure")
	img := NewToken("image")
	img.SetAttr("src", percentEncodeURL(d.Argument))
	if alt := d.Options["alt"]; alt != "" {
		img.SetAttr("alt", alt)
	}
	fig.AppendChild(img)

	if len(d.Body) > 0 {
		caption := NewToken("figure_caption")
		caption.Text = strings.Join(d.Body, " ")
		fig.AppendChild(caption)
	}
	return fig
}

// directiveCodeBlock is a fenced-directive alternative to ``` fences,
// letting a document set a language via {code-block} lang when the fence
// itself needs to stay free of an info string (e.g. nested inside another
// directive's body).
func directiveCodeBlock(d *Directive, s *BlockState) *Token {
	tok := NewToken("code_block")
	tok.Text = strings.Join(d.Body, "\n")
	if len(d.Body) > 0 {
		tok.Text += "\n"
	}
	tok.SetAttr("info", d.Argument)
	tok.SetAttr("fenced", true)
	if d.Argument != "" {
		tok.SetAttr("lang", d.Argument)
	}
	return tok
}
