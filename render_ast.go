package gomark

// ASTRenderer converts a token tree into a map[string]any tree, one of the
// two render modes spec §6 requires (the other being HTMLRenderer).
type ASTRenderer struct{}

// NewASTRenderer returns a Renderer producing the plain-data AST form,
// selected via WithRenderer(NewASTRenderer()).
func NewASTRenderer() *ASTRenderer {
	return &ASTRenderer{}
}

func (r *ASTRenderer) Render(doc *Token, env *Env, opts *config) (any, error) {
	return renderTokenAST(doc, opts), nil
}

// renderTokenAST converts one token, preferring a plugin-registered
// RenderASTFunc when present and falling back to the uniform default shape
// otherwise -- unlike HTML rendering, an unregistered token type is not an
// error here, since AST consumers can reasonably expect to see the default
// mapping for any token nobody customized.
func renderTokenAST(tok *Token, opts *config) map[string]any {
	if fn, ok := opts.astFuncs[tok.Type]; ok {
		return fn(tok)
	}
	m := map[string]any{"type": tok.Type}
	if tok.Text != "" {
		m["text"] = tok.Text
	}
	if tok.Raw != "" {
		m["raw"] = tok.Raw
	}
	for k, v := range tok.Attrs {
		m[k] = v
	}
	if tok.Children != nil {
		children := make([]map[string]any, len(tok.Children))
		for i, c := range tok.Children {
			children[i] = renderTokenAST(c, opts)
		}
		m["children"] = children
	}
	return m
}
