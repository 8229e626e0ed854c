package gomark

// Renderer converts a parsed token tree plus its Env into an output value.
// HTMLRenderer implements this returning a string; ASTRenderer implements
// it returning a map[string]any tree (spec §6's two render modes).
type Renderer interface {
	Render(doc *Token, env *Env, opts *config) (any, error)
}

// Parser owns an immutable (after New returns) set of block rules, inline
// rules, renderer methods, and directive handlers, plus the render/behavior
// options. A single Parser is safe for concurrent Parse/Render/Convert
// calls: each call builds its own BlockState, InlineState, and Env (spec
// §5). This mirrors the pack's markdown-it-go global-registry plugin model
// (other_examples/cockroachdb-cockroach__plugins.go) but scoped per
// instance rather than process-wide.
type Parser struct {
	cfg *config

	blockRules  []BlockRule
	inlineRules []InlineRule

	htmlRenderers map[string]RenderHTMLFunc
	astRenderers  map[string]RenderASTFunc

	directives map[string]DirectiveHandler

	envInits            []EnvInitFunc
	sourcePreprocessors []SourcePreprocessor
	treeTransforms      []TreeTransform
}

// New builds a Parser with the built-in CommonMark/GFM rule set plus any
// plugins supplied via WithPlugins, applied in order.
func New(opts ...Option) *Parser {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	p := &Parser{
		cfg:           cfg,
		htmlRenderers: make(map[string]RenderHTMLFunc),
		astRenderers:  make(map[string]RenderASTFunc),
		directives:    make(map[string]DirectiveHandler),
	}

	registerBuiltinBlockRules(p)
	registerBuiltinInlineRules(p)
	registerBuiltinHTMLRenderers(p)
	registerBuiltinDirectives(p)

	for _, plugin := range cfg.plugins {
		plugin(p)
	}

	p.sortBlockRules()
	p.sortInlineRules()

	cfg.htmlFuncs = p.htmlRenderers
	cfg.astFuncs = p.astRenderers

	return p
}
