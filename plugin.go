package gomark

import "sort"

// BlockRule matches and parses one block-level construct. Match inspects
// state starting at its current line without consuming anything; if it
// returns true, Parse runs and is expected to advance state's cursor and
// append one or more tokens. Priority determines try-order (lower first),
// mirroring spec §4.C's default ordering and the pack's markdown-it-go
// rule-registration shape (other_examples/cockroachdb-cockroach__plugins.go),
// adapted to a per-Parser instance registry instead of package globals so
// that concurrent Parsers with different plugin sets never interfere
// (spec §5).
type BlockRule struct {
	Name     string
	Priority int
	Match    func(*BlockState) bool
	Parse    func(*BlockState)
}

// InlineRule matches and parses one inline construct at the state's cursor.
// Match returns the byte length of a match at the cursor (0 = no match);
// Parse is expected to append tokens (or delimiter placeholders, for the
// emphasis rule) and advance the cursor itself.
type InlineRule struct {
	Name     string
	Priority int
	Match    func(*InlineState) int
	Parse    func(*InlineState, int)
}

// RenderHTMLFunc renders one token to an HTML fragment, given its already-
// rendered children (empty for leaves) and the active render options.
type RenderHTMLFunc func(tok *Token, renderedChildren string, opts *config) string

// RenderASTFunc converts one token to its AST mapping representation. The
// default conversion (renderTokenAST) handles Type/Raw/Text/Attrs/Children
// uniformly, so most plugins never need to register one of these; it exists
// for token types whose AST shape deliberately differs from the default.
type RenderASTFunc func(tok *Token) map[string]any

// Plugin is a callable that, given the Parser being constructed, registers
// zero or more block rules, inline rules, renderer methods, and env
// initializers. Plugins run in the order passed to WithPlugins, after the
// built-in rule set is registered, so a plugin can replace a built-in rule
// by name (spec §4.F: "re-registration replaces").
type Plugin func(*Parser)

// EnvInitFunc runs once per Parse call, before the block phase, letting a
// plugin stash document-scoped accumulator state into env.Data.
type EnvInitFunc func(env *Env)

// SourcePreprocessor rewrites the raw source before the block phase sees
// it, given the chance to consume a leading section (front matter) into
// env.Data and return the remainder. Preprocessors run in registration
// order, each receiving the previous one's output.
type SourcePreprocessor func(env *Env, source string) string

// TreeTransform mutates the finished token tree in place after the inline
// phase runs, for plugins (task lists, abbreviations) whose effect is
// structural rather than a single rule match.
type TreeTransform func(doc *Token, env *Env)

// RegisterBlockRule adds or replaces (by Name) a block rule.
func (p *Parser) RegisterBlockRule(r BlockRule) {
	p.replaceOrAppendBlock(r)
	p.sortBlockRules()
}

// RegisterInlineRule adds or replaces (by Name) an inline rule.
func (p *Parser) RegisterInlineRule(r InlineRule) {
	p.replaceOrAppendInline(r)
	p.sortInlineRules()
}

// RegisterRenderHTML registers the HTML render method for a token type.
func (p *Parser) RegisterRenderHTML(tokenType string, fn RenderHTMLFunc) {
	p.htmlRenderers[tokenType] = fn
}

// RegisterRenderAST registers a custom AST conversion for a token type.
func (p *Parser) RegisterRenderAST(tokenType string, fn RenderASTFunc) {
	p.astRenderers[tokenType] = fn
}

// RegisterEnvInit registers a function run once per Parse call to seed env.Data.
func (p *Parser) RegisterEnvInit(fn EnvInitFunc) {
	p.envInits = append(p.envInits, fn)
}

// RegisterSourcePreprocessor registers a function run once per Parse call,
// before the block phase, in registration order.
func (p *Parser) RegisterSourcePreprocessor(fn SourcePreprocessor) {
	p.sourcePreprocessors = append(p.sourcePreprocessors, fn)
}

// RegisterTreeTransform registers a function run once per Parse call,
// after the inline phase, in registration order.
func (p *Parser) RegisterTreeTransform(fn TreeTransform) {
	p.treeTransforms = append(p.treeTransforms, fn)
}

// RegisterDirective registers a handler for a named directive (spec §4.H).
func (p *Parser) RegisterDirective(name string, handler DirectiveHandler) {
	p.directives[name] = handler
}

func (p *Parser) replaceOrAppendBlock(r BlockRule) {
	for i, existing := range p.blockRules {
		if existing.Name == r.Name {
			p.blockRules[i] = r
			return
		}
	}
	p.blockRules = append(p.blockRules, r)
}

func (p *Parser) replaceOrAppendInline(r InlineRule) {
	for i, existing := range p.inlineRules {
		if existing.Name == r.Name {
			p.inlineRules[i] = r
			return
		}
	}
	p.inlineRules = append(p.inlineRules, r)
}

func (p *Parser) sortBlockRules() {
	sort.SliceStable(p.blockRules, func(i, j int) bool {
		return p.blockRules[i].Priority < p.blockRules[j].Priority
	})
}

func (p *Parser) sortInlineRules() {
	sort.SliceStable(p.inlineRules, func(i, j int) bool {
		return p.inlineRules[i].Priority < p.inlineRules[j].Priority
	})
}
