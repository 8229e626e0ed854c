package gomark

// IncludeResolver resolves the include directive's relative path against a
// base directory, returning the included source text. The orchestrator owns
// baseDir (spec §6); file I/O itself is explicitly out of the core's scope,
// so the default resolver always fails.
type IncludeResolver func(relativePath, baseDir string) (string, error)

const defaultMaxDelimiters = 10000

// Option configures a Parser at construction time, following the teacher's
// functional-option style (RenderOption in the original render_options.go).
type Option func(*config)

type config struct {
	escape                 bool
	hardWrap               bool
	allowHarmfulProtocols  bool
	renderer               Renderer
	plugins                []Plugin
	maxDelimiters          int
	includeResolver        IncludeResolver
	includeBaseDir         string

	// htmlFuncs/astFuncs are copied in from the owning Parser's registries
	// once New() finishes registering built-ins and plugins, so a Renderer
	// implementation (which only sees *config, not *Parser) can still
	// dispatch through the same per-type, plugin-extensible function maps.
	htmlFuncs map[string]RenderHTMLFunc
	astFuncs  map[string]RenderASTFunc
}

func defaultConfig() *config {
	return &config{
		escape:          true,
		renderer:        NewHTMLRenderer(),
		maxDelimiters:   defaultMaxDelimiters,
		includeResolver: failingIncludeResolver,
	}
}

func failingIncludeResolver(relativePath, baseDir string) (string, error) {
	return "", &IncludeResolutionError{Path: relativePath, BaseDir: baseDir}
}

// IncludeResolutionError is returned by the default include resolver, and
// may be returned by a caller-supplied one. The include directive's handler
// falls back to a literal block on any error, per spec §7.
type IncludeResolutionError struct {
	Path    string
	BaseDir string
}

func (e *IncludeResolutionError) Error() string {
	return "gomark: no include resolver configured for " + e.Path
}

// WithEscape controls whether raw HTML in the source is escaped (default
// true) or passed through verbatim by the HTML renderer.
func WithEscape(enabled bool) Option {
	return func(c *config) { c.escape = enabled }
}

// WithHardWrap makes soft line breaks render as hard breaks (<br>).
func WithHardWrap(enabled bool) Option {
	return func(c *config) { c.hardWrap = enabled }
}

// WithAllowHarmfulProtocols disables link/image destination protocol
// filtering (javascript:, data:, vbscript: are rejected by default).
func WithAllowHarmfulProtocols(enabled bool) Option {
	return func(c *config) { c.allowHarmfulProtocols = enabled }
}

// WithRenderer selects the renderer used by Convert and by Render when
// called without an explicit renderer. Defaults to NewHTMLRenderer().
func WithRenderer(r Renderer) Option {
	return func(c *config) { c.renderer = r }
}

// WithPlugins registers plugins in order, each free to add block rules,
// inline rules, renderer methods, and env initializers.
func WithPlugins(plugins ...Plugin) Option {
	return func(c *config) { c.plugins = append(c.plugins, plugins...) }
}

// WithMaxDelimiters bounds the delimiter stack's closer/opener scan, per
// spec §5's requirement to cap pathological-input work.
func WithMaxDelimiters(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxDelimiters = n
		}
	}
}

// WithIncludeResolver sets the callback the Include directive uses to read
// included documents, and the base directory passed to it.
func WithIncludeResolver(resolver IncludeResolver, baseDir string) Option {
	return func(c *config) {
		c.includeResolver = resolver
		c.includeBaseDir = baseDir
	}
}
