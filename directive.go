package gomark

import (
	"regexp"
	"strings"
)

// Directive is a parsed directive invocation, independent of which of the
// two surface syntaxes (RST-style or fenced-style) introduced it.
type Directive struct {
	Name     string
	Argument string
	Options  map[string]string
	Body     []string
}

// DirectiveHandler builds the token for a directive invocation. s is the
// BlockState the directive was matched in, offered so a handler can spawn a
// child BlockState to parse its body as Markdown (as Admonition does).
type DirectiveHandler func(d *Directive, s *BlockState) *Token

// reRSTDirective matches the opening line of an RST-style directive:
// ".. name:: argument".
var reRSTDirective = regexp.MustCompile(`^ {0,3}\.\. ([a-zA-Z][a-zA-Z0-9_-]*)::[ \t]*(.*)$`)

// reFencedDirective matches the opening fence of a fenced-style directive:
// "```{name} argument".
var reFencedDirective = regexp.MustCompile("^ {0,3}```\\{([a-zA-Z][a-zA-Z0-9_-]*)\\}[ \t]*(.*)$")

// reDirectiveOption matches an indented ":key: value" option line inside a
// directive body.
var reDirectiveOption = regexp.MustCompile(`^ {3}:([a-zA-Z][a-zA-Z0-9_-]*):[ \t]*(.*)$`)

func blockRuleDirective() BlockRule {
	return BlockRule{
		Name: "directive",
		// Must run before the plain fence rule (priority 0): a fenced
		// directive's opening line ("```{name}") also matches reFenceOpen,
		// and block rules stop at the first match, so directive syntax
		// would otherwise always be swallowed as an ordinary code fence.
		Priority: -10,
		Match: func(s *BlockState) bool {
			if len(s.parser.directives) == 0 {
				return false
			}
			line := s.peek()
			return reRSTDirective.MatchString(line) || reFencedDirective.MatchString(line)
		},
		Parse: func(s *BlockState) {
			s.closeParagraph()
			line := s.peek()
			if m := reFencedDirective.FindStringSubmatch(line); m != nil {
				parseFencedDirective(s, m[1], m[2])
				return
			}
			m := reRSTDirective.FindStringSubmatch(line)
			parseRSTDirective(s, m[1], m[2])
		},
	}
}

func parseFencedDirective(s *BlockState, name, argument string) {
	s.advance()
	var body []string
	for !s.eof() {
		line := s.peek()
		if strings.HasPrefix(strings.TrimRight(line, " \t"), "```") {
			s.advance()
			break
		}
		body = append(body, line)
		s.advance()
	}
	options, body := extractDirectiveOptions(body)
	finishDirective(s, name, argument, options, body)
}

func parseRSTDirective(s *BlockState, name, argument string) {
	s.advance()
	var body []string
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
			if w, _ := indentWidth(s.lines[j]); w < 3 {
				break
			}
			body = append(body, "")
			s.advance()
			continue
		}
		w, _ := indentWidth(line)
		if w < 3 {
			break
		}
		body = append(body, stripIndentColumns(expandTabs(line), 3))
		s.advance()
	}
	for len(body) > 0 && body[len(body)-1] == "" {
		body = body[:len(body)-1]
	}
	options, body := extractRSTDirectiveOptions(body)
	finishDirective(s, name, argument, options, body)
}

// extractDirectiveOptions peels off leading ":key: value" lines from a
// fenced directive body (already de-indented at fence level 0).
func extractDirectiveOptions(body []string) (map[string]string, []string) {
	options := map[string]string{}
	i := 0
	for i < len(body) {
		m := regexp.MustCompile(`^:([a-zA-Z][a-zA-Z0-9_-]*):[ \t]*(.*)$`).FindStringSubmatch(body[i])
		if m == nil {
			break
		}
		options[m[1]] = m[2]
		i++
	}
	for i < len(body) && body[i] == "" {
		i++
	}
	return options, body[i:]
}

// extractRSTDirectiveOptions peels off leading ":key: value" lines (as
// rendered post-dedent, i.e. with no further indentation) from an RST
// directive body.
func extractRSTDirectiveOptions(body []string) (map[string]string, []string) {
	options := map[string]string{}
	i := 0
	for i < len(body) {
		m := reDirectiveOptionDedented.FindStringSubmatch(body[i])
		if m == nil {
			break
		}
		options[m[1]] = m[2]
		i++
	}
	for i < len(body) && body[i] == "" {
		i++
	}
	return options, body[i:]
}

var reDirectiveOptionDedented = regexp.MustCompile(`^:([a-zA-Z][a-zA-Z0-9_-]*):[ \t]*(.*)$`)

func finishDirective(s *BlockState, name, argument string, options map[string]string, body []string) {
	d := &Directive{Name: name, Argument: strings.TrimSpace(argument), Options: options, Body: body}
	handler, ok := s.parser.directives[name]
	if !ok {
		// Unlike DirectiveMalformed, DirectiveNotRegistered is fatal (spec
		// §7): no HTML renderer is registered for this token type, so
		// rendering it surfaces RendererMissingMethodError through the
		// normal dispatch path instead of degrading to literal text.
		tok := NewToken("directive_not_registered")
		tok.SetAttr("error", (&DirectiveNotRegisteredError{Name: name}).Error())
		tok.SetAttr("name", name)
		tok.Text = rawDirectiveLiteral(name, argument, body)
		s.append(tok)
		return
	}
	tok := handler(d, s)
	if tok == nil {
		tok = NewToken("directive_error")
		tok.SetAttr("error", "directive malformed: "+name)
		tok.Text = rawDirectiveLiteral(name, argument, body)
	}
	s.append(tok)
}

// rawDirectiveLiteral reconstructs the original-ish source text for a
// directive that failed to register or parse. It is the rendered literal
// fallback for a malformed directive; the unregistered-directive token
// carries the same text, but rendering that token is fatal.
func rawDirectiveLiteral(name, argument string, body []string) string {
	var b strings.Builder
	b.WriteString(".. ")
	b.WriteString(name)
	b.WriteString(":: ")
	b.WriteString(argument)
	for _, line := range body {
		b.WriteString("\n   ")
		b.WriteString(line)
	}
	return b.String()
}
