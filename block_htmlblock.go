package gomark

import (
	"regexp"
	"strings"
)

// htmlBlockTags is the CommonMark type-6 list of block-level tag names that
// start an HTML block when found at the start of a line.
var htmlBlockTags = map[string]bool{
	"address": true, "article": true, "aside": true, "base": true, "basefont": true,
	"blockquote": true, "body": true, "caption": true, "center": true, "col": true,
	"colgroup": true, "dd": true, "details": true, "dialog": true, "dir": true,
	"div": true, "dl": true, "dt": true, "fieldset": true, "figcaption": true,
	"figure": true, "footer": true, "form": true, "frame": true, "frameset": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"head": true, "header": true, "hr": true, "html": true, "iframe": true,
	"legend": true, "li": true, "link": true, "main": true, "menu": true, "menuitem": true,
	"nav": true, "noframes": true, "ol": true, "optgroup": true, "option": true,
	"p": true, "param": true, "section": true, "source": true, "summary": true,
	"table": true, "tbody": true, "td": true, "tfoot": true, "th": true, "thead": true,
	"title": true, "tr": true, "track": true, "ul": true,
}

var reHTMLBlockType1Open = regexp.MustCompile(`(?i)^ {0,3}<(script|pre|style|textarea)(\s|>|$)`)
var reHTMLBlockType1Close = regexp.MustCompile(`(?i)</(script|pre|style|textarea)>`)
var reHTMLBlockType2 = regexp.MustCompile(`^ {0,3}<!--`)
var reHTMLBlockType3 = regexp.MustCompile(`^ {0,3}<\?`)
var reHTMLBlockType4 = regexp.MustCompile(`^ {0,3}<![A-Z]`)
var reHTMLBlockType5 = regexp.MustCompile(`^ {0,3}<!\[CDATA\[`)
var reHTMLBlockType6Tag = regexp.MustCompile(`(?i)^ {0,3}</?([a-zA-Z][a-zA-Z0-9-]*)(\s|/?>|$)`)
var reHTMLBlockType7 = regexp.MustCompile(`(?i)^ {0,3}(<[a-zA-Z][a-zA-Z0-9-]*(\s[^<>]*)?/?>|</[a-zA-Z][a-zA-Z0-9-]*\s*>)[ \t]*$`)

func blockRuleHTMLBlock() BlockRule {
	return BlockRule{
		Name:     "html_block",
		Priority: 50,
		Match: func(s *BlockState) bool {
			return htmlBlockKind(s) != 0
		},
		Parse: func(s *BlockState) {
			s.closeParagraph()
			kind := htmlBlockKind(s)
			var lines []string
			for !s.eof() {
				line := s.peek()
				lines = append(lines, line)
				s.advance()
				if htmlBlockEnds(kind, line, s) {
					break
				}
			}
			tok := NewToken("html_block")
			tok.Raw = strings.Join(lines, "\n") + "\n"
			s.append(tok)
		},
	}
}

// htmlBlockKind returns the CommonMark HTML-block type number (1-7) that
// the current line opens, or 0 if none applies. Paragraph interruption
// rules (type 7 cannot interrupt a paragraph) are enforced here.
func htmlBlockKind(s *BlockState) int {
	line := s.peek()
	paragraphOpen := false
	if n := len(s.tokens); n > 0 && s.tokens[n-1].Type == "paragraph_open" {
		paragraphOpen = true
	}
	switch {
	case reHTMLBlockType1Open.MatchString(line):
		return 1
	case reHTMLBlockType2.MatchString(line):
		return 2
	case reHTMLBlockType3.MatchString(line):
		return 3
	case reHTMLBlockType4.MatchString(line):
		return 4
	case reHTMLBlockType5.MatchString(line):
		return 5
	}
	if m := reHTMLBlockType6Tag.FindStringSubmatch(line); m != nil && htmlBlockTags[strings.ToLower(m[1])] {
		return 6
	}
	if !paragraphOpen && reHTMLBlockType7.MatchString(line) {
		return 7
	}
	return 0
}

func htmlBlockEnds(kind int, line string, s *BlockState) bool {
	switch kind {
	case 1:
		return reHTMLBlockType1Close.MatchString(line)
	case 2:
		return strings.Contains(line, "-->")
	case 3:
		return strings.Contains(line, "?>")
	case 4:
		return strings.Contains(line, ">")
	case 5:
		return strings.Contains(line, "]]>")
	default: // 6, 7: end at the next blank line (or EOF)
		next, ok := s.peekAt(0)
		return !ok || isBlank(next)
	}
}
