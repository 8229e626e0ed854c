package gomark

import (
	"regexp"
	"strings"
)

// reFenceOpen matches an opening code fence of 3+ backticks or tildes,
// capturing the fence character run and the info string.
var reFenceOpen = regexp.MustCompile("^ {0,3}(`{3,}|~{3,})[ \t]*(.*)$")

func blockRuleFence() BlockRule {
	return BlockRule{
		Name:     "fence",
		Priority: 0,
		Match: func(s *BlockState) bool {
			return reFenceOpen.MatchString(s.peek())
		},
		Parse: func(s *BlockState) {
			s.closeParagraph()
			m := reFenceOpen.FindStringSubmatch(s.peek())
			fenceChar := m[1][0]
			fenceLen := len(m[1])
			info := unescapeString(strings.TrimSpace(m[2]))
			s.advance()

			var content []string
			closed := false
			for !s.eof() {
				line := s.peek()
				if isClosingFence(line, fenceChar, fenceLen) {
					closed = true
					s.advance()
					break
				}
				content = append(content, line)
				s.advance()
			}
			_ = closed // an unterminated fence still closes at EOF per CommonMark

			tok := NewToken("code_block")
			tok.Text = strings.Join(content, "\n")
			if len(content) > 0 {
				tok.Text += "\n"
			}
			tok.SetAttr("info", info)
			tok.SetAttr("fenced", true)
			if lang := strings.Fields(info); len(lang) > 0 {
				tok.SetAttr("lang", lang[0])
			}
			s.append(tok)
		},
	}
}

var reFenceClose = regexp.MustCompile("^ {0,3}(`{3,}|~{3,})[ \t]*$")

func isClosingFence(line string, ch byte, minLen int) bool {
	m := reFenceClose.FindStringSubmatch(line)
	if m == nil {
		return false
	}
	return m[1][0] == ch && len(m[1]) >= minLen
}

func blockRuleIndentedCode() BlockRule {
	return BlockRule{
		Name:     "indented_code",
		Priority: 40,
		Match: func(s *BlockState) bool {
			if n := len(s.tokens); n > 0 && s.tokens[n-1].Type == "paragraph_open" {
				return false // indented code cannot interrupt a paragraph
			}
			w, _ := indentWidth(s.peek())
			return w >= 4
		},
		Parse: func(s *BlockState) {
			var content []string
			for !s.eof() {
				line := s.peek()
				if isBlank(line) {
					// A run of indented-code blank lines is kept only if
					// followed by more indented content.
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
					content = append(content, "")
					s.advance()
					continue
				}
				w, _ := indentWidth(line)
				if w < 4 {
					break
				}
				content = append(content, stripIndentColumns(expandTabs(line), 4))
				s.advance()
			}
			for len(content) > 0 && content[len(content)-1] == "" {
				content = content[:len(content)-1]
			}
			tok := NewToken("code_block")
			tok.Text = strings.Join(content, "\n")
			if len(content) > 0 {
				tok.Text += "\n"
			}
			tok.SetAttr("info", "")
			tok.SetAttr("fenced", false)
			s.append(tok)
		},
	}
}

// stripIndentColumns removes up to n leading columns of whitespace from an
// already-tab-expanded line.
func stripIndentColumns(line string, n int) string {
	if len(line) < n {
		return strings.TrimLeft(line, " ")
	}
	for i := 0; i < n; i++ {
		if line[i] != ' ' {
			return line[i:]
		}
	}
	return line[n:]
}
