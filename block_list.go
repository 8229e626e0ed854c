package gomark

import (
	"regexp"
	"strconv"
)

// reBulletMarker matches a bullet list marker: up to 3 leading spaces, one
// of -, *, +, then required whitespace (or end of line for an empty item).
var reBulletMarker = regexp.MustCompile(`^( {0,3})([-*+])(?:( +)(.*)|())$`)

// reOrderedMarker matches an ordered list marker: up to 3 leading spaces, a
// 1-9 digit number, '.' or ')', then required whitespace or end of line.
var reOrderedMarker = regexp.MustCompile(`^( {0,3})(\d{1,9})([.)])(?:( +)(.*)|())$`)

type listMarker struct {
	ordered       bool
	bulletChar    byte
	delimiter     byte
	start         int
	contentIndent int
	content       string
}

// parseListMarker recognizes a list marker at the start of line and returns
// the marker's shape plus the remaining content after it. An item whose
// marker is immediately followed by nothing (empty item) gets contentIndent
// = indent + marker width + 1, per CommonMark's rule for blank list items.
func parseListMarker(line string) (*listMarker, bool) {
	if m := reBulletMarker.FindStringSubmatch(line); m != nil {
		indent := len(m[1])
		markerWidth := 1
		spaces := len(m[3])
		content := m[4]
		if spaces == 0 {
			spaces = 1
		}
		if spaces > 4 {
			spaces = 1
		}
		return &listMarker{
			ordered:       false,
			bulletChar:    m[2][0],
			contentIndent: indent + markerWidth + spaces,
			content:       content,
		}, true
	}
	if m := reOrderedMarker.FindStringSubmatch(line); m != nil {
		indent := len(m[1])
		start, _ := strconv.Atoi(m[2])
		markerWidth := len(m[2]) + 1
		spaces := len(m[4])
		content := m[5]
		if spaces == 0 {
			spaces = 1
		}
		if spaces > 4 {
			spaces = 1
		}
		return &listMarker{
			ordered:       true,
			delimiter:     m[3][0],
			start:         start,
			contentIndent: indent + markerWidth + spaces,
			content:       content,
		}, true
	}
	return nil, false
}

func sameListType(a, b *listMarker) bool {
	if a.ordered != b.ordered {
		return false
	}
	if a.ordered {
		return a.delimiter == b.delimiter
	}
	return a.bulletChar == b.bulletChar
}

func blockRuleList() BlockRule {
	return BlockRule{
		Name:     "list",
		Priority: 80,
		Match: func(s *BlockState) bool {
			_, ok := parseListMarker(s.peek())
			return ok
		},
		Parse: func(s *BlockState) {
			s.closeParagraph()
			first, _ := parseListMarker(s.peek())
			var items []*Token
			loose := false

			for !s.eof() {
				marker, ok := parseListMarker(s.peek())
				if !ok || !sameListType(marker, first) {
					break
				}
				s.advance()

				itemLines := []string{expandTabs(marker.content)}
				for !s.eof() {
					line := s.peek()
					if isBlank(line) {
						j := s.line + 1
						for j < len(s.lines) && isBlank(s.lines[j]) {
							j++
						}
						if j >= len(s.lines) {
							s.advance()
							break
						}
						w, _ := indentWidth(s.lines[j])
						if w >= marker.contentIndent {
							loose = true
							itemLines = append(itemLines, "")
							s.advance()
							continue
						}
						if nextMarker, ok := parseListMarker(s.lines[j]); ok && sameListType(nextMarker, first) {
							// The next item follows directly after one or more
							// blank lines: those blanks separate items rather
							// than belonging to this item's content, so skip
							// past them now instead of leaving the cursor on a
							// blank line the outer loop's marker check would
							// otherwise choke on.
							loose = true
							s.line = j
						}
						break
					}
					w, _ := indentWidth(line)
					if w >= marker.contentIndent {
						itemLines = append(itemLines, stripIndentColumns(expandTabs(line), marker.contentIndent))
						s.advance()
						continue
					}
					if _, ok := parseListMarker(line); ok {
						break
					}
					// Lazy continuation of the item's trailing paragraph.
					itemLines = append(itemLines, line)
					s.advance()
				}

				item := NewContainer("list_item")
				child := s.child(itemLines, item)
				child.process()
				item.Children = child.tokens
				items = append(items, item)
			}

			var listTok *Token
			if first.ordered {
				listTok = NewContainer("ordered_list")
				listTok.SetAttr("start", first.start)
			} else {
				listTok = NewContainer("bullet_list")
				listTok.SetAttr("bullet", string(first.bulletChar))
			}
			listTok.SetAttr("tight", !loose)
			// Tag each item too, not just the container: the list_item HTML
			// renderer only ever sees its own token, not its parent.
			for _, item := range items {
				item.SetAttr("tight", !loose)
			}
			listTok.Children = items
			s.append(listTok)
		},
	}
}
