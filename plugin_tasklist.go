package gomark

import "regexp"

var reTaskMarker = regexp.MustCompile(`^\[([ xX])\][ \t]+`)

// PluginTaskList registers GFM task-list items: a list_item (of a bullet
// or an ordered list) whose first inline content starts with "[ ]" or "[x]" gets a "checked"
// attribute and has the marker stripped from its rendered text.
func PluginTaskList(p *Parser) {
	p.RegisterTreeTransform(func(doc *Token, env *Env) {
		doc.Walk(func(tok *Token) bool {
			if tok.Type != "list_item" {
				return true
			}
			applyTaskMarker(tok)
			return true
		})
	})
	p.RegisterRenderHTML("list_item", func(tok *Token, children string, opts *config) string {
		if !tok.AttrBool("task") {
			return "<li>" + children + "</li>\n"
		}
		checked := ""
		if tok.AttrBool("checked") {
			checked = " checked"
		}
		return "<li class=\"task-list-item\"><input type=\"checkbox\" disabled" + checked + "> " + children + "</li>\n"
	})
}

func applyTaskMarker(item *Token) {
	if len(item.Children) == 0 {
		return
	}
	target := item.Children[0]
	if target.Type == "paragraph" && len(target.Children) > 0 {
		first := target.Children[0]
		if first.Type != "text" {
			return
		}
		m := reTaskMarker.FindStringIndex(first.Text)
		if m == nil {
			return
		}
		item.SetAttr("task", true)
		item.SetAttr("checked", first.Text[m[0]+1] != ' ')
		first.Text = first.Text[m[1]:]
	}
}
