package gomark

import (
	"strings"
	"testing"
)

func TestPluginFootnote(t *testing.T) {
	p := New(WithPlugins(PluginFootnote))
	got, err := p.Convert("See it[^1].\n\n[^1]: The *detail*.\n")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, `<sup id="fnref-1">`) {
		t.Fatalf("missing footnote ref: %q", got)
	}
	if !strings.Contains(got, `class="footnotes"`) {
		t.Fatalf("missing footnotes section: %q", got)
	}
	if !strings.Contains(got, "<em>detail</em>") {
		t.Fatalf("footnote body was not inline-parsed: %q", got)
	}
}

func TestPluginStrikethrough(t *testing.T) {
	p := New(WithPlugins(PluginStrikethrough))
	got, err := p.Convert("~~gone~~\n")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "<del>gone</del>") {
		t.Fatalf("got %q", got)
	}
}

func TestPluginTaskList(t *testing.T) {
	p := New(WithPlugins(PluginTaskList))
	got, err := p.Convert("- [x] done\n- [ ] todo\n")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, `checked`) {
		t.Fatalf("expected a checked checkbox, got %q", got)
	}
	if strings.Count(got, "<input") != 2 {
		t.Fatalf("expected two checkboxes, got %q", got)
	}
}

func TestPluginLinkify(t *testing.T) {
	p := New(WithPlugins(PluginLinkify))
	got, err := p.Convert("See https://go.dev for docs.\n")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, `<a href="https://go.dev">https://go.dev</a>`) {
		t.Fatalf("got %q", got)
	}
}

func TestPluginLinkifyTrailingPunctuationStripped(t *testing.T) {
	p := New(WithPlugins(PluginLinkify))
	got, err := p.Convert("Visit https://go.dev.\n")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, `href="https://go.dev"`) || strings.Contains(got, `go.dev.">`) {
		t.Fatalf("trailing period should not be part of the URL: %q", got)
	}
}

func TestPluginDefinitionList(t *testing.T) {
	p := New(WithPlugins(PluginDefinitionList))
	got, err := p.Convert("Term\n: First definition\n: Second definition\n")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "<dt>Term</dt>") || strings.Count(got, "<dd>") != 2 {
		t.Fatalf("got %q", got)
	}
}

func TestPluginAbbreviation(t *testing.T) {
	p := New(WithPlugins(PluginAbbreviation))
	got, err := p.Convert("The HTML spec.\n\n*[HTML]: Hyper Text Markup Language\n")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, `<abbr title="Hyper Text Markup Language">HTML</abbr>`) {
		t.Fatalf("got %q", got)
	}
}

func TestPluginMath(t *testing.T) {
	p := New(WithPlugins(PluginMath))
	got, err := p.Convert("Inline $x^2$ math.\n\n$$\nx = y\n$$\n")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, `\(x^2\)`) || !strings.Contains(got, `\[x = y\]`) {
		t.Fatalf("got %q", got)
	}
}

func TestPluginFrontMatterStripsAndParsesYAML(t *testing.T) {
	p := New(WithPlugins(PluginFrontMatter))
	src := "---\ntitle: Hello\n---\n\n# Body\n"
	doc, env, err := p.Parse(src)
	if err != nil {
		t.Fatal(err)
	}
	fm, ok := env.Data["frontmatter"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected parsed frontmatter map, got %T", env.Data["frontmatter"])
	}
	if fm["title"] != "Hello" {
		t.Fatalf("got %v", fm)
	}
	if h := doc.Find("heading"); h == nil || h.Text != "Body" {
		t.Fatalf("front matter was not stripped from the body: %+v", doc)
	}
}
