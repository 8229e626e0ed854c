package gomark

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func convert(t *testing.T, src string, opts ...Option) string {
	t.Helper()
	p := New(opts...)
	out, err := p.Convert(src)
	if err != nil {
		t.Fatalf("Convert(%q): %v", src, err)
	}
	return out
}

func TestConvertHeadingAndParagraph(t *testing.T) {
	got := convert(t, "# Title\n\nHello *world*.\n")
	want := "<h1 id=\"title\">Title</h1>\n<p>Hello <em>world</em>.</p>\n"
	if got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestConvertStrongAndEmphasisNesting(t *testing.T) {
	got := convert(t, "**bold *and italic* text**\n")
	if !strings.Contains(got, "<strong>bold <em>and italic</em> text</strong>") {
		t.Fatalf("got %q", got)
	}
}

func TestConvertLinkAndImage(t *testing.T) {
	got := convert(t, "[go](https://go.dev \"title\") and ![alt](img.png)\n")
	if !strings.Contains(got, `<a href="https://go.dev" title="title">go</a>`) {
		t.Fatalf("missing link: %q", got)
	}
	if !strings.Contains(got, `<img src="img.png" alt="alt"`) {
		t.Fatalf("missing image: %q", got)
	}
}

func TestConvertHarmfulProtocolFiltered(t *testing.T) {
	got := convert(t, "[x](javascript:alert(1))\n")
	if strings.Contains(got, "javascript:") {
		t.Fatalf("harmful protocol leaked through: %q", got)
	}
}

func TestConvertReferenceLink(t *testing.T) {
	got := convert(t, "[go]\n\n[go]: https://go.dev \"The Go site\"\n")
	if !strings.Contains(got, `href="https://go.dev"`) {
		t.Fatalf("got %q", got)
	}
}

func TestConvertFencedCodeBlock(t *testing.T) {
	got := convert(t, "```go\nfmt.Println(1)\n```\n")
	if !strings.Contains(got, `<pre><code class="language-go">`) {
		t.Fatalf("got %q", got)
	}
}

func TestConvertBlockQuoteAndList(t *testing.T) {
	got := convert(t, "> quoted\n\n- one\n- two\n")
	if !strings.Contains(got, "<blockquote>") || !strings.Contains(got, "<li>one</li>") {
		t.Fatalf("got %q", got)
	}
}

func TestConvertOrderedListStart(t *testing.T) {
	got := convert(t, "3. three\n4. four\n")
	if !strings.Contains(got, `<ol start="3">`) {
		t.Fatalf("got %q", got)
	}
}

func TestConvertTable(t *testing.T) {
	src := "| a | b |\n| --- | ---: |\n| 1 | 2 |\n"
	got := convert(t, src)
	if !strings.Contains(got, "<table>") || !strings.Contains(got, `style="text-align:right"`) {
		t.Fatalf("got %q", got)
	}
}

func TestParseTableStructure(t *testing.T) {
	doc, _, err := New().Parse("| a | b |\n| --- | --- |\n| 1 | 2 |\n")
	if err != nil {
		t.Fatal(err)
	}
	table := doc.Find("table")
	if table == nil {
		t.Fatal("expected a table token")
	}
	gotTypes := []string{}
	table.Walk(func(tok *Token) bool {
		gotTypes = append(gotTypes, tok.Type)
		return true
	})
	want := []string{"table", "table_head", "table_row", "table_cell", "text", "table_cell", "text", "table_body", "table_row", "table_cell", "text", "table_cell", "text"}
	if diff := cmp.Diff(want, gotTypes); diff != "" {
		t.Fatalf("table shape mismatch (-want +got):\n%s", diff)
	}
}

func TestConvertAutolinkAndEntity(t *testing.T) {
	got := convert(t, "<https://go.dev> &amp;\n")
	if !strings.Contains(got, `<a href="https://go.dev">https://go.dev</a>`) {
		t.Fatalf("got %q", got)
	}
}

func TestConvertRawHTMLEscapedByDefault(t *testing.T) {
	got := convert(t, "<div>raw</div>\n")
	if !strings.Contains(got, "&lt;div&gt;raw&lt;/div&gt;") {
		t.Fatalf("expected escaped html_block, got %q", got)
	}
}

func TestConvertHardWrapOption(t *testing.T) {
	got := convert(t, "line one\nline two\n", WithHardWrap(true))
	if !strings.Contains(got, "<br />") {
		t.Fatalf("expected hard break, got %q", got)
	}
}

func TestRenderASTIndependentOfRenderer(t *testing.T) {
	p := New(WithRenderer(NewASTRenderer()))
	doc, env, err := p.Parse("# Hi\n")
	if err != nil {
		t.Fatal(err)
	}
	ast, err := p.RenderAST(doc, env)
	if err != nil {
		t.Fatal(err)
	}
	if ast["type"] != "document" {
		t.Fatalf("got %v", ast["type"])
	}
	htmlOut, err := p.Render(doc, env)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(htmlOut, "<h1") {
		t.Fatalf("got %q", htmlOut)
	}
}

func TestConvertDirectiveTOC(t *testing.T) {
	src := "```{toc}\n```\n\n# One\n\n## Two\n"
	got := convert(t, src)
	if !strings.Contains(got, `<a href="#one">One</a>`) {
		t.Fatalf("got %q", got)
	}
}

func TestConvertDirectiveAdmonition(t *testing.T) {
	src := ".. note:: Title\n\n   Body text.\n"
	got := convert(t, src)
	if !strings.Contains(got, `class="admonition note"`) {
		t.Fatalf("got %q", got)
	}
}

func TestConvertUnregisteredFencedDirectiveIsFatal(t *testing.T) {
	src := "```{nope} arg\nbody\n```\n"
	_, err := New().Convert(src)
	if err == nil || !strings.Contains(err.Error(), "directive_not_registered") {
		t.Fatalf("expected a fatal directive_not_registered error, got %v", err)
	}
}

func TestASTRendererDefaultShapeIgnoresUnset(t *testing.T) {
	tok := NewContainer("paragraph")
	tok.Children = []*Token{NewToken("text")}
	tok.Children[0].Text = "hi"
	out, err := (&ASTRenderer{}).Render(tok, NewEnv(), defaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	m := out.(map[string]any)
	if diff := cmp.Diff("paragraph", m["type"]); diff != "" {
		t.Fatalf("mismatch: %s", diff)
	}
	if _, ok := m["children"].([]map[string]any); !ok {
		t.Fatalf("expected children slice, got %T", m["children"])
	}
}

func TestConvertDeterministicAcrossRuns(t *testing.T) {
	src := "# T\n\n- a\n- b\n\n[x](y)\n"
	p := New()
	first, err := p.Convert(src)
	if err != nil {
		t.Fatal(err)
	}
	second, err := p.Convert(src)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(first, second, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("Convert is not deterministic across calls sharing one Parser:\n%s", diff)
	}
}
