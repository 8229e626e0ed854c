package gomark

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// PluginFrontMatter strips a leading YAML (---), TOML (+++), or generic
// (;;;) front-matter block from the source and parses the YAML form into
// env.Data["frontmatter"] as a map[string]any. TOML/generic blocks are
// recognized and stripped (so they don't get parsed as Markdown) but their
// body is stored only as env.Data["frontmatter_raw"], since the pack
// carries no TOML decoder to ground a real parse on.
//
// Detection follows the same three-line heuristic the teacher's streaming
// frontMatterFilter used (opening delimiter, a metadata-likely second
// line, a matching closing delimiter) adapted to run once over the whole
// document instead of incrementally over chunks.
func PluginFrontMatter(p *Parser) {
	p.RegisterSourcePreprocessor(stripFrontMatter)
}

func stripFrontMatter(env *Env, source string) string {
	lines := strings.Split(source, "\n")
	if len(lines) < 3 {
		return source
	}

	delim, ok := frontMatterDelimiter(lines[0])
	if !ok {
		return source
	}
	if !frontMatterMetadataLikely(lines[1]) {
		return source
	}

	closeIdx := -1
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == delim {
			closeIdx = i
			break
		}
	}
	if closeIdx < 0 {
		return source
	}

	body := strings.Join(lines[1:closeIdx], "\n")
	rest := strings.Join(lines[closeIdx+1:], "\n")

	if delim == "---" {
		var data map[string]any
		if err := yaml.Unmarshal([]byte(body), &data); err == nil {
			env.Data["frontmatter"] = data
		} else {
			env.Data["frontmatter_error"] = err.Error()
			env.Data["frontmatter_raw"] = body
		}
	} else {
		env.Data["frontmatter_raw"] = body
	}
	return rest
}

func frontMatterDelimiter(line string) (string, bool) {
	trimmed := strings.TrimSpace(strings.TrimPrefix(line, "\uFEFF"))
	switch trimmed {
	case "---", "+++", ";;;":
		return trimmed, true
	default:
		return "", false
	}
}

// frontMatterMetadataLikely guards against treating a thematic break or
// setext underline as a front-matter open: the line right after the
// delimiter must look like a key: value (or key=value, or JSON) pair.
func frontMatterMetadataLikely(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}
	if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
		return true
	}
	return strings.ContainsAny(trimmed, ":=")
}
