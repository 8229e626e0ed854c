// Command gomark converts Markdown files (or stdin) to HTML.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
	"golang.org/x/term"

	"pkt.systems/gomark"
	"pkt.systems/gomark/internal/preview"
)

func main() {
	var (
		outPath     string
		hardWrap    bool
		noEscape    bool
		outline     bool
		width       int
		gfm         bool
		frontMatter bool
	)

	flags := pflag.NewFlagSet("gomark", pflag.ExitOnError)
	flags.StringVarP(&outPath, "output", "o", "", "Output file instead of stdout")
	flags.BoolVar(&hardWrap, "hard-wrap", false, "Render soft line breaks as <br />")
	flags.BoolVar(&noEscape, "no-escape", false, "Pass raw HTML through unescaped")
	flags.BoolVar(&outline, "outline", false, "Print a heading outline instead of HTML")
	flags.IntVarP(&width, "width", "w", 0, "Outline width (0 uses terminal width if available)")
	flags.BoolVar(&gfm, "gfm", true, "Enable GFM extensions (task lists, strikethrough, linkify; tables are always on)")
	flags.BoolVar(&frontMatter, "front-matter", true, "Strip and parse YAML front matter")
	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: gomark [flags] [input]")
		fmt.Fprintln(os.Stderr, "\nIf no input is given, Markdown is read from stdin.")
		fmt.Fprintln(os.Stderr, "\nFlags:")
		flags.PrintDefaults()
	}
	if err := flags.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}

	var plugins []gomark.Plugin
	if gfm {
		plugins = append(plugins, gomark.PluginTaskList, gomark.PluginStrikethrough, gomark.PluginLinkify)
	}
	if frontMatter {
		plugins = append(plugins, gomark.PluginFrontMatter)
	}

	p := gomark.New(
		gomark.WithHardWrap(hardWrap),
		gomark.WithEscape(!noEscape),
		gomark.WithPlugins(plugins...),
	)

	src, err := readInput(flags.Args())
	if err != nil {
		fmt.Fprintln(os.Stderr, "gomark:", err)
		os.Exit(1)
	}

	var w io.Writer = os.Stdout
	if outPath != "" {
		f, ferr := os.Create(outPath)
		if ferr != nil {
			fmt.Fprintln(os.Stderr, "gomark:", ferr)
			os.Exit(1)
		}
		defer f.Close()
		w = f
	}

	if outline {
		doc, _, err := p.Parse(src)
		if err != nil {
			fmt.Fprintln(os.Stderr, "gomark:", err)
			os.Exit(1)
		}
		fmt.Fprint(w, preview.Outline(doc, outlineWidth(width)))
		return
	}

	rendered, err := p.Convert(src)
	if err != nil {
		fmt.Fprintln(os.Stderr, "gomark:", err)
		os.Exit(1)
	}
	fmt.Fprint(w, rendered)
}

func readInput(args []string) (string, error) {
	if len(args) == 0 {
		b, err := io.ReadAll(os.Stdin)
		return string(b), err
	}
	b, err := os.ReadFile(args[0])
	return string(b), err
}

func outlineWidth(flagWidth int) int {
	if flagWidth > 0 {
		return flagWidth
	}
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 80
}
