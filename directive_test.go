package gomark

import (
	"errors"
	"strings"
	"testing"
)

func TestDirectiveRSTForm(t *testing.T) {
	got := convert(t, ".. warning:: Heads up\n\n   Body paragraph.\n")
	if !strings.Contains(got, `class="admonition warning"`) || !strings.Contains(got, "Body paragraph") {
		t.Fatalf("got %q", got)
	}
}

func TestDirectiveCustomHandler(t *testing.T) {
	p := New()
	p.RegisterDirective("greet", func(d *Directive, s *BlockState) *Token {
		tok := NewToken("text")
		tok.Text = "hello " + d.Argument
		return tok
	})
	p.RegisterRenderHTML("text", func(tok *Token, children string, opts *config) string {
		return tok.Text
	})
	got, err := p.Convert("```{greet} world\n```\n")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "hello world") {
		t.Fatalf("got %q", got)
	}
}

func TestDirectiveMalformedFallsBackToLiteral(t *testing.T) {
	p := New()
	p.RegisterDirective("broken", func(d *Directive, s *BlockState) *Token {
		return nil
	})
	got, err := p.Convert("```{broken} x\nbody\n```\n")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "broken") {
		t.Fatalf("expected literal fallback to mention the directive name, got %q", got)
	}
}

func TestDirectiveIncludeResolverFailure(t *testing.T) {
	p := New(WithIncludeResolver(func(path, baseDir string) (string, error) {
		return "", errors.New("not found")
	}, "."))
	got, err := p.Convert(".. include:: missing.md\n")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "include") {
		t.Fatalf("expected literal fallback to mention include, got %q", got)
	}
}

func TestDirectiveIncludeResolverSuccess(t *testing.T) {
	p := New(WithIncludeResolver(func(path, baseDir string) (string, error) {
		return "# Included\n", nil
	}, "."))
	got, err := p.Convert(".. include:: other.md\n")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "<h1") || !strings.Contains(got, "Included") {
		t.Fatalf("got %q", got)
	}
}

func TestDirectiveFigureWithCaption(t *testing.T) {
	got := convert(t, ".. figure:: cat.png\n\n   A cat.\n")
	if !strings.Contains(got, "<figure>") || !strings.Contains(got, "<figcaption>A cat.</figcaption>") {
		t.Fatalf("got %q", got)
	}
}

func TestDirectiveNotRegisteredIsFatal(t *testing.T) {
	_, err := New().Convert(".. nosuchdirective:: x\n")
	if err == nil {
		t.Fatal("expected a fatal error for an unregistered directive")
	}
	var rendererErr *RendererMissingMethodError
	if !errors.As(err, &rendererErr) {
		t.Fatalf("expected *RendererMissingMethodError, got %T: %v", err, err)
	}
	if rendererErr.TokenType != "directive_not_registered" {
		t.Fatalf("got token type %q", rendererErr.TokenType)
	}
}
