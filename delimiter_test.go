package gomark

import "testing"

func TestResolveEmphasisSimpleEmphasis(t *testing.T) {
	p := New()
	tokens := ParseInline(p, NewEnv(), "*hi*")
	if len(tokens) != 1 || tokens[0].Type != "emphasis" {
		t.Fatalf("got %+v", tokens)
	}
}

func TestResolveEmphasisStrongNesting(t *testing.T) {
	p := New()
	tokens := ParseInline(p, NewEnv(), "**a *b* c**")
	if len(tokens) != 1 || tokens[0].Type != "strong" {
		t.Fatalf("expected one strong token, got %+v", tokens)
	}
	found := false
	for _, c := range tokens[0].Children {
		if c.Type == "emphasis" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected nested emphasis inside strong, got %+v", tokens[0].Children)
	}
}

func TestResolveEmphasisUnmatchedDelimiterStaysLiteral(t *testing.T) {
	p := New()
	tokens := ParseInline(p, NewEnv(), "a * b")
	for _, tok := range tokens {
		if tok.Type == "emphasis" || tok.Type == "strong" {
			t.Fatalf("expected no emphasis from an unmatched delimiter, got %+v", tokens)
		}
	}
}

func TestResolveEmphasisIntrawordUnderscoreNotEmphasis(t *testing.T) {
	p := New()
	tokens := ParseInline(p, NewEnv(), "snake_case_word")
	for _, tok := range tokens {
		if tok.Type == "emphasis" {
			t.Fatalf("intraword _ must not open/close emphasis, got %+v", tokens)
		}
	}
}
