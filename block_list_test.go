package gomark

import (
	"strings"
	"testing"
)

func TestParseListMarkerBullet(t *testing.T) {
	m, ok := parseListMarker("- item one")
	if !ok {
		t.Fatal("expected match")
	}
	if m.ordered || m.bulletChar != '-' || m.content != "item one" {
		t.Fatalf("got %+v", m)
	}
}

func TestParseListMarkerOrdered(t *testing.T) {
	m, ok := parseListMarker("12) item")
	if !ok {
		t.Fatal("expected match")
	}
	if !m.ordered || m.start != 12 || m.delimiter != ')' {
		t.Fatalf("got %+v", m)
	}
}

func TestParseListMarkerRejectsNonMarker(t *testing.T) {
	if _, ok := parseListMarker("not a list"); ok {
		t.Fatal("expected no match")
	}
}

func TestSameListTypeDistinguishesBulletChar(t *testing.T) {
	a, _ := parseListMarker("- a")
	b, _ := parseListMarker("* b")
	if sameListType(a, b) {
		t.Fatal("different bullet chars should not be the same list")
	}
}

func TestConvertTightVsLooseList(t *testing.T) {
	tight, _, err := New().Parse("- a\n- b\n")
	if err != nil {
		t.Fatal(err)
	}
	if list := tight.Find("bullet_list"); list == nil || !list.AttrBool("tight") {
		t.Fatalf("expected a tight list")
	}

	loose, _, err := New().Parse("- a\n\n- b\n")
	if err != nil {
		t.Fatal(err)
	}
	if list := loose.Find("bullet_list"); list == nil || list.AttrBool("tight") {
		t.Fatalf("expected a loose list")
	}
}

func TestConvertTightListDoesNotWrapItemsInParagraph(t *testing.T) {
	got, err := New().Convert("- a\n- b\n")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "<li>a</li>") || !strings.Contains(got, "<li>b</li>") {
		t.Fatalf("expected unwrapped tight list items, got %q", got)
	}
	if strings.Contains(got, "<p>") {
		t.Fatalf("tight list must not wrap items in <p>, got %q", got)
	}
}

func TestConvertLooseListWrapsItemsInParagraph(t *testing.T) {
	got, err := New().Convert("- a\n\n- b\n")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "<li><p>a</p>") || !strings.Contains(got, "<li><p>b</p>") {
		t.Fatalf("expected paragraph-wrapped loose list items, got %q", got)
	}
}
