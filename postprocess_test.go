package readability

import (
	"strings"
	"testing"
)

func TestUnwrapSchemaOrgObjects(t *testing.T) {
	doc := mustParse(t, `<html><body><div itemscope itemtype="https://schema.org/Article"><p>body text</p></div></body></html>`)

	unwrapSchemaOrgObjects(doc)

	if len(getElementsByTagName(doc, "div")) != 0 {
		t.Fatalf("expected schema.org wrapper div to be unwrapped")
	}
	if !strings.Contains(textContent(doc), "body text") {
		t.Fatalf("expected wrapped content to survive unwrap")
	}
}

func TestUnwrapSchemaOrgObjectsIgnoresUnrelated(t *testing.T) {
	doc := mustParse(t, `<html><body><div itemscope itemtype="https://example.com/Thing"><p>x</p></div></body></html>`)

	unwrapSchemaOrgObjects(doc)

	if len(getElementsByTagName(doc, "div")) != 1 {
		t.Fatalf("expected non-schema.org itemscope wrapper to survive")
	}
}

func TestSimplifyNestedElementsCollapsesChain(t *testing.T) {
	doc := mustParse(t, `<html><body><div><div><p>content</p></div></div></body></html>`)

	simplifyNestedElements(doc)

	divs := getElementsByTagName(doc, "div")
	if len(divs) > 1 {
		t.Fatalf("expected nested single-child divs to collapse to one, got %d", len(divs))
	}
}

func TestRemoveEmptyNodes(t *testing.T) {
	doc := mustParse(t, `<html><body><p>keep</p><div></div><img src="x.jpg"></body></html>`)

	removeEmptyNodes(doc)

	if len(getElementsByTagName(doc, "div")) != 0 {
		t.Fatalf("expected empty div to be removed")
	}
	if len(getElementsByTagName(doc, "img")) != 1 {
		t.Fatalf("expected img (a valid empty tag) to survive")
	}
	if !strings.Contains(textContent(doc), "keep") {
		t.Fatalf("expected non-empty paragraph to survive")
	}
}
