package readability

import (
	"strings"
	"testing"

	"golang.org/x/net/html"
)

func mustParse(t *testing.T, s string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		t.Fatalf("failed to parse fixture: %v", err)
	}
	return doc
}

func TestXPathFindAndText(t *testing.T) {
	doc := mustParse(t, `<html><body><h1 class="title">Hello There</h1><p>body</p></body></html>`)

	nodes := xpathFind(doc, "//h1")
	if len(nodes) != 1 {
		t.Fatalf("expected 1 match, got %d", len(nodes))
	}

	text := xpathText(doc, "//h1[@class='title']")
	if text != "Hello There" {
		t.Fatalf("expected %q, got %q", "Hello There", text)
	}
}

func TestXPathFindNoMatch(t *testing.T) {
	doc := mustParse(t, `<html><body><p>nothing</p></body></html>`)

	if got := xpathText(doc, "//h1"); got != "" {
		t.Fatalf("expected empty string for no match, got %q", got)
	}
}

func TestXPathFindMalformedExpr(t *testing.T) {
	doc := mustParse(t, `<html><body><p>x</p></body></html>`)

	nodes := xpathFind(doc, "///[[[")
	if nodes != nil {
		t.Fatalf("expected malformed expression to degrade to no matches, got %v", nodes)
	}
}

func TestXPathStrip(t *testing.T) {
	doc := mustParse(t, `<html><body><div class="ad">buy now</div><p>keep me</p></body></html>`)

	xpathStrip(doc, []string{"//div[@class='ad']"})

	if strings.Contains(textContent(doc), "buy now") {
		t.Fatalf("expected stripped node's text to be gone")
	}
	if !strings.Contains(textContent(doc), "keep me") {
		t.Fatalf("expected surviving node's text to remain")
	}
}
