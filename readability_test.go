package readability

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"testing"

	"golang.org/x/net/html"
)

func TestMaxElemsToParse(t *testing.T) {
	input := strings.NewReader(`<html>
		<head>
			<title>hello world</title>
		</head>
		<body>
			<p>lorem ipsum</p>
		</body>
		</html>`)

	parser := New()
	parser.MaxElemsToParse = 3
	_, err := parser.Parse(input, "https://cixtor.com/blog")

	var extractErr *ExtractError
	if !errors.As(err, &extractErr) || extractErr.Kind != ErrParse {
		t.Fatalf("expecting ErrParse failure due to MaxElemsToParse: %s", err)
	}
}

func TestRemoveScripts(t *testing.T) {
	input := strings.NewReader(`<html>
		<head>
			<title>hello world</title>
		</head>
		<body>
			<script src="/js/scripts.min.js" type="text/javascript"></script>
			<p>lorem ipsum</p>
			<script type="text/javascript" src="/js/scripts.min.js"></script>
			<script type="text/javascript">
			window.alert('Hello World');
			</script>
		</body>
		</html>`)

	a, err := New().Parse(input, "https://cixtor.com/blog")

	if err != nil {
		t.Fatalf("parser failure: %s", err)
	}

	if a.TextContent != "lorem ipsum" {
		t.Fatalf("scripts were not removed: %s", a.TextContent)
	}
}

func TestIsProbablyVisibleAriaHidden(t *testing.T) {
	r := New()
	doc := mustParse(t, `<html><body><div aria-hidden="true">hidden</div></body></html>`)

	node := getElementsByTagName(doc, "div")[0]
	if r.isProbablyVisible(node) {
		t.Fatalf("expected aria-hidden=true node to be treated as invisible")
	}
}

func TestIsProbablyVisibleFallbackImageException(t *testing.T) {
	r := New()
	doc := mustParse(t, `<html><body><div aria-hidden="true" hidden style="display:none" class="fallback-image">image</div></body></html>`)

	node := getElementsByTagName(doc, "div")[0]
	if !r.isProbablyVisible(node) {
		t.Fatalf("expected fallback-image class to override hidden/aria-hidden/display:none")
	}
}

func TestHeaderDuplicatesTitle(t *testing.T) {
	r := New()
	r.articleTitle = "Breaking News Today"
	doc := mustParse(t, `<html><body><h2>  breaking   news   today  </h2><h2>Other Header</h2><p>not a header</p></body></html>`)

	headers := getElementsByTagName(doc, "h2")
	if !r.headerDuplicatesTitle(headers[0]) {
		t.Fatalf("expected whitespace/case-insensitive match against the article title")
	}
	if r.headerDuplicatesTitle(headers[1]) {
		t.Fatalf("expected unrelated header to not match the title")
	}

	paragraph := getElementsByTagName(doc, "p")[0]
	if r.headerDuplicatesTitle(paragraph) {
		t.Fatalf("expected non-header tag to never match, regardless of text")
	}
}

func TestFixRelativeURIsJavascriptSingleTextChild(t *testing.T) {
	r := New()
	r.documentURI, _ = url.ParseRequestURI("https://example.com/article")
	content := mustParse(t, `<html><body><a href="javascript:void(0)">Click me</a></body></html>`)

	r.fixRelativeURIs(content)

	if len(getElementsByTagName(content, "a")) != 0 {
		t.Fatalf("expected javascript: link to be replaced")
	}
	if strings.TrimSpace(textContent(content)) != "Click me" {
		t.Fatalf("expected the link's text to survive as plain text, got %q", textContent(content))
	}
}

func TestFixRelativeURIsJavascriptMultiChild(t *testing.T) {
	r := New()
	r.documentURI, _ = url.ParseRequestURI("https://example.com/article")
	content := mustParse(t, `<html><body><a href="javascript:void(0)"><b>bold</b><i>italic</i></a></body></html>`)

	r.fixRelativeURIs(content)

	if len(getElementsByTagName(content, "a")) != 0 {
		t.Fatalf("expected javascript: link to be replaced")
	}
	spans := getElementsByTagName(content, "span")
	if len(spans) != 1 {
		t.Fatalf("expected children to be wrapped in a single span, got %d spans", len(spans))
	}
	if len(getElementsByTagName(content, "b")) != 1 || len(getElementsByTagName(content, "i")) != 1 {
		t.Fatalf("expected the anchor's original children to survive inside the span")
	}
}

func TestGrabArticleKeepsUnlikelyClassInsideCodeAncestor(t *testing.T) {
	paragraphs := strings.Repeat(`<p>`+strings.Repeat("Lorem ipsum dolor sit amet consectetur adipiscing elit ", 4)+`</p>`, 12)
	html := `<html><body><article>` + paragraphs +
		`<pre><code><div class="comment-block">kept because it is inside a code ancestor</div></code></pre>` +
		`</article></body></html>`

	a, err := New().Parse(strings.NewReader(html), "https://cixtor.com/blog")
	if err != nil {
		t.Fatalf("parser failure: %s", err)
	}

	if !strings.Contains(a.Content, "kept because it is inside a code ancestor") {
		t.Fatalf("expected unlikely-classed node inside <code> to survive, got: %s", a.Content)
	}
}

func TestGrabArticleRemovesUnlikelyRoleNode(t *testing.T) {
	paragraphs := strings.Repeat(`<p>`+strings.Repeat("Lorem ipsum dolor sit amet consectetur adipiscing elit ", 4)+`</p>`, 12)
	html := `<html><body><article>` + paragraphs +
		`<div id="aux" role="navigation">should be removed because of its role</div>` +
		`</article></body></html>`

	a, err := New().Parse(strings.NewReader(html), "https://cixtor.com/blog")
	if err != nil {
		t.Fatalf("parser failure: %s", err)
	}

	if strings.Contains(a.Content, "should be removed because of its role") {
		t.Fatalf("expected role=navigation node to be removed, got: %s", a.Content)
	}
}

func TestPrepDocumentDemotesH1ToH2(t *testing.T) {
	r := New()
	r.doc = mustParse(t, `<html><body><h1>Main Heading</h1></body></html>`)

	r.prepDocument()

	if len(getElementsByTagName(r.doc, "h1")) != 0 {
		t.Fatalf("expected every <h1> to be demoted")
	}
	if len(getElementsByTagName(r.doc, "h2")) != 1 {
		t.Fatalf("expected the demoted heading to become <h2>")
	}
}

func getNodeExcerpt(node *html.Node) string {
	outer := outerHTML(node)
	outer = strings.Join(strings.Fields(outer), "\x20")
	if len(outer) < 500 {
		return outer
	}
	return outer[:500]
}

func errColorDiff(label string, a string, b string) error {
	coloredA := ""
	coloredB := ""
	for i := 0; i < len(a); i++ {
		if b[i] == a[i] {
			coloredA += a[i : i+1]
			coloredB += b[i : i+1]
			continue
		}
		coloredA += "\x1b[0;92m" + a[i:] + "\x1b[0m"
		coloredB += "\x1b[0;91m" + b[i:] + "\x1b[0m"
		break
	}
	return fmt.Errorf("%s\n- %s\n+ %s", label, coloredA, coloredB)
}
