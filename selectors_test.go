package readability

import (
	"strings"
	"testing"
)

func TestStripIDOrClass(t *testing.T) {
	doc := mustParse(t, `<html><body><div id="disqus_thread">comments</div><p class="share">share this</p><p>real content</p></body></html>`)

	stripIDOrClass(doc, []string{"#disqus_thread", ".share"})

	text := textContent(doc)
	if strings.Contains(text, "comments") || strings.Contains(text, "share this") {
		t.Fatalf("expected matched elements to be removed, got %q", text)
	}
	if !strings.Contains(text, "real content") {
		t.Fatalf("expected unmatched content to survive, got %q", text)
	}
}

func TestStripIDOrClassBadSelectorIsSkipped(t *testing.T) {
	doc := mustParse(t, `<html><body><p>content</p></body></html>`)

	stripIDOrClass(doc, []string{":::not-a-selector"})

	if !strings.Contains(textContent(doc), "content") {
		t.Fatalf("expected a malformed selector to be a no-op")
	}
}

func TestStripImageSrc(t *testing.T) {
	doc := mustParse(t, `<html><body><img src="https://track.example.com/pixel.gif"><img src="https://cdn.example.com/photo.jpg"></body></html>`)

	stripImageSrc(doc, []string{"track.example.com"})

	imgs := getElementsByTagName(doc, "img")
	if len(imgs) != 1 {
		t.Fatalf("expected tracking pixel img to be removed, got %d imgs", len(imgs))
	}
	if getAttribute(imgs[0], "src") != "https://cdn.example.com/photo.jpg" {
		t.Fatalf("expected unrelated image to survive, got src %q", getAttribute(imgs[0], "src"))
	}
}
