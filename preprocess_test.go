package readability

import (
	"net/url"
	"strings"
	"testing"
)

func TestFixLazyImagesRecoversDataSrc(t *testing.T) {
	doc := mustParse(t, `<html><body><img src="data:image/gif;base64,R0lGODlhAQABAIAAAAAAAP" data-src="https://example.com/real.jpg"></body></html>`)

	fixLazyImages(doc)

	img := getElementsByTagName(doc, "img")[0]
	if getAttribute(img, "src") != "https://example.com/real.jpg" {
		t.Fatalf("expected src to be recovered from data-src, got %q", getAttribute(img, "src"))
	}
	if hasAttribute(img, "data-src") {
		t.Fatalf("expected data-src to be removed after recovery")
	}
}

func TestFixLazyImagesSynthesizesFigureImg(t *testing.T) {
	doc := mustParse(t, `<html><body><figure data-src="https://example.com/fig.jpg"></figure></body></html>`)

	fixLazyImages(doc)

	imgs := getElementsByTagName(doc, "img")
	if len(imgs) != 1 {
		t.Fatalf("expected a synthesized <img>, got %d", len(imgs))
	}
	if getAttribute(imgs[0], "src") != "https://example.com/fig.jpg" {
		t.Fatalf("unexpected synthesized src: %q", getAttribute(imgs[0], "src"))
	}
}

func TestFixIframeSizeWrapsYoutube(t *testing.T) {
	doc := mustParse(t, `<html><body><iframe src="https://www.youtube.com/embed/xyz" width="420" height="315"></iframe></body></html>`)

	fixIframeSize(doc, "youtube.com")

	iframe := getElementsByTagName(doc, "iframe")[0]
	if getAttribute(iframe, "width") != "100%" || getAttribute(iframe, "height") != "100%" {
		t.Fatalf("expected iframe dimensions to be forced to 100%%")
	}
	if className(iframe.Parent) != "videoWrapper" {
		t.Fatalf("expected iframe to be wrapped in div.videoWrapper, parent class was %q", className(iframe.Parent))
	}
}

func TestRepairSrcset(t *testing.T) {
	base, _ := url.Parse("https://example.com/articles/")

	out := repairSrcset("/img/a.jpg 1x, /img/b.jpg 2x", base)
	if !strings.Contains(out, "https://example.com/img/a.jpg 1x") {
		t.Fatalf("expected first entry resolved, got %q", out)
	}
	if !strings.Contains(out, "https://example.com/img/b.jpg 2x") {
		t.Fatalf("expected second entry resolved, got %q", out)
	}
}

func TestRepairLinksAndMediaTargetBlank(t *testing.T) {
	base, _ := url.Parse("https://example.com/")
	doc := mustParse(t, `<html><body><a href="/page">link</a><a href="#section">anchor</a></body></html>`)

	repairLinksAndMedia(doc, base)

	links := getElementsByTagName(doc, "a")
	if getAttribute(links[0], "target") != "_blank" {
		t.Fatalf("expected non-hash link to get target=_blank")
	}
	if getAttribute(links[1], "target") == "_blank" {
		t.Fatalf("expected hash link to be left alone")
	}
}
