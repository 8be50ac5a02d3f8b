package readability

import (
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// stripIDOrClass removes every element whose id or class attribute matches
// one of the CSS selectors in selectors. This backs the config's
// strip_id_or_class entries (spec section 6), e.g. ".entry-unrelated,
// #disqus_thread". Selectors are compiled with cascadia rather than
// matched by substring, so a config entry can express ".ad, .ad-*"-style
// precision instead of a crude class-name contains() check.
//
// A selector that fails to compile is skipped; one bad site-config entry
// must not abort the rest of the extraction.
func stripIDOrClass(doc *html.Node, selectors []string) {
	for _, raw := range selectors {
		sel := strings.TrimSpace(raw)
		if sel == "" {
			continue
		}

		matcher, err := cascadia.Compile(sel)
		if err != nil {
			continue
		}

		for _, node := range cascadia.QueryAll(doc, matcher) {
			if node.Parent != nil {
				node.Parent.RemoveChild(node)
			}
		}
	}
}

// stripImageSrc removes any <img> whose current src contains one of the
// substrings in patterns (e.g. a known tracking-pixel or lazy-load-placeholder
// host), the same way xpathStrip removes a whole node rather than blanking
// one of its attributes. Matching here is deliberately a plain substring
// check, mirroring how the config's strip_image_src entries are specified as
// host/path fragments rather than full selectors.
func stripImageSrc(doc *html.Node, patterns []string) {
	if len(patterns) == 0 {
		return
	}

	for _, img := range getElementsByTagName(doc, "img") {
		src := getAttribute(img, "src")
		if src == "" {
			continue
		}

		for _, pattern := range patterns {
			if pattern != "" && strings.Contains(src, pattern) {
				if img.Parent != nil {
					img.Parent.RemoveChild(img)
				}
				break
			}
		}
	}
}
