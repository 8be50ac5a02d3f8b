package readability

import (
	"strings"

	"golang.org/x/net/html"
)

// configTitle tries each of exprs, in order, against doc and returns the
// first non-empty text match. Returns "" if nothing matched, so the caller
// falls back to the generic <title>/meta-tag extraction. Grounded on
// original_source's extract_title, which tries a site config's xpath
// entries before falling back to the generic path.
func configTitle(doc *html.Node, exprs []string) string {
	for _, expr := range exprs {
		if text := strings.TrimSpace(xpathText(doc, expr)); text != "" {
			return text
		}
	}
	return ""
}

// configByline tries each of exprs against doc and returns the first
// non-empty text match, same override shape as configTitle but for the
// byline/author fields (original_source's extract_author).
func configByline(doc *html.Node, exprs []string) string {
	for _, expr := range exprs {
		if text := strings.TrimSpace(xpathText(doc, expr)); text != "" {
			return text
		}
	}
	return ""
}

// configDate tries each of exprs against doc and returns the first
// non-empty text match (original_source's extract_date).
func configDate(doc *html.Node, exprs []string) string {
	for _, expr := range exprs {
		if text := strings.TrimSpace(xpathText(doc, expr)); text != "" {
			return text
		}
	}
	return ""
}

// configBody returns the first node matched by any of exprs, or nil. When a
// site config supplies xpath_body, it replaces the scoring engine outright:
// the matched node becomes the article body without running grabArticle's
// candidate search. Grounded on original_source's get_article_node, which
// checks a config's xpath_body before ever constructing a scorer.
func configBody(doc *html.Node, exprs []string) *html.Node {
	for _, expr := range exprs {
		if node := xpathFindOne(doc, expr); node != nil {
			return node
		}
	}
	return nil
}
