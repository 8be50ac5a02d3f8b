package readability

import (
	"github.com/antchfx/htmlquery"
	"golang.org/x/net/html"
)

// xpathFind evaluates an XPath expression against doc and returns every
// matching node, in document order. Used by the config-driven metadata
// extractors (xpath_title, xpath_author, xpath_date, xpath_body) and by
// xpathStrip below. A malformed expression yields no matches rather than an
// error: a broken site-config entry should degrade the extraction, not
// abort it, matching the best-effort cleanup policy the rest of the
// preprocessor follows.
func xpathFind(doc *html.Node, expr string) []*html.Node {
	if expr == "" {
		return nil
	}

	nodes, err := htmlquery.QueryAll(doc, expr)
	if err != nil {
		return nil
	}

	return nodes
}

// xpathFindOne evaluates expr and returns the first matching node, or nil.
func xpathFindOne(doc *html.Node, expr string) *html.Node {
	nodes := xpathFind(doc, expr)
	if len(nodes) == 0 {
		return nil
	}

	return nodes[0]
}

// xpathText evaluates expr and returns the text content of the first match,
// or "" if nothing matched. The text is not trimmed; callers trim it.
func xpathText(doc *html.Node, expr string) string {
	node := xpathFindOne(doc, expr)
	if node == nil {
		return ""
	}

	return htmlquery.InnerText(node)
}

// xpathStrip removes every node matching any of exprs from the tree. This
// backs the config's xpath_strip entries (spec section 6), evaluated before
// scoring so a site's known chrome (share bars, related-article rails)
// never enters the candidate pool.
func xpathStrip(doc *html.Node, exprs []string) {
	for _, expr := range exprs {
		for _, node := range xpathFind(doc, expr) {
			if node.Parent != nil {
				node.Parent.RemoveChild(node)
			}
		}
	}
}
