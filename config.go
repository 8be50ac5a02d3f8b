package readability

import "strings"

// ReplaceRule is a literal substring substitution applied to the raw HTML
// before parsing. Grounded on original_source's parse_html, which runs
// config.replace over the document text before handing it to the HTML
// parser — useful for fixing up malformed markup a site serves (an
// unescaped ampersand, a broken self-closing tag) that would otherwise
// confuse the tree builder.
type ReplaceRule struct {
	From string
	To   string
}

// HeaderRule is a literal HTTP header to send when fetching a page. It is
// accepted and stored for forward compatibility with a fetch layer built on
// top of this package, but the core extractor never reads it: this module
// only ever receives HTML that has already been fetched.
type HeaderRule struct {
	Name  string
	Value string
}

// Config carries site-specific extraction hints, matching spec.md section 6.
// Only XPathStrip, StripIDOrClass, StripImageSrc, Replace, and the XPath*
// metadata lookups are consumed by the core; Header, SinglePageLink, and
// NextPageLink are carried through unread, for a caller that pairs this
// package with its own fetch/pagination logic.
type Config struct {
	// XPathTitle, XPathAuthor, XPathDate are tried, in order, before the
	// generic metadata fallbacks (<title>, meta tags) when extracting
	// those three fields.
	XPathTitle  []string
	XPathAuthor []string
	XPathDate   []string

	// XPathBody, when non-empty, replaces the scoring engine entirely: the
	// first matching node becomes the article body outright.
	XPathBody []string

	// XPathStrip is a list of XPath expressions; every matching node is
	// removed before scoring.
	XPathStrip []string

	// StripIDOrClass is a list of CSS selectors; every matching element is
	// removed before scoring.
	StripIDOrClass []string

	// StripImageSrc is a list of substrings; any <img> whose src contains
	// one is removed from the tree.
	StripImageSrc []string

	// Replace rules run, in order, against the raw HTML before parsing.
	Replace []ReplaceRule

	// Header, SinglePageLink, NextPageLink: see type docs above. Unused by
	// the core.
	Header         []HeaderRule
	SinglePageLink string
	NextPageLink   string
}

// applyReplaceRules runs cfg's Replace rules over raw HTML text, in order.
// A nil cfg is a no-op.
func applyReplaceRules(rawHTML string, cfg *Config) string {
	if cfg == nil {
		return rawHTML
	}

	for _, rule := range cfg.Replace {
		if rule.From == "" {
			continue
		}
		rawHTML = strings.ReplaceAll(rawHTML, rule.From, rule.To)
	}

	return rawHTML
}
