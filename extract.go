package readability

import (
	"net/url"
	"strings"
)

// defaultBaseURL is used when Extract is called with a nil baseURL,
// matching spec section 6 and original_source's extract(), both of which
// fall back to a fixed placeholder host rather than failing outright when
// no real URL is known.
const defaultBaseURL = "http://fakehost/test/base/"

// Extract runs the full extraction pipeline over rawHTML and returns the
// resulting Article. This is the package's primary entry point (spec
// section 6's extract(html, base_url)); Readability.Parse remains available
// for callers that already have a decoded io.Reader and want to reuse a
// single Readability value across documents.
func Extract(rawHTML string, baseURL *url.URL, cfg *Config) (Article, error) {
	r := New()
	r.Config = cfg

	pageURL := defaultBaseURL
	if baseURL != nil {
		pageURL = baseURL.String()
	}

	return r.Parse(strings.NewReader(rawHTML), pageURL)
}
