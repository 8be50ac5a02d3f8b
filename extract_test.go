package readability

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractDefaultBaseURL(t *testing.T) {
	article, err := Extract(`<html><head><title>Hi</title></head>
		<body><article><p>`+strings.Repeat("word ", 120)+`</p></article></body></html>`, nil, nil)

	require.NoError(t, err)
	assert.Equal(t, "Hi", article.Title)
	assert.NotEmpty(t, article.TextContent)
}

func TestExtractXPathBodyOverride(t *testing.T) {
	html := `<html><head><title>T</title></head>
		<body>
			<div id="chrome">nav junk</div>
			<div id="real-body"><p>` + strings.Repeat("content ", 80) + `</p></div>
		</body></html>`

	cfg := &Config{XPathBody: []string{"//div[@id='real-body']"}}
	article, err := Extract(html, nil, cfg)

	require.NoError(t, err)
	assert.Contains(t, article.TextContent, "content")
	assert.NotContains(t, article.TextContent, "nav junk")
}

func TestExtractReplaceRules(t *testing.T) {
	html := `<html><head><title>T</title></head><body><p>BROKEN` + strings.Repeat(" word", 100) + `</p></body></html>`
	cfg := &Config{Replace: []ReplaceRule{{From: "BROKEN", To: "fixed"}}}

	article, err := Extract(html, nil, cfg)

	require.NoError(t, err)
	assert.Contains(t, article.TextContent, "fixed")
}
