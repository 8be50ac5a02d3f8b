package readability

import "testing"

func TestConfigTitleFirstMatchWins(t *testing.T) {
	doc := mustParse(t, `<html><body><h1 class="headline">Real Title</h1></body></html>`)

	got := configTitle(doc, []string{"//h1[@class='missing']", "//h1[@class='headline']"})
	if got != "Real Title" {
		t.Fatalf("expected second expression to match, got %q", got)
	}
}

func TestConfigTitleNoMatch(t *testing.T) {
	doc := mustParse(t, `<html><body><p>no title here</p></body></html>`)

	if got := configTitle(doc, []string{"//h1"}); got != "" {
		t.Fatalf("expected empty string when nothing matches, got %q", got)
	}
}

func TestConfigBodyReturnsFirstMatch(t *testing.T) {
	doc := mustParse(t, `<html><body><div id="a">A</div><div id="b">B</div></body></html>`)

	node := configBody(doc, []string{"//div[@id='missing']", "//div[@id='b']", "//div[@id='a']"})
	if node == nil || getAttribute(node, "id") != "b" {
		t.Fatalf("expected first matching expression's node (id=b)")
	}
}
