package readability

import "testing"

func TestApplyReplaceRulesNilConfig(t *testing.T) {
	out := applyReplaceRules("<p>hello</p>", nil)
	if out != "<p>hello</p>" {
		t.Fatalf("expected no-op on nil config, got %q", out)
	}
}

func TestApplyReplaceRulesOrder(t *testing.T) {
	cfg := &Config{
		Replace: []ReplaceRule{
			{From: "foo", To: "bar"},
			{From: "bar", To: "baz"},
		},
	}

	out := applyReplaceRules("foo", cfg)
	if out != "baz" {
		t.Fatalf("expected rules to apply in order, got %q", out)
	}
}

func TestApplyReplaceRulesSkipsEmptyFrom(t *testing.T) {
	cfg := &Config{Replace: []ReplaceRule{{From: "", To: "x"}}}

	out := applyReplaceRules("unchanged", cfg)
	if out != "unchanged" {
		t.Fatalf("expected empty From to be a no-op, got %q", out)
	}
}
