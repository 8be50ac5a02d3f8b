package readability

import (
	"errors"
	"testing"
)

func TestExtractErrorUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := newExtractError(ErrParse, "could not parse", cause)

	if !errors.Is(err, cause) {
		t.Fatalf("expected errors.Is to find the wrapped cause")
	}
}

func TestExtractErrorMessageWithoutCause(t *testing.T) {
	err := newExtractError(ErrNoContent, "nothing found", nil)

	want := "readability: no_content: nothing found"
	if err.Error() != want {
		t.Fatalf("expected %q, got %q", want, err.Error())
	}
}

func TestErrorKindString(t *testing.T) {
	cases := map[ErrorKind]string{
		ErrParse:         "parse",
		ErrURL:           "url",
		ErrTreeOperation: "tree_operation",
		ErrNoContent:     "no_content",
	}

	for kind, want := range cases {
		if got := kind.String(); got != want {
			t.Fatalf("expected %q for kind %d, got %q", want, kind, got)
		}
	}
}
