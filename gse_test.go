package jiebatag

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestGseTagger(t *testing.T) {
	g, err := NewGseTagger()
	if err != nil {
		t.Fatal(err)
	}

	r1 := TagText(g, suspensionNews)
	r2 := TagText(g, suspensionNews)
	if !r1.Succeeded() || len(r1.Tags()) == 0 {
		t.Fatalf("want non-empty success, got %v %q", r1.Tags(), r1.ErrorMessage())
	}
	if diff := cmp.Diff(r1.Tags(), r2.Tags()); diff != "" {
		t.Fatalf("Tags: (-first +second)\n%s", diff)
	}
	for _, tag := range r1.Tags() {
		if !strings.Contains(tag, "/") {
			t.Fatalf("tag %q: want word/flag", tag)
		}
	}
}

func TestGseTagger_InvalidUTF8(t *testing.T) {
	g, err := NewGseTagger()
	if err != nil {
		t.Fatal(err)
	}

	for _, tagger := range []Tagger{g, g.Words()} {
		r := TagText(tagger, "abc\xe4\xbd")
		assertFailed(t, r)
		if !errors.Is(r.Err(), ErrInvalidUTF8) {
			t.Fatalf("want ErrInvalidUTF8 in chain, got %v", r.Err())
		}
	}

	words := TagText(g.Words(), suspensionNews)
	if !words.Succeeded() || len(words.Tags()) == 0 {
		t.Fatalf("Words: want non-empty success, got %v %q", words.Tags(), words.ErrorMessage())
	}
}
