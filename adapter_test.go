package jiebatag

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-kit/log"
	"github.com/google/go-cmp/cmp"
)

func staticTagger(tags ...string) Tagger {
	return TaggerFunc(func(string) ([]string, error) {
		return tags, nil
	})
}

func assertFailed(t *testing.T, r Result) {
	t.Helper()
	if r.Succeeded() {
		t.Fatalf("Succeeded: want false")
	}
	if len(r.Tags()) != 0 {
		t.Fatalf("Tags: want empty, got %v", r.Tags())
	}
	if r.ErrorMessage() == "" {
		t.Fatalf("ErrorMessage: want non-empty")
	}
}

func TestTagText(t *testing.T) {
	boom := errors.New("boom")

	cases := []struct {
		name     string
		tagger   Tagger
		wantTags []string
		wantOK   bool
		wantErr  error
	}{
		{
			name:     "order and duplicates",
			tagger:   staticTagger("秀才/nr", "账号/n", "秀才/nr"),
			wantTags: []string{"秀才/nr", "账号/n", "秀才/nr"},
			wantOK:   true,
		},
		{
			name:     "nil tags",
			tagger:   staticTagger(),
			wantTags: []string{},
			wantOK:   true,
		},
		{
			name: "returned error",
			tagger: TaggerFunc(func(string) ([]string, error) {
				return []string{"partial/n"}, boom
			}),
			wantTags: []string{},
			wantErr:  boom,
		},
		{
			name: "panic with error",
			tagger: TaggerFunc(func(string) ([]string, error) {
				panic(boom)
			}),
			wantTags: []string{},
			wantErr:  boom,
		},
		{
			name: "panic with value",
			tagger: TaggerFunc(func(string) ([]string, error) {
				panic("dictionary not loaded")
			}),
			wantTags: []string{},
		},
		{
			name: "panic with nil",
			tagger: TaggerFunc(func(string) ([]string, error) {
				panic(nil)
			}),
			wantTags: []string{},
		},
		{
			name:     "nil tagger",
			tagger:   nil,
			wantTags: []string{},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := TagText(c.tagger, "近日，主播“秀才”账号显示违反平台相关规定")
			if r.Succeeded() != c.wantOK {
				t.Fatalf("Succeeded: got %v, want %v", r.Succeeded(), c.wantOK)
			}
			if diff := cmp.Diff(c.wantTags, r.Tags()); diff != "" {
				t.Fatalf("Tags: (-want +got)\n%s", diff)
			}
			if c.wantOK {
				if r.ErrorMessage() != "" || r.Err() != nil {
					t.Fatalf("want no error, got %q %v", r.ErrorMessage(), r.Err())
				}
				return
			}
			if r.ErrorMessage() != TagTextErrorMessage {
				t.Fatalf("ErrorMessage: got %q", r.ErrorMessage())
			}
			var te *TaggingError
			if !errors.As(r.Err(), &te) {
				t.Fatalf("Err: want *TaggingError, got %T", r.Err())
			}
			if c.wantErr != nil && !errors.Is(r.Err(), c.wantErr) {
				t.Fatalf("Err: want %v in chain, got %v", c.wantErr, r.Err())
			}
		})
	}
}

func TestTagText_AnyInput(t *testing.T) {
	echo := TaggerFunc(func(text string) ([]string, error) {
		return strings.Fields(text), nil
	})
	inputs := []string{
		"",
		strings.Repeat("检举税收违法行为", 20000),
		"\x00\xff\xfe",
		"👩‍👩‍👧 ǅ ‮ עברית",
	}
	for _, in := range inputs {
		r := TagText(echo, in)
		if !r.Succeeded() {
			t.Fatalf("input %q: want success, got %q", in[:min(len(in), 16)], r.ErrorMessage())
		}
	}
}

func TestTagText_CopiesTags(t *testing.T) {
	tags := []string{"每日/r", "人物/n"}
	r := TagText(staticTagger(tags...), "每日人物")

	tags[0] = "changed"
	got := r.Tags()
	got[1] = "changed"

	if diff := cmp.Diff([]string{"每日/r", "人物/n"}, r.Tags()); diff != "" {
		t.Fatalf("Tags: (-want +got)\n%s", diff)
	}
}

func TestTagText_Deterministic(t *testing.T) {
	tagger := TaggerFunc(func(text string) ([]string, error) {
		return strings.Split(text, "，"), nil
	})
	text := "据每日人物报道，一份《检举税收违法行为受理回执》显示"

	r1 := TagText(tagger, text)
	r2 := TagText(tagger, text)
	if r1.Succeeded() != r2.Succeeded() {
		t.Fatalf("Succeeded differs")
	}
	if diff := cmp.Diff(r1.Tags(), r2.Tags()); diff != "" {
		t.Fatalf("Tags: (-first +second)\n%s", diff)
	}
}

func TestAdapter_Serialize(t *testing.T) {
	var inFlight, peak int32
	tagger := TaggerFunc(func(text string) ([]string, error) {
		n := atomic.AddInt32(&inFlight, 1)
		defer atomic.AddInt32(&inFlight, -1)
		for {
			p := atomic.LoadInt32(&peak)
			if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
				break
			}
		}
		time.Sleep(time.Millisecond)
		return []string{text}, nil
	})

	a := NewAdapter(&AdapterConfig{Tagger: tagger, Serialize: true})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if r := a.TagText("每日人物报道"); !r.Succeeded() {
				t.Errorf("want success, got %q", r.ErrorMessage())
			}
		}()
	}
	wg.Wait()

	if peak != 1 {
		t.Fatalf("peak concurrent calls: got %d, want 1", peak)
	}
}

func TestAdapter_LogsFailure(t *testing.T) {
	var buf bytes.Buffer
	a := NewAdapter(&AdapterConfig{
		Tagger: TaggerFunc(func(string) ([]string, error) {
			return nil, errors.New("dictionary missing")
		}),
		Logger: log.NewLogfmtLogger(&buf),
	})

	assertFailed(t, a.TagText("每日人物报道"))

	out := buf.String()
	for _, want := range []string{"level=warn", `msg="TagText Fail"`, `err="dictionary missing"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("log %q: missing %s", out, want)
		}
	}
}

func TestAdapter_Nouns(t *testing.T) {
	a := NewAdapter(&AdapterConfig{Tagger: staticTagger("国家/n", "税务总局/nt", "检举/v", "秀才/n")})

	r := a.Nouns("ignored")
	if diff := cmp.Diff([]string{"国家税务总局", "秀才"}, r.Tags()); diff != "" {
		t.Fatalf("Tags: (-want +got)\n%s", diff)
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
