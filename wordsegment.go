package jiebatag

import (
	"errors"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/yanyiwu/gojieba"
)

var (
	ErrTaggerClosed = errors.New("jiebatag: tagger closed")
	// ErrInvalidUTF8 is returned for text the segmenters cannot decode.
	// gojieba drops such text silently.
	ErrInvalidUTF8 = errors.New("jiebatag: invalid UTF-8 text")
)

type Mode int

const (
	// ModePOS yields "word/flag" part-of-speech tags.
	ModePOS Mode = iota
	// ModeKeywords yields the top TF-IDF keywords.
	ModeKeywords
	// ModeWords yields the plain segmentation.
	ModeWords
)

// DefaultTopK is the keyword count used by ModeKeywords.
const DefaultTopK = 10

type jiebaHandle struct {
	mu sync.RWMutex
	jb *gojieba.Jieba
}

// JiebaTagger is a Tagger backed by gojieba.
type JiebaTagger struct {
	h    *jiebaHandle
	mode Mode
	topK int
}

var _ Tagger = (*JiebaTagger)(nil)

// NewJiebaTagger loads gojieba. Paths are passed through to
// gojieba.NewJieba: dict, hmm, user dict, idf, stop words.
func NewJiebaTagger(paths ...string) *JiebaTagger {
	return &JiebaTagger{
		h:    &jiebaHandle{jb: gojieba.NewJieba(paths...)},
		mode: ModePOS,
		topK: DefaultTopK,
	}
}

// WithMode returns a view of t in mode m sharing the same dictionaries.
func (t *JiebaTagger) WithMode(m Mode) *JiebaTagger {
	tt := *t
	tt.mode = m
	return &tt
}

// WithTopK returns a keyword view of t extracting at most k keywords.
func (t *JiebaTagger) WithTopK(k int) *JiebaTagger {
	tt := *t
	tt.mode = ModeKeywords
	tt.topK = k
	return &tt
}

func (t *JiebaTagger) ExtractTags(text string) ([]string, error) {
	t.h.mu.RLock()
	defer t.h.mu.RUnlock()
	if t.h.jb == nil {
		return nil, ErrTaggerClosed
	}
	if !utf8.ValidString(text) {
		return nil, ErrInvalidUTF8
	}

	switch t.mode {
	case ModePOS:
		return t.h.jb.Tag(text), nil
	case ModeKeywords:
		return t.h.jb.Extract(text, t.topK), nil
	case ModeWords:
		return t.h.jb.Cut(text, true), nil
	default:
		return nil, errors.New("jiebatag: unknown mode")
	}
}

// Tag returns the "word/flag" tags of text.
func (t *JiebaTagger) Tag(text string) ([]string, error) {
	return t.WithMode(ModePOS).ExtractTags(text)
}

func (t *JiebaTagger) Cut(text string) ([]string, error) {
	return t.WithMode(ModeWords).ExtractTags(text)
}

func (t *JiebaTagger) Segment(text string) (string, error) {
	words, err := t.Cut(text)
	if err != nil {
		return "", err
	}
	return strings.Join(words, " "), nil
}

func (t *JiebaTagger) Keywords(text string, topK int) ([]string, error) {
	return t.WithTopK(topK).ExtractTags(text)
}

// Free releases the gojieba handle for t and every view derived from it.
func (t *JiebaTagger) Free() {
	t.h.mu.Lock()
	defer t.h.mu.Unlock()
	if t.h.jb != nil {
		t.h.jb.Free()
		t.h.jb = nil
	}
}
