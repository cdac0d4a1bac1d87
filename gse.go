package jiebatag

import (
	"fmt"
	"unicode/utf8"

	"github.com/go-ego/gse"
	"github.com/samber/lo"
)

// GseTagger is a Tagger backed by go-ego/gse part-of-speech segmentation.
type GseTagger struct {
	seg gse.Segmenter
}

var _ Tagger = (*GseTagger)(nil)

// NewGseTagger loads the given dictionary files, or the embedded default
// dictionary when none are given.
func NewGseTagger(dictFiles ...string) (*GseTagger, error) {
	seg, err := gse.New(dictFiles...)
	if err != nil {
		return nil, fmt.Errorf("load gse dictionary: %w", err)
	}
	return &GseTagger{seg: seg}, nil
}

func (g *GseTagger) ExtractTags(text string) ([]string, error) {
	if !utf8.ValidString(text) {
		return nil, ErrInvalidUTF8
	}
	pos := g.seg.Pos(text, true)
	return lo.Map(pos, func(p gse.SegPos, _ int) string {
		return p.Text + "/" + p.Pos
	}), nil
}

// Words returns a Tagger yielding the plain segmentation of text.
func (g *GseTagger) Words() Tagger {
	return TaggerFunc(func(text string) ([]string, error) {
		if !utf8.ValidString(text) {
			return nil, ErrInvalidUTF8
		}
		return g.seg.Cut(text, true), nil
	})
}
