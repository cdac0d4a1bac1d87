package main

import (
	"context"
	"errors"

	"github.com/coseyo/jiebatag"
)

var errKeywordsUnsupported = errors.New("keywords not supported by engine")

// Service exposes the tagging adapter over HTTP.
type Service interface {
	//kun:op POST /tag
	Tag(ctx context.Context, text string) (result jiebatag.Result)

	//kun:op POST /nouns
	Nouns(ctx context.Context, text string) (result jiebatag.Result)

	//kun:op POST /keywords
	Keywords(ctx context.Context, text string, topK int) (result jiebatag.Result)

	//kun:op POST /segment
	Segment(ctx context.Context, text string) (result jiebatag.Result)
}

type TagService struct {
	adapter  *jiebatag.Adapter
	words    jiebatag.Tagger
	keywords func(topK int) jiebatag.Tagger
}

type TagServiceConfig struct {
	Adapter *jiebatag.Adapter
	// Words yields the plain segmentation.
	Words jiebatag.Tagger
	// Keywords builds a keyword tagger; nil when the engine has none.
	Keywords func(topK int) jiebatag.Tagger
}

func NewTagService(cfg *TagServiceConfig) *TagService {
	return &TagService{
		adapter:  cfg.Adapter,
		words:    cfg.Words,
		keywords: cfg.Keywords,
	}
}

func (s *TagService) Tag(_ context.Context, text string) jiebatag.Result {
	return s.adapter.TagText(text)
}

func (s *TagService) Nouns(_ context.Context, text string) jiebatag.Result {
	return s.adapter.Nouns(text)
}

func (s *TagService) Keywords(_ context.Context, text string, topK int) jiebatag.Result {
	if s.keywords == nil {
		return s.adapter.With(jiebatag.TaggerFunc(func(string) ([]string, error) {
			return nil, errKeywordsUnsupported
		}), text)
	}
	return s.adapter.With(s.keywords(topK), text)
}

func (s *TagService) Segment(_ context.Context, text string) jiebatag.Result {
	return s.adapter.With(s.words, text)
}
