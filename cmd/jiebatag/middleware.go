package main

import (
	"context"
	"time"

	"github.com/coseyo/jiebatag"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/google/uuid"
)

type Middleware func(Service) Service

func LoggingMiddleware(logger log.Logger) Middleware {
	return func(next Service) Service {
		return &loggingMiddleware{next: next, logger: logger}
	}
}

type loggingMiddleware struct {
	next   Service
	logger log.Logger
}

func (mw *loggingMiddleware) log(method string, text string, begin time.Time, r jiebatag.Result) {
	level.Info(mw.logger).Log(
		"method", method,
		"request_id", uuid.NewString(),
		"text_len", len(text),
		"tags", len(r.Tags()),
		"succeeded", r.Succeeded(),
		"took", time.Since(begin),
	)
}

func (mw *loggingMiddleware) Tag(ctx context.Context, text string) (result jiebatag.Result) {
	defer func(begin time.Time) { mw.log("Tag", text, begin, result) }(time.Now())
	return mw.next.Tag(ctx, text)
}

func (mw *loggingMiddleware) Nouns(ctx context.Context, text string) (result jiebatag.Result) {
	defer func(begin time.Time) { mw.log("Nouns", text, begin, result) }(time.Now())
	return mw.next.Nouns(ctx, text)
}

func (mw *loggingMiddleware) Keywords(ctx context.Context, text string, topK int) (result jiebatag.Result) {
	defer func(begin time.Time) { mw.log("Keywords", text, begin, result) }(time.Now())
	return mw.next.Keywords(ctx, text, topK)
}

func (mw *loggingMiddleware) Segment(ctx context.Context, text string) (result jiebatag.Result) {
	defer func(begin time.Time) { mw.log("Segment", text, begin, result) }(time.Now())
	return mw.next.Segment(ctx, text)
}
