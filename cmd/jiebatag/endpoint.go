package main

import (
	"context"

	v "github.com/RussellLuo/validating/v3"
	"github.com/coseyo/jiebatag"
	"github.com/go-kit/kit/endpoint"
)

const maxTopK = 100

type TextRequest struct {
	Text string `json:"text"`
}

type KeywordsRequest struct {
	Text string `json:"text"`
	TopK int    `json:"top_k"`
}

func (r *KeywordsRequest) Validate() error {
	errs := v.Validate(v.Schema{
		v.F("top_k", r.TopK): v.Range(1, maxTopK),
	})
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ResultResponse carries a Result. A failed Result is still a successful
// response.
type ResultResponse struct {
	Result jiebatag.Result `json:"result"`
}

func (r *ResultResponse) Body() interface{} { return r }

func MakeEndpointOfTag(s Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(*TextRequest)
		return &ResultResponse{Result: s.Tag(ctx, req.Text)}, nil
	}
}

func MakeEndpointOfNouns(s Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(*TextRequest)
		return &ResultResponse{Result: s.Nouns(ctx, req.Text)}, nil
	}
}

func MakeEndpointOfKeywords(s Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(*KeywordsRequest)
		return &ResultResponse{Result: s.Keywords(ctx, req.Text, req.TopK)}, nil
	}
}

func MakeEndpointOfSegment(s Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(*TextRequest)
		return &ResultResponse{Result: s.Segment(ctx, req.Text)}, nil
	}
}
