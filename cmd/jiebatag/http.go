package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/RussellLuo/kun/pkg/httpcodec"
	"github.com/coseyo/jiebatag"
	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-kit/kit/endpoint"
	kithttp "github.com/go-kit/kit/transport/http"
)

type validator interface {
	Validate() error
}

// invalidRequestError is rendered by go-kit as a 400 with a JSON body.
type invalidRequestError struct {
	err error
}

func (e *invalidRequestError) Error() string   { return e.err.Error() }
func (e *invalidRequestError) Unwrap() error   { return e.err }
func (e *invalidRequestError) StatusCode() int { return http.StatusBadRequest }

func (e *invalidRequestError) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]string{"error": e.err.Error()})
}

func NewHTTPRouter(svc Service, codecs httpcodec.Codecs) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	route := func(op, path string, e endpoint.Endpoint, newReq func() interface{}) {
		codec := codecs.EncodeDecoder(op)
		r.Method(
			"POST", path,
			kithttp.NewServer(
				e,
				decodeRequest(codec, newReq),
				httpcodec.MakeResponseEncoder(codec, http.StatusOK),
				kithttp.ServerErrorEncoder(makeErrorEncoder(codec)),
			),
		)
	}

	newTextRequest := func() interface{} { return new(TextRequest) }
	route("Tag", "/tag", MakeEndpointOfTag(svc), newTextRequest)
	route("Nouns", "/nouns", MakeEndpointOfNouns(svc), newTextRequest)
	route("Keywords", "/keywords", MakeEndpointOfKeywords(svc), func() interface{} {
		return &KeywordsRequest{TopK: jiebatag.DefaultTopK}
	})
	route("Segment", "/segment", MakeEndpointOfSegment(svc), newTextRequest)

	return r
}

func decodeRequest(codec httpcodec.Codec, newReq func() interface{}) kithttp.DecodeRequestFunc {
	return func(_ context.Context, r *http.Request) (interface{}, error) {
		req := newReq()
		if err := codec.DecodeRequestBody(r, req); err != nil {
			return nil, &invalidRequestError{err: err}
		}
		if v, ok := req.(validator); ok {
			if err := v.Validate(); err != nil {
				return nil, &invalidRequestError{err: err}
			}
		}
		return req, nil
	}
}

func makeErrorEncoder(codec httpcodec.Codec) kithttp.ErrorEncoder {
	fallback := httpcodec.MakeErrorEncoder(codec)
	return func(ctx context.Context, err error, w http.ResponseWriter) {
		var ire *invalidRequestError
		if errors.As(err, &ire) {
			kithttp.DefaultErrorEncoder(ctx, ire, w)
			return
		}
		fallback(ctx, err, w)
	}
}
