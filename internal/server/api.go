package server

import (
	"github.com/dmitrymomot/wikikit/handler"
	"github.com/dmitrymomot/wikikit/pkg/validator"
	"github.com/dmitrymomot/wikikit/pkg/wikiurl"
)

type validateRequest struct {
	Kind  string `query:"kind"`
	Value string `query:"value"`
	Block bool   `query:"block"`
}

// ValidateResponse is the body of /api/validate. Result is null when there
// was nothing to judge (an empty e-mail address).
type ValidateResponse struct {
	Kind   string `json:"kind"`
	Value  string `json:"value"`
	Result *bool  `json:"result"`
}

func (s *Server) validate(_ handler.Context, req validateRequest) handler.Response {
	verdict, err := validator.ValidateAddress(req.Kind, req.Value, req.Block)
	if err != nil {
		return handler.Error(err)
	}
	if s.metrics != nil {
		s.metrics.ObserveValidation(req.Kind, verdict.String())
	}
	return handler.JSON(ValidateResponse{
		Kind:   req.Kind,
		Value:  req.Value,
		Result: verdict.Ptr(),
	})
}

type urlRequest struct {
	Title string `query:"title"`
}

// URLResponse carries a generated link.
type URLResponse struct {
	URL string `json:"url"`
}

// buildURL links to title; every other query parameter is appended to the link.
func (s *Server) buildURL(ctx handler.Context, req urlRequest) handler.Response {
	params := ctx.Request().URL.Query()
	params.Del("title")
	return handler.JSON(URLResponse{URL: s.site.GetURL(req.Title, params)})
}

type scriptRequest struct {
	Name string `query:"name"`
}

func (s *Server) script(_ handler.Context, req scriptRequest) handler.Response {
	return handler.JSON(URLResponse{URL: s.site.WikiScript(req.Name)})
}

type paramRequest struct {
	Name string `query:"name"`
	URL  string `query:"url"`
}

// ParamResponse is the body of /api/param. Value is null when the parameter
// is absent.
type ParamResponse struct {
	Value *string `json:"value"`
}

// param extracts a query parameter from url, or from the request itself when
// url is empty.
func (s *Server) param(ctx handler.Context, req paramRequest) handler.Response {
	if err := validator.Apply(validator.RequiredString("name", req.Name)); err != nil {
		return handler.Error(err)
	}

	var (
		value string
		ok    bool
	)
	if req.URL != "" {
		value, ok = wikiurl.GetParamValue(req.Name, req.URL)
	} else {
		value, ok = wikiurl.RequestParamValue(ctx.Request(), req.Name)
	}

	var resp ParamResponse
	if ok {
		resp.Value = &value
	}
	return handler.JSON(resp)
}
