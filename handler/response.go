package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
)

// JSONOption configures a JSON response.
type JSONOption func(*jsonResponse)

// WithJSONStatus sets the status code. The default is 200.
func WithJSONStatus(status int) JSONOption {
	return func(r *jsonResponse) { r.status = status }
}

type jsonResponse struct {
	status int
	body   any
}

func (j *jsonResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	buf, err := json.Marshal(j.body)
	if err != nil {
		return err
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	_, err = w.Write(append(buf, '\n'))
	return err
}

// JSON encodes v as the response body.
func JSON(v any, opts ...JSONOption) Response {
	r := &jsonResponse{status: http.StatusOK, body: v}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ErrorDetail is the body of a JSON error response, under the "error" key.
type ErrorDetail struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Details map[string][]string `json:"details,omitempty"`
}

// JSONError renders err the way the error handler classifies it.
func JSONError(err error, opts ...JSONOption) Response {
	info := ClassifyError(err)
	r := &jsonResponse{
		status: info.StatusCode,
		body: map[string]ErrorDetail{"error": {
			Code:    info.Key,
			Message: info.Message,
			Details: info.Details,
		}},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Renderer writes a document, as wikidom.Page does.
type Renderer interface {
	Render(w io.Writer) error
}

type htmlResponse struct {
	status int
	doc    Renderer
}

func (h htmlResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	var buf bytes.Buffer
	if err := h.doc.Render(&buf); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(h.status)
	_, err := buf.WriteTo(w)
	return err
}

// HTML renders doc with status 200. The document is rendered into a buffer
// first so a failure still reaches the error handler.
func HTML(doc Renderer) Response {
	return htmlResponse{status: http.StatusOK, doc: doc}
}

type redirectResponse struct {
	url  string
	code int
}

func (r redirectResponse) Render(w http.ResponseWriter, req *http.Request) error {
	http.Redirect(w, req, r.url, r.code)
	return nil
}

// Redirect answers 303 See Other.
func Redirect(target string) Response {
	return redirectResponse{url: target, code: http.StatusSeeOther}
}

// LocalRedirect redirects to target when it is a path on this site and to
// fallback otherwise.
func LocalRedirect(target, fallback string) Response {
	if !isLocalURL(target) {
		target = fallback
	}
	return Redirect(target)
}

func isLocalURL(s string) bool {
	if s == "" || s[0] != '/' || len(s) > 1 && (s[1] == '/' || s[1] == '\\') {
		return false
	}
	u, err := url.Parse(s)
	return err == nil && u.Scheme == "" && u.Host == ""
}

type errorResponse struct {
	err error
}

func (e errorResponse) Render(http.ResponseWriter, *http.Request) error {
	return e.err
}

// Error hands err to the error handler, which picks the status and body.
func Error(err error) Response {
	if err == nil {
		err = ErrInternalServerError
	}
	return errorResponse{err: err}
}

type emptyResponse struct {
	status int
}

func (e emptyResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	w.WriteHeader(e.status)
	return nil
}

// Empty answers 204 No Content.
func Empty() Response {
	return emptyResponse{status: http.StatusNoContent}
}

// EmptyWithStatus answers status with no body.
func EmptyWithStatus(status int) Response {
	return emptyResponse{status: status}
}
