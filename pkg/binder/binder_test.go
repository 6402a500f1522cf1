package binder_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/wikikit/pkg/binder"
)

type urlRequest struct {
	Title  string   `query:"title" form:"title" path:"title"`
	Limit  int      `query:"limit"`
	Ratio  *float64 `query:"ratio"`
	Block  bool     `query:"block" form:"block"`
	Params []string `query:"param"`
	Hidden string   `query:"-"`
	Plain  string
}

func TestQuery(t *testing.T) {
	t.Parallel()

	t.Run("binds tagged fields", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/api/url?title=Main+Page&limit=5&ratio=0.5&block=1&param=a%3D1&param=b%3D2&Hidden=x&plain=y", nil)

		var got urlRequest
		require.NoError(t, binder.Query()(req, &got))
		assert.Equal(t, "Main Page", got.Title)
		assert.Equal(t, 5, got.Limit)
		require.NotNil(t, got.Ratio)
		assert.InDelta(t, 0.5, *got.Ratio, 1e-9)
		assert.True(t, got.Block)
		assert.Equal(t, []string{"a=1", "b=2"}, got.Params)
		assert.Empty(t, got.Hidden)
		assert.Empty(t, got.Plain)
	})

	t.Run("absent values stay zero", func(t *testing.T) {
		t.Parallel()
		var got urlRequest
		require.NoError(t, binder.Query()(httptest.NewRequest(http.MethodGet, "/", nil), &got))
		assert.Nil(t, got.Ratio)
		assert.Zero(t, got.Limit)
	})

	tests := []struct {
		name   string
		target any
		query  string
	}{
		{name: "bad int", target: &urlRequest{}, query: "limit=many"},
		{name: "bad bool", target: &urlRequest{}, query: "block=maybe"},
		{name: "not a pointer", target: urlRequest{}, query: "title=x"},
		{name: "not a struct", target: new(string), query: "title=x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := binder.Query()(httptest.NewRequest(http.MethodGet, "/?"+tt.query, nil), tt.target)
			assert.ErrorIs(t, err, binder.ErrFailedToParseQuery)
		})
	}
}

func TestForm(t *testing.T) {
	t.Parallel()

	t.Run("urlencoded", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/notify?title=query", strings.NewReader("title=Help&block=on"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded; charset=utf-8")

		var got urlRequest
		require.NoError(t, binder.Form()(req, &got))
		assert.Equal(t, "Help", got.Title)
		assert.True(t, got.Block)
	})

	t.Run("multipart", func(t *testing.T) {
		t.Parallel()
		body := &bytes.Buffer{}
		mw := multipart.NewWriter(body)
		require.NoError(t, mw.WriteField("title", "Sandbox"))
		require.NoError(t, mw.Close())

		req := httptest.NewRequest(http.MethodPost, "/notify", body)
		req.Header.Set("Content-Type", mw.FormDataContentType())

		var got urlRequest
		require.NoError(t, binder.Form()(req, &got))
		assert.Equal(t, "Sandbox", got.Title)
	})

	t.Run("content type errors", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/notify", strings.NewReader("{}"))
		assert.ErrorIs(t, binder.Form()(req, &urlRequest{}), binder.ErrMissingContentType)

		req.Header.Set("Content-Type", "application/json")
		assert.ErrorIs(t, binder.Form()(req, &urlRequest{}), binder.ErrUnsupportedMediaType)

		req.Header.Set("Content-Type", "multipart/form-data")
		assert.ErrorIs(t, binder.Form()(req, &urlRequest{}), binder.ErrFailedToParseForm)
	})
}

func TestPath(t *testing.T) {
	t.Parallel()

	var got urlRequest
	r := chi.NewRouter()
	r.Get("/wiki/{title}", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, binder.Path(chi.URLParam)(r, &got))
		w.WriteHeader(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/wiki/Help:Contents", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "Help:Contents", got.Title)
}
