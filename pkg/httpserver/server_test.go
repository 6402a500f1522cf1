package httpserver_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/wikikit/pkg/httpserver"
)

func startServer(t *testing.T, opts ...httpserver.Option) (*httpserver.Server, string, context.CancelFunc, <-chan error) {
	t.Helper()

	started := make(chan string, 1)
	opts = append([]httpserver.Option{
		httpserver.WithAddr("127.0.0.1:0"),
		httpserver.WithShutdownTimeout(200 * time.Millisecond),
		httpserver.WithStartHook(func(addr string) { started <- addr }),
	}, opts...)
	srv := httpserver.New(opts...)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- srv.Run(ctx, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = io.WriteString(w, "ok")
		}))
	}()

	select {
	case addr := <-started:
		return srv, addr, cancel, done
	case err := <-done:
		cancel()
		require.FailNow(t, "server did not start", "%v", err)
	case <-time.After(2 * time.Second):
		cancel()
		require.FailNow(t, "server did not start in time")
	}
	return nil, "", cancel, done
}

func waitDone(t *testing.T, done <-chan error) {
	t.Helper()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		require.Fail(t, "run did not finish")
	}
}

func TestServer_RunServesAndStopsOnCancel(t *testing.T) {
	t.Parallel()

	srv, addr, cancel, done := startServer(t)
	assert.Equal(t, addr, srv.Addr())

	resp, err := http.Get("http://" + addr)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, "ok", string(body))

	cancel()
	waitDone(t, done)
	assert.NoError(t, srv.Shutdown(context.Background()))
}

func TestServer_ManualShutdownRunsStopHooks(t *testing.T) {
	t.Parallel()

	var stopped atomic.Int32
	srv, _, cancel, done := startServer(t, httpserver.WithStopHook(func() { stopped.Add(1) }))
	defer cancel()

	require.NoError(t, srv.Shutdown(context.Background()))
	require.NoError(t, srv.Shutdown(context.Background()))
	waitDone(t, done)
	assert.Equal(t, int32(1), stopped.Load())
}

func TestServer_AlreadyRunning(t *testing.T) {
	t.Parallel()

	srv, _, cancel, done := startServer(t)
	err := srv.Run(context.Background(), nil)
	assert.ErrorIs(t, err, httpserver.ErrStart)
	assert.ErrorIs(t, err, httpserver.ErrAlreadyRunning)

	cancel()
	waitDone(t, done)
}

func TestServer_StartError(t *testing.T) {
	t.Parallel()

	srv := httpserver.New(httpserver.WithAddr("127.0.0.1:invalid"))
	err := srv.Run(context.Background(), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, httpserver.ErrStart)
	assert.NoError(t, srv.Shutdown(context.Background()))
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	srv := httpserver.NewFromConfig(httpserver.Config{Addr: "127.0.0.1:9999"})
	assert.Equal(t, "127.0.0.1:9999", srv.Addr())

	srv = httpserver.NewFromConfig(httpserver.Config{Addr: "127.0.0.1:9999"}, httpserver.WithAddr("127.0.0.1:7777"))
	assert.Equal(t, "127.0.0.1:7777", srv.Addr())

	assert.Panics(t, func() { httpserver.WithAddr("") })
	assert.Panics(t, func() { httpserver.WithReadTimeout(0) })
	assert.Panics(t, func() { httpserver.WithStopHook(nil) })
}

func TestHealthCheckHandler(t *testing.T) {
	t.Parallel()

	failing := httpserver.Check{Name: "pages", Func: func(context.Context) error { return errors.New("missing dir") }}
	passing := httpserver.Check{Name: "cache", Func: func(context.Context) error { return nil }}

	tests := []struct {
		name   string
		checks []httpserver.Check
		code   int
		body   string
	}{
		{name: "liveness", code: http.StatusOK, body: "ALIVE"},
		{name: "ready", checks: []httpserver.Check{passing}, code: http.StatusOK, body: "READY"},
		{name: "not ready", checks: []httpserver.Check{passing, failing}, code: http.StatusServiceUnavailable, body: "NOT_READY"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			httpserver.HealthCheckHandler(nil, tt.checks...).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
			assert.Equal(t, tt.code, rec.Code)
			assert.Equal(t, tt.body, rec.Body.String())
			assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
		})
	}
}
