package devserver_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apibridge/tsgen/internal/devserver"
	"github.com/apibridge/tsgen/internal/schema"
)

type staticProvider struct {
	doc map[string]any
	err error
}

func (p staticProvider) OpenAPISchema() (map[string]any, error) {
	return p.doc, p.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestServer_PreStartHooksRunInOrderBeforeListening(t *testing.T) {
	srv := devserver.New("127.0.0.1:0", http.NewServeMux(), discardLogger())

	var order []string
	listening := make(chan struct{})
	srv.OnPreStart(func(context.Context) { order = append(order, "first") })
	srv.OnPreStart(func(context.Context) {
		order = append(order, "second")
		close(listening)
	})

	done := make(chan error, 1)
	go func() {
		done <- srv.Start(context.Background())
	}()

	select {
	case <-listening:
	case <-time.After(5 * time.Second):
		t.Fatal("pre-start hooks did not run")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, srv.Shutdown(ctx))

	select {
	case err := <-done:
		assert.True(t, errors.Is(err, http.ErrServerClosed))
	case <-time.After(5 * time.Second):
		t.Fatal("Start did not return after Shutdown")
	}

	assert.Equal(t, []string{"first", "second"}, order)
}

func TestRegisterDocsEndpoints_OpenAPIJSON(t *testing.T) {
	mux := http.NewServeMux()
	devserver.RegisterDocsEndpoints(mux, staticProvider{doc: map[string]any{
		"openapi": "3.1.0",
		"info":    map[string]any{"title": "T"},
		"paths":   map[string]any{},
	}})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/openapi.json", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var doc map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.Equal(t, "3.1.0", doc["openapi"])
}

func TestRegisterDocsEndpoints_ProviderError(t *testing.T) {
	mux := http.NewServeMux()
	devserver.RegisterDocsEndpoints(mux, staticProvider{err: errors.New("boom")})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/openapi.json", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestRegisterDocsEndpoints_DocsRedirect(t *testing.T) {
	mux := http.NewServeMux()
	devserver.RegisterDocsEndpoints(mux, staticProvider{doc: map[string]any{}})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/docs", nil))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/docs/", rec.Header().Get("Location"))
}

func TestNewAPI_ProvidesSchemaThroughAdapter(t *testing.T) {
	api, _ := devserver.NewAPI("Demo", "1.0.0")

	doc, err := schema.NewHumaProvider(api).OpenAPISchema()
	require.NoError(t, err)

	info, ok := doc["info"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Demo", info["title"])
	assert.Equal(t, "1.0.0", info["version"])
}
