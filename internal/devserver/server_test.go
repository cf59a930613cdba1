package devserver

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte(`<html><body></body></html>`), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "mjs.wasm"), []byte("\x00asm\x01\x00\x00\x00"), 0600))
	server := httptest.NewServer(Handler(dir))
	t.Cleanup(server.Close)
	return server
}

func get(t *testing.T, url string) *http.Response {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestHandler(t *testing.T) {
	server := newTestServer(t)

	t.Run("html", func(t *testing.T) {
		resp := get(t, server.URL+"/index.html")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "no-cache", resp.Header.Get("Cache-Control"))
		assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
	})

	t.Run("wasm", func(t *testing.T) {
		resp := get(t, server.URL+"/mjs.wasm")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, wasmContentType, resp.Header.Get("Content-Type"))
	})

	t.Run("health", func(t *testing.T) {
		resp := get(t, server.URL+"/healthz")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "no-cache", resp.Header.Get("Cache-Control"))
	})

	t.Run("missing", func(t *testing.T) {
		resp := get(t, server.URL+"/nope.js")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("MJS_SERVER_DIR", "")
		t.Setenv("MJS_SERVER_ADDR", "")
		os.Unsetenv("MJS_SERVER_DIR")
		os.Unsetenv("MJS_SERVER_ADDR")
		cfg, err := LoadConfigFromEnv()
		require.NoError(t, err)
		assert.Equal(t, Config{Dir: "./out", Addr: ":8080"}, cfg)
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("MJS_SERVER_DIR", "/srv/site")
		t.Setenv("MJS_SERVER_ADDR", "127.0.0.1:9000")
		cfg, err := LoadConfigFromEnv()
		require.NoError(t, err)
		assert.Equal(t, Config{Dir: "/srv/site", Addr: "127.0.0.1:9000"}, cfg)
	})
}
