package rest

import (
	"io"
	"log/slog"
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

	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "omok"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "omok", "index.html"), []byte("<h1>omok</h1>"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(root, "omok", "script.js"), []byte("console.log(1)"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(root, "secret.txt"), []byte("secret"), 0o600))

	server := New(slog.New(slog.DiscardHandler), root, "8080", "9191")

	ts := httptest.NewServer(server.Handler())
	t.Cleanup(ts.Close)

	return ts
}

func get(t *testing.T, url string) (int, string) {
	t.Helper()

	client := &http.Client{CheckRedirect: func(*http.Request, []*http.Request) error { return http.ErrUseLastResponse }}

	resp, err := client.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp.StatusCode, string(body)
}

func TestServer(t *testing.T) {
	ts := newTestServer(t)

	t.Run("Ping", func(t *testing.T) {
		status, body := get(t, ts.URL+"/ping")

		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, "pong", body)
	})

	t.Run("Landing page links every game", func(t *testing.T) {
		status, body := get(t, ts.URL+"/")

		assert.Equal(t, http.StatusOK, status)
		for _, game := range games {
			assert.Contains(t, body, `href="/`+game.Slug+`/"`)
		}
		assert.Contains(t, body, "8080")
	})

	t.Run("Config script carries the socket port", func(t *testing.T) {
		status, body := get(t, ts.URL+"/config.js")

		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, "window.SOCKET_PORT = \"9191\";\n", body)
	})

	t.Run("Game index", func(t *testing.T) {
		status, body := get(t, ts.URL+"/omok/")

		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, "<h1>omok</h1>", body)
	})

	t.Run("Game asset", func(t *testing.T) {
		status, body := get(t, ts.URL+"/omok/script.js")

		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, "console.log(1)", body)
	})

	t.Run("Bare slug redirects to the directory", func(t *testing.T) {
		status, _ := get(t, ts.URL+"/omok")

		assert.Equal(t, http.StatusMovedPermanently, status)
	})

	t.Run("Missing game file", func(t *testing.T) {
		status, body := get(t, ts.URL+"/2048/")

		assert.Equal(t, http.StatusNotFound, status)
		assert.Contains(t, body, "404")
	})

	t.Run("Path cannot leave the game directory", func(t *testing.T) {
		status, body := get(t, ts.URL+"/omok/..%2fsecret.txt")

		assert.Equal(t, http.StatusNotFound, status)
		assert.NotContains(t, body, "secret")
	})

	t.Run("Unknown route", func(t *testing.T) {
		status, body := get(t, ts.URL+"/nope")

		assert.Equal(t, http.StatusNotFound, status)
		assert.Contains(t, body, "요청하신 페이지를 찾을 수 없습니다.")
	})
}
