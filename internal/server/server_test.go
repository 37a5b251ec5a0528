package server

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestServer(t *testing.T, ttl time.Duration) (*Server, string) {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.wasm"), []byte("\x00asm-v1"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "wasm_exec.js"), []byte("// go runtime"), 0o644))

	s, err := New(Config{AssetsDir: dir, CacheTTL: ttl}, zap.NewNop())
	require.NoError(t, err)

	return s, dir
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestNew_MissingAssetsDir(t *testing.T) {
	_, err := New(Config{AssetsDir: filepath.Join(t.TempDir(), "nope")}, zap.NewNop())
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestNew_AssetsDirIsFile(t *testing.T) {
	f := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(f, nil, 0o644))

	_, err := New(Config{AssetsDir: f}, zap.NewNop())
	assert.Error(t, err)
}

func TestIndex_ServesHostPage(t *testing.T) {
	s, _ := newTestServer(t, time.Minute)

	rr := get(t, s.Handler(), "/")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Type"), "text/html")
	body := rr.Body.String()
	for _, id := range []string{`id="count"`, `id="add"`, `id="subtract"`, `id="app"`, "/wasm_exec.js", "/main.wasm"} {
		assert.Contains(t, body, id)
	}
	assert.NotEmpty(t, rr.Header().Get("X-Request-Id"))
}

func TestAsset_ServesWasmWithContentType(t *testing.T) {
	s, _ := newTestServer(t, time.Minute)

	rr := get(t, s.Handler(), "/main.wasm")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/wasm", rr.Header().Get("Content-Type"))
	assert.Equal(t, "\x00asm-v1", rr.Body.String())

	rr = get(t, s.Handler(), "/wasm_exec.js")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Type"), "javascript")
}

func TestAsset_UnknownNameIsNotFound(t *testing.T) {
	s, dir := newTestServer(t, time.Minute)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "secret.txt"), []byte("x"), 0o644))

	assert.Equal(t, http.StatusNotFound, get(t, s.Handler(), "/secret.txt").Code)
	assert.Equal(t, http.StatusNotFound, get(t, s.Handler(), "/favicon.ico").Code)
}

func TestAsset_MissingOnDiskIsNotFound(t *testing.T) {
	s, dir := newTestServer(t, time.Minute)
	require.NoError(t, os.Remove(filepath.Join(dir, "main.wasm")))

	assert.Equal(t, http.StatusNotFound, get(t, s.Handler(), "/main.wasm").Code)
}

// TestAsset_CachedUntilTTL verifies a rebuilt main.wasm is served only once the
// cached copy expires.
func TestAsset_CachedUntilTTL(t *testing.T) {
	s, dir := newTestServer(t, 50*time.Millisecond)

	first := get(t, s.Handler(), "/main.wasm")
	require.Equal(t, "\x00asm-v1", first.Body.String())

	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.wasm"), []byte("\x00asm-v2"), 0o644))
	cached := get(t, s.Handler(), "/main.wasm")
	assert.Equal(t, "\x00asm-v1", cached.Body.String())

	assert.Eventually(t, func() bool {
		return get(t, s.Handler(), "/main.wasm").Body.String() == "\x00asm-v2"
	}, 2*time.Second, 20*time.Millisecond)
}

func TestHealthz(t *testing.T) {
	s, _ := newTestServer(t, time.Minute)

	rr := get(t, s.Handler(), "/healthz")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "ok", rr.Body.String())
}

func TestMetrics_CountsRequestsByRoute(t *testing.T) {
	s, _ := newTestServer(t, time.Minute)

	get(t, s.Handler(), "/")
	get(t, s.Handler(), "/main.wasm")
	get(t, s.Handler(), "/nope.bin")

	rr := get(t, s.Handler(), "/metrics")

	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, `counter_server_requests_total{code="200",route="/"} 1`)
	assert.Contains(t, body, `counter_server_requests_total{code="200",route="/{asset}"} 1`)
	assert.Contains(t, body, `counter_server_requests_total{code="404",route="/{asset}"} 1`)
}

func TestRun_ShutsDownOnCancel(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())

	dir := t.TempDir()
	s, err := New(Config{Addr: addr, AssetsDir: dir}, zap.NewNop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/healthz")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after cancel")
	}
}

// TestIndex_BootstrapAfterElements verifies the WASM bootstrap is placed after
// the elements it looks up, so go.run never starts before <body> is parsed.
func TestIndex_BootstrapAfterElements(t *testing.T) {
	s, _ := newTestServer(t, time.Minute)
	body := get(t, s.Handler(), "/").Body.String()

	script := strings.Index(body, `<script src="/wasm_exec.js">`)
	require.NotEqual(t, -1, script)
	for _, id := range []string{`id="count"`, `id="add"`, `id="subtract"`, `id="app"`} {
		pos := strings.Index(body, id)
		require.NotEqual(t, -1, pos, id)
		assert.Less(t, pos, script, "%s must precede the bootstrap script", id)
	}
	assert.Less(t, strings.Index(body, "<body"), script)
}
