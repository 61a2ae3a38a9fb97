package fetcher

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"mediabox/backend/library/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFetcher(t *testing.T) (*Fetcher, *storage.Repository) {
	t.Helper()
	repo, err := storage.New(filepath.Join(t.TempDir(), "uploads"))
	require.NoError(t, err)
	return New(repo), repo
}

func newFileServer() *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/pic.png", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write([]byte("png-bytes"))
	})
	mux.HandleFunc("/photo", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/jpeg")
		_, _ = w.Write([]byte("jpeg-bytes"))
	})
	mux.HandleFunc("/mystery", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/octet-stream")
		_, _ = w.Write([]byte{0x00, 0x01})
	})
	return httptest.NewServer(mux)
}

func TestFetchOneStoresFile(t *testing.T) {
	f, repo := newTestFetcher(t)
	srv := newFileServer()
	defer srv.Close()

	res := f.FetchOne(context.Background(), srv.URL+"/pic.png", "http://localhost:3010", "vi")
	assert.True(t, res.Success)
	assert.Empty(t, res.Error)
	assert.Equal(t, srv.URL+"/pic.png", res.OriginalURL)
	assert.True(t, strings.HasSuffix(res.ConvertedURL, ".png"), "got %s", res.ConvertedURL)
	assert.True(t, strings.HasPrefix(res.ConvertedURL, "http://localhost:3010/uploads/converted-"))

	name := strings.TrimPrefix(res.ConvertedURL, "http://localhost:3010/uploads/")
	data, err := os.ReadFile(filepath.Join(repo.Dir(), name))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))
}

func TestFetchOneExtensionFromURLIgnoresQuery(t *testing.T) {
	f, _ := newTestFetcher(t)
	srv := newFileServer()
	defer srv.Close()

	res := f.FetchOne(context.Background(), srv.URL+"/pic.png?size=large&v=2", "http://x", "vi")
	assert.True(t, res.Success)
	assert.True(t, strings.HasSuffix(res.ConvertedURL, ".png"), "got %s", res.ConvertedURL)
}

func TestFetchOneExtensionFromContentType(t *testing.T) {
	f, _ := newTestFetcher(t)
	srv := newFileServer()
	defer srv.Close()

	res := f.FetchOne(context.Background(), srv.URL+"/photo", "http://x", "vi")
	assert.True(t, res.Success)
	assert.True(t, strings.HasSuffix(res.ConvertedURL, ".jpg"), "jpeg content type maps to .jpg, got %s", res.ConvertedURL)

	res = f.FetchOne(context.Background(), srv.URL+"/mystery", "http://x", "vi")
	assert.True(t, res.Success)
	assert.True(t, strings.HasSuffix(res.ConvertedURL, ".bin"), "unknown content type maps to .bin, got %s", res.ConvertedURL)
}

func TestFetchOneInvalidURL(t *testing.T) {
	f, repo := newTestFetcher(t)

	for _, raw := range []string{"not-a-url", "ftp://example.com/x", "http://", "::::"} {
		res := f.FetchOne(context.Background(), raw, "http://x", "vi")
		assert.False(t, res.Success, "url %q", raw)
		assert.Equal(t, "URL không hợp lệ", res.Error, "url %q", raw)
		assert.Empty(t, res.ConvertedURL)
	}

	entries, err := os.ReadDir(repo.Dir())
	require.NoError(t, err)
	assert.Empty(t, entries, "invalid URLs must not create files")
}

func TestFetchOneHTTPErrorLeavesNoFile(t *testing.T) {
	f, repo := newTestFetcher(t)
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	res := f.FetchOne(context.Background(), srv.URL+"/missing.png", "http://x", "vi")
	assert.False(t, res.Success)
	assert.Contains(t, res.Error, "404")

	entries, err := os.ReadDir(repo.Dir())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestFetchAllIsIndependentPerURL(t *testing.T) {
	f, _ := newTestFetcher(t)
	srv := newFileServer()
	defer srv.Close()

	results := f.FetchAll(context.Background(),
		[]string{"not-a-url", srv.URL + "/pic.png"}, "http://x", "vi")

	require.Len(t, results, 2)
	assert.False(t, results[0].Success)
	assert.Equal(t, "URL không hợp lệ", results[0].Error)
	assert.True(t, results[1].Success)
	assert.True(t, strings.HasSuffix(results[1].ConvertedURL, ".png"))
}
