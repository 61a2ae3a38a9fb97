// Package fetcher downloads remote URLs into the managed directory. Both
// the batch endpoint and the single-URL endpoint run through FetchOne, so
// validation, extension inference and streaming behave identically.
package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	mberrors "mediabox/backend/common/errors"
	"mediabox/backend/common/i18n"
	"mediabox/backend/library/storage"
)

const fetchTimeout = 15 * time.Second

// Result is the per-URL outcome. A failed URL never fails the batch; it is
// reported here with the error message verbatim.
type Result struct {
	OriginalURL  string `json:"originalUrl"`
	ConvertedURL string `json:"convertedUrl,omitempty"`
	Success      bool   `json:"success"`
	Error        string `json:"error,omitempty"`
}

type Fetcher struct {
	repo   *storage.Repository
	client *http.Client
}

func New(repo *storage.Repository) *Fetcher {
	return &Fetcher{
		repo:   repo,
		client: &http.Client{Timeout: fetchTimeout},
	}
}

// FetchOne validates, downloads and stores a single URL. baseURL prefixes
// the returned public file URL, lang selects the error message language.
func (f *Fetcher) FetchOne(ctx context.Context, rawURL string, baseURL string, lang string) Result {
	res := Result{OriginalURL: rawURL}

	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		res.Error = i18n.Translate(mberrors.ErrInvalidURL, lang)
		return res
	}

	name, err := f.fetchAndStore(ctx, parsed)
	if err != nil {
		res.Error = err.Error()
		return res
	}

	res.Success = true
	res.ConvertedURL = baseURL + "/uploads/" + name
	return res
}

// FetchAll downloads each URL sequentially; one failure never aborts the
// batch.
func (f *Fetcher) FetchAll(ctx context.Context, urls []string, baseURL string, lang string) []Result {
	results := make([]Result, 0, len(urls))
	for _, u := range urls {
		results = append(results, f.FetchOne(ctx, u, baseURL, lang))
	}
	return results
}

// fetchAndStore issues the GET and streams the body straight to disk under
// a fresh "converted-" name.
func (f *Fetcher) fetchAndStore(ctx context.Context, u *url.URL) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return "", err
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("request failed with status code %d", resp.StatusCode)
	}

	ext := path.Ext(u.Path)
	if ext == "" {
		ext = extFromContentType(resp.Header.Get("Content-Type"))
	}

	name := storage.UniqueName("converted", ext)
	dst, err := f.repo.Create(name)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(dst, resp.Body); err != nil {
		dst.Close()
		_ = f.repo.Remove(name)
		return "", err
	}
	if err := dst.Close(); err != nil {
		_ = f.repo.Remove(name)
		return "", err
	}
	return name, nil
}

// extFromContentType classifies the response content type into a known
// extension. Both jpeg and jpg variants map to .jpg; anything unknown
// falls back to .bin.
func extFromContentType(contentType string) string {
	switch {
	case strings.Contains(contentType, "jpeg"), strings.Contains(contentType, "jpg"):
		return ".jpg"
	case strings.Contains(contentType, "png"):
		return ".png"
	case strings.Contains(contentType, "gif"):
		return ".gif"
	case strings.Contains(contentType, "mp4"):
		return ".mp4"
	case strings.Contains(contentType, "webm"):
		return ".webm"
	default:
		return ".bin"
	}
}
