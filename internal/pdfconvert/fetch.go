package pdfconvert

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"portfolio-backend/internal/shared/pdfdoc"
)

const (
	maxPageBytes = 5 << 20
	// TextFallbackLimit caps the characters wrapped into a text fallback PDF.
	TextFallbackLimit = 1000
)

// PageFetcher downloads and probes frontend pages.
type PageFetcher interface {
	Fetch(ctx context.Context, pageURL string) ([]byte, error)
	Reachable(ctx context.Context, pageURL string) bool
}

// HTTPFetcher implements PageFetcher with a plain HTTP client.
type HTTPFetcher struct {
	Client *http.Client
}

// NewHTTPFetcher returns a fetcher with the given per-request timeout.
func NewHTTPFetcher(timeout time.Duration) *HTTPFetcher {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPFetcher{Client: &http.Client{Timeout: timeout}}
}

// Fetch GETs pageURL and returns the body of a 2xx response.
func (f *HTTPFetcher) Fetch(ctx context.Context, pageURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "text/html")
	resp, err := f.client().Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", pageURL, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch %s: status %d", pageURL, resp.StatusCode)
	}
	return io.ReadAll(io.LimitReader(resp.Body, maxPageBytes))
}

// Reachable reports whether a HEAD request (or GET when HEAD is refused)
// answers with a 2xx or 3xx status.
func (f *HTTPFetcher) Reachable(ctx context.Context, pageURL string) bool {
	for _, method := range []string{http.MethodHead, http.MethodGet} {
		req, err := http.NewRequestWithContext(ctx, method, pageURL, nil)
		if err != nil {
			return false
		}
		resp, err := f.client().Do(req)
		if err != nil {
			return false
		}
		resp.Body.Close()
		if resp.StatusCode == http.StatusMethodNotAllowed || resp.StatusCode == http.StatusNotImplemented {
			continue
		}
		return resp.StatusCode >= 200 && resp.StatusCode < 400
	}
	return false
}

func (f *HTTPFetcher) client() *http.Client {
	if f.Client == nil {
		return http.DefaultClient
	}
	return f.Client
}

// TextPDF fetches pageURL, strips it to visible text, and wraps the first
// TextFallbackLimit characters in a single-page PDF.
func TextPDF(ctx context.Context, fetcher PageFetcher, pageURL string) ([]byte, error) {
	doc, err := fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return nil, err
	}
	text := pdfdoc.ExtractText(doc)
	if text == "" {
		return nil, fmt.Errorf("no text found at %s", pageURL)
	}
	return pdfdoc.TextPDF(pdfdoc.Truncate(text, TextFallbackLimit)), nil
}

var _ PageFetcher = (*HTTPFetcher)(nil)
