package cvdelivery

import (
	"context"
	"strings"
	"sync"

	"portfolio-backend/internal/pdfconvert"
	"portfolio-backend/internal/shared/telemetry"
)

// Locator finds the first reachable frontend page for a CV. Base URLs are
// tried in order, primary first.
type Locator struct {
	BaseURLs []string
	Fetcher  pdfconvert.PageFetcher
}

// Candidates joins every base URL with pagePath.
func (l Locator) Candidates(pagePath string) []string {
	out := make([]string, 0, len(l.BaseURLs))
	for _, base := range l.BaseURLs {
		base = strings.TrimRight(strings.TrimSpace(base), "/")
		if base == "" {
			continue
		}
		out = append(out, base+"/"+strings.TrimLeft(pagePath, "/"))
	}
	return out
}

// Resolve probes the candidates and returns the first reachable one.
func (l Locator) Resolve(ctx context.Context, pagePath string) (string, bool) {
	if l.Fetcher == nil {
		return "", false
	}
	for _, candidate := range l.Candidates(pagePath) {
		if l.Fetcher.Reachable(ctx, candidate) {
			return candidate, true
		}
		telemetry.Debug("cv.target.unreachable", map[string]any{"url": candidate})
	}
	return "", false
}

// target memoizes a Locator lookup so later strategies in a chain reuse it.
type target struct {
	once    sync.Once
	locator Locator
	path    string
	url     string
	ok      bool
}

func (t *target) resolve(ctx context.Context) (string, bool) {
	t.once.Do(func() {
		t.url, t.ok = t.locator.Resolve(ctx, t.path)
	})
	return t.url, t.ok
}
