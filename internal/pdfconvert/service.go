package pdfconvert

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"portfolio-backend/internal/shared/telemetry"
)

// ErrInvalidURL is returned for missing or non-http(s) URLs.
var ErrInvalidURL = errors.New("invalid url")

// Result is a converted document.
type Result struct {
	PDF []byte
	// Fallback is set when the text-wrapped PDF was produced instead of a full render.
	Fallback bool
}

// Service converts pages to PDF, falling back to a text-only PDF when the
// rendering service is unavailable.
type Service struct {
	Renderer Renderer
	Fetcher  PageFetcher
}

// Convert renders pageURL with opts (defaults filled from CVLayout).
func (s *Service) Convert(ctx context.Context, pageURL string, opts Options) (Result, error) {
	if err := ValidateURL(pageURL); err != nil {
		return Result{}, err
	}

	var renderErr error
	if s.Renderer != nil {
		data, err := s.Renderer.Render(ctx, pageURL, opts.WithDefaults())
		if err == nil {
			return Result{PDF: data}, nil
		}
		renderErr = err
		telemetry.Warn("pdfconvert.render_failed", map[string]any{"url": pageURL, "error": err.Error()})
	} else {
		renderErr = ErrNotConfigured
	}

	if s.Fetcher == nil {
		return Result{}, renderErr
	}
	data, err := TextPDF(ctx, s.Fetcher, pageURL)
	if err != nil {
		return Result{}, fmt.Errorf("render: %v; text fallback: %w", renderErr, err)
	}
	return Result{PDF: data, Fallback: true}, nil
}

// ValidateURL accepts absolute http and https URLs only.
func ValidateURL(raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fmt.Errorf("%w: url is required", ErrInvalidURL)
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: must be an absolute http(s) url", ErrInvalidURL)
	}
	return nil
}
