package pdfconvert

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"portfolio-backend/internal/shared/pdfdoc"
)

const (
	maxResponseBytes = 20 << 20
	dataURIPrefix    = "data:application/pdf;base64,"
)

var (
	// ErrNotConfigured means no rendering service URL was provided.
	ErrNotConfigured = errors.New("pdf render service not configured")
	// ErrNoOutput means the service answered without a usable PDF.
	ErrNoOutput = errors.New("pdf render service returned no usable output")
)

// Renderer converts a web page into PDF bytes.
type Renderer interface {
	Render(ctx context.Context, pageURL string, opts Options) ([]byte, error)
}

// Client calls an external HTML-to-PDF rendering service over HTTP.
type Client struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
}

// NewClient builds a client. An empty endpoint yields a client whose Render
// always returns ErrNotConfigured.
func NewClient(endpoint, apiKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		endpoint: strings.TrimSpace(endpoint),
		apiKey:   strings.TrimSpace(apiKey),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type renderRequest struct {
	URL     string  `json:"url"`
	Options Options `json:"options"`
}

type renderResponse struct {
	PDF   string `json:"pdf"`
	Error string `json:"error"`
}

// Render posts {url, options} to the service. The response may be a raw PDF
// body or JSON carrying the PDF as a base64 data URI.
func (c *Client) Render(ctx context.Context, pageURL string, opts Options) ([]byte, error) {
	if c == nil || c.endpoint == "" {
		return nil, ErrNotConfigured
	}
	payload, err := json.Marshal(renderRequest{URL: pageURL, Options: opts})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/pdf, application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || strings.Contains(err.Error(), "Client.Timeout") {
			return nil, fmt.Errorf("pdf render timeout: %w", err)
		}
		return nil, fmt.Errorf("pdf render request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("pdf render read body: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("pdf render status %d: %s", resp.StatusCode, snippet(body))
	}

	data, err := decodeBody(resp.Header.Get("Content-Type"), body)
	if err != nil {
		return nil, err
	}
	if err := pdfdoc.Validate(data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoOutput, err)
	}
	return data, nil
}

func decodeBody(contentType string, body []byte) ([]byte, error) {
	if pdfdoc.HasMagic(body) {
		return body, nil
	}
	if !strings.Contains(strings.ToLower(contentType), "json") {
		return nil, fmt.Errorf("%w: unexpected content type %q", ErrNoOutput, contentType)
	}
	var parsed renderResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("%w: parse response: %v", ErrNoOutput, err)
	}
	if parsed.Error != "" {
		return nil, fmt.Errorf("%w: %s", ErrNoOutput, parsed.Error)
	}
	if strings.TrimSpace(parsed.PDF) == "" {
		return nil, ErrNoOutput
	}
	return DecodeDataURI(parsed.PDF)
}

// EncodeDataURI returns data as a base64 PDF data URI.
func EncodeDataURI(data []byte) string {
	return dataURIPrefix + base64.StdEncoding.EncodeToString(data)
}

// DecodeDataURI accepts a PDF data URI or a bare base64 string.
func DecodeDataURI(raw string) ([]byte, error) {
	encoded := strings.TrimSpace(raw)
	if idx := strings.Index(encoded, ";base64,"); strings.HasPrefix(encoded, "data:") && idx >= 0 {
		encoded = encoded[idx+len(";base64,"):]
	}
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: decode base64: %v", ErrNoOutput, err)
	}
	return data, nil
}

func snippet(body []byte) string {
	s := strings.TrimSpace(string(body))
	if len(s) > 200 {
		return s[:200]
	}
	return s
}

var _ Renderer = (*Client)(nil)
