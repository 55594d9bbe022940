package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"
)

const (
	defaultBaseURL = "https://api.github.com"
	reposPerPage   = 100
	maxBodyBytes   = 10 << 20
)

// ErrMissingToken means no GitHub token is configured.
var ErrMissingToken = errors.New("GitHub token not configured")

// UpstreamError reports a non-2xx answer from the GitHub API.
type UpstreamError struct {
	Path   string
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("GitHub API %s returned %d: %s", e.Path, e.Status, e.Body)
}

// API is the part of the GitHub REST API the fetcher needs.
type API interface {
	User(ctx context.Context) (User, error)
	Repos(ctx context.Context) ([]Repo, error)
}

// Client calls the GitHub REST API with a static bearer token.
type Client struct {
	baseURL    string
	hasToken   bool
	httpClient *http.Client
}

// NewClient builds a client for baseURL (empty means api.github.com).
func NewClient(baseURL, token string, timeout time.Duration) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = defaultBaseURL
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	token = strings.TrimSpace(token)

	var httpClient *http.Client
	if token != "" {
		src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"})
		httpClient = oauth2.NewClient(context.Background(), src)
	} else {
		httpClient = &http.Client{}
	}
	httpClient.Timeout = timeout

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		hasToken:   token != "",
		httpClient: httpClient,
	}
}

// User returns the token owner.
func (c *Client) User(ctx context.Context) (User, error) {
	var u User
	err := c.get(ctx, "/user", &u)
	return u, err
}

// Repos lists the token owner's repositories, most recently updated first.
func (c *Client) Repos(ctx context.Context) ([]Repo, error) {
	var repos []Repo
	err := c.get(ctx, fmt.Sprintf("/user/repos?sort=updated&per_page=%d", reposPerPage), &repos)
	return repos, err
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	if !c.hasToken {
		return ErrMissingToken
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("X-GitHub-Api-Version", "2022-11-28")
	req.Header.Set("User-Agent", "portfolio-backend")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("GitHub API %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("GitHub API %s read body: %w", path, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &UpstreamError{Path: path, Status: resp.StatusCode, Body: snippet(body)}
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("GitHub API %s parse: %w", path, err)
	}
	return nil
}

func snippet(body []byte) string {
	s := strings.TrimSpace(string(body))
	if len(s) > 200 {
		return s[:200]
	}
	return s
}

var _ API = (*Client)(nil)
