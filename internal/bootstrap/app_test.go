package bootstrap_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/bootstrap"
	"portfolio-backend/internal/shared/config"
)

func devConfig(t *testing.T) config.Config {
	t.Helper()
	return config.Config{
		Port:             "0",
		Env:              "dev",
		CORSAllowOrigin:  []string{"*"},
		LocalStoreDir:    t.TempDir(),
		ObjectStoreType:  "local",
		FrontendBaseURLs: []string{"http://127.0.0.1:1"},
		GitHubAPIURL:     "http://127.0.0.1:1",
		RateLimitCVRPS:   1,
		RateLimitCVBurst: 10,
	}
}

func TestBuildDevWiresRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	app, err := bootstrap.Build(devConfig(t))
	if err != nil {
		t.Fatalf("bootstrap build: %v", err)
	}
	if app.DB != nil {
		t.Fatalf("expected in-memory repositories without DATABASE_URL")
	}
	router := app.Router

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/health", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("health: expected 200, got %d", resp.Code)
	}

	body := bytes.NewBufferString(`{"name":"Jane","email":"jane@x.com","subject":"Hi","message":"Hello"}`)
	req := httptest.NewRequest(http.MethodPost, "/contact-form", body)
	req.Header.Set("Content-Type", "application/json")
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("contact: expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var created struct {
		Success bool   `json:"success"`
		ID      string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode contact response: %v", err)
	}
	if !created.Success || created.ID == "" {
		t.Fatalf("unexpected contact response %+v", created)
	}

	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/cv-handler?action=preview&type=manish", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("preview: expected 200, got %d", resp.Code)
	}
	var preview struct {
		Content string `json:"content"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&preview); err != nil {
		t.Fatalf("decode preview: %v", err)
	}
	if !strings.Contains(preview.Content, "MANISH JANGRA") {
		t.Fatalf("unexpected preview content %q", preview.Content)
	}

	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/cv-handler?action=download&type=omkar", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("download: expected 200, got %d", resp.Code)
	}
	if ct := resp.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Fatalf("expected plain-text fallback, got %q", ct)
	}
	if cd := resp.Header().Get("Content-Disposition"); !strings.Contains(cd, "Omkar_Singh_CV.txt") {
		t.Fatalf("unexpected Content-Disposition %q", cd)
	}

	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if !strings.Contains(resp.Body.String(), "contact_messages_created_total") {
		t.Fatalf("expected contact counter in metrics output")
	}
}

func TestBuildAnswersPreflight(t *testing.T) {
	gin.SetMode(gin.TestMode)
	app, err := bootstrap.Build(devConfig(t))
	if err != nil {
		t.Fatalf("bootstrap build: %v", err)
	}

	for _, path := range []string{"/cv-handler", "/contact-form", "/github-projects", "/convert-to-pdf"} {
		req := httptest.NewRequest(http.MethodOptions, path, nil)
		req.Header.Set("Origin", "https://portfolio.example")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		resp := httptest.NewRecorder()
		app.Router.ServeHTTP(resp, req)

		if resp.Code != http.StatusNoContent {
			t.Fatalf("%s: expected 204, got %d", path, resp.Code)
		}
		if got := resp.Header().Get("Access-Control-Allow-Origin"); got != "*" {
			t.Fatalf("%s: expected wildcard origin, got %q", path, got)
		}
	}
}

func TestBuildRequiresDatabaseOutsideDev(t *testing.T) {
	cfg := devConfig(t)
	cfg.Env = "production"

	if _, err := bootstrap.Build(cfg); err == nil {
		t.Fatalf("expected error when DATABASE_URL is missing in production")
	}
}
