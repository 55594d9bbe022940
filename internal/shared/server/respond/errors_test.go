package respond

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestErrorWritesFlatBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/fail", func(c *gin.Context) {
		ErrorWithCode(c, http.StatusInternalServerError, "Failed to save message", "duplicate key", "23505")
	})

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/fail", nil))

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["error"] != "Failed to save message" {
		t.Fatalf("unexpected error: %v", body["error"])
	}
	if body["details"] != "duplicate key" {
		t.Fatalf("unexpected details: %v", body["details"])
	}
	if body["code"] != "23505" {
		t.Fatalf("unexpected code: %v", body["code"])
	}
}

func TestErrorOmitsEmptyDetails(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/bad", func(c *gin.Context) {
		Error(c, http.StatusBadRequest, "All fields are required", nil)
	})

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/bad", nil))

	if got := resp.Body.String(); got != `{"error":"All fields are required"}` {
		t.Fatalf("unexpected body: %s", got)
	}
}

func TestAttachmentSetsDisposition(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/file", func(c *gin.Context) {
		Attachment(c, "text/plain; charset=utf-8", "cv.txt", []byte("hello"))
	})

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/file", nil))

	if cd := resp.Header().Get("Content-Disposition"); cd != `attachment; filename="cv.txt"` {
		t.Fatalf("unexpected disposition: %s", cd)
	}
	if resp.Body.String() != "hello" {
		t.Fatalf("unexpected body: %s", resp.Body.String())
	}
}
