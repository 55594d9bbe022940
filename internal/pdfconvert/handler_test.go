package pdfconvert_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/internal/pdfconvert"
	"portfolio-backend/internal/shared/pdfdoc"
)

func newRouter(svc *pdfconvert.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	pdfconvert.NewHandler(svc).RegisterRoutes(r)
	return r
}

func post(t *testing.T, r http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/convert-to-pdf", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func TestConvertMissingURL(t *testing.T) {
	r := newRouter(&pdfconvert.Service{})
	for _, body := range []string{`{}`, `{"url":"  "}`, ``} {
		resp := post(t, r, body)
		assert.Equal(t, http.StatusBadRequest, resp.Code, body)
		var payload map[string]any
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &payload))
		assert.Equal(t, "URL is required", payload["error"])
	}
}

func TestConvertFallbackResponse(t *testing.T) {
	page := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<h1>Manish Jangra</h1>"))
	}))
	defer page.Close()

	svc := &pdfconvert.Service{
		Renderer: pdfconvert.NewClient("", "", time.Second),
		Fetcher:  pdfconvert.NewHTTPFetcher(time.Second),
	}
	resp := post(t, newRouter(svc), `{"url":"`+page.URL+`"}`)

	require.Equal(t, http.StatusOK, resp.Code)
	var payload struct {
		Success  bool   `json:"success"`
		PDF      string `json:"pdf"`
		Fallback bool   `json:"fallback"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &payload))
	assert.True(t, payload.Success)
	assert.True(t, payload.Fallback)
	data, err := pdfconvert.DecodeDataURI(payload.PDF)
	require.NoError(t, err)
	assert.NoError(t, pdfdoc.Validate(data))
}

func TestConvertTotalFailure(t *testing.T) {
	svc := &pdfconvert.Service{
		Renderer: pdfconvert.NewClient("", "", time.Second),
		Fetcher:  pdfconvert.NewHTTPFetcher(200 * time.Millisecond),
	}
	resp := post(t, newRouter(svc), `{"url":"http://127.0.0.1:1/cv"}`)

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	var payload map[string]any
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &payload))
	assert.Equal(t, "Failed to convert URL to PDF", payload["error"])
	assert.NotEmpty(t, payload["details"])
}
