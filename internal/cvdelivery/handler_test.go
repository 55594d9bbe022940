package cvdelivery_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/internal/cvdelivery"
	"portfolio-backend/internal/pdfconvert"
	"portfolio-backend/internal/shared/pdfdoc"
	localstore "portfolio-backend/internal/shared/storage/object/local"
)

type env struct {
	router   *gin.Engine
	frontend *httptest.Server
}

func newEnv(t *testing.T, rendererHealthy bool, frontendUp bool) env {
	t.Helper()
	gin.SetMode(gin.TestMode)

	renderSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rendererHealthy {
			http.Error(w, "renderer unavailable", http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"pdf": pdfconvert.EncodeDataURI(pdfdoc.TextPDF("rendered"))})
	}))
	t.Cleanup(renderSrv.Close)

	frontend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !frontendUp {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte("<html><body><h1>CV " + r.URL.Path + "</h1></body></html>"))
	}))
	t.Cleanup(frontend.Close)

	fetcher := pdfconvert.NewHTTPFetcher(time.Second)
	svc := cvdelivery.NewService(
		localstore.New(t.TempDir()),
		pdfconvert.NewClient(renderSrv.URL, "", time.Second),
		fetcher,
		[]string{frontend.URL},
	)
	r := gin.New()
	cvdelivery.NewHandler(svc).RegisterRoutes(r)
	return env{router: r, frontend: frontend}
}

func (e env) do(method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	resp := httptest.NewRecorder()
	e.router.ServeHTTP(resp, req)
	return resp
}

func TestDownloadManishWithHealthyRenderer(t *testing.T) {
	e := newEnv(t, true, true)

	resp := e.do(http.MethodGet, "/cv-handler?action=download&type=manish", "")

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "application/pdf", resp.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="Manish_Jangra_CV.pdf"`, resp.Header().Get("Content-Disposition"))
	assert.Equal(t, cvdelivery.StrategyBrowserPDF, resp.Header().Get(cvdelivery.HeaderSource))
	assert.NoError(t, pdfdoc.Validate(resp.Body.Bytes()))

	again := e.do(http.MethodGet, "/cv-handler?action=download&type=manish", "")
	require.Equal(t, http.StatusOK, again.Code)
	assert.Equal(t, cvdelivery.SourceCache, again.Header().Get(cvdelivery.HeaderSource))
	assert.Equal(t, resp.Body.Bytes(), again.Body.Bytes())
	assert.Equal(t, resp.Header().Get("ETag"), again.Header().Get("ETag"))
}

func TestDownloadOmkarWithEverythingDown(t *testing.T) {
	e := newEnv(t, false, false)

	resp := e.do(http.MethodGet, "/cv-handler?action=download&type=omkar", "")

	require.Equal(t, http.StatusOK, resp.Code)
	assert.True(t, strings.HasPrefix(resp.Header().Get("Content-Type"), "text/plain"))
	assert.Equal(t, `attachment; filename="Omkar_Singh_CV.txt"`, resp.Header().Get("Content-Disposition"))
	assert.Equal(t, cvdelivery.StrategyPlainText, resp.Header().Get(cvdelivery.HeaderSource))
	assert.Contains(t, resp.Body.String(), "OMKAR SINGH")
}

func TestDownloadNeverFailsWhenRendererFails(t *testing.T) {
	e := newEnv(t, false, true)

	resp := e.do(http.MethodGet, "/cv-handler?action=download&type=manish", "")

	require.Equal(t, http.StatusOK, resp.Code)
	ct := resp.Header().Get("Content-Type")
	assert.True(t, ct == "application/pdf" || strings.HasPrefix(ct, "text/plain"), ct)
	assert.Equal(t, cvdelivery.StrategyHTMLTextPDF, resp.Header().Get(cvdelivery.HeaderSource))
}

func TestDownloadDefaultsToManish(t *testing.T) {
	e := newEnv(t, false, false)

	resp := e.do(http.MethodGet, "/cv-handler?action=download", "")

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, `attachment; filename="Manish_Jangra_CV.txt"`, resp.Header().Get("Content-Disposition"))
}

func TestPreviewFromJSONBody(t *testing.T) {
	e := newEnv(t, true, true)

	resp := e.do(http.MethodPost, "/cv-handler", `{"action":"preview","type":"omkar"}`)

	require.Equal(t, http.StatusOK, resp.Code)
	var payload struct {
		Content string `json:"content"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &payload))
	assert.True(t, strings.HasPrefix(payload.Content, "OMKAR SINGH\n"))
}

func TestUploadResponse(t *testing.T) {
	e := newEnv(t, true, true)

	resp := e.do(http.MethodPost, "/cv-handler?action=upload&type=manish", "")

	require.Equal(t, http.StatusOK, resp.Code)
	var payload struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		File    string `json:"file"`
		Data    struct {
			Key      string `json:"key"`
			Size     int64  `json:"size"`
			Strategy string `json:"strategy"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &payload))
	assert.True(t, payload.Success)
	assert.Equal(t, "manish-cv.pdf", payload.File)
	assert.Equal(t, "manish-cv.pdf", payload.Data.Key)
	assert.Positive(t, payload.Data.Size)
	assert.Equal(t, cvdelivery.StrategyBrowserPDF, payload.Data.Strategy)

	cached := e.do(http.MethodGet, "/cv-handler?action=download&type=manish", "")
	assert.Equal(t, cvdelivery.SourceCache, cached.Header().Get(cvdelivery.HeaderSource))
}

func TestUploadFailsWithoutPDF(t *testing.T) {
	e := newEnv(t, false, false)

	resp := e.do(http.MethodGet, "/cv-handler?action=upload&type=omkar", "")

	require.Equal(t, http.StatusInternalServerError, resp.Code)
	var payload map[string]any
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &payload))
	assert.Equal(t, "Failed to generate PDF", payload["error"])
	assert.NotEmpty(t, payload["details"])
}

func TestInvalidActionAndType(t *testing.T) {
	e := newEnv(t, true, true)

	tests := []struct {
		target string
		want   string
	}{
		{target: "/cv-handler?action=print&type=manish", want: "Invalid action. Use download, preview, or upload"},
		{target: "/cv-handler", want: "Invalid action. Use download, preview, or upload"},
		{target: "/cv-handler?action=download&type=someone", want: "Invalid CV type"},
	}
	for _, tt := range tests {
		resp := e.do(http.MethodGet, tt.target, "")
		assert.Equal(t, http.StatusBadRequest, resp.Code, tt.target)
		var payload map[string]any
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &payload))
		assert.Equal(t, tt.want, payload["error"], tt.target)
	}
}
