package cvdelivery

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/cv/content"
	"portfolio-backend/internal/shared/server/respond"
	"portfolio-backend/internal/shared/util"
)

const (
	ActionDownload = "download"
	ActionPreview  = "preview"
	ActionUpload   = "upload"

	// HeaderSource names where a CV response came from: "cache" or a strategy.
	HeaderSource = "X-CV-Source"
)

type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

func (h *Handler) RegisterRoutes(rg gin.IRoutes) {
	rg.GET("/cv-handler", h.handle)
	rg.POST("/cv-handler", h.handle)
}

type cvRequest struct {
	Action string `json:"action"`
	Type   string `json:"type"`
}

// parseRequest reads action and type from the query string, filling gaps from
// a JSON body on POST.
func parseRequest(c *gin.Context) cvRequest {
	req := cvRequest{
		Action: strings.TrimSpace(c.Query("action")),
		Type:   strings.TrimSpace(c.Query("type")),
	}
	if c.Request.Method == http.MethodPost && c.Request.Body != nil && c.Request.ContentLength != 0 {
		var body cvRequest
		if err := c.ShouldBindJSON(&body); err == nil {
			if req.Action == "" {
				req.Action = strings.TrimSpace(body.Action)
			}
			if req.Type == "" {
				req.Type = strings.TrimSpace(body.Type)
			}
		}
	}
	req.Action = strings.ToLower(req.Action)
	return req
}

func (h *Handler) handle(c *gin.Context) {
	if h.Svc == nil {
		respond.Error(c, http.StatusInternalServerError, "CV service unavailable", nil)
		return
	}
	req := parseRequest(c)
	c.Set("cvAction", req.Action)

	switch req.Action {
	case ActionDownload, ActionPreview, ActionUpload:
	default:
		respond.Error(c, http.StatusBadRequest, "Invalid action. Use download, preview, or upload", nil)
		return
	}

	profile, ok := content.Lookup(req.Type)
	if !ok {
		respond.Error(c, http.StatusBadRequest, "Invalid CV type", gin.H{"allowed": content.Types()})
		return
	}
	c.Set("cvType", profile.ID)

	switch req.Action {
	case ActionPreview:
		c.Set("cvSource", StrategyPlainText)
		c.Header(HeaderSource, StrategyPlainText)
		respond.OK(c, gin.H{"content": h.Svc.Preview(profile)})

	case ActionUpload:
		result, err := h.Svc.Upload(c.Request.Context(), profile)
		if err != nil {
			switch {
			case errors.Is(err, ErrPDFUnavailable):
				respond.Error(c, http.StatusInternalServerError, "Failed to generate PDF", err.Error())
			case errors.Is(err, ErrStoreWrite):
				respond.Error(c, http.StatusInternalServerError, "Failed to upload CV", err.Error())
			default:
				respond.Error(c, http.StatusInternalServerError, "Failed to process CV request", err.Error())
			}
			return
		}
		c.Set("cvSource", result.Strategy)
		c.Header(HeaderSource, result.Strategy)
		respond.OK(c, gin.H{
			"success": true,
			"message": "CV uploaded successfully",
			"file":    profile.Delivery.StorageName,
			"data":    result,
		})

	default:
		artifact, err := h.Svc.Download(c.Request.Context(), profile)
		if err != nil {
			respond.Error(c, http.StatusInternalServerError, "Failed to generate CV", err.Error())
			return
		}
		c.Set("cvSource", artifact.Source)
		c.Header(HeaderSource, artifact.Source)
		c.Header("ETag", `"`+util.ContentHash(artifact.Data)+`"`)
		c.Header("Cache-Control", "no-cache")
		respond.Attachment(c, artifact.ContentType, artifact.FileName, artifact.Data)
	}
}
