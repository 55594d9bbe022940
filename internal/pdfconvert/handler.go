package pdfconvert

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/shared/server/respond"
)

type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

func (h *Handler) RegisterRoutes(rg gin.IRoutes) {
	rg.POST("/convert-to-pdf", h.convert)
}

type convertRequest struct {
	URL     string   `json:"url"`
	Options *Options `json:"options"`
}

type convertResponse struct {
	Success  bool   `json:"success"`
	PDF      string `json:"pdf"`
	Message  string `json:"message"`
	Fallback bool   `json:"fallback,omitempty"`
}

func (h *Handler) convert(c *gin.Context) {
	if h.Svc == nil {
		respond.Error(c, http.StatusInternalServerError, "Conversion service unavailable", nil)
		return
	}
	var req convertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "URL is required", err.Error())
		return
	}
	if strings.TrimSpace(req.URL) == "" {
		respond.Error(c, http.StatusBadRequest, "URL is required", nil)
		return
	}
	opts := CVLayout()
	if req.Options != nil {
		opts = *req.Options
	}

	result, err := h.Svc.Convert(c.Request.Context(), strings.TrimSpace(req.URL), opts)
	if err != nil {
		if errors.Is(err, ErrInvalidURL) {
			respond.Error(c, http.StatusBadRequest, "Invalid URL", err.Error())
			return
		}
		respond.Error(c, http.StatusInternalServerError, "Failed to convert URL to PDF", err.Error())
		return
	}

	resp := convertResponse{
		Success: true,
		PDF:     EncodeDataURI(result.PDF),
		Message: "PDF generated successfully",
	}
	if result.Fallback {
		resp.Fallback = true
		resp.Message = "PDF generated from page text (renderer unavailable)"
	}
	respond.OK(c, resp)
}
