package github

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/shared/server/respond"
	"portfolio-backend/internal/shared/telemetry"
)

type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

func (h *Handler) RegisterRoutes(rg gin.IRoutes) {
	rg.GET("/github-projects", h.projects)
	rg.POST("/github-projects", h.projects)
}

func (h *Handler) projects(c *gin.Context) {
	if h.Svc == nil || h.Svc.API == nil {
		h.fail(c, ErrMissingToken)
		return
	}
	portfolio, err := h.Svc.Projects(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	respond.OK(c, gin.H{
		"success":   true,
		"projects":  portfolio.Projects,
		"user_info": portfolio.UserInfo,
	})
}

func (h *Handler) fail(c *gin.Context, err error) {
	telemetry.Error("github.projects.failed", map[string]any{"error": err.Error()})
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"error":   err.Error(),
	})
}
