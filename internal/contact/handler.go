package contact

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"

	"portfolio-backend/internal/shared/server/respond"
)

const msgMissingFields = "All fields are required"

type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

func (h *Handler) RegisterRoutes(rg gin.IRoutes) {
	rg.POST("/contact-form", h.submit)
}

func (h *Handler) submit(c *gin.Context) {
	var in Input
	if err := c.ShouldBindJSON(&in); err != nil {
		respond.Error(c, http.StatusBadRequest, msgMissingFields, nil)
		return
	}

	msg, err := h.Svc.Submit(c.Request.Context(), in, c.GetString("requestId"))
	switch {
	case err == nil:
	case errors.Is(err, ErrMissingFields):
		respond.Error(c, http.StatusBadRequest, msgMissingFields, nil)
		return
	case errors.Is(err, ErrInvalidEmail):
		respond.Error(c, http.StatusBadRequest, "Invalid email format", nil)
		return
	default:
		details, code := storeError(err)
		respond.ErrorWithCode(c, http.StatusInternalServerError, "Failed to save message", details, code)
		return
	}

	respond.OK(c, gin.H{
		"success": true,
		"message": "Message sent successfully",
		"id":      msg.ID,
	})
}

func storeError(err error) (string, string) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Message, pgErr.Code
	}
	if inner := errors.Unwrap(err); inner != nil {
		return inner.Error(), ""
	}
	return err.Error(), ""
}
