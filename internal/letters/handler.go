package letters

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobapply-backend/internal/jobs"
	"jobapply-backend/internal/profile"
	"jobapply-backend/internal/shared/server/respond"
)

// GenerateRequest is the body for POST /letters.
type GenerateRequest struct {
	Profile       profile.Profile `json:"profile"`
	JobID         int64           `json:"job_id"`
	CustomMessage string          `json:"custom_message"`
}

// Handler wires HTTP handlers to the letters service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches letter routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/letters", h.generate)
}

func (h *Handler) generate(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid letter request", nil)
		return
	}
	if req.JobID == 0 {
		respond.Error(c, http.StatusBadRequest, "validation_error", "job_id is required", nil)
		return
	}

	letter, err := h.Svc.Generate(c.Request.Context(), req.Profile, req.JobID, req.CustomMessage)
	if err != nil {
		switch {
		case errors.Is(err, jobs.ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "job not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to generate letter", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, letter)
}
