package export

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobapply-backend/internal/jobs"
	"jobapply-backend/internal/shared/server/respond"
)

// ExportRequest is the body for POST /letters/export.
type ExportRequest struct {
	JobID    int64  `json:"job_id"`
	Letter   string `json:"letter"`
	FileName string `json:"filename"`
}

// Handler wires HTTP handlers to the export service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches export routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/letters/export", h.export)
}

func (h *Handler) export(c *gin.Context) {
	var req ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid export request", nil)
		return
	}
	if req.JobID == 0 {
		respond.Error(c, http.StatusBadRequest, "validation_error", "job_id is required", nil)
		return
	}
	if req.Letter == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "letter is required", nil)
		return
	}

	exp, err := h.Svc.Export(c.Request.Context(), req.JobID, req.Letter, req.FileName)
	if err != nil {
		switch {
		case errors.Is(err, jobs.ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "job not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to export letter", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{"export": exp})
}
