package applications

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobapply-backend/internal/jobs"
	"jobapply-backend/internal/profile"
	"jobapply-backend/internal/shared/server/respond"
)

// ApplyRequest is the body for POST /applications.
type ApplyRequest struct {
	Profile profile.Profile `json:"profile"`
	JobID   int64           `json:"job_id"`
	Letter  string          `json:"letter"`
}

// BulkApplyRequest is the body for POST /applications/bulk.
type BulkApplyRequest struct {
	Profile profile.Profile `json:"profile"`
	Items   []BulkItem      `json:"applications"`
}

// Handler wires HTTP handlers to the applications service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches application routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/applications", h.apply)
	rg.POST("/applications/bulk", h.applyBulk)
	rg.GET("/applications", h.list)
}

func (h *Handler) apply(c *gin.Context) {
	var req ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid application request", nil)
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

	app, err := h.Svc.Apply(c.Request.Context(), req.Profile, req.JobID, req.Letter)
	if err != nil {
		switch {
		case errors.Is(err, jobs.ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "job not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to submit application", nil)
		}
		return
	}
	c.Set("applicationId", app.ID)

	respond.JSON(c, http.StatusOK, gin.H{"application": app})
}

func (h *Handler) applyBulk(c *gin.Context) {
	var req BulkApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid bulk application request", nil)
		return
	}
	if len(req.Items) == 0 {
		respond.Error(c, http.StatusBadRequest, "validation_error", "applications list is required", nil)
		return
	}

	apps, err := h.Svc.ApplyBulk(c.Request.Context(), req.Profile, req.Items)
	if err != nil {
		switch {
		case errors.Is(err, jobs.ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "job not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to submit applications", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{
		"count":        len(apps),
		"applications": apps,
	})
}

func (h *Handler) list(c *gin.Context) {
	apps, err := h.Svc.List(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list applications", nil)
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{
		"count":        len(apps),
		"applications": apps,
	})
}
