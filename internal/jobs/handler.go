package jobs

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"jobapply-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the jobs service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches job routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/jobs", h.listJobs)
	rg.GET("/jobs/:id", h.getJob)
	rg.POST("/jobs", h.createJob)
}

func (h *Handler) listJobs(c *gin.Context) {
	filter := Filter{
		Type:     c.Query("type"),
		Location: c.Query("location"),
		Keyword:  c.Query("keyword"),
	}

	postings, err := h.Svc.List(c.Request.Context(), filter)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list jobs", nil)
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{
		"count": len(postings),
		"jobs":  postings,
	})
}

func (h *Handler) getJob(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "job id must be an integer", nil)
		return
	}
	c.Set("jobId", c.Param("id"))

	posting, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "job not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch job", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{"job": posting})
}

func (h *Handler) createJob(c *gin.Context) {
	var posting Posting
	if err := c.ShouldBindJSON(&posting); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid job payload", nil)
		return
	}
	if Field(posting, FieldTitle) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "job title is required", nil)
		return
	}

	created, err := h.Svc.Create(c.Request.Context(), posting)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to create job", nil)
		return
	}

	respond.JSON(c, http.StatusCreated, gin.H{"job": created})
}
