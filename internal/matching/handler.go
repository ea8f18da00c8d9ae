package matching

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"jobapply-backend/internal/jobs"
	"jobapply-backend/internal/profile"
	"jobapply-backend/internal/shared/server/respond"
)

// MatchRequest is the body for POST /match.
type MatchRequest struct {
	Profile  profile.Profile `json:"profile"`
	Type     string          `json:"type"`
	Location string          `json:"location"`
	TopN     int             `json:"top_n"`
}

// ExplainRequest is the body for POST /match/:id/explain.
type ExplainRequest struct {
	Profile profile.Profile `json:"profile"`
}

// MatchedJob is one ranked result: the posting plus its scores.
type MatchedJob struct {
	jobs.Posting
	MatchScore      float64 `json:"match_score"`
	SimilarityScore float64 `json:"similarity_score"`
}

// Handler wires HTTP handlers to the matching service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches matching routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/match", h.match)
	rg.POST("/match/:id/explain", h.explain)
}

func (h *Handler) match(c *gin.Context) {
	var req MatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid match request", nil)
		return
	}

	ranked, err := h.Svc.Match(c.Request.Context(), req.Profile, jobs.Filter{Type: req.Type, Location: req.Location}, req.TopN)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to match jobs", nil)
		return
	}

	matched := make([]MatchedJob, 0, len(ranked))
	for _, r := range ranked {
		matched = append(matched, MatchedJob{
			Posting:         r.Posting,
			MatchScore:      r.MatchScore,
			SimilarityScore: r.SimilarityScore,
		})
	}

	respond.JSON(c, http.StatusOK, gin.H{
		"count":   len(matched),
		"matches": matched,
	})
}

func (h *Handler) explain(c *gin.Context) {
	jobID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "job id must be an integer", nil)
		return
	}
	c.Set("jobId", c.Param("id"))

	var req ExplainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid explain request", nil)
		return
	}

	explanation, err := h.Svc.Explain(c.Request.Context(), req.Profile, jobID)
	if err != nil {
		switch {
		case errors.Is(err, jobs.ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "job not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to explain match", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{"explanation": explanation})
}
