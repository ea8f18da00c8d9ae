package resumes

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"jobapply-backend/internal/shared/server/respond"
)

const maxUploadBytes = 5 << 20

// Handler wires HTTP handlers to the resumes service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches resume routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/resumes", h.upload)
}

func (h *Handler) upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadBytes)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", nil)
		return
	}

	owner := strings.TrimSpace(c.PostForm("owner"))
	if owner == "" {
		owner = "anonymous"
	}

	f, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "failed to read file", nil)
		return
	}
	defer f.Close()

	resume, err := h.Svc.Upload(c.Request.Context(), owner, fileHeader.Filename, f)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to store resume", nil)
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{"resume": resume})
}
