package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobapply-backend/internal/applications"
	"jobapply-backend/internal/export"
	"jobapply-backend/internal/jobs"
	"jobapply-backend/internal/letters"
	"jobapply-backend/internal/matching"
	"jobapply-backend/internal/resumes"
	"jobapply-backend/internal/shared/config"
	"jobapply-backend/internal/shared/metrics"
	"jobapply-backend/internal/shared/server/middleware"
	"jobapply-backend/internal/shared/server/respond"
)

// RouterDeps carries the handlers wired into the HTTP API.
type RouterDeps struct {
	Config              config.Config
	JobsHandler         *jobs.Handler
	MatchingHandler     *matching.Handler
	LettersHandler      *letters.Handler
	ApplicationsHandler *applications.Handler
	ResumesHandler      *resumes.Handler
	ExportHandler       *export.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	r.GET("/healthz", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	if deps.JobsHandler != nil {
		deps.JobsHandler.RegisterRoutes(api)
	}
	if deps.MatchingHandler != nil {
		deps.MatchingHandler.RegisterRoutes(api)
	}
	if deps.LettersHandler != nil {
		deps.LettersHandler.RegisterRoutes(api)
	}
	if deps.ApplicationsHandler != nil {
		deps.ApplicationsHandler.RegisterRoutes(api)
	}
	if deps.ResumesHandler != nil {
		deps.ResumesHandler.RegisterRoutes(api)
	}
	if deps.ExportHandler != nil {
		deps.ExportHandler.RegisterRoutes(api)
	}

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
