package bootstrap

import (
	"context"
	"database/sql"
	"encoding/json"
	"log"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/oauth2"

	"jobapply-backend/internal/applications"
	"jobapply-backend/internal/export"
	"jobapply-backend/internal/jobs"
	"jobapply-backend/internal/letters"
	"jobapply-backend/internal/llm"
	openai "jobapply-backend/internal/llm/openai"
	"jobapply-backend/internal/mailer"
	"jobapply-backend/internal/match"
	"jobapply-backend/internal/matching"
	"jobapply-backend/internal/queue"
	"jobapply-backend/internal/resumes"
	"jobapply-backend/internal/shared/config"
	"jobapply-backend/internal/shared/server"
	"jobapply-backend/internal/shared/storage/db"
	"jobapply-backend/internal/shared/storage/object"
	localstore "jobapply-backend/internal/shared/storage/object/local"
	s3store "jobapply-backend/internal/shared/storage/object/s3"
)

// App holds shared dependencies for the API and worker binaries.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB
	Store  object.ObjectStore
	Queue  queue.Client

	JobsRepo         jobs.Repo
	ApplicationsRepo applications.Repo

	JobsService         *jobs.Service
	MatchingService     *matching.Service
	LettersService      *letters.Service
	ApplicationsService *applications.Service
	ResumesService      *resumes.Service
	ExportService       *export.Service
}

// Build prepares shared dependencies and wires the HTTP router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	queueClient, err := buildQueue(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Store:  store,
		Queue:  queueClient,
	}

	if err := buildServices(app); err != nil {
		return nil, err
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:              app.Config,
		JobsHandler:         jobs.NewHandler(app.JobsService),
		MatchingHandler:     matching.NewHandler(app.MatchingService),
		LettersHandler:      letters.NewHandler(app.LettersService),
		ApplicationsHandler: applications.NewHandler(app.ApplicationsService),
		ResumesHandler:      resumes.NewHandler(app.ResumesService),
		ExportHandler:       export.NewHandler(app.ExportService),
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, errRequired("DATABASE_URL")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}
	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix)
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

func buildQueue(ctx context.Context, cfg config.Config) (queue.Client, error) {
	if strings.TrimSpace(cfg.SQSQueueURL) == "" {
		return nil, nil
	}
	return queue.NewSQSClient(ctx, cfg.AWSRegion, cfg.SQSQueueURL)
}

func buildServices(app *App) error {
	cfg := app.Config

	var jobsRepo jobs.Repo
	var appsRepo applications.Repo
	if app.DB != nil {
		jobsRepo = &jobs.PGRepo{DB: app.DB}
		appsRepo = &applications.PGRepo{DB: app.DB}
	} else {
		jobsRepo = buildMemoryJobsRepo(cfg.JobsFile)
		appsRepo = applications.NewMemoryRepo()
	}

	var embedder llm.Embedder
	var completer llm.Completer
	if cfg.LLMProvider == "openai" && strings.TrimSpace(cfg.OpenAIAPIKey) != "" {
		client, err := openai.NewClient(cfg.OpenAIAPIKey, cfg.LLMModel, cfg.EmbeddingModel, cfg.OpenAIBaseURL)
		if err != nil {
			return err
		}
		embedder = client
		completer = client
	}

	scorer := match.NewScorer(match.NewEngine(embedder))

	jobsSvc := jobs.NewService(jobsRepo)
	app.JobsRepo = jobsRepo
	app.ApplicationsRepo = appsRepo
	app.JobsService = jobsSvc
	app.MatchingService = matching.NewService(jobsSvc, scorer)
	app.LettersService = letters.NewService(jobsSvc, scorer, completer)
	app.ApplicationsService = applications.NewService(jobsSvc, appsRepo, buildSender(cfg), app.Queue)
	app.ResumesService = resumes.NewService(app.Store)
	app.ExportService = export.NewService(jobsSvc, app.Store)
	return nil
}

func buildMemoryJobsRepo(jobsFile string) jobs.Repo {
	if strings.TrimSpace(jobsFile) != "" {
		repo, err := jobs.NewMemoryRepoFromFile(jobsFile)
		if err == nil {
			return repo
		}
		log.Printf("bootstrap: failed to seed jobs from %s: %v", jobsFile, err)
	}
	return jobs.NewMemoryRepo()
}

func buildSender(cfg config.Config) mailer.Sender {
	if cfg.MailProvider == "gmail" {
		token := gmailTokenFromEnv()
		if token != nil {
			oauthCfg := mailer.NewOAuthConfig(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleRedirectURL)
			return mailer.NewGmailSender(cfg.SenderEmail, oauthCfg, token)
		}
		log.Printf("bootstrap: MAIL_PROVIDER=gmail but no usable GOOGLE_OAUTH_TOKEN; falling back to smtp")
	}
	return mailer.NewSMTPSender(cfg.SMTPServer, cfg.SMTPPort, cfg.SenderEmail, cfg.SenderPassword)
}

// gmailTokenFromEnv parses a stored OAuth token from GOOGLE_OAUTH_TOKEN.
func gmailTokenFromEnv() *oauth2.Token {
	raw := strings.TrimSpace(os.Getenv("GOOGLE_OAUTH_TOKEN"))
	if raw == "" {
		return nil
	}
	var token oauth2.Token
	if err := json.Unmarshal([]byte(raw), &token); err != nil {
		log.Printf("bootstrap: invalid GOOGLE_OAUTH_TOKEN: %v", err)
		return nil
	}
	return &token
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}

type errRequired string

func (e errRequired) Error() string { return string(e) + " is required" }
