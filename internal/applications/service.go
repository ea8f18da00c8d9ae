package applications

import (
	"context"
	"time"

	"github.com/google/uuid"

	"jobapply-backend/internal/jobs"
	"jobapply-backend/internal/mailer"
	"jobapply-backend/internal/profile"
	"jobapply-backend/internal/queue"
	"jobapply-backend/internal/shared/metrics"
	"jobapply-backend/internal/shared/telemetry"
)

// BulkItem pairs a job with the letter to send for it.
type BulkItem struct {
	JobID  int64  `json:"job_id"`
	Letter string `json:"letter"`
}

// Service dispatches job applications by email and records every attempt.
// A missing application email is a failed result, not an error: bulk
// dispatch must keep going.
type Service struct {
	Jobs   *jobs.Service
	Repo   Repo
	Sender mailer.Sender
	Queue  queue.Client
}

// NewService constructs a Service. Queue may be nil, in which case bulk
// dispatch runs inline.
func NewService(jobsSvc *jobs.Service, repo Repo, sender mailer.Sender, q queue.Client) *Service {
	return &Service{Jobs: jobsSvc, Repo: repo, Sender: sender, Queue: q}
}

// Apply sends one application and records the attempt. Only job lookup and
// storage failures surface as errors.
func (s *Service) Apply(ctx context.Context, p profile.Profile, jobID int64, letter string) (Application, error) {
	posting, err := s.Jobs.Get(ctx, jobID)
	if err != nil {
		return Application{}, err
	}

	app := s.newRecord(p, posting, letter)

	if app.Recipient == "" {
		app.Status = StatusFailed
		app.Detail = "No application email found for this job offer"
		metrics.IncApplicationsFailed()
		if err := s.Repo.Create(ctx, app); err != nil {
			return Application{}, err
		}
		return app, nil
	}

	result, sendErr := s.Sender.Send(ctx, mailer.BuildApplication(app.Recipient, app.JobTitle, app.Company, app.ApplicantName, letter))
	if sendErr != nil {
		app.Status = StatusFailed
		app.Detail = sendErr.Error()
		metrics.IncApplicationsFailed()
	} else {
		app.Status = StatusSent
		app.Simulated = result.Simulated
		app.Detail = result.Detail
		metrics.IncApplicationsSent()
	}

	telemetry.Info("application.dispatched", map[string]any{
		"application_id": app.ID,
		"job_id":         app.JobID,
		"status":         app.Status,
		"simulated":      app.Simulated,
	})

	if err := s.Repo.Create(ctx, app); err != nil {
		return Application{}, err
	}
	return app, nil
}

// ApplyBulk dispatches several applications. With a queue configured each
// item is recorded as queued and handed to the worker; otherwise items are
// sent sequentially inline.
func (s *Service) ApplyBulk(ctx context.Context, p profile.Profile, items []BulkItem) ([]Application, error) {
	out := make([]Application, 0, len(items))
	for _, item := range items {
		if s.Queue == nil {
			app, err := s.Apply(ctx, p, item.JobID, item.Letter)
			if err != nil {
				return out, err
			}
			out = append(out, app)
			continue
		}

		app, err := s.enqueue(ctx, p, item)
		if err != nil {
			return out, err
		}
		out = append(out, app)
	}
	return out, nil
}

func (s *Service) enqueue(ctx context.Context, p profile.Profile, item BulkItem) (Application, error) {
	posting, err := s.Jobs.Get(ctx, item.JobID)
	if err != nil {
		return Application{}, err
	}

	app := s.newRecord(p, posting, item.Letter)
	app.Status = StatusQueued
	if err := s.Repo.Create(ctx, app); err != nil {
		return Application{}, err
	}

	msg := queue.Message{
		ApplicationID: app.ID,
		RequestID:     uuid.NewString(),
		EnqueuedAt:    time.Now().UTC().Format(time.RFC3339),
		Version:       1,
	}
	if err := s.Queue.Send(ctx, msg); err != nil {
		// Keep the row so the failure is visible in history.
		_ = s.Repo.UpdateStatus(ctx, app.ID, StatusFailed, false, "enqueue failed: "+err.Error())
		metrics.IncApplicationsFailed()
		app.Status = StatusFailed
		app.Detail = "enqueue failed: " + err.Error()
		return app, nil
	}

	metrics.IncApplicationsQueued()
	return app, nil
}

// Dispatch sends a previously queued application. Used by the worker.
func (s *Service) Dispatch(ctx context.Context, applicationID string) error {
	app, err := s.Repo.GetByID(ctx, applicationID)
	if err != nil {
		return err
	}
	if app.Status != StatusQueued {
		return nil
	}

	if app.Recipient == "" {
		metrics.IncApplicationsFailed()
		return s.Repo.UpdateStatus(ctx, app.ID, StatusFailed, false, "No application email found for this job offer")
	}

	result, sendErr := s.Sender.Send(ctx, mailer.BuildApplication(app.Recipient, app.JobTitle, app.Company, app.ApplicantName, app.Letter))
	if sendErr != nil {
		metrics.IncApplicationsFailed()
		return s.Repo.UpdateStatus(ctx, app.ID, StatusFailed, false, sendErr.Error())
	}

	metrics.IncApplicationsSent()
	return s.Repo.UpdateStatus(ctx, app.ID, StatusSent, result.Simulated, result.Detail)
}

// List returns the application history newest-first.
func (s *Service) List(ctx context.Context) ([]Application, error) {
	return s.Repo.List(ctx)
}

func (s *Service) newRecord(p profile.Profile, posting jobs.Posting, letter string) Application {
	applicantName := p.Name
	if applicantName == "" {
		applicantName = "Applicant"
	}
	return Application{
		ID:            uuid.NewString(),
		JobID:         posting.ID,
		ApplicantName: applicantName,
		JobTitle:      jobs.Field(posting, jobs.FieldTitle),
		Company:       jobs.Field(posting, jobs.FieldCompany),
		Recipient:     jobs.Field(posting, jobs.FieldApplicationEmail),
		Letter:        letter,
		CreatedAt:     time.Now().UTC(),
	}
}
