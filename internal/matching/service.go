package matching

import (
	"context"

	"jobapply-backend/internal/jobs"
	"jobapply-backend/internal/match"
	"jobapply-backend/internal/profile"
	"jobapply-backend/internal/shared/metrics"
	"jobapply-backend/internal/shared/telemetry"
)

const defaultTopN = 10

// Service ranks stored job postings against a resume profile.
type Service struct {
	Jobs   *jobs.Service
	Scorer *match.Scorer
}

// NewService constructs a Service.
func NewService(jobsSvc *jobs.Service, scorer *match.Scorer) *Service {
	return &Service{Jobs: jobsSvc, Scorer: scorer}
}

// Match filters the job store, scores every candidate against the profile,
// and returns the topN ranked results. topN <= 0 falls back to 10.
func (s *Service) Match(ctx context.Context, p profile.Profile, filter jobs.Filter, topN int) ([]match.RankedPosting, error) {
	if topN <= 0 {
		topN = defaultTopN
	}

	postings, err := s.Jobs.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	metrics.IncMatchRequests()
	start := metrics.NowMillis()
	ranked := s.Scorer.Rank(ctx, p, postings, topN)
	metrics.ObserveMatchDurationMs(metrics.NowMillis() - start)

	telemetry.Info("match.ranked", map[string]any{
		"candidates": len(postings),
		"returned":   len(ranked),
	})
	return ranked, nil
}

// Explain computes the detailed match explanation for one stored job.
func (s *Service) Explain(ctx context.Context, p profile.Profile, jobID int64) (match.Explanation, error) {
	posting, err := s.Jobs.Get(ctx, jobID)
	if err != nil {
		return match.Explanation{}, err
	}
	return s.Scorer.Explain(ctx, p, posting), nil
}
