package letters

import (
	"context"
	"fmt"
	"strings"

	"jobapply-backend/internal/jobs"
	"jobapply-backend/internal/llm"
	"jobapply-backend/internal/match"
	"jobapply-backend/internal/profile"
	"jobapply-backend/internal/shared/metrics"
	"jobapply-backend/internal/shared/telemetry"
)

const systemPrompt = "You are an expert cover letter writer. Write a concise, professional cover " +
	"letter in plain text. Emphasize the candidate's skills that match the job requirements. " +
	"Do not invent qualifications the candidate does not have."

// Letter is a generated cover letter plus the match context it was built from.
type Letter struct {
	Text        string            `json:"letter"`
	Source      string            `json:"source"`
	Explanation match.Explanation `json:"explanation"`
}

// Service generates cover letters. The primary path asks the configured LLM;
// any failure falls back to the deterministic template so generation never
// returns an error for a valid job.
type Service struct {
	Jobs      *jobs.Service
	Scorer    *match.Scorer
	Completer llm.Completer
}

// NewService constructs a Service. Completer may be nil, which forces the
// template path.
func NewService(jobsSvc *jobs.Service, scorer *match.Scorer, completer llm.Completer) *Service {
	return &Service{Jobs: jobsSvc, Scorer: scorer, Completer: completer}
}

// Generate produces a cover letter for the given job along with the match
// explanation used to ground it.
func (s *Service) Generate(ctx context.Context, p profile.Profile, jobID int64, customMessage string) (Letter, error) {
	posting, err := s.Jobs.Get(ctx, jobID)
	if err != nil {
		return Letter{}, err
	}

	explanation := s.Scorer.Explain(ctx, p, posting)

	text, source := s.generateText(ctx, p, posting, explanation, customMessage)
	metrics.IncLettersGenerated()

	return Letter{Text: text, Source: source, Explanation: explanation}, nil
}

func (s *Service) generateText(ctx context.Context, p profile.Profile, posting jobs.Posting, explanation match.Explanation, customMessage string) (string, string) {
	if s.Completer == nil {
		return renderTemplate(p, posting, customMessage), "template"
	}

	text, err := s.Completer.Complete(ctx, systemPrompt, buildUserPrompt(p, posting, explanation, customMessage))
	if err != nil || strings.TrimSpace(text) == "" {
		fields := map[string]any{"job_id": posting.ID}
		if err != nil {
			fields["error"] = err.Error()
		}
		telemetry.Warn("letters.llm_fallback", fields)
		return renderTemplate(p, posting, customMessage), "template"
	}
	return strings.TrimSpace(text), "llm"
}

func buildUserPrompt(p profile.Profile, posting jobs.Posting, explanation match.Explanation, customMessage string) string {
	var b strings.Builder
	b.WriteString("Candidate profile:\n")
	b.WriteString(profile.Summary(p))
	b.WriteString("\n\nJob posting:\n")
	b.WriteString(jobs.Summary(posting))
	if len(explanation.MatchingSkills) > 0 {
		fmt.Fprintf(&b, "\n\nMatched skills to emphasize: %s", strings.Join(explanation.MatchingSkills, ", "))
	}
	if customMessage != "" {
		fmt.Fprintf(&b, "\n\nInclude this message from the candidate: %s", customMessage)
	}
	return b.String()
}
