package match

import (
	"context"
	"fmt"
	"strings"

	"jobapply-backend/internal/jobs"
	"jobapply-backend/internal/profile"
)

// Tier labels for match quality. Thresholds are inclusive at the lower bound
// of each tier.
const (
	TierExcellent = "excellent"
	TierGood      = "good"
	TierModerate  = "moderate"
	TierLow       = "low"
)

const maxMatchingSkills = 10

// Explanation describes why a posting matched a profile.
type Explanation struct {
	MatchScore      float64  `json:"match_score"`
	SimilarityScore float64  `json:"similarity_score"`
	MatchingSkills  []string `json:"matching_skills"`
	JobTitle        string   `json:"job_title"`
	Company         string   `json:"company"`
	Tier            string   `json:"tier"`
	Narrative       string   `json:"explanation"`
}

// Explain computes the match for one profile/posting pair and derives the
// matched-skill list, tier label, and narrative.
func (s *Scorer) Explain(ctx context.Context, p profile.Profile, posting jobs.Posting) Explanation {
	similarity := s.Engine.Similarity(ctx, profile.Summary(p), jobs.Summary(posting))
	score := round2(composite(similarity, skillOverlapRatio(p, posting)))
	skills := matchingSkills(p, posting)

	// The narrative counts the full intersection; only the returned field is
	// capped.
	capped := skills
	if len(capped) > maxMatchingSkills {
		capped = capped[:maxMatchingSkills]
	}

	return Explanation{
		MatchScore:      score,
		SimilarityScore: round2(similarity * 100),
		MatchingSkills:  capped,
		JobTitle:        jobs.Field(posting, jobs.FieldTitle),
		Company:         jobs.Field(posting, jobs.FieldCompany),
		Tier:            TierFor(score),
		Narrative:       narrative(score, skills),
	}
}

// matchingSkills intersects the lowercased resume skills with the job's skill
// tokens, preserving resume order.
func matchingSkills(p profile.Profile, posting jobs.Posting) []string {
	jobSkills := jobSkillTokens(posting)
	if len(jobSkills) == 0 {
		return nil
	}

	seen := make(map[string]bool)
	var out []string
	for _, skill := range p.Skills {
		lowered := strings.ToLower(skill)
		if jobSkills[lowered] && !seen[lowered] {
			seen[lowered] = true
			out = append(out, lowered)
		}
	}
	return out
}

// TierFor maps a match score to its qualitative tier label.
func TierFor(score float64) string {
	switch {
	case score >= 80:
		return TierExcellent
	case score >= 60:
		return TierGood
	case score >= 40:
		return TierModerate
	default:
		return TierLow
	}
}

func narrative(score float64, skills []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "This is a %s match (score: %.1f/100). ", TierFor(score), score)

	if len(skills) == 0 {
		b.WriteString("Consider highlighting relevant transferable skills in your application.")
		return b.String()
	}

	fmt.Fprintf(&b, "Your profile matches %d key skills including: ", len(skills))
	shown := skills
	if len(shown) > 5 {
		shown = shown[:5]
	}
	b.WriteString(strings.Join(shown, ", "))
	if len(skills) > 5 {
		fmt.Fprintf(&b, " and %d more.", len(skills)-5)
	}
	return b.String()
}
