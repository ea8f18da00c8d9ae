package match

import (
	"context"
	"math"
	"sort"
	"strings"

	"jobapply-backend/internal/jobs"
	"jobapply-backend/internal/profile"
)

// Composite score weights. Fixed design constants, not configuration.
const (
	similarityWeight = 70.0
	skillWeight      = 20.0
	// Flat baseline credit applied unconditionally, regardless of actual
	// experience length. Changing it silently would alter ranking outcomes.
	experienceCredit = 10.0
)

// RankedPosting pairs a posting with its computed scores.
type RankedPosting struct {
	Posting         jobs.Posting
	MatchScore      float64
	SimilarityScore float64
}

// Scorer combines similarity, skill overlap, and the baseline experience
// credit into one composite match score per job.
type Scorer struct {
	Engine *Engine
}

// NewScorer constructs a Scorer.
func NewScorer(engine *Engine) *Scorer {
	return &Scorer{Engine: engine}
}

// Score returns a composite match score in [0,100] for one profile/posting
// pair. It never fails partway: every input degrades to a defined default.
func (s *Scorer) Score(ctx context.Context, p profile.Profile, posting jobs.Posting) float64 {
	similarity := s.Engine.Similarity(ctx, profile.Summary(p), jobs.Summary(posting))
	return composite(similarity, skillOverlapRatio(p, posting))
}

// Rank scores every posting, sorts descending, and returns the first topN.
// The sort is stable: postings with equal scores keep their input order.
func (s *Scorer) Rank(ctx context.Context, p profile.Profile, postings []jobs.Posting, topN int) []RankedPosting {
	resumeSummary := profile.Summary(p)

	ranked := make([]RankedPosting, 0, len(postings))
	for _, posting := range postings {
		similarity := s.Engine.Similarity(ctx, resumeSummary, jobs.Summary(posting))
		ranked = append(ranked, RankedPosting{
			Posting:         posting,
			MatchScore:      round2(composite(similarity, skillOverlapRatio(p, posting))),
			SimilarityScore: round2(similarity * 100),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].MatchScore > ranked[j].MatchScore
	})

	if topN >= 0 && topN < len(ranked) {
		ranked = ranked[:topN]
	}
	return ranked
}

func composite(similarity, overlap float64) float64 {
	score := similarity*similarityWeight + overlap*skillWeight + experienceCredit
	return math.Min(score, 100)
}

// skillOverlapRatio is the fraction of the job's skill tokens also present in
// the resume's skill set. An empty requirements list forces 0.
func skillOverlapRatio(p profile.Profile, posting jobs.Posting) float64 {
	jobSkills := jobSkillTokens(posting)
	if len(jobSkills) == 0 {
		return 0
	}

	resumeSkills := make(map[string]bool, len(p.Skills))
	for _, skill := range p.Skills {
		resumeSkills[strings.ToLower(skill)] = true
	}

	matched := 0
	for token := range jobSkills {
		if resumeSkills[token] {
			matched++
		}
	}
	return float64(matched) / float64(len(jobSkills))
}

// jobSkillTokens derives the job's skill token set: lowercased words longer
// than 3 characters drawn from its requirement strings.
func jobSkillTokens(posting jobs.Posting) map[string]bool {
	tokens := make(map[string]bool)
	for _, req := range jobs.RequirementStrings(posting) {
		for _, word := range strings.Fields(req) {
			if len(word) > 3 {
				tokens[strings.ToLower(word)] = true
			}
		}
	}
	return tokens
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
