package match

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"jobapply-backend/internal/jobs"
	"jobapply-backend/internal/profile"
)

func TestTierBoundaries(t *testing.T) {
	cases := []struct {
		score float64
		want  string
	}{
		{80.0, TierExcellent},
		{79.9, TierGood},
		{60.0, TierGood},
		{59.9, TierModerate},
		{40.0, TierModerate},
		{39.9, TierLow},
		{0, TierLow},
		{100, TierExcellent},
	}
	for _, tc := range cases {
		if got := TierFor(tc.score); got != tc.want {
			t.Fatalf("TierFor(%v) = %q, want %q", tc.score, got, tc.want)
		}
	}
}

func TestNarrativeWithSkills(t *testing.T) {
	got := narrative(72.5, []string{"python", "docker"})
	if !strings.HasPrefix(got, "This is a good match (score: 72.5/100). ") {
		t.Fatalf("narrative = %q", got)
	}
	if !strings.Contains(got, "matches 2 key skills including: python, docker") {
		t.Fatalf("narrative = %q", got)
	}
	if strings.Contains(got, "more.") {
		t.Fatalf("unexpected overflow clause: %q", got)
	}
}

func TestNarrativeOverflowClause(t *testing.T) {
	skills := []string{"a1", "a2", "a3", "a4", "a5", "a6", "a7"}
	got := narrative(85, skills)
	if !strings.Contains(got, "including: a1, a2, a3, a4, a5 and 2 more.") {
		t.Fatalf("narrative = %q", got)
	}
}

func TestNarrativeNoSkills(t *testing.T) {
	got := narrative(15, nil)
	if !strings.Contains(got, "transferable skills") {
		t.Fatalf("narrative = %q", got)
	}
}

func TestExplainFields(t *testing.T) {
	scorer := newBagOfWordsScorer()
	p := profile.Profile{
		Skills:  []string{"Python", "Docker"},
		RawText: "python docker engineer",
	}
	posting := jobs.Posting{
		ID:           3,
		Title:        strPtr("Platform Engineer"),
		Organization: strPtr("Globex"),
		Requirements: []string{"python docker experience"},
	}

	exp := scorer.Explain(context.Background(), p, posting)

	if exp.MatchScore < 0 || exp.MatchScore > 100 {
		t.Fatalf("match score = %v", exp.MatchScore)
	}
	if exp.SimilarityScore < 0 || exp.SimilarityScore > 100 {
		t.Fatalf("similarity score = %v", exp.SimilarityScore)
	}
	if exp.JobTitle != "Platform Engineer" || exp.Company != "Globex" {
		t.Fatalf("title/company = %q/%q", exp.JobTitle, exp.Company)
	}
	if len(exp.MatchingSkills) != 2 || exp.MatchingSkills[0] != "python" || exp.MatchingSkills[1] != "docker" {
		t.Fatalf("matching skills = %v", exp.MatchingSkills)
	}
	if exp.Tier != TierFor(exp.MatchScore) {
		t.Fatalf("tier = %q inconsistent with score %v", exp.Tier, exp.MatchScore)
	}
	if !strings.Contains(exp.Narrative, fmt.Sprintf("score: %.1f/100", exp.MatchScore)) {
		t.Fatalf("narrative = %q", exp.Narrative)
	}
}

func TestExplainCapsSkillsButNarrativeCountsAll(t *testing.T) {
	var resumeSkills []string
	var reqWords []string
	for i := 0; i < 15; i++ {
		word := fmt.Sprintf("skill%02d", i)
		resumeSkills = append(resumeSkills, word)
		reqWords = append(reqWords, word)
	}
	p := profile.Profile{Skills: resumeSkills}
	posting := jobs.Posting{Requirements: []string{strings.Join(reqWords, " ")}}

	exp := newBagOfWordsScorer().Explain(context.Background(), p, posting)

	if len(exp.MatchingSkills) != maxMatchingSkills {
		t.Fatalf("len = %d, want %d", len(exp.MatchingSkills), maxMatchingSkills)
	}
	// Resume order is preserved.
	if exp.MatchingSkills[0] != "skill00" || exp.MatchingSkills[9] != "skill09" {
		t.Fatalf("order = %v", exp.MatchingSkills)
	}
	// The narrative counts every intersecting skill, not just the capped list.
	if !strings.Contains(exp.Narrative, "matches 15 key skills") {
		t.Fatalf("narrative = %q", exp.Narrative)
	}
	if !strings.Contains(exp.Narrative, "and 10 more.") {
		t.Fatalf("narrative = %q", exp.Narrative)
	}
}

func TestMatchingSkillsEmptyRequirements(t *testing.T) {
	p := profile.Profile{Skills: []string{"Python"}}
	if got := matchingSkills(p, jobs.Posting{}); len(got) != 0 {
		t.Fatalf("matching skills = %v, want empty", got)
	}
}
