package match

import (
	"context"
	"reflect"
	"strings"
	"testing"

	"jobapply-backend/internal/jobs"
	"jobapply-backend/internal/profile"
)

func strPtr(s string) *string { return &s }

func newBagOfWordsScorer() *Scorer {
	return NewScorer(NewEngine(nil))
}

func TestScoreBounds(t *testing.T) {
	scorer := newBagOfWordsScorer()
	ctx := context.Background()

	profiles := []profile.Profile{
		{},
		{Skills: []string{"Python", "SQL"}, RawText: "python sql engineer"},
		{Name: "Jane Doe", Skills: []string{"Docker"}},
	}
	postings := []jobs.Posting{
		{},
		{Title: strPtr("Data Engineer"), Requirements: []string{"Python experience required"}},
		{DescriptionText: strPtr("Years of Kubernetes experience needed.")},
	}

	for _, p := range profiles {
		for _, posting := range postings {
			score := scorer.Score(ctx, p, posting)
			if score < 0 || score > 100 {
				t.Fatalf("score = %v out of [0,100]", score)
			}
		}
	}
}

func TestScoreBaselineCredit(t *testing.T) {
	scorer := newBagOfWordsScorer()
	// Nothing overlaps, so only the flat baseline credit remains.
	score := scorer.Score(context.Background(), profile.Profile{RawText: "alpha"}, jobs.Posting{Description: strPtr("omega")})
	if score != 10 {
		t.Fatalf("score = %v, want 10", score)
	}
}

func TestScoreCappedAtHundred(t *testing.T) {
	scorer := newBagOfWordsScorer()
	// Identical text and full skill overlap: 70 + 20 + 10 caps at 100.
	p := profile.Profile{Skills: []string{"python"}, RawText: "python"}
	posting := jobs.Posting{Description: strPtr("Skills: python"), Requirements: []string{"python"}}
	score := scorer.Score(context.Background(), p, posting)
	if score > 100 {
		t.Fatalf("score = %v, want <= 100", score)
	}
}

func TestSkillOverlapRatio(t *testing.T) {
	p := profile.Profile{Skills: []string{"Python", "SQL"}}
	posting := jobs.Posting{Requirements: []string{"Python experience required", "SQL knowledge"}}

	// Tokens longer than 3 chars: python, experience, required, knowledge.
	got := skillOverlapRatio(p, posting)
	want := 1.0 / 4.0
	if got != want {
		t.Fatalf("overlap = %v, want %v", got, want)
	}
}

func TestSkillOverlapEmptyRequirements(t *testing.T) {
	p := profile.Profile{Skills: []string{"Python"}}
	if got := skillOverlapRatio(p, jobs.Posting{}); got != 0 {
		t.Fatalf("overlap = %v, want 0", got)
	}
}

func TestJobSkillTokensLengthFilter(t *testing.T) {
	tokens := jobSkillTokens(jobs.Posting{Requirements: []string{"Go and SQL are key"}})
	if tokens["go"] || tokens["and"] || tokens["are"] || tokens["key"] {
		t.Fatalf("short tokens leaked: %v", tokens)
	}
}

func TestRankTruncation(t *testing.T) {
	scorer := newBagOfWordsScorer()
	p := profile.Profile{RawText: "engineer"}
	postings := []jobs.Posting{
		{ID: 1, Title: strPtr("A")},
		{ID: 2, Title: strPtr("B")},
		{ID: 3, Title: strPtr("C")},
		{ID: 4, Title: strPtr("D")},
	}

	if got := scorer.Rank(context.Background(), p, postings, 3); len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	if got := scorer.Rank(context.Background(), p, postings, 10); len(got) != 4 {
		t.Fatalf("len = %d, want 4", len(got))
	}
	if got := scorer.Rank(context.Background(), p, nil, 3); len(got) != 0 {
		t.Fatalf("len = %d, want 0", len(got))
	}
}

func TestRankDeterminism(t *testing.T) {
	scorer := newBagOfWordsScorer()
	p := profile.Profile{Skills: []string{"Python", "SQL"}, RawText: "python sql engineer"}
	postings := []jobs.Posting{
		{ID: 1, Title: strPtr("Data Engineer"), Requirements: []string{"Python experience"}},
		{ID: 2, Title: strPtr("Analyst"), Requirements: []string{"SQL knowledge"}},
		{ID: 3, Title: strPtr("Designer")},
	}

	first := scorer.Rank(context.Background(), p, postings, 10)
	for i := 0; i < 5; i++ {
		again := scorer.Rank(context.Background(), p, postings, 10)
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("rank not deterministic:\n%v\n%v", first, again)
		}
	}
}

func TestRankTiesKeepInputOrder(t *testing.T) {
	scorer := newBagOfWordsScorer()
	// Identical postings tie exactly; input order must survive the sort.
	p := profile.Profile{RawText: "engineer"}
	postings := []jobs.Posting{
		{ID: 7, Description: strPtr("same text")},
		{ID: 8, Description: strPtr("same text")},
		{ID: 9, Description: strPtr("same text")},
	}

	ranked := scorer.Rank(context.Background(), p, postings, 10)
	ids := []int64{ranked[0].Posting.ID, ranked[1].Posting.ID, ranked[2].Posting.ID}
	if ids[0] != 7 || ids[1] != 8 || ids[2] != 9 {
		t.Fatalf("tie order = %v, want [7 8 9]", ids)
	}
}

func TestRankOrdersByScoreDescending(t *testing.T) {
	scorer := newBagOfWordsScorer()
	p := profile.Profile{Skills: []string{"Python", "SQL"}, RawText: "python sql engineer"}
	postings := []jobs.Posting{
		{ID: 1, Title: strPtr("Florist"), Description: strPtr("flowers arranging bouquets")},
		{ID: 2, Title: strPtr("Data Engineer"), Description: strPtr("python sql engineer"), Requirements: []string{"python", "sql skills"}},
	}

	ranked := scorer.Rank(context.Background(), p, postings, 10)
	if ranked[0].Posting.ID != 2 {
		t.Fatalf("top result = %d, want 2", ranked[0].Posting.ID)
	}
	if ranked[0].MatchScore < ranked[1].MatchScore {
		t.Fatalf("scores not descending: %v then %v", ranked[0].MatchScore, ranked[1].MatchScore)
	}
}

func TestEndToEndJaneDoe(t *testing.T) {
	p := profile.Extract("Jane Doe\njane@x.com\nSkills: Python, SQL")
	if p.Name != "Jane Doe" || p.Email != "jane@x.com" {
		t.Fatalf("unexpected profile: %+v", p)
	}

	posting := jobs.Posting{
		ID:           1,
		Title:        strPtr("Data Engineer"),
		Requirements: []string{"Python experience required", "SQL knowledge"},
	}

	scorer := newBagOfWordsScorer()
	score := scorer.Score(context.Background(), p, posting)
	if score < 10 {
		t.Fatalf("score = %v, want >= 10", score)
	}

	// "SQL" is 3 characters and falls under the >3 token length filter, so
	// only "python" can intersect here.
	skills := matchingSkills(p, posting)
	if !strings.Contains(strings.Join(skills, " "), "python") {
		t.Fatalf("matching skills = %v, want python", skills)
	}
}
