package jobs

import (
	"context"
	"strings"
)

// Filter narrows a job listing. Empty fields match everything.
type Filter struct {
	Type     string
	Location string
	Keyword  string
}

// Service exposes job listing, lookup, and creation over a Repo.
type Service struct {
	Repo Repo
}

// NewService constructs a Service.
func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// List returns postings matching the filter. Type is an exact
// case-insensitive match, location a case-insensitive substring match, and
// keyword a case-insensitive substring search over title, description, and
// requirements.
func (s *Service) List(ctx context.Context, f Filter) ([]Posting, error) {
	postings, err := s.Repo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]Posting, 0, len(postings))
	for _, p := range postings {
		if matchesFilter(p, f) {
			out = append(out, p)
		}
	}
	return out, nil
}

// Get returns a single posting by ID.
func (s *Service) Get(ctx context.Context, id int64) (Posting, error) {
	return s.Repo.GetByID(ctx, id)
}

// Create stores a new posting and returns it with its assigned ID.
func (s *Service) Create(ctx context.Context, p Posting) (Posting, error) {
	return s.Repo.Create(ctx, p)
}

func matchesFilter(p Posting, f Filter) bool {
	if f.Type != "" && !strings.EqualFold(Field(p, FieldType), f.Type) {
		return false
	}
	if f.Location != "" {
		location := strings.ToLower(Field(p, FieldLocation))
		if !strings.Contains(location, strings.ToLower(f.Location)) {
			return false
		}
	}
	if f.Keyword != "" {
		keyword := strings.ToLower(f.Keyword)
		haystack := strings.ToLower(strings.Join([]string{
			Field(p, FieldTitle),
			Field(p, FieldDescription),
			strings.Join(RequirementStrings(p), " "),
		}, " "))
		if !strings.Contains(haystack, keyword) {
			return false
		}
	}
	return true
}
