package jobs

import (
	"context"
	"testing"
)

func seedRepo(t *testing.T) *MemoryRepo {
	t.Helper()
	repo := NewMemoryRepo()
	ctx := context.Background()

	postings := []Posting{
		{
			Title:        strPtr("Data Engineer"),
			Company:      strPtr("Acme"),
			Location:     strPtr("Paris, France"),
			Type:         strPtr("Full-time"),
			Description:  strPtr("Build data pipelines."),
			Requirements: []string{"Python experience required", "SQL knowledge"},
		},
		{
			Title:            strPtr("Frontend Developer"),
			Organization:     strPtr("Globex"),
			LocationsDerived: []string{"Berlin, Germany"},
			EmploymentType:   []string{"Internship"},
			DescriptionText:  strPtr("React experience needed."),
		},
	}
	for _, p := range postings {
		if _, err := repo.Create(ctx, p); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	return repo
}

func TestListNoFilter(t *testing.T) {
	svc := NewService(seedRepo(t))
	got, err := svc.List(context.Background(), Filter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
}

func TestListTypeFilterCrossesSchemas(t *testing.T) {
	svc := NewService(seedRepo(t))

	got, err := svc.List(context.Background(), Filter{Type: "internship"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 || Field(got[0], FieldCompany) != "Globex" {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestListLocationSubstring(t *testing.T) {
	svc := NewService(seedRepo(t))

	got, err := svc.List(context.Background(), Filter{Location: "paris"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 || Field(got[0], FieldTitle) != "Data Engineer" {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestListKeywordSearchesRequirements(t *testing.T) {
	svc := NewService(seedRepo(t))

	got, err := svc.List(context.Background(), Filter{Keyword: "sql"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 || Field(got[0], FieldTitle) != "Data Engineer" {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestGetMissing(t *testing.T) {
	svc := NewService(seedRepo(t))
	if _, err := svc.Get(context.Background(), 99); err != ErrNotFound {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestCreateAssignsNextID(t *testing.T) {
	svc := NewService(seedRepo(t))
	created, err := svc.Create(context.Background(), Posting{Title: strPtr("QA Engineer")})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID != 3 {
		t.Fatalf("id = %d, want 3", created.ID)
	}
}
