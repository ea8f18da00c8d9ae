package jobs

import (
	"strings"
	"testing"
)

func strPtr(s string) *string { return &s }

func TestFieldFallthrough(t *testing.T) {
	// An empty legacy value falls through to the current-scheme candidate.
	p := Posting{Company: strPtr(""), Organization: strPtr("Acme")}
	if got := Field(p, FieldCompany); got != "Acme" {
		t.Fatalf("company = %q, want %q", got, "Acme")
	}

	if got := Field(Posting{}, FieldCompany); got != "" {
		t.Fatalf("company = %q, want empty", got)
	}
}

func TestFieldWhitespaceFallsThrough(t *testing.T) {
	p := Posting{Company: strPtr("   "), Organization: strPtr("Acme")}
	if got := Field(p, FieldCompany); got != "Acme" {
		t.Fatalf("company = %q, want %q", got, "Acme")
	}
}

func TestFieldListJoin(t *testing.T) {
	p := Posting{LocationsDerived: []string{"Paris", "", "  "}}
	if got := Field(p, FieldLocation); got != "Paris" {
		t.Fatalf("location = %q, want %q", got, "Paris")
	}

	p = Posting{LocationsDerived: []string{"Paris", "Lyon"}}
	if got := Field(p, FieldLocation); got != "Paris, Lyon" {
		t.Fatalf("location = %q, want %q", got, "Paris, Lyon")
	}

	p = Posting{LocationsDerived: []string{}}
	if got := Field(p, FieldLocation); got != "" {
		t.Fatalf("location = %q, want empty", got)
	}
}

func TestFieldBoolRendering(t *testing.T) {
	yes, no := true, false
	if got := Field(Posting{RemoteDerived: &yes}, FieldRemote); got != "Yes" {
		t.Fatalf("remote = %q, want Yes", got)
	}
	if got := Field(Posting{RemoteDerived: &no}, FieldRemote); got != "No" {
		t.Fatalf("remote = %q, want No", got)
	}
	if got := Field(Posting{}, FieldRemote); got != "" {
		t.Fatalf("remote = %q, want empty", got)
	}
}

func TestFieldLegacyWins(t *testing.T) {
	p := Posting{Company: strPtr("Legacy Inc"), Organization: strPtr("Current Corp")}
	if got := Field(p, FieldCompany); got != "Legacy Inc" {
		t.Fatalf("company = %q, want legacy value", got)
	}
}

func TestFieldUnknownLogicalName(t *testing.T) {
	p := Posting{Title: strPtr("Engineer")}
	if got := Field(p, "salary"); got != "" {
		t.Fatalf("unknown field = %q, want empty", got)
	}
}

func TestRequirementStringsLegacyList(t *testing.T) {
	p := Posting{Requirements: []string{"Python experience required", "SQL knowledge"}}
	got := RequirementStrings(p)
	if len(got) != 2 || got[0] != "Python experience required" {
		t.Fatalf("requirements = %v", got)
	}
}

func TestRequirementStringsMinedFromDescription(t *testing.T) {
	desc := "We build data pipelines. Candidates need Python experience. Our office has a gym. Knowledge of SQL is a plus."
	p := Posting{DescriptionText: &desc}
	got := RequirementStrings(p)
	if len(got) != 2 {
		t.Fatalf("mined requirements = %v, want 2 entries", got)
	}
	if !strings.Contains(got[0], "Python experience") {
		t.Fatalf("first mined requirement = %q", got[0])
	}
}

func TestRequirementStringsEmpty(t *testing.T) {
	if got := RequirementStrings(Posting{}); len(got) != 0 {
		t.Fatalf("requirements = %v, want empty", got)
	}
}

func TestSummaryRendersNormalizedFields(t *testing.T) {
	p := Posting{
		Title:        strPtr("Data Engineer"),
		Organization: strPtr("Acme"),
		Requirements: []string{"Python"},
	}
	summary := Summary(p)
	for _, want := range []string{"Position: Data Engineer", "Company: Acme", "Requirements:", "  - Python"} {
		if !strings.Contains(summary, want) {
			t.Fatalf("summary missing %q:\n%s", want, summary)
		}
	}
}
