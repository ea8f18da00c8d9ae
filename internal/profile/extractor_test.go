package profile

import (
	"strings"
	"testing"
)

func TestExtractBasicResume(t *testing.T) {
	p := Extract("Jane Doe\njane@x.com\nSkills: Python, SQL")

	if p.Name != "Jane Doe" {
		t.Fatalf("name = %q, want %q", p.Name, "Jane Doe")
	}
	if p.Email != "jane@x.com" {
		t.Fatalf("email = %q, want %q", p.Email, "jane@x.com")
	}
	for _, want := range []string{"Python", "SQL"} {
		if !containsString(p.Skills, want) {
			t.Fatalf("skills %v missing %q", p.Skills, want)
		}
	}
	if p.RawText == "" {
		t.Fatalf("raw text should be retained")
	}
}

func TestExtractEmptyInput(t *testing.T) {
	p := Extract("")

	if p.Name != "" || p.Email != "" || p.Phone != "" {
		t.Fatalf("expected empty contact fields, got %+v", p)
	}
	if len(p.Skills) != 0 || len(p.Experience) != 0 || len(p.Education) != 0 || len(p.Languages) != 0 {
		t.Fatalf("expected empty collections, got %+v", p)
	}
}

func TestExtractNameSkipsEmailAndLongLines(t *testing.T) {
	text := "jane@x.com\n" + strings.Repeat("A very long header line ", 5) + "\nJane Doe\nmore text"
	if got := extractName(text); got != "Jane Doe" {
		t.Fatalf("name = %q, want %q", got, "Jane Doe")
	}
}

func TestExtractNameHyphenatedFalseNegative(t *testing.T) {
	// Hyphens fail the name shape; this is an accepted limitation.
	if got := extractName("Anne-Marie Dupont\nengineer"); got != "" {
		t.Fatalf("name = %q, want empty", got)
	}
}

func TestExtractNameChecksOnlyFirstFiveLines(t *testing.T) {
	text := "1\n2\n3\n4\n5\nJane Doe"
	if got := extractName(text); got != "" {
		t.Fatalf("name = %q, want empty (beyond first 5 lines)", got)
	}
}

func TestExtractPhone(t *testing.T) {
	if got := extractPhone("Phone: 0123456789"); got != "0123456789" {
		t.Fatalf("phone = %q, want %q", got, "0123456789")
	}
	if got := extractPhone("no digits here"); got != "" {
		t.Fatalf("phone = %q, want empty", got)
	}
}

func TestExtractSkillsCap(t *testing.T) {
	// 30 distinct vocabulary keywords must still yield at most 20 skills.
	text := strings.Join(skillVocabulary[:30], " ")
	skills := extractSkills(text)
	if len(skills) > maxSkills {
		t.Fatalf("len(skills) = %d, want <= %d", len(skills), maxSkills)
	}
}

func TestExtractSkillsDedup(t *testing.T) {
	skills := extractSkills("Skills: Python, Python, Python")
	count := 0
	for _, s := range skills {
		if s == "Python" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("Python appears %d times, want 1 (%v)", count, skills)
	}
}

func TestExtractSkillsSectionTokens(t *testing.T) {
	skills := extractSkills("Skills: Stakeholder Management, Public Speaking")
	for _, want := range []string{"Stakeholder Management", "Public Speaking"} {
		if !containsString(skills, want) {
			t.Fatalf("skills %v missing %q", skills, want)
		}
	}
}

func TestExtractExperienceTitleAtCompany(t *testing.T) {
	text := "Experience:\nSoftware Engineer at Acme Corp\n\nEducation: none"
	exp := extractExperience(text)
	if len(exp) == 0 {
		t.Fatalf("expected at least one experience entry")
	}
	if exp[0].Title != "Software Engineer" || !strings.HasPrefix(exp[0].Company, "Acme") {
		t.Fatalf("unexpected entry: %+v", exp[0])
	}
}

func TestExtractExperienceCap(t *testing.T) {
	var b strings.Builder
	b.WriteString("Experience:\n")
	for i := 0; i < 8; i++ {
		b.WriteString("Engineer at Acme\n")
	}
	exp := extractExperience(b.String())
	if len(exp) > maxExperience {
		t.Fatalf("len(experience) = %d, want <= %d", len(exp), maxExperience)
	}
}

func TestExtractExperienceCapAcrossLineShapes(t *testing.T) {
	// Both job-line shapes together still stay within the cap.
	var b strings.Builder
	b.WriteString("Experience:\n")
	for i := 0; i < 6; i++ {
		b.WriteString("Engineer at Acme!\n")
	}
	for i := 0; i < 6; i++ {
		b.WriteString("Acme - Engineer!\n")
	}
	exp := extractExperience(b.String())
	if len(exp) != maxExperience {
		t.Fatalf("len(experience) = %d, want %d", len(exp), maxExperience)
	}
}

func TestExtractEducationDegreeLine(t *testing.T) {
	text := "Education:\nMaster of Science in Computing\nSome other line"
	edu := extractEducation(text)
	if len(edu) == 0 {
		t.Fatalf("expected at least one education entry")
	}
	if !strings.Contains(edu[0].Degree, "Master") {
		t.Fatalf("degree = %q, want line containing Master", edu[0].Degree)
	}
	if edu[0].Institution != "" {
		t.Fatalf("institution = %q, want empty", edu[0].Institution)
	}
}

func TestExtractLanguages(t *testing.T) {
	langs := extractLanguages("Fluent in English and French")
	for _, want := range []string{"English", "French"} {
		if !containsString(langs, want) {
			t.Fatalf("languages %v missing %q", langs, want)
		}
	}
}

func containsString(items []string, want string) bool {
	for _, item := range items {
		if item == want {
			return true
		}
	}
	return false
}
