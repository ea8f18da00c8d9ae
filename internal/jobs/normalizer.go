package jobs

import (
	"strings"
)

// Logical field names accepted by Field.
const (
	FieldTitle            = "title"
	FieldCompany          = "company"
	FieldLocation         = "location"
	FieldType             = "type"
	FieldDescription      = "description"
	FieldSeniority        = "seniority"
	FieldRemote           = "remote"
	FieldApplicationEmail = "application_email"
)

// Field resolves a logical field name against both naming schemes and always
// returns a string, never an error. Candidates are tried legacy-first; a
// candidate whose rendered value is empty after trimming falls through to the
// next one. List values join their non-empty entries with ", "; booleans
// render as "Yes"/"No". Unknown logical names and exhausted chains yield "".
func Field(p Posting, logical string) string {
	for _, candidate := range candidates(p, logical) {
		if s := render(candidate); s != "" {
			return s
		}
	}
	return ""
}

func candidates(p Posting, logical string) []any {
	switch logical {
	case FieldTitle:
		return []any{p.Title}
	case FieldCompany:
		return []any{p.Company, p.Organization}
	case FieldLocation:
		return []any{p.Location, p.LocationsDerived}
	case FieldType:
		return []any{p.Type, p.EmploymentType}
	case FieldDescription:
		return []any{p.Description, p.DescriptionText}
	case FieldSeniority:
		return []any{p.Seniority}
	case FieldRemote:
		return []any{p.RemoteDerived}
	case FieldApplicationEmail:
		return []any{p.ApplicationEmail}
	}
	return nil
}

func render(v any) string {
	switch val := v.(type) {
	case *string:
		if val == nil {
			return ""
		}
		return strings.TrimSpace(*val)
	case []string:
		var kept []string
		for _, item := range val {
			if trimmed := strings.TrimSpace(item); trimmed != "" {
				kept = append(kept, trimmed)
			}
		}
		return strings.Join(kept, ", ")
	case *bool:
		if val == nil {
			return ""
		}
		if *val {
			return "Yes"
		}
		return "No"
	}
	return ""
}

// Requirement-like sentences are recognized by these cue words when a posting
// has no explicit requirements list.
var requirementCues = []string{
	"experience", "knowledge", "skill", "proficien", "familiar",
	"degree", "years", "ability", "understanding",
}

const maxMinedRequirements = 10

// RequirementStrings returns the posting's requirements. Legacy records carry
// them as an explicit list; current-scheme records get requirement-like
// sentences mined from the description instead. May be empty.
func RequirementStrings(p Posting) []string {
	if len(p.Requirements) > 0 {
		return p.Requirements
	}

	description := Field(p, FieldDescription)
	if description == "" {
		return nil
	}

	var out []string
	for _, sentence := range strings.Split(description, ".") {
		sentence = strings.TrimSpace(sentence)
		if sentence == "" {
			continue
		}
		lower := strings.ToLower(sentence)
		for _, cue := range requirementCues {
			if strings.Contains(lower, cue) {
				out = append(out, sentence)
				break
			}
		}
		if len(out) == maxMinedRequirements {
			break
		}
	}
	return out
}

// Summary renders a textual view of the posting's normalized fields for
// similarity comparison.
func Summary(p Posting) string {
	parts := []string{
		"Position: " + Field(p, FieldTitle),
		"Company: " + Field(p, FieldCompany),
		"Location: " + Field(p, FieldLocation),
		"Type: " + Field(p, FieldType),
		"Description: " + Field(p, FieldDescription),
	}

	if reqs := RequirementStrings(p); len(reqs) > 0 {
		parts = append(parts, "Requirements:")
		for _, req := range reqs {
			parts = append(parts, "  - "+req)
		}
	}

	return strings.Join(parts, "\n")
}
