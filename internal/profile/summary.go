package profile

import (
	"fmt"
	"strings"
)

// Summary renders a structured textual view of the profile for similarity
// comparison. Falls back to the raw resume text when every structured field
// is empty.
func Summary(p Profile) string {
	var parts []string

	if p.Name != "" {
		parts = append(parts, "Name: "+p.Name)
	}
	if len(p.Skills) > 0 {
		parts = append(parts, "Skills: "+strings.Join(p.Skills, ", "))
	}
	if len(p.Experience) > 0 {
		parts = append(parts, "Experience:")
		for _, exp := range p.Experience {
			parts = append(parts, fmt.Sprintf("  - %s at %s", exp.Title, exp.Company))
		}
	}
	if len(p.Education) > 0 {
		parts = append(parts, "Education:")
		for _, edu := range p.Education {
			parts = append(parts, fmt.Sprintf("  - %s from %s", edu.Degree, edu.Institution))
		}
	}

	summary := strings.Join(parts, "\n")
	if strings.TrimSpace(summary) == "" {
		return p.RawText
	}
	return summary
}
