package letters

import (
	"fmt"
	"strings"

	"jobapply-backend/internal/jobs"
	"jobapply-backend/internal/profile"
)

// renderTemplate builds a deterministic multi-paragraph cover letter from the
// profile and posting. Used as the fallback whenever the LLM path is
// unavailable or fails.
func renderTemplate(p profile.Profile, posting jobs.Posting, customMessage string) string {
	applicantName := p.Name
	if applicantName == "" {
		applicantName = "Applicant"
	}
	jobTitle := jobs.Field(posting, jobs.FieldTitle)
	if jobTitle == "" {
		jobTitle = "the position"
	}
	company := jobs.Field(posting, jobs.FieldCompany)
	if company == "" {
		company = "your company"
	}

	var parts []string

	parts = append(parts, "Dear Hiring Manager,", "")

	parts = append(parts, fmt.Sprintf(
		"I am writing to express my strong interest in the %s position at %s. "+
			"With my background and skills, I am confident that I would be a valuable addition to your team.",
		jobTitle, company))
	parts = append(parts, "")

	if len(p.Skills) > 0 {
		parts = append(parts, fmt.Sprintf(
			"My technical expertise includes %s, which align well with the requirements "+
				"for this role. I have developed these skills through practical experience and continuous learning.",
			joinSkills(p.Skills)))
		parts = append(parts, "")
	}

	if len(p.Experience) > 0 {
		plural := ""
		if len(p.Experience) > 1 {
			plural = "s"
		}
		parts = append(parts, fmt.Sprintf("I bring %d professional experience%s to this role. ", len(p.Experience), plural))

		recent := p.Experience[0]
		title := recent.Title
		if title == "" {
			title = "a professional"
		}
		recentCompany := recent.Company
		if recentCompany == "" {
			recentCompany = "a leading organization"
		}
		parts = append(parts, fmt.Sprintf(
			"Most recently, I worked as %s at %s, where I gained valuable "+
				"experience that directly applies to this position.",
			title, recentCompany))
		parts = append(parts, "")
	}

	parts = append(parts, fmt.Sprintf(
		"I am particularly drawn to this opportunity at %s because of your commitment to "+
			"innovation and excellence. The role's focus on %s "+
			"aligns perfectly with my career goals and expertise.",
		company, keyFocus(jobs.Field(posting, jobs.FieldDescription))))
	parts = append(parts, "")

	if customMessage != "" {
		parts = append(parts, customMessage, "")
	}

	parts = append(parts, fmt.Sprintf(
		"I am excited about the possibility of contributing to %s's success and would welcome "+
			"the opportunity to discuss how my background and skills would benefit your team. "+
			"Thank you for considering my application.",
		company))
	parts = append(parts, "", "Sincerely,", applicantName)

	return strings.Join(parts, "\n")
}

// joinSkills renders up to five skills as a natural-language list.
func joinSkills(skills []string) string {
	top := skills
	if len(top) > 5 {
		top = top[:5]
	}
	if len(top) == 1 {
		return top[0]
	}
	return strings.Join(top[:len(top)-1], ", ") + ", and " + top[len(top)-1]
}

// keyFocus extracts a short focus phrase from the job description: the first
// sentence trimmed to 50 characters, cut at the first comma, lowercased.
func keyFocus(description string) string {
	sentence := strings.TrimSpace(strings.SplitN(description, ".", 2)[0])
	if sentence == "" {
		return "the role's responsibilities"
	}
	if len(sentence) > 50 {
		sentence = sentence[:50]
	}
	if idx := strings.Index(sentence, ","); idx >= 0 {
		sentence = sentence[:idx]
	}
	return strings.ToLower(sentence)
}
