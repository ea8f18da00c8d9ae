package profile

import (
	"regexp"
	"strings"
)

// Known technology and skill keywords matched case-insensitively anywhere in
// the resume text.
var skillVocabulary = []string{
	"Python", "Java", "JavaScript", "TypeScript", "React", "Angular", "Vue",
	"Node.js", "Django", "FastAPI", "Flask", "SQL", "MongoDB", "PostgreSQL",
	"Docker", "Kubernetes", "AWS", "Azure", "GCP", "Git", "CI/CD",
	"Machine Learning", "Deep Learning", "NLP", "TensorFlow", "PyTorch",
	"Data Analysis", "REST API", "GraphQL", "Microservices", "Agile",
	"HTML", "CSS", "Tailwind", "Bootstrap", "Redis", "RabbitMQ",
	"Linux", "Bash", "DevOps", "Security", "Testing", "Selenium",
}

var languageVocabulary = []string{
	"English", "French", "Spanish", "German", "Italian", "Portuguese",
	"Chinese", "Japanese", "Korean", "Arabic", "Russian", "Hindi",
}

var degreeKeywords = []string{"Bachelor", "Master", "PhD", "BSc", "MSc", "MBA", "Degree"}

var (
	nameLineRe = regexp.MustCompile(`^[A-Z][a-zA-Z\s]+$`)
	emailRe    = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

	// Ordered regional phone shapes; the first pattern with a match wins.
	phoneRes = []*regexp.Regexp{
		regexp.MustCompile(`\+?\d{1,3}[-.\s]?\(?\d{1,4}\)?[-.\s]?\d{1,4}[-.\s]?\d{1,9}`),
		regexp.MustCompile(`\d{10}`),
		regexp.MustCompile(`\(\d{3}\)\s?\d{3}-\d{4}`),
	}

	skillsSectionRe     = regexp.MustCompile(`(?is)(?:skills?|technical skills?|competencies)[\s:]+(.+?)(?:\n\n|\n[A-Z]|$)`)
	skillItemSplitRe    = regexp.MustCompile("[,\n•\\-]")
	experienceSectionRe = regexp.MustCompile(`(?is)(?:experience|work history|employment)[\s:]+(.+?)(?:\n\n[A-Z]|education|skills|$)`)
	educationSectionRe  = regexp.MustCompile(`(?is)(?:education|academic|qualifications)[\s:]+(.+?)(?:\n\n[A-Z]|experience|skills|$)`)

	// Two job-line shapes: "Title at/@ Company" and "Company - Title".
	jobLineRes = []*regexp.Regexp{
		regexp.MustCompile(`([A-Z][A-Za-z\s]+)\s+(?:at|@)\s+([A-Z][A-Za-z\s&.,]+)`),
		regexp.MustCompile(`([A-Z][A-Za-z\s&.,]+)\s+-\s+([A-Z][A-Za-z\s]+)`),
	}
)

const (
	maxSkills     = 20
	maxExperience = 5
)

// Extract parses resume text into a structured profile. It never fails:
// every heuristic that finds nothing yields the empty default for its field.
func Extract(resumeText string) Profile {
	return Profile{
		Name:       extractName(resumeText),
		Email:      extractEmail(resumeText),
		Phone:      extractPhone(resumeText),
		Skills:     extractSkills(resumeText),
		Experience: extractExperience(resumeText),
		Education:  extractEducation(resumeText),
		Languages:  extractLanguages(resumeText),
		RawText:    resumeText,
	}
}

// extractName scans the first 5 non-empty lines for something name-shaped:
// under 50 chars, no "@", an uppercase letter followed by letters and spaces.
// Hyphenated or accented names are known false negatives.
func extractName(text string) string {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	checked := 0
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if checked >= 5 {
			break
		}
		checked++
		if len(line) >= 50 || strings.Contains(line, "@") {
			continue
		}
		if nameLineRe.MatchString(line) {
			return line
		}
	}
	return ""
}

func extractEmail(text string) string {
	return emailRe.FindString(text)
}

func extractPhone(text string) string {
	for _, re := range phoneRes {
		if m := re.FindString(text); m != "" {
			return m
		}
	}
	return ""
}

// extractSkills unions the fixed vocabulary hits with free-form tokens from a
// detected skills section, dedups, and caps the result at 20.
func extractSkills(text string) []string {
	var skills []string
	textLower := strings.ToLower(text)
	for _, skill := range skillVocabulary {
		if strings.Contains(textLower, strings.ToLower(skill)) {
			skills = append(skills, skill)
		}
	}

	if m := skillsSectionRe.FindStringSubmatch(text); m != nil {
		for _, item := range skillItemSplitRe.Split(m[1], -1) {
			item = strings.TrimSpace(item)
			if item != "" && len(item) < 50 {
				skills = append(skills, item)
			}
		}
	}

	seen := make(map[string]bool, len(skills))
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
		if len(out) == maxSkills {
			break
		}
	}
	return out
}

func extractExperience(text string) []Experience {
	m := experienceSectionRe.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	section := m[1]

	// The cap applies to the combined list, not per line shape.
	var out []Experience
	for _, re := range jobLineRes {
		for _, jm := range re.FindAllStringSubmatch(section, -1) {
			out = append(out, Experience{
				Title:   strings.TrimSpace(jm[1]),
				Company: strings.TrimSpace(jm[2]),
			})
			if len(out) == maxExperience {
				return out
			}
		}
	}
	return out
}

func extractEducation(text string) []Education {
	m := educationSectionRe.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	section := m[1]
	sectionLower := strings.ToLower(section)

	var out []Education
	for _, keyword := range degreeKeywords {
		if !strings.Contains(sectionLower, strings.ToLower(keyword)) {
			continue
		}
		for _, line := range strings.Split(section, "\n") {
			if strings.Contains(strings.ToLower(line), strings.ToLower(keyword)) {
				out = append(out, Education{Degree: strings.TrimSpace(line)})
			}
		}
	}
	return out
}

func extractLanguages(text string) []string {
	textLower := strings.ToLower(text)
	var out []string
	for _, lang := range languageVocabulary {
		if strings.Contains(textLower, strings.ToLower(lang)) {
			out = append(out, lang)
		}
	}
	return out
}
