package resume

import (
	"regexp"
	"strings"

	"github.com/Devarora13/scholarsync-resume-integration-Dev-Arora/internal/types"
)

// skillKeywords is the canonical keyword list matched case-insensitively
// against the skills section. Hits are recorded with this casing.
var skillKeywords = []string{
	"JavaScript", "TypeScript", "Python", "Java", "C++", "C#",
	"React", "Vue", "Angular", "Node.js", "Express", "Next.js",
	"Django", "Flask", "Spring",
	"SQL", "MongoDB", "PostgreSQL", "MySQL", "Redis",
	"Docker", "Kubernetes", "AWS", "Azure", "GCP",
	"Git", "Linux", "HTML", "CSS", "Sass", "Less", "Webpack", "Vite",
	"Jest", "Cypress", "Selenium",
	"GraphQL", "REST", "API", "Microservices",
	"Machine Learning", "Deep Learning", "TensorFlow", "PyTorch", "Scikit-learn",
	"Pandas", "NumPy", "Data Analysis", "Data Science",
	"Artificial Intelligence", "Computer Vision", "Natural Language Processing", "NLP",
	"DevOps", "CI/CD", "Jenkins", "Terraform", "Ansible",
	"Agile", "Scrum", "Project Management",
}

var (
	skillsSectionRx    = regexp.MustCompile(`(?i)(?:skills?|technologies?|technical skills?|competencies|expertise)[:\s\n]`)
	skillsSectionEndRx = regexp.MustCompile(`(?i)\n\s*(?:experience|education|projects|awards|certifications)`)

	// Labeled and bulleted list patterns scanned over the (possibly narrowed)
	// skills text. Capture group 1 holds the raw item list.
	skillListRxs = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:skills?|technologies?|programming languages?|frameworks?|tools?|databases?)[:\s]+([^.]+?)(?:\n\n|\n[A-Z]|$)`),
		regexp.MustCompile(`•\s*([A-Za-z][^•\n]+)`),
		regexp.MustCompile(`-\s*([A-Za-z][^-\n]+)`),
		regexp.MustCompile(`\*\s*([A-Za-z][^*\n]+)`),
	}

	skillItemSplitRx = regexp.MustCompile(`[,;|\n]`)
	skillJunkRx      = regexp.MustCompile(`[•\-*()]`)
)

// ExtractSkills finds up to types.MaxSkills skills via two complementary
// passes: the canonical keyword list matched inside a located skills section
// (or the whole text), then freeform labeled/bulleted lists. Results keep
// first-encountered order and deduplicate on exact value.
func ExtractSkills(text string) []string {
	found := make([]string, 0, types.MaxSkills)
	seen := make(map[string]bool)
	add := func(skill string) {
		if !seen[skill] {
			seen[skill] = true
			found = append(found, skill)
		}
	}

	// Narrow to the skills section when a header is present, bounded by the
	// next recognized section header or end of text.
	skillsText := text
	if loc := skillsSectionRx.FindStringIndex(text); loc != nil {
		after := text[loc[0]:]
		if end := skillsSectionEndRx.FindStringIndex(after); end != nil {
			skillsText = after[:end[0]]
		} else {
			skillsText = after
		}
	}
	skillsTextLower := strings.ToLower(skillsText)

	for _, kw := range skillKeywords {
		if strings.Contains(skillsTextLower, strings.ToLower(kw)) {
			add(kw)
		}
	}

	for _, rx := range skillListRxs {
		for _, m := range rx.FindAllStringSubmatch(skillsText, -1) {
			for _, item := range skillItemSplitRx.Split(m[1], -1) {
				clean := skillJunkRx.ReplaceAllString(strings.TrimSpace(item), "")
				lower := strings.ToLower(clean)
				if len(clean) > 1 && len(clean) < 30 &&
					!strings.Contains(lower, "experience") &&
					!strings.Contains(lower, "years") {
					add(clean)
				}
			}
		}
	}

	if len(found) > types.MaxSkills {
		found = found[:types.MaxSkills]
	}
	return found
}
