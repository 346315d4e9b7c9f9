package resume

import (
	"regexp"
	"strings"

	"github.com/Devarora13/scholarsync-resume-integration-Dev-Arora/internal/ingestion"
	"github.com/Devarora13/scholarsync-resume-integration-Dev-Arora/internal/types"
)

var (
	educationSectionKeywords = []string{"education", "academic", "qualifications", "university", "college", "degree"}
	educationNextKeywords    = []string{"experience", "skills", "projects", "awards", "certifications", "references", "languages"}

	educationBlockRx = regexp.MustCompile(`(?i)(?:EDUCATION|QUALIFICATIONS|UNIVERSITY|COLLEGE)[\s:]*([\s\S]*?)(?:EXPERIENCE|SKILLS|PROJECTS|AWARDS|CERTIFICATES|$)`)

	yearRx = regexp.MustCompile(`\b(20\d{2}|19\d{2})\b`)
	gpaRx  = regexp.MustCompile(`(?i)gpa[:\s]+(\d+\.?\d*)`)

	degreeKeywords = []string{
		"bachelor", "master", "phd", "doctorate", "associate", "diploma", "certificate",
		"b.s.", "b.a.", "m.s.", "m.a.", "b.tech", "m.tech", "b.e.", "m.e.",
	}
	institutionKeywords = []string{"university", "college", "institute", "school", "academy"}
)

// ExtractEducation parses the education section into at most
// types.MaxEducationItems entries, deduplicated by (degree, institution) pair
// with first occurrence winning. A line is a candidate when it carries a
// 4-digit year, a degree keyword, or an institution keyword.
func ExtractEducation(lines []string, fullText string) []types.Education {
	sectionLines := extractSection(lines, educationSectionKeywords, educationNextKeywords)
	if len(sectionLines) == 0 {
		if m := educationBlockRx.FindStringSubmatch(fullText); m != nil {
			sectionLines = ingestion.SplitLines(m[1])
		}
	}

	education := make([]types.Education, 0, types.MaxEducationItems)
	for i := 0; i < len(sectionLines); i++ {
		line := strings.TrimSpace(sectionLines[i])
		if len(line) < 5 {
			continue
		}

		year := yearRx.FindString(line)
		hasDegree := containsAny(line, degreeKeywords)
		hasInstitution := containsAny(line, institutionKeywords)
		if year == "" && !hasDegree && !hasInstitution {
			continue
		}

		var degree, institution string
		switch {
		case strings.Contains(line, "|"):
			parts := splitTrimmed(line, "|")
			degree = partAt(parts, 0)
			institution = partAt(parts, 1)
		case strings.Contains(line, " - "):
			parts := splitTrimmed(line, " - ")
			degree = partAt(parts, 0)
			institution = partAt(parts, 1)
		case hasDegree:
			degree = line
			// The institution usually follows on its own line.
			if i+1 < len(sectionLines) {
				nextLine := strings.TrimSpace(sectionLines[i+1])
				if containsAny(nextLine, institutionKeywords) {
					institution = nextLine
					i++
				}
			}
		case hasInstitution:
			institution = line
			// Look one line back for a degree that preceded the institution.
			if i > 0 {
				prevLine := strings.TrimSpace(sectionLines[i-1])
				if containsAny(prevLine, degreeKeywords) {
					degree = prevLine
				}
			}
		}

		gpa := ""
		if m := gpaRx.FindStringSubmatch(line); m != nil {
			gpa = m[1]
		}

		if degree == "" && institution == "" && year == "" {
			continue
		}
		education = append(education, types.Education{
			Degree:      defaultIfEmpty(degree, types.DegreeNotSpecified),
			Institution: defaultIfEmpty(institution, types.InstitutionNotSpecified),
			Year:        defaultIfEmpty(year, types.YearNotSpecified),
			GPA:         gpa,
		})
	}

	unique := dedupeEducation(education)
	if len(unique) > types.MaxEducationItems {
		unique = unique[:types.MaxEducationItems]
	}
	return unique
}

func dedupeEducation(entries []types.Education) []types.Education {
	unique := make([]types.Education, 0, len(entries))
	type key struct{ degree, institution string }
	seen := make(map[key]bool)
	for _, e := range entries {
		k := key{e.Degree, e.Institution}
		if !seen[k] {
			seen[k] = true
			unique = append(unique, e)
		}
	}
	return unique
}

func containsAny(line string, keywords []string) bool {
	lower := strings.ToLower(line)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
