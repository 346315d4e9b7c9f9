package resume

import (
	"regexp"
	"strings"

	"github.com/Devarora13/scholarsync-resume-integration-Dev-Arora/internal/ingestion"
	"github.com/Devarora13/scholarsync-resume-integration-Dev-Arora/internal/types"
)

var (
	experienceSectionKeywords = []string{"experience", "work experience", "professional experience", "employment", "work history"}
	experienceNextKeywords    = []string{"education", "skills", "projects", "awards", "certifications", "references", "languages"}

	// Fallback when no section header line survives segmentation: carve the
	// experience block out of the raw text between known headers.
	experienceBlockRx = regexp.MustCompile(`(?i)(?:EXPERIENCE|WORK EXPERIENCE|PROFESSIONAL EXPERIENCE)[\s:]*([\s\S]*?)(?:EDUCATION|SKILLS|PROJECTS|AWARDS|CERTIFICATES|$)`)

	dateTokenRx = regexp.MustCompile(`(?i)(20\d{2}|19\d{2}|\b(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)\b.*?20\d{2}|\bpresent\b|\bcurrent\b)`)
	durationRx  = regexp.MustCompile(`(?i)(\b(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)\s+\d{4}\b|\b\d{4}\b|\bpresent\b|\bcurrent\b)`)

	bulletPrefixRx = regexp.MustCompile(`^[•\-*]\s*`)

	companyIndicators = []string{"company", "corp", "inc", "ltd"}
)

// ExtractExperience parses the work history section into at most
// types.MaxExperienceItems entries, preserving document order. A line opens a
// new entry when it carries a date-like token, or when it looks like a title
// and the following line looks like a company. Everything else accumulates as
// description text for the open entry.
func ExtractExperience(lines []string, fullText string) []types.Experience {
	sectionLines := extractSection(lines, experienceSectionKeywords, experienceNextKeywords)
	if len(sectionLines) == 0 {
		if m := experienceBlockRx.FindStringSubmatch(fullText); m != nil {
			sectionLines = ingestion.SplitLines(m[1])
		}
	}

	experience := make([]types.Experience, 0, types.MaxExperienceItems)
	var current *types.Experience
	var description []string

	flush := func() {
		if current == nil {
			return
		}
		if len(description) > 0 {
			current.Description = strings.TrimSpace(strings.Join(description, " "))
			description = nil
		}
		experience = append(experience, *current)
		current = nil
	}

	for i := 0; i < len(sectionLines); i++ {
		line := strings.TrimSpace(sectionLines[i])
		if line == "" {
			continue
		}

		hasDate := dateTokenRx.MatchString(line)
		nextLine := ""
		if i+1 < len(sectionLines) {
			nextLine = sectionLines[i+1]
		}

		if hasDate || looksLikeJobTitle(line, nextLine) {
			flush()

			var position, company, duration string
			switch {
			case strings.Contains(line, "|"):
				parts := splitTrimmed(line, "|")
				position = partAt(parts, 0)
				company = partAt(parts, 1)
				duration = extractDuration(line)
				if duration == "" {
					duration = partAt(parts, 2)
				}
			case strings.Contains(line, " - ") && hasDate:
				parts := strings.Split(line, " - ")
				position = strings.TrimSpace(parts[0])
				duration = extractDuration(line)
				if len(parts) > 1 {
					company = strings.TrimSpace(strings.Replace(parts[1], duration, "", 1))
				}
			default:
				position = line
				if i+1 < len(sectionLines) {
					company = strings.TrimSpace(sectionLines[i+1])
					i++
				}
				duration = extractDuration(position + " " + company)
			}

			current = &types.Experience{
				Position: defaultIfEmpty(position, types.PositionNotSpecified),
				Company:  defaultIfEmpty(company, types.CompanyNotSpecified),
				Duration: defaultIfEmpty(duration, types.DurationNotSpecified),
			}
			continue
		}

		if current != nil && (startsWithBullet(line) || (len(line) > 20 && !hasDate)) {
			description = append(description, bulletPrefixRx.ReplaceAllString(line, ""))
		}
	}
	flush()

	if len(experience) > types.MaxExperienceItems {
		experience = experience[:types.MaxExperienceItems]
	}
	return experience
}

// looksLikeJobTitle applies the non-dated new-entry rule: a short, non-bullet
// line immediately followed by a company-ish line.
func looksLikeJobTitle(line, nextLine string) bool {
	if len(line) <= 5 || len(line) >= 100 || startsWithBullet(line) {
		return false
	}
	nextLower := strings.ToLower(nextLine)
	for _, indicator := range companyIndicators {
		if strings.Contains(nextLower, indicator) {
			return true
		}
	}
	return strings.Contains(nextLine, "|") || strings.Contains(nextLine, "-")
}

func startsWithBullet(line string) bool {
	return strings.HasPrefix(line, "•") || strings.HasPrefix(line, "-") || strings.HasPrefix(line, "*")
}

// extractDuration pulls date tokens like "Jan 2021", "2019", "Present" out of
// a line and joins them into a range string, e.g. "Jan 2021 - Present".
func extractDuration(line string) string {
	dates := durationRx.FindAllString(line, -1)
	if len(dates) == 0 {
		return ""
	}
	return strings.Join(dates, " - ")
}

func splitTrimmed(s, sep string) []string {
	parts := strings.Split(s, sep)
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func partAt(parts []string, i int) string {
	if i < len(parts) {
		return parts[i]
	}
	return ""
}

func defaultIfEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
