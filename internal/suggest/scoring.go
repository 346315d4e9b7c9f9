package suggest

import (
	"math"
	"strings"

	"github.com/Devarora13/scholarsync-resume-integration-Dev-Arora/internal/types"
)

// MatchScore rates how well a suggestion fits the user's skills, research
// interests, and focus areas, on a 0-100 scale. The weights favor direct
// skill overlap, then research-area overlap, then softer signals like
// interest mentions, difficulty, and category alignment.
func MatchScore(project types.ProjectSuggestion, skills, interests []string, level types.Difficulty, tech TechSkills, focus ResearchFocus) int {
	score := 40.0

	// Skill overlap, worth up to 35 points. A required skill counts as
	// matched when it contains, or is contained by, one of the user's
	// skills (case-insensitive).
	if len(project.SkillsRequired) > 0 {
		matched := 0
		for _, required := range project.SkillsRequired {
			reqLower := strings.ToLower(required)
			for _, skill := range skills {
				skillLower := strings.ToLower(skill)
				if strings.Contains(skillLower, reqLower) || strings.Contains(reqLower, skillLower) {
					matched++
					break
				}
			}
		}
		score += float64(matched) / float64(len(project.SkillsRequired)) * 35
	}

	// Research-area overlap, worth up to 30 points.
	if len(interests) > 0 {
		matched := 0
		for _, area := range project.ResearchAreas {
			areaLower := strings.ToLower(area)
			for _, interest := range interests {
				interestLower := strings.ToLower(interest)
				if strings.Contains(areaLower, interestLower) || strings.Contains(interestLower, areaLower) {
					matched++
					break
				}
			}
		}
		denom := len(project.ResearchAreas)
		if denom < 1 {
			denom = 1
		}
		score += float64(matched) / float64(denom) * 30
	}

	// Interest mentions anywhere in the suggestion text, 5 points each.
	haystack := strings.ToLower(project.Title + " " + project.Description + " " + project.Category)
	for _, interest := range interests {
		if interest != "" && strings.Contains(haystack, strings.ToLower(interest)) {
			score += 5
		}
	}

	// Difficulty alignment with the derived academic level: an exact match
	// earns full credit, a one-step-easier candidate partial credit.
	switch {
	case project.Difficulty == level:
		score += 15
	case project.Difficulty == types.Intermediate && level == types.Advanced:
		score += 8
	case project.Difficulty == types.Beginner && level == types.Intermediate:
		score += 8
	}

	// Category alignment with derived capability flags.
	if tech.HasML && strings.Contains(project.Category, "AI") {
		score += 10
	}
	if tech.HasWeb && strings.Contains(project.Category, "Web") {
		score += 10
	}
	if tech.HasDataScience && strings.Contains(project.Category, "Data") {
		score += 10
	}
	if len(interests) > 0 && strings.Contains(project.Category, "Research") {
		score += 8
	}

	// Focus alignment.
	if focus.MLFocused && strings.Contains(project.Category, "AI") {
		score += 10
	}
	if focus.DataFocused && strings.Contains(project.Category, "Data") {
		score += 10
	}
	if focus.HCIFocused && strings.Contains(project.Category, "HCI") {
		score += 10
	}
	if focus.BioFocused && strings.Contains(project.Category, "Bio") {
		score += 10
	}
	if focus.SecurityFocused && strings.Contains(project.Category, "Security") {
		score += 10
	}

	final := int(math.Round(score))
	if final > 100 {
		final = 100
	}
	return final
}
