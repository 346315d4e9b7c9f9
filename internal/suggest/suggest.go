package suggest

import (
	"sort"

	"github.com/Devarora13/scholarsync-resume-integration-Dev-Arora/internal/types"
)

// Generate produces the ranked project suggestion list for the given facts.
// Either input may be nil; missing sources simply contribute no signals.
// The result is sorted by match score descending (stable, so generator order
// breaks ties) and capped at types.MaxSuggestions.
func Generate(resume *types.ParsedResume, scholar *types.ScholarProfile) []types.ProjectSuggestion {
	var skills []string
	var experience []types.Experience
	var education []types.Education
	if resume != nil {
		skills = resume.Skills
		experience = resume.Experience
		education = resume.Education
	}

	var interests []string
	var publications []types.Publication
	citations := 0
	if scholar != nil {
		interests = scholar.ResearchInterests
		publications = scholar.Publications
		citations = scholar.TotalCitations
	}

	tech := AnalyzeSkills(skills)
	level := DetermineAcademicLevel(education, experience, len(publications), citations)
	focus := AnalyzeResearchFocus(interests, publications)

	suggestions := []types.ProjectSuggestion{}
	if tech.HasML || focus.MLFocused {
		suggestions = append(suggestions, generateMLProjects(level, focus, interests)...)
	}
	if tech.HasWeb {
		suggestions = append(suggestions, generateWebProjects(level, focus, interests)...)
	}
	if tech.HasDataScience || focus.DataFocused {
		suggestions = append(suggestions, generateDataScienceProjects(level, focus, interests)...)
	}
	if scholar != nil && len(publications) > 0 {
		suggestions = append(suggestions, generateResearchProjects(scholar, level, interests)...)
	}
	suggestions = append(suggestions, generateInterdisciplinaryProjects(level, focus, interests)...)
	suggestions = append(suggestions, generateOpenSourceProjects(tech, level, interests)...)

	for i := range suggestions {
		suggestions[i].MatchScore = MatchScore(suggestions[i], skills, interests, level, tech, focus)
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].MatchScore > suggestions[j].MatchScore
	})

	if len(suggestions) > types.MaxSuggestions {
		suggestions = suggestions[:types.MaxSuggestions]
	}
	return suggestions
}
