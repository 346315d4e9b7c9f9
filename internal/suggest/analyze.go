// Package suggest turns extracted resume and scholar facts into a ranked list
// of project suggestions via rule-based heuristic scoring. Everything here is
// a pure function of its inputs: same facts in, same suggestions and scores out.
package suggest

import (
	"strings"

	"github.com/Devarora13/scholarsync-resume-integration-Dev-Arora/internal/types"
)

// TechSkills holds the capability flags derived from a flat skill list.
type TechSkills struct {
	HasML          bool
	HasWeb         bool
	HasDataScience bool
	HasMobile      bool
	HasCloud       bool
	HasDatabase    bool
	// ProgrammingLanguages keeps the user's skill entries that name a
	// recognized programming language, original casing preserved.
	ProgrammingLanguages []string
}

// ResearchFocus holds the specialization flags derived from research
// interests and publication titles.
type ResearchFocus struct {
	MLFocused       bool
	DataFocused     bool
	HCIFocused      bool
	SecurityFocused bool
	BioFocused      bool
	// PrimaryDomains are the user's first three research interests verbatim.
	PrimaryDomains []string
}

// Capability keyword sets, matched case-insensitively as substrings of each skill.
var (
	mlKeywords       = []string{"machine learning", "tensorflow", "pytorch", "scikit-learn", "deep learning", "neural"}
	webKeywords      = []string{"javascript", "react", "vue", "angular", "html", "css", "web", "frontend", "backend"}
	dataKeywords     = []string{"python", "r", "pandas", "numpy", "data analysis", "statistics", "visualization"}
	mobileKeywords   = []string{"react native", "flutter", "swift", "kotlin", "mobile"}
	cloudKeywords    = []string{"aws", "azure", "gcp", "docker", "kubernetes"}
	databaseKeywords = []string{"sql", "mongodb", "postgresql", "database"}
	languageKeywords = []string{"javascript", "python", "java", "c++", "c#", "go", "rust", "typescript", "r"}
)

// AnalyzeSkills derives boolean capability flags and the recognized
// programming languages from a flat skill list.
func AnalyzeSkills(skills []string) TechSkills {
	tech := TechSkills{ProgrammingLanguages: []string{}}
	for _, skill := range skills {
		lower := strings.ToLower(skill)
		tech.HasML = tech.HasML || containsAnyKeyword(lower, mlKeywords)
		tech.HasWeb = tech.HasWeb || containsAnyKeyword(lower, webKeywords)
		tech.HasDataScience = tech.HasDataScience || containsAnyKeyword(lower, dataKeywords)
		tech.HasMobile = tech.HasMobile || containsAnyKeyword(lower, mobileKeywords)
		tech.HasCloud = tech.HasCloud || containsAnyKeyword(lower, cloudKeywords)
		tech.HasDatabase = tech.HasDatabase || containsAnyKeyword(lower, databaseKeywords)
		if containsAnyKeyword(lower, languageKeywords) {
			tech.ProgrammingLanguages = append(tech.ProgrammingLanguages, skill)
		}
	}
	return tech
}

// DetermineAcademicLevel places the user in a difficulty tier from degrees
// held, work history depth, publication count and citation count.
func DetermineAcademicLevel(education []types.Education, experience []types.Experience, publicationCount, citations int) types.Difficulty {
	hasPhD := false
	hasMasters := false
	for _, e := range education {
		degree := strings.ToLower(e.Degree)
		if strings.Contains(degree, "phd") || strings.Contains(degree, "doctorate") {
			hasPhD = true
		}
		if strings.Contains(degree, "master") {
			hasMasters = true
		}
	}

	if hasPhD || publicationCount > 10 || citations > 100 {
		return types.Advanced
	}
	if hasMasters || len(experience) > 3 || publicationCount > 3 {
		return types.Intermediate
	}
	return types.Beginner
}

// AnalyzeResearchFocus derives specialization flags by keyword-matching the
// concatenation of lowercased research interests and publication titles.
func AnalyzeResearchFocus(interests []string, publications []types.Publication) ResearchFocus {
	parts := make([]string, 0, len(interests)+len(publications))
	for _, interest := range interests {
		parts = append(parts, strings.ToLower(interest))
	}
	for _, pub := range publications {
		parts = append(parts, strings.ToLower(pub.Title))
	}
	allText := strings.Join(parts, " ")

	primary := interests
	if len(primary) > 3 {
		primary = primary[:3]
	}

	return ResearchFocus{
		MLFocused: strings.Contains(allText, "machine learning") ||
			strings.Contains(allText, "artificial intelligence") ||
			strings.Contains(allText, "deep learning") ||
			strings.Contains(allText, "neural network"),
		DataFocused: strings.Contains(allText, "data") ||
			strings.Contains(allText, "analytics") ||
			strings.Contains(allText, "statistics"),
		HCIFocused: strings.Contains(allText, "human") ||
			strings.Contains(allText, "interface") ||
			strings.Contains(allText, "interaction"),
		SecurityFocused: strings.Contains(allText, "security") ||
			strings.Contains(allText, "privacy") ||
			strings.Contains(allText, "cryptography"),
		BioFocused: strings.Contains(allText, "bio") ||
			strings.Contains(allText, "medical") ||
			strings.Contains(allText, "health"),
		PrimaryDomains: primary,
	}
}

func containsAnyKeyword(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
