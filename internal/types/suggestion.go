package types

// Difficulty is the project difficulty tier, which doubles as the academic
// level derived for a user by the analyzer.
type Difficulty string

// Difficulty tiers in ascending order.
const (
	Beginner     Difficulty = "Beginner"
	Intermediate Difficulty = "Intermediate"
	Advanced     Difficulty = "Advanced"
)

// MaxSuggestions caps the ranked suggestion list returned to callers.
const MaxSuggestions = 12

// ProjectSuggestion represents a candidate project idea. Generators emit
// candidates with MatchScore zero; the scorer populates it exactly once.
type ProjectSuggestion struct {
	Title             string     `json:"title"`
	Description       string     `json:"description"`
	SkillsRequired    []string   `json:"skillsRequired"`
	ResearchAreas     []string   `json:"researchAreas"`
	Difficulty        Difficulty `json:"difficulty"`
	EstimatedDuration string     `json:"estimatedDuration"`
	Category          string     `json:"category"`
	MatchScore        int        `json:"matchScore"`
}
