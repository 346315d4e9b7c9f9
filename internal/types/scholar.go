package types

// Sentinel values for scholar profile fields that could not be extracted.
// YearNotSpecified from resume.go doubles as the publication-year sentinel.
const (
	AffiliationNotFound = "Affiliation not found"
	AuthorsNotSpecified = "Authors not specified"
	JournalNotSpecified = "Journal not specified"
)

// ScholarProfile represents the facts scraped from a Google Scholar profile
// page. Name is the only hard validity gate: extraction fails outright when it
// cannot be resolved. Every other field degrades independently to its zero
// value or sentinel.
type ScholarProfile struct {
	Name              string        `json:"name"`
	Affiliation       string        `json:"affiliation"`
	Email             string        `json:"email,omitempty"`
	TotalCitations    int           `json:"totalCitations"`
	HIndex            int           `json:"hIndex"`
	I10Index          int           `json:"i10Index"`
	ResearchInterests []string      `json:"researchInterests"`
	Publications      []Publication `json:"publications"`
}

// Publication represents a single publication row in profile listing order.
type Publication struct {
	Title     string `json:"title"`
	Authors   string `json:"authors"`
	Journal   string `json:"journal"`
	Year      string `json:"year"`
	Citations int    `json:"citations"`
}
