// Package types provides type definitions for structured data used throughout the ScholarSync system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Sentinel values returned when a resume field cannot be resolved. Extractors
// never return empty required fields; they fall back to these placeholders.
const (
	NameNotFound            = "Name not found"
	PositionNotSpecified    = "Position not specified"
	CompanyNotSpecified     = "Company not specified"
	DurationNotSpecified    = "Duration not specified"
	DegreeNotSpecified      = "Degree not specified"
	InstitutionNotSpecified = "Institution not specified"
	YearNotSpecified        = "Year not specified"
)

// Caps on the size of extracted collections. Resumes are noisy; anything past
// these limits is almost always segmentation garbage rather than real data.
const (
	MaxSkills           = 25
	MaxExperienceItems  = 10
	MaxEducationItems   = 5
	MaxPublicationItems = 20
)

// ParsedResume represents the structured facts extracted from an uploaded
// resume document. Name always resolves to a value or the NameNotFound
// sentinel; the collections are never nil, only possibly empty. Optional
// contact fields are empty strings when not found.
type ParsedResume struct {
	Name       string       `json:"name"`
	Email      string       `json:"email,omitempty"`
	Phone      string       `json:"phone,omitempty"`
	Location   string       `json:"location,omitempty"`
	Skills     []string     `json:"skills"`
	Experience []Experience `json:"experience"`
	Education  []Education  `json:"education"`
}

// Experience represents a single work history entry in document order.
type Experience struct {
	Position    string `json:"position"`
	Company     string `json:"company"`
	Duration    string `json:"duration"`
	Description string `json:"description,omitempty"`
}

// Education represents a single education entry. Entries are deduplicated by
// the (Degree, Institution) pair, preserving first occurrence.
type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
	GPA         string `json:"gpa,omitempty"`
}
