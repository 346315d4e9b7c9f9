package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Devarora13/scholarsync-resume-integration-Dev-Arora/internal/types"
)

func TestPrintResumeSummary(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	parsed := &types.ParsedResume{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Phone:    "+1-555-123-4567",
		Location: "Boston, MA",
		Skills:   []string{"Python", "Machine Learning", "React"},
		Experience: []types.Experience{
			{Position: "ML Engineer", Company: "Acme", Duration: "2020 - 2023"},
		},
		Education: []types.Education{
			{Degree: "M.S. Computer Science", Institution: "MIT", Year: "2020"},
		},
	}

	p.PrintResumeSummary(parsed)
	output := buf.String()

	assert.Contains(t, output, "PARSED RESUME")
	assert.Contains(t, output, "Jane Doe")
	assert.Contains(t, output, "jane@example.com")
	assert.Contains(t, output, "Python")
	assert.Contains(t, output, "ML Engineer")
	assert.Contains(t, output, "M.S. Computer Science")
}

func TestPrintResumeSummary_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintResumeSummary(nil)

	assert.Empty(t, buf.String())
}

func TestPrintResumeSummary_ManySkillsTruncated(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	parsed := &types.ParsedResume{
		Name:   "Jane Doe",
		Skills: []string{"a", "b", "c", "d", "e", "f", "g"},
	}

	p.PrintResumeSummary(parsed)
	output := buf.String()

	assert.Contains(t, output, "Skills (7)")
	assert.Contains(t, output, "... and 2 more")
}

func TestPrintScholarSummary(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	profile := &types.ScholarProfile{
		Name:              "Dr. Jane Doe",
		Affiliation:       "MIT",
		TotalCitations:    321,
		HIndex:            9,
		I10Index:          7,
		ResearchInterests: []string{"NLP", "ML"},
		Publications: []types.Publication{
			{Title: "Neural Text Understanding", Authors: "J Doe", Journal: "ACL", Year: "2022", Citations: 80},
		},
	}

	p.PrintScholarSummary(profile)
	output := buf.String()

	assert.Contains(t, output, "SCHOLAR PROFILE")
	assert.Contains(t, output, "Dr. Jane Doe")
	assert.Contains(t, output, "MIT")
	assert.Contains(t, output, "321")
	assert.Contains(t, output, "NLP, ML")
	assert.Contains(t, output, "Neural Text Understanding")
}

func TestPrintScholarSummary_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintScholarSummary(nil)

	assert.Empty(t, buf.String())
}

func TestPrintSuggestions(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	suggestions := []types.ProjectSuggestion{
		{
			Title:             "Research Recommendation Engine",
			Description:       "desc",
			SkillsRequired:    []string{"Python", "Machine Learning"},
			Difficulty:        types.Advanced,
			EstimatedDuration: "3-4 months",
			Category:          "AI/ML",
			MatchScore:        92,
		},
		{
			Title:             "Data Dashboard",
			Description:       "desc",
			SkillsRequired:    []string{"React", "D3.js"},
			Difficulty:        types.Intermediate,
			EstimatedDuration: "2-3 months",
			Category:          "Data Visualization",
			MatchScore:        78,
		},
	}

	p.PrintSuggestions(suggestions)
	output := buf.String()

	assert.Contains(t, output, "PROJECT SUGGESTIONS")
	assert.Contains(t, output, "#1")
	assert.Contains(t, output, "Research Recommendation Engine")
	assert.Contains(t, output, "Score: 92")
	assert.Contains(t, output, "Python, Machine Learning")
	assert.Contains(t, output, "Data Dashboard")
}

func TestPrintSuggestions_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSuggestions(nil)

	assert.Contains(t, buf.String(), "NO SUGGESTIONS GENERATED")
}

func TestPrintBox_LongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	parsed := &types.ParsedResume{
		Name:     "A Very Long Name That Should Be Truncated To Fit The Output Box",
		Location: "Somewhere With An Exceptionally Long Location String, USA",
	}

	p.PrintResumeSummary(parsed)
	output := buf.String()

	// Should contain box characters
	assert.True(t, strings.Contains(output, "┌"))
	assert.True(t, strings.Contains(output, "└"))
	assert.True(t, strings.Contains(output, "│"))
}
