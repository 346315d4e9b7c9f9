package resume

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Devarora13/scholarsync-resume-integration-Dev-Arora/internal/ingestion"
	"github.com/Devarora13/scholarsync-resume-integration-Dev-Arora/internal/types"
)

const sampleResumeText = `John Doe
john.doe@example.com
Phone: (555) 123-4567
123 Main Street, San Francisco, CA 94105

Skills: JavaScript, React, Node.js, Python, Docker

Experience
Software Engineer | Google | Jan 2020 - Present
• Built scalable web services handling millions of requests
Senior Developer
Acme Corp

Education
Bachelor of Science in Computer Science - Stanford University 2018
`

func sampleLines() []string {
	return ingestion.SplitLines(sampleResumeText)
}

func TestExtractInformation(t *testing.T) {
	parsed := ExtractInformation(sampleResumeText, sampleLines())
	require.NotNil(t, parsed)

	assert.Equal(t, "John Doe", parsed.Name)
	assert.Equal(t, "john.doe@example.com", parsed.Email)
	assert.Equal(t, "(555) 123-4567", parsed.Phone)
	assert.Contains(t, parsed.Location, "Main Street")
	assert.Contains(t, parsed.Skills, "JavaScript")
	assert.Contains(t, parsed.Skills, "React")
	assert.NotEmpty(t, parsed.Experience)
	assert.NotEmpty(t, parsed.Education)
}

func TestExtractName(t *testing.T) {
	tests := []struct {
		name     string
		lines    []string
		expected string
	}{
		{
			name:     "first plausible line",
			lines:    []string{"John Doe", "Software Engineer Resume"},
			expected: "John Doe",
		},
		{
			name:     "skips header lines",
			lines:    []string{"Curriculum Vitae", "Jane Smith", "jane@example.com"},
			expected: "Jane Smith",
		},
		{
			name:     "skips emails and urls",
			lines:    []string{"jane@example.com", "www.janesmith.dev", "Jane Smith"},
			expected: "Jane Smith",
		},
		{
			name:     "labeled fallback",
			lines:    []string{"### resume export ###", "Name: Jane Smith"},
			expected: "Jane Smith",
		},
		{
			name:     "single-word lines rejected",
			lines:    []string{"Resume", "Objective"},
			expected: types.NameNotFound,
		},
		{
			name:     "empty input",
			lines:    nil,
			expected: types.NameNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractName(tt.lines))
		})
	}
}

func TestExtractEmail(t *testing.T) {
	assert.Equal(t, "john.doe@example.com", ExtractEmail("Contact: john.doe@example.com or call"))
	assert.Equal(t, "", ExtractEmail("no email here"))
}

func TestExtractPhone(t *testing.T) {
	assert.Equal(t, "(555) 123-4567", ExtractPhone("Phone: (555) 123-4567"))
	assert.Equal(t, "", ExtractPhone("no digits worth mentioning"))

	// The longest match wins as the most complete number.
	text := "Fax 123-4567, mobile +1 555-123-4567"
	assert.Equal(t, "+1 555-123-4567", ExtractPhone(text))
}

func TestExtractLocation(t *testing.T) {
	lines := []string{"John Doe", "123 Main Street, San Francisco"}
	assert.Equal(t, "123 Main Street, San Francisco", ExtractLocation(lines))

	zipLines := []string{"John Doe", "San Francisco, CA 94105"}
	assert.Equal(t, "San Francisco, CA 94105", ExtractLocation(zipLines))

	assert.Equal(t, "", ExtractLocation([]string{"John Doe", "Skills"}))
}

func TestExtractSkills_KeywordPass(t *testing.T) {
	skills := ExtractSkills("Skills: JavaScript, React, Docker\n\nExperience\nUsed Python daily")

	assert.Contains(t, skills, "JavaScript")
	assert.Contains(t, skills, "React")
	assert.Contains(t, skills, "Docker")
	// The skills section is bounded by the next header, so keywords that only
	// appear later in the document are not picked up.
	assert.NotContains(t, skills, "Python")
	// "Java" matches as a substring of "JavaScript".
	assert.Contains(t, skills, "Java")
}

func TestExtractSkills_WholeTextWithoutHeader(t *testing.T) {
	skills := ExtractSkills("Built services in Python with Docker and Kubernetes")

	assert.Contains(t, skills, "Python")
	assert.Contains(t, skills, "Docker")
	assert.Contains(t, skills, "Kubernetes")
}

func TestExtractSkills_CapAndDedup(t *testing.T) {
	items := make([]string, 0, 30)
	for i := 0; i < 30; i++ {
		items = append(items, fmt.Sprintf("Tool%02d", i))
	}
	text := "Skills: " + strings.Join(items, ", ")

	skills := ExtractSkills(text)
	assert.Len(t, skills, types.MaxSkills)

	seen := make(map[string]bool)
	for _, s := range skills {
		assert.False(t, seen[s], "duplicate skill %q", s)
		seen[s] = true
	}
}

func TestExtractSkills_Empty(t *testing.T) {
	assert.Empty(t, ExtractSkills(""))
}

func TestExtractExperience(t *testing.T) {
	lines := []string{
		"Experience",
		"Software Engineer | Google | Jan 2020 - Present",
		"• Built scalable web services handling heavy load",
		"Senior Developer",
		"Acme Corp",
		"Education",
	}

	experience := ExtractExperience(lines, strings.Join(lines, "\n"))
	require.Len(t, experience, 2)

	assert.Equal(t, "Software Engineer", experience[0].Position)
	assert.Equal(t, "Google", experience[0].Company)
	assert.Equal(t, "Jan 2020 - Present", experience[0].Duration)
	assert.Contains(t, experience[0].Description, "scalable web services")

	assert.Equal(t, "Senior Developer", experience[1].Position)
	assert.Equal(t, "Acme Corp", experience[1].Company)
	assert.Equal(t, types.DurationNotSpecified, experience[1].Duration)
}

func TestExtractExperience_BlockFallback(t *testing.T) {
	// No standalone header line, but the raw text carries the section.
	text := "EXPERIENCE: Software Engineer | Initech | 2019 - 2021 EDUCATION"
	lines := []string{"John Doe"}

	experience := ExtractExperience(lines, text)
	require.NotEmpty(t, experience)
	assert.Equal(t, "Software Engineer", experience[0].Position)
}

func TestExtractExperience_NoneFound(t *testing.T) {
	assert.Empty(t, ExtractExperience([]string{"John Doe", "Skills"}, "John Doe"))
}

func TestExtractEducation(t *testing.T) {
	lines := []string{
		"Education",
		"Bachelor of Science in Computer Science - Stanford University 2018",
	}

	education := ExtractEducation(lines, strings.Join(lines, "\n"))
	require.Len(t, education, 1)
	assert.Contains(t, education[0].Degree, "Bachelor of Science")
	assert.Contains(t, education[0].Institution, "Stanford University")
	assert.Equal(t, "2018", education[0].Year)
}

func TestExtractEducation_TwoLineEntry(t *testing.T) {
	lines := []string{
		"Education",
		"Master of Science in Artificial Intelligence",
		"Massachusetts Institute of Technology",
	}

	education := ExtractEducation(lines, strings.Join(lines, "\n"))
	require.Len(t, education, 1)
	assert.Equal(t, "Master of Science in Artificial Intelligence", education[0].Degree)
	assert.Equal(t, "Massachusetts Institute of Technology", education[0].Institution)
	assert.Equal(t, types.YearNotSpecified, education[0].Year)
}

func TestExtractEducation_GPA(t *testing.T) {
	lines := []string{
		"Education",
		"B.S. Computer Science | State University | 2019 GPA: 3.8",
	}

	education := ExtractEducation(lines, strings.Join(lines, "\n"))
	require.Len(t, education, 1)
	assert.Equal(t, "3.8", education[0].GPA)
	assert.Equal(t, "2019", education[0].Year)
}

func TestExtractEducation_Dedup(t *testing.T) {
	lines := []string{
		"Education",
		"Bachelor of Arts - Oberlin College",
		"Bachelor of Arts - Oberlin College",
	}

	education := ExtractEducation(lines, strings.Join(lines, "\n"))
	assert.Len(t, education, 1)
}

func TestParse_UnsupportedType(t *testing.T) {
	_, err := Parse([]byte("hello"), "text/plain")
	require.Error(t, err)

	var unsupported *ingestion.UnsupportedTypeError
	assert.ErrorAs(t, err, &unsupported)
}

func TestParse_CorruptDocument(t *testing.T) {
	_, err := Parse([]byte("garbage"), ingestion.MimeDOCX)
	require.Error(t, err)

	var decodeErr *ingestion.DecodeError
	assert.ErrorAs(t, err, &decodeErr)
}
