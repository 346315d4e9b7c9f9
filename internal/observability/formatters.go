// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/Devarora13/scholarsync-resume-integration-Dev-Arora/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintResumeSummary outputs a human-readable summary of the parsed resume.
func (p *Printer) PrintResumeSummary(parsed *types.ParsedResume) {
	if parsed == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:     %s\n", parsed.Name))
	if parsed.Email != "" {
		sb.WriteString(fmt.Sprintf("Email:    %s\n", parsed.Email))
	}
	if parsed.Phone != "" {
		sb.WriteString(fmt.Sprintf("Phone:    %s\n", parsed.Phone))
	}
	if parsed.Location != "" {
		sb.WriteString(fmt.Sprintf("Location: %s\n", parsed.Location))
	}
	sb.WriteString("\n")

	if len(parsed.Skills) > 0 {
		sb.WriteString(fmt.Sprintf("Skills (%d):\n", len(parsed.Skills)))
		count := min(len(parsed.Skills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", parsed.Skills[i]))
		}
		if len(parsed.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(parsed.Skills)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(parsed.Experience) > 0 {
		sb.WriteString(fmt.Sprintf("Experience (%d):\n", len(parsed.Experience)))
		count := min(len(parsed.Experience), 3)
		for i := 0; i < count; i++ {
			exp := parsed.Experience[i]
			sb.WriteString(fmt.Sprintf("  • %s — %s\n", exp.Position, exp.Company))
			sb.WriteString(fmt.Sprintf("    %s\n", exp.Duration))
		}
		if len(parsed.Experience) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(parsed.Experience)-3))
		}
		sb.WriteString("\n")
	}

	if len(parsed.Education) > 0 {
		sb.WriteString(fmt.Sprintf("Education (%d):\n", len(parsed.Education)))
		count := min(len(parsed.Education), 3)
		for i := 0; i < count; i++ {
			edu := parsed.Education[i]
			sb.WriteString(fmt.Sprintf("  • %s\n", edu.Degree))
			sb.WriteString(fmt.Sprintf("    %s, %s\n", edu.Institution, edu.Year))
		}
		if len(parsed.Education) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(parsed.Education)-3))
		}
	}

	p.printBox("PARSED RESUME", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintScholarSummary outputs the scraped Google Scholar profile with
// citation metrics and top publications.
func (p *Printer) PrintScholarSummary(profile *types.ScholarProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:        %s\n", profile.Name))
	sb.WriteString(fmt.Sprintf("Affiliation: %s\n", profile.Affiliation))
	sb.WriteString(fmt.Sprintf("Citations:   %d  (h-index %d, i10 %d)\n",
		profile.TotalCitations, profile.HIndex, profile.I10Index))
	sb.WriteString("\n")

	if len(profile.ResearchInterests) > 0 {
		interests := strings.Join(profile.ResearchInterests, ", ")
		if len(interests) > 50 {
			interests = interests[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("Interests: %s\n\n", interests))
	}

	if len(profile.Publications) > 0 {
		sb.WriteString(fmt.Sprintf("Publications (%d):\n", len(profile.Publications)))
		count := min(len(profile.Publications), maxItemsToShow)
		for i := 0; i < count; i++ {
			pub := profile.Publications[i]
			title := pub.Title
			if len(title) > 45 {
				title = title[:42] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", title))
			sb.WriteString(fmt.Sprintf("    %s · %d citations\n", pub.Year, pub.Citations))
		}
		if len(profile.Publications) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(profile.Publications)-maxItemsToShow))
		}
	}

	p.printBox("SCHOLAR PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSuggestions outputs the ranked project suggestions with scores.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintSuggestions(suggestions []types.ProjectSuggestion) {
	if len(suggestions) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "NO SUGGESTIONS GENERATED")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Generated %d suggestions:\n\n", len(suggestions)))

	count := min(len(suggestions), maxItemsToShow)
	for i := 0; i < count; i++ {
		s := suggestions[i]
		title := s.Title
		if len(title) > 42 {
			title = title[:39] + "..."
		}
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, title))
		sb.WriteString(fmt.Sprintf("    Score: %d  %s · %s\n", s.MatchScore, s.Difficulty, s.EstimatedDuration))
		if len(s.SkillsRequired) > 0 {
			skills := strings.Join(s.SkillsRequired, ", ")
			if len(skills) > 40 {
				skills = skills[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("    Skills: %s\n", skills))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(suggestions) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more suggestions", len(suggestions)-maxItemsToShow))
	}

	p.printBox("PROJECT SUGGESTIONS", sb.String())
}
