package resume

import (
	"regexp"
	"strings"
)

var headerTrailRx = regexp.MustCompile(`[:\s]+$`)

// isSectionHeader reports whether a line reads as one of the given section
// keywords. Criteria loosen progressively: colon-stripped lowercase equality,
// verbatim case-insensitive equality, then substring containment.
func isSectionHeader(line string, keywords []string) bool {
	clean := strings.ToLower(strings.TrimSpace(headerTrailRx.ReplaceAllString(line, "")))
	for _, kw := range keywords {
		if clean == kw {
			return true
		}
	}
	for _, kw := range keywords {
		if strings.EqualFold(line, kw) {
			return true
		}
	}
	for _, kw := range keywords {
		if strings.Contains(clean, kw) {
			return true
		}
	}
	return false
}

// extractSection returns the lines strictly between the first header matching
// keywords and the next header matching nextKeywords (or end of input).
// Returns nil when no header is found.
func extractSection(lines []string, keywords, nextKeywords []string) []string {
	start := -1
	for i, line := range lines {
		if isSectionHeader(line, keywords) {
			start = i + 1
			break
		}
	}
	if start == -1 {
		return nil
	}
	for i := start; i < len(lines); i++ {
		if isSectionHeader(lines[i], nextKeywords) {
			return lines[start:i]
		}
	}
	return lines[start:]
}
