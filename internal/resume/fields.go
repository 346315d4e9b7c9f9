package resume

import (
	"regexp"
	"strings"

	"github.com/Devarora13/scholarsync-resume-integration-Dev-Arora/internal/types"
)

var (
	emailRx = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

	// Broad international-leaning phone pattern; matches partial numbers too,
	// so callers pick the longest hit as the most complete one.
	phoneRx = regexp.MustCompile(`(?:\+?[1-9]\d{0,3}[-.\s]?)?(?:\(?[0-9]{1,4}\)?[-.\s]?)?[0-9]{3,4}[-.\s]?[0-9]{3,5}`)

	nameCharsRx   = regexp.MustCompile(`^[A-Za-z\s.'-]+$`)
	labeledNameRx = regexp.MustCompile(`(?i)(?:name|full name)[:\s]+([A-Za-z\s.'-]+)`)

	zipCodeRx = regexp.MustCompile(`\b\d{5}(-\d{4})?\b`)
)

// nameStoplist disqualifies header-ish lines from being read as a person's name.
var nameStoplist = []string{"resume", "cv", "curriculum vitae", "profile", "objective", "summary", "contact"}

// ExtractName scans the first ten lines for a plausible person name, then
// falls back to a labeled "Name: ..." pattern anywhere in the document.
// Always returns a string; types.NameNotFound when nothing qualifies.
func ExtractName(lines []string) string {
	if len(lines) == 0 {
		return types.NameNotFound
	}

	limit := min(len(lines), 10)
	for i := 0; i < limit; i++ {
		line := strings.TrimSpace(lines[i])
		if isPlausibleName(line) {
			return line
		}
	}

	for _, line := range lines {
		if m := labeledNameRx.FindStringSubmatch(line); m != nil {
			candidate := strings.TrimSpace(m[1])
			if len(candidate) > 2 {
				return candidate
			}
		}
	}

	return types.NameNotFound
}

func isPlausibleName(line string) bool {
	if len(line) <= 2 || len(line) >= 60 {
		return false
	}
	if emailRx.MatchString(line) || phoneRx.MatchString(line) {
		return false
	}
	lower := strings.ToLower(line)
	for _, stop := range nameStoplist {
		if strings.Contains(lower, stop) {
			return false
		}
	}
	if strings.Contains(line, "http") || strings.Contains(line, "www") || strings.Contains(line, "@") {
		return false
	}
	words := len(strings.Split(line, " "))
	if words < 2 || words > 4 {
		return false
	}
	return nameCharsRx.MatchString(line)
}

// ExtractEmail returns the first email-shaped token in the text, or "" if none.
func ExtractEmail(text string) string {
	return emailRx.FindString(text)
}

// ExtractPhone returns the longest phone-shaped token in the text, the longest
// match being the best proxy for the most complete number. Returns "" if none.
func ExtractPhone(text string) string {
	matches := phoneRx.FindAllString(text, -1)
	if len(matches) == 0 {
		return ""
	}
	best := matches[0]
	for _, m := range matches {
		if len(m) > len(best) {
			best = m
		}
	}
	return strings.TrimSpace(best)
}

// locationKeywords mark address-ish lines.
var locationKeywords = []string{"street", "avenue", "drive", "road", "city", "state", "zip", "country"}

// ExtractLocation returns the first line carrying an address keyword or a
// 5-digit (optionally +4) postal code, or "" if none.
func ExtractLocation(lines []string) string {
	for _, line := range lines {
		lower := strings.ToLower(line)
		for _, kw := range locationKeywords {
			if strings.Contains(lower, kw) {
				return line
			}
		}
		if zipCodeRx.MatchString(line) {
			return line
		}
	}
	return ""
}
