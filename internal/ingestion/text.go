package ingestion

import (
	"regexp"
	"strings"
)

// lineSplitRx splits decoded text into lines. Besides the usual newline
// variants it breaks on runs of two or more spaces, which multi-column PDF
// extraction produces in place of explicit line breaks.
var lineSplitRx = regexp.MustCompile(`\r\n|\r|\n| {2,}`)

// SplitLines segments decoded document text into trimmed, non-empty lines.
// Empty input yields an empty slice.
func SplitLines(text string) []string {
	segments := lineSplitRx.Split(text, -1)
	lines := make([]string, 0, len(segments))
	for _, seg := range segments {
		seg = strings.TrimSpace(seg)
		if seg != "" {
			lines = append(lines, seg)
		}
	}
	return lines
}
