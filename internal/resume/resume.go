// Package resume extracts structured facts from decoded resume documents
// using layered heuristics: section detection first, regex fallbacks second,
// sentinel defaults last. Every extractor is best-effort and never fails; the
// only error paths are at the document decoding boundary.
package resume

import (
	"github.com/Devarora13/scholarsync-resume-integration-Dev-Arora/internal/ingestion"
	"github.com/Devarora13/scholarsync-resume-integration-Dev-Arora/internal/types"
)

// Parse decodes an uploaded document and extracts structured resume facts.
// It returns *ingestion.UnsupportedTypeError for MIME types outside PDF/DOCX
// and *ingestion.DecodeError for corrupt files; extraction itself never fails.
func Parse(data []byte, mimeType string) (*types.ParsedResume, error) {
	text, err := ingestion.Decode(data, mimeType)
	if err != nil {
		return nil, err
	}
	lines := ingestion.SplitLines(text)
	return ExtractInformation(text, lines), nil
}

// ExtractInformation runs every field extractor over the decoded text and
// line sequence. Fields degrade independently: a resume with no detectable
// skills section still yields name, contact info and so on.
func ExtractInformation(text string, lines []string) *types.ParsedResume {
	return &types.ParsedResume{
		Name:       ExtractName(lines),
		Email:      ExtractEmail(text),
		Phone:      ExtractPhone(text),
		Location:   ExtractLocation(lines),
		Skills:     ExtractSkills(text),
		Experience: ExtractExperience(lines, text),
		Education:  ExtractEducation(lines, text),
	}
}
