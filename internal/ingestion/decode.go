// Package ingestion turns uploaded document bytes into the normalized line
// sequence the field extractors operate on.
package ingestion

import (
	"bytes"
	"html"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// MIME types accepted by Decode.
const (
	MimePDF  = "application/pdf"
	MimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// Decode converts document bytes to plain text. The MIME type must be one of
// MimePDF or MimeDOCX; anything else fails with *UnsupportedTypeError before
// any decode attempt. Corrupt input fails with *DecodeError.
func Decode(data []byte, mimeType string) (string, error) {
	switch mimeType {
	case MimePDF:
		text, err := decodePDF(data)
		if err != nil {
			return "", &DecodeError{MimeType: "PDF", Cause: err}
		}
		return text, nil
	case MimeDOCX:
		text, err := decodeDOCX(data)
		if err != nil {
			return "", &DecodeError{MimeType: "DOCX", Cause: err}
		}
		return text, nil
	default:
		return "", &UnsupportedTypeError{MimeType: mimeType}
	}
}

func decodePDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// Skip unreadable pages rather than failing the whole document.
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

var (
	docxParagraphRx = regexp.MustCompile(`</w:p>`)
	docxTagRx       = regexp.MustCompile(`<[^>]+>`)
)

func decodeDOCX(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	defer func() { _ = doc.Close() }()

	// GetContent returns the raw document.xml; paragraph closers become line
	// breaks and the remaining markup is stripped.
	content := doc.Editable().GetContent()
	content = docxParagraphRx.ReplaceAllString(content, "\n")
	content = docxTagRx.ReplaceAllString(content, "")
	return html.UnescapeString(content), nil
}
