package ingestion

import "fmt"

// UnsupportedTypeError indicates the uploaded file's MIME type is not one we decode.
type UnsupportedTypeError struct {
	MimeType string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported file type %q: please upload PDF or DOCX files only", e.MimeType)
}

// DecodeError indicates the file bytes could not be decoded to text (corrupt upload).
type DecodeError struct {
	MimeType string
	Cause    error
}

func (e *DecodeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to decode %s document: %v", e.MimeType, e.Cause)
	}
	return fmt.Sprintf("failed to decode %s document", e.MimeType)
}

func (e *DecodeError) Unwrap() error {
	return e.Cause
}
