package server

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/Devarora13/scholarsync-resume-integration-Dev-Arora/internal/ingestion"
	"github.com/Devarora13/scholarsync-resume-integration-Dev-Arora/internal/resume"
	"github.com/Devarora13/scholarsync-resume-integration-Dev-Arora/internal/schemas"
	"github.com/Devarora13/scholarsync-resume-integration-Dev-Arora/internal/scholar"
	"github.com/Devarora13/scholarsync-resume-integration-Dev-Arora/internal/suggest"
	"github.com/Devarora13/scholarsync-resume-integration-Dev-Arora/internal/types"
)

// maxJSONBodyBytes caps JSON request bodies; structured facts are small.
const maxJSONBodyBytes = 1 << 20

// filenameRx limits uploads to conservative filename characters.
var filenameRx = regexp.MustCompile(`^[a-zA-Z0-9\-_.\s]+$`)

var requestValidator = validator.New()

// ScholarProfileRequest represents the request body for /api/fetch-scholar-profile
type ScholarProfileRequest struct {
	ProfileURL string `json:"profileUrl" validate:"required,max=500"`
}

// ScholarFallbackResponse carries placeholder profile data plus a warning
// when live scraping fails.
type ScholarFallbackResponse struct {
	*types.ScholarProfile
	Warning string `json:"warning"`
}

// SuggestionsRequest represents the request body for /api/generate-suggestions
type SuggestionsRequest struct {
	ResumeData  *types.ParsedResume   `json:"resumeData,omitempty"`
	ScholarData *types.ScholarProfile `json:"scholarData,omitempty"`
}

// SuggestionsResponse represents the response for /api/generate-suggestions
type SuggestionsResponse struct {
	Suggestions []types.ProjectSuggestion `json:"suggestions"`
}

// handleParseResume accepts a multipart resume upload and returns the
// extracted facts.
func (s *Server) handleParseResume(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes)
	if err := r.ParseMultipartForm(s.maxUploadBytes); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			s.handlerError(w, &ErrFileTooLarge{MaxBytes: s.maxUploadBytes},
				"File size too large. Maximum size is 5MB.")
			return
		}
		s.handlerError(w, &ErrValidation{Field: "form", Message: "invalid multipart form"}, "Invalid form data")
		return
	}

	file, header, err := r.FormFile("resume")
	if err != nil {
		s.handlerError(w, &ErrMissingFile{Field: "resume"}, "No file uploaded")
		return
	}
	defer file.Close()

	if len(header.Filename) > 255 || !filenameRx.MatchString(header.Filename) {
		s.handlerError(w, &ErrValidation{Field: "filename", Message: "disallowed characters or length"},
			"Invalid filename. Use only alphanumeric characters, hyphens, underscores, and dots.")
		return
	}

	mimeType := resolveUploadType(header.Filename, header.Header.Get("Content-Type"))
	if mimeType == "" {
		s.handlerError(w, &ingestion.UnsupportedTypeError{MimeType: header.Header.Get("Content-Type")},
			"Invalid file type. Please upload PDF or DOCX files only.")
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		s.handlerError(w, &ErrValidation{Field: "resume", Message: "unreadable upload"},
			"Failed to read uploaded file")
		return
	}

	parsed, err := resume.Parse(data, mimeType)
	if err != nil {
		log.Printf("[RESUME] parse failed for %s: %v", header.Filename, err)
		s.handlerError(w, err, "Resume parsing failed. Please try a different file.")
		return
	}

	s.jsonResponse(w, http.StatusOK, parsed)
}

// handleFetchScholarProfile scrapes a Google Scholar profile. When scraping
// fails for a well-formed URL, it degrades to placeholder data with a warning
// rather than failing the request.
func (s *Server) handleFetchScholarProfile(w http.ResponseWriter, r *http.Request) {
	var req ScholarProfileRequest
	body := http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		s.handlerError(w, &ErrValidation{Field: "body", Message: "invalid JSON"}, "Invalid JSON in request body")
		return
	}

	if err := requestValidator.Struct(req); err != nil {
		verr := asValidationError(err)
		s.handlerError(w, verr, verr.Error())
		return
	}

	if !scholar.IsValidProfileURL(req.ProfileURL) {
		s.handlerError(w, &scholar.InvalidURLError{URL: req.ProfileURL},
			"Invalid Google Scholar URL. Please provide a valid profile URL.")
		return
	}

	profile, err := s.scraper.FetchProfile(r.Context(), req.ProfileURL)
	if err != nil {
		var invalidURL *scholar.InvalidURLError
		if errors.As(err, &invalidURL) {
			s.handlerError(w, invalidURL, invalidURL.Error())
			return
		}

		log.Printf("[SCHOLAR] scrape failed, serving fallback: %v", err)
		s.jsonResponse(w, http.StatusOK, ScholarFallbackResponse{
			ScholarProfile: scholar.FallbackProfile(),
			Warning:        scholar.FallbackWarning,
		})
		return
	}

	s.jsonResponse(w, http.StatusOK, profile)
}

// handleGenerateSuggestions ranks project suggestions from resume and/or
// scholar facts. The body is schema-validated before decoding.
func (s *Server) handleGenerateSuggestions(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxJSONBodyBytes))
	if err != nil {
		s.handlerError(w, &ErrValidation{Field: "body", Message: "unreadable body"}, "Failed to read request body")
		return
	}

	if err := schemas.ValidateJSONBytes(s.suggestSchema, body); err != nil {
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			s.handlerError(w, validationErr, strings.TrimSpace(validationErr.Error()))
			return
		}
		s.handlerError(w, &ErrValidation{Field: "body", Message: "invalid JSON"}, "Invalid JSON in request body")
		return
	}

	var req SuggestionsRequest
	if err := json.Unmarshal(body, &req); err != nil {
		s.handlerError(w, &ErrValidation{Field: "body", Message: "invalid JSON"}, "Invalid JSON in request body")
		return
	}

	if req.ResumeData == nil && req.ScholarData == nil {
		s.handlerError(w, &ErrValidation{Field: "body", Message: "no data source provided"},
			"Either resume data or scholar data is required")
		return
	}

	suggestions := suggest.Generate(req.ResumeData, req.ScholarData)
	s.jsonResponse(w, http.StatusOK, SuggestionsResponse{Suggestions: suggestions})
}

// resolveUploadType maps the upload's extension and declared content type to
// a supported decoder mime type, or "" when unsupported.
func resolveUploadType(filename, contentType string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return ingestion.MimePDF
	case ".docx":
		return ingestion.MimeDOCX
	}

	// Fall back to the declared content type for extension-less names.
	switch contentType {
	case ingestion.MimePDF, ingestion.MimeDOCX:
		return contentType
	}
	return ""
}

// handlerError writes an error response with the status derived from the
// typed error via HTTPStatus. The message is the user-facing text; the error
// itself decides the status code.
func (s *Server) handlerError(w http.ResponseWriter, err error, message string) {
	s.errorResponse(w, HTTPStatus(err), message)
}

// asValidationError converts validator errors into a typed ErrValidation
// carrying the first failing field.
func asValidationError(err error) *ErrValidation {
	if validationErrors, ok := err.(validator.ValidationErrors); ok && len(validationErrors) > 0 {
		ve := validationErrors[0]
		return &ErrValidation{Field: ve.Field(), Message: ve.Tag()}
	}
	return &ErrValidation{Field: "request", Message: "invalid request"}
}
