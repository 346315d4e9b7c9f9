package schemas

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/Devarora13/scholarsync-resume-integration-Dev-Arora/internal/schemas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var schemaFiles = []string{
	"resume_data.schema.json",
	"scholar_data.schema.json",
	"suggestions_request.schema.json",
}

func TestAllSchemaFiles_ValidJSON(t *testing.T) {
	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			schemaPath := filepath.Join(".", schemaFile)
			data, err := os.ReadFile(schemaPath)
			require.NoError(t, err, "should be able to read schema file")

			var v interface{}
			err = json.Unmarshal(data, &v)
			assert.NoError(t, err, "schema file should be valid JSON: %s", schemaFile)
		})
	}
}

func TestSchemaFiles_ValidJSONSchema(t *testing.T) {
	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			schemaPath := filepath.Join(".", schemaFile)
			data, err := os.ReadFile(schemaPath)
			require.NoError(t, err)

			var schemaObj map[string]interface{}
			err = json.Unmarshal(data, &schemaObj)
			require.NoError(t, err)

			_, hasType := schemaObj["type"]
			_, hasSchema := schemaObj["$schema"]
			assert.True(t, hasType && hasSchema,
				"schema should declare both type and $schema")
		})
	}
}

func TestSuggestionsRequest_ReferencesResolvable(t *testing.T) {
	// The request schema $refs the sibling resume and scholar schemas;
	// validating a document with both sources exercises every $ref.
	body := []byte(`{
		"resumeData": {
			"name": "Jane Doe",
			"skills": ["Go", "Python"],
			"experience": [],
			"education": []
		},
		"scholarData": {
			"name": "Dr. Jane Doe",
			"affiliation": "MIT",
			"totalCitations": 120,
			"hIndex": 6,
			"i10Index": 4,
			"researchInterests": ["Machine Learning"],
			"publications": [
				{"title": "A Paper", "authors": "J Doe", "journal": "NeurIPS", "year": "2023", "citations": 12}
			]
		}
	}`)

	err := schemas.ValidateJSONBytes("suggestions_request.schema.json", body)
	assert.NoError(t, err)
}

func TestSuggestionsRequest_RejectsEmptyBody(t *testing.T) {
	err := schemas.ValidateJSONBytes("suggestions_request.schema.json", []byte(`{}`))
	require.Error(t, err)

	validationErr, ok := err.(*schemas.ValidationError)
	require.True(t, ok, "expected ValidationError, got %T: %v", err, err)
	assert.Greater(t, len(validationErr.Errors), 0)
}
