// pkg/catalog/loader_test.go
package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validCatalog = `{
	"version": "1.0",
	"lastUpdated": "2025-06-01",
	"questions": [
		{
			"id": "response_time",
			"prompt": "How quickly does your firm respond to new leads?",
			"options": [
				{"value": 5, "label": "Within 5 minutes", "points": 10},
				{"value": 3, "label": "Within a few hours", "points": 5},
				{"value": 1, "label": "Next business day or later", "points": 0}
			]
		},
		{
			"id": "avg_case_value",
			"prompt": "What is your average case value?",
			"options": [
				{"value": 5, "label": "Under $2,500", "points": 0},
				{"value": 2, "label": "$100,000+", "points": 0}
			]
		}
	]
}`

func TestParse_ValidCatalog(t *testing.T) {
	file, err := Parse([]byte(validCatalog))
	require.NoError(t, err)

	assert.Equal(t, "1.0", file.Version)
	require.Len(t, file.Questions, 2)
	assert.Equal(t, "response_time", file.Questions[0].ID)
	assert.Len(t, file.Questions[0].Options, 3)
	assert.Equal(t, 10, file.Questions[0].Options[0].Points)
}

func TestParse_RejectsInvalidDocuments(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{
			name: "not json",
			data: `{broken`,
		},
		{
			name: "missing version",
			data: `{"questions": [{"id": "a", "prompt": "p", "options": [{"value": 1, "label": "l"}, {"value": 2, "label": "m"}]}]}`,
		},
		{
			name: "no questions",
			data: `{"version": "1.0", "questions": []}`,
		},
		{
			name: "question without options",
			data: `{"version": "1.0", "questions": [{"id": "a", "prompt": "p", "options": []}]}`,
		},
		{
			name: "uppercase question id",
			data: `{"version": "1.0", "questions": [{"id": "ResponseTime", "prompt": "p", "options": [{"value": 1, "label": "l"}, {"value": 2, "label": "m"}]}]}`,
		},
		{
			name: "option without label",
			data: `{"version": "1.0", "questions": [{"id": "a", "prompt": "p", "options": [{"value": 1}, {"value": 2, "label": "m"}]}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestParse_RejectsDuplicateQuestionIDs(t *testing.T) {
	data := `{
		"version": "1.0",
		"questions": [
			{"id": "a", "prompt": "p", "options": [{"value": 1, "label": "l"}, {"value": 2, "label": "m"}]},
			{"id": "a", "prompt": "q", "options": [{"value": 1, "label": "l"}, {"value": 2, "label": "m"}]}
		]
	}`
	_, err := Parse([]byte(data))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate question id")
}

func TestParse_RejectsDuplicateOptionValues(t *testing.T) {
	data := `{
		"version": "1.0",
		"questions": [
			{"id": "a", "prompt": "p", "options": [{"value": 1, "label": "l"}, {"value": 1, "label": "m"}]}
		]
	}`
	_, err := Parse([]byte(data))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate option value")
}

func TestLoad_ReadsFromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(validCatalog), 0o644))

	file, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, file.Questions, 2)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
