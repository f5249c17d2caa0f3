// pkg/catalog/schema.go

// Package catalog reads and validates external question catalog files. The
// file format mirrors the built-in question set so deployments can swap
// wording or point weights without a rebuild.
package catalog

// CatalogFile is the on-disk catalog document.
type CatalogFile struct {
	Version     string          `json:"version"`
	LastUpdated string          `json:"lastUpdated"`
	Questions   []QuestionEntry `json:"questions"`
}

type QuestionEntry struct {
	ID      string        `json:"id"`
	Prompt  string        `json:"prompt"`
	Options []OptionEntry `json:"options"`
}

type OptionEntry struct {
	Value  int    `json:"value"`
	Label  string `json:"label"`
	Points int    `json:"points"`
}

// fileSchema is the structural contract enforced before any semantic checks.
const fileSchema = `{
	"type": "object",
	"required": ["version", "questions"],
	"properties": {
		"version": {"type": "string", "minLength": 1},
		"lastUpdated": {"type": "string"},
		"questions": {
			"type": "array",
			"minItems": 1,
			"items": {
				"type": "object",
				"required": ["id", "prompt", "options"],
				"properties": {
					"id": {"type": "string", "pattern": "^[a-z][a-z0-9_]*$"},
					"prompt": {"type": "string", "minLength": 1},
					"options": {
						"type": "array",
						"minItems": 2,
						"items": {
							"type": "object",
							"required": ["value", "label"],
							"properties": {
								"value": {"type": "integer", "minimum": 1},
								"label": {"type": "string", "minLength": 1},
								"points": {"type": "integer", "minimum": 0}
							}
						}
					}
				}
			}
		}
	}
}`
