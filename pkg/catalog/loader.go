// pkg/catalog/loader.go
package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/xeipuuv/gojsonschema"
)

// Load reads, schema-validates and semantically checks a catalog file.
func Load(path string) (*CatalogFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	return Parse(data)
}

// Parse validates raw catalog JSON and unmarshals it.
func Parse(data []byte) (*CatalogFile, error) {
	if err := validateSchema(data); err != nil {
		return nil, err
	}

	var file CatalogFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode catalog file: %w", err)
	}

	if err := file.Validate(); err != nil {
		return nil, err
	}
	return &file, nil
}

func validateSchema(data []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(fileSchema)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errs[i] = desc.String()
		}
		return fmt.Errorf("catalog validation failed: %v", errs)
	}
	return nil
}

// Validate enforces the semantic rules the JSON schema cannot express:
// unique question ids and, within each question, unique option values.
func (f *CatalogFile) Validate() error {
	seenIDs := make(map[string]bool, len(f.Questions))
	for _, q := range f.Questions {
		if seenIDs[q.ID] {
			return fmt.Errorf("duplicate question id %q", q.ID)
		}
		seenIDs[q.ID] = true

		seenValues := make(map[int]bool, len(q.Options))
		for _, opt := range q.Options {
			if seenValues[opt.Value] {
				return fmt.Errorf("question %q: duplicate option value %d", q.ID, opt.Value)
			}
			seenValues[opt.Value] = true
		}
	}
	return nil
}
