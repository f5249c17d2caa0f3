// internal/catalog/load.go
package catalog

import (
	"fmt"

	stderrors "github.com/Mattthebillionaire/lead-audit-tool--Kortex-labs/internal/common/errors"
	"github.com/Mattthebillionaire/lead-audit-tool--Kortex-labs/internal/models"
	catalogfile "github.com/Mattthebillionaire/lead-audit-tool--Kortex-labs/pkg/catalog"
)

// LoadFile builds a Catalog from an external catalog file. The file is
// schema-validated by pkg/catalog before conversion, then its question id
// set is checked against the built-in one: overrides may change wording and
// point weights, never which questions exist. The scoring engine and the
// completeness gate are bound to the fixed id set, so a catalog with a
// renamed or missing id would produce sessions that can never submit.
func LoadFile(path string) (*Catalog, error) {
	file, err := catalogfile.Load(path)
	if err != nil {
		return nil, stderrors.NewCatalogInvalidError(err.Error())
	}
	if err := checkQuestionIDs(file); err != nil {
		return nil, stderrors.NewCatalogInvalidError(err.Error())
	}
	return fromFile(file), nil
}

func checkQuestionIDs(file *catalogfile.CatalogFile) error {
	required := make(map[models.QuestionID]bool, len(models.AllQuestionIDs))
	for _, id := range models.AllQuestionIDs {
		required[id] = true
	}

	for _, q := range file.Questions {
		id := models.QuestionID(q.ID)
		if !required[id] {
			return fmt.Errorf("unknown question id %q: a catalog override may only restate the built-in questions", q.ID)
		}
		delete(required, id)
	}

	for _, id := range models.AllQuestionIDs {
		if required[id] {
			return fmt.Errorf("catalog is missing question %q", id)
		}
	}
	return nil
}

func fromFile(file *catalogfile.CatalogFile) *Catalog {
	questions := make([]QuestionDefinition, 0, len(file.Questions))
	for _, q := range file.Questions {
		options := make([]OptionDefinition, 0, len(q.Options))
		for _, opt := range q.Options {
			options = append(options, OptionDefinition{
				Value:  opt.Value,
				Label:  opt.Label,
				Points: opt.Points,
			})
		}
		questions = append(questions, QuestionDefinition{
			ID:      models.QuestionID(q.ID),
			Prompt:  q.Prompt,
			Options: options,
		})
	}
	return New(questions)
}
