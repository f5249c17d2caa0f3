// internal/catalog/catalog_test.go
package catalog

import (
	"testing"

	"github.com/Mattthebillionaire/lead-audit-tool--Kortex-labs/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_QuestionOrder(t *testing.T) {
	cat := Default()

	require.Equal(t, len(models.AllQuestionIDs), cat.Len())
	for i, q := range cat.Questions() {
		assert.Equal(t, models.AllQuestionIDs[i], q.ID)
	}
}

func TestDefault_OptionValuesUniqueWithinQuestion(t *testing.T) {
	for _, q := range Default().Questions() {
		seen := map[int]bool{}
		for _, opt := range q.Options {
			assert.False(t, seen[opt.Value], "duplicate value %d in %s", opt.Value, q.ID)
			seen[opt.Value] = true

			assert.GreaterOrEqual(t, opt.Value, 1)
			assert.LessOrEqual(t, opt.Value, 5)
			assert.GreaterOrEqual(t, opt.Points, 0)
			assert.NotEmpty(t, opt.Label)
		}
	}
}

// TestDefault_DenominatorInvariant pins the fixed denominator against the
// catalog data: the first seven questions each top out at ten points, the
// eighth contributes nothing. A catalog edit that breaks this fails here
// instead of silently rescaling every score.
func TestDefault_DenominatorInvariant(t *testing.T) {
	cat := Default()

	sum := 0
	for _, q := range cat.Questions()[:cat.Len()-1] {
		assert.Equal(t, 10, q.MaxPoints(), "question %s", q.ID)
		sum += q.MaxPoints()
	}
	assert.Equal(t, MaxScorePoints, sum)

	last := cat.Questions()[cat.Len()-1]
	assert.Equal(t, models.QuestionAvgCaseValue, last.ID)
	for _, opt := range last.Options {
		assert.Zero(t, opt.Points, "avg_case_value option %d must not score", opt.Value)
	}
}

func TestCatalog_Lookups(t *testing.T) {
	cat := Default()

	q, ok := cat.Question(models.QuestionLeadVolume)
	require.True(t, ok)
	assert.Equal(t, models.QuestionLeadVolume, q.ID)

	opt, ok := q.Option(4)
	require.True(t, ok)
	assert.Equal(t, "20-50", opt.Label)

	_, ok = q.Option(1)
	assert.False(t, ok, "lead_volume has no value-1 option")

	_, ok = cat.Question("unknown")
	assert.False(t, ok)
}

func TestCatalog_At(t *testing.T) {
	cat := Default()

	first, ok := cat.At(1)
	require.True(t, ok)
	assert.Equal(t, models.QuestionResponseTime, first.ID)

	last, ok := cat.At(cat.Len())
	require.True(t, ok)
	assert.Equal(t, models.QuestionAvgCaseValue, last.ID)

	_, ok = cat.At(0)
	assert.False(t, ok)
	_, ok = cat.At(cat.Len() + 1)
	assert.False(t, ok)
}

func TestCatalog_Label(t *testing.T) {
	cat := Default()

	assert.Equal(t, "Under 5 minutes", cat.Label(models.QuestionResponseTime, 5))
	assert.Equal(t, "$200k+", cat.Label(models.QuestionAvgCaseValue, 2))
	assert.Equal(t, "", cat.Label(models.QuestionResponseTime, 9))
	assert.Equal(t, "", cat.Label("unknown", 1))
}
