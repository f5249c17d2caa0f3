// internal/audit/score.go

// Package audit implements the scoring engine: efficiency score, leakage
// estimation, grade classification and recommendations. Everything here is
// a pure function of the recorded answers.
package audit

import (
	"math"

	"github.com/Mattthebillionaire/lead-audit-tool--Kortex-labs/internal/catalog"
	"github.com/Mattthebillionaire/lead-audit-tool--Kortex-labs/internal/models"
)

// ComputeScore sums the recorded answer points and normalizes them against
// the fixed denominator. The avg_case_value question always contributes zero
// points, and catalog.MaxScorePoints excludes it from the denominator.
func ComputeScore(answers models.AnswerSet) models.ScoreResult {
	total := 0
	for _, id := range models.AllQuestionIDs {
		if ans, ok := answers.Get(id); ok {
			total += ans.Points
		}
	}

	return models.ScoreResult{
		TotalPoints: total,
		MaxPoints:   catalog.MaxScorePoints,
		Percentage:  roundHalfAway(100 * float64(total) / float64(catalog.MaxScorePoints)),
	}
}

// GradeLetter classifies a score percentage into a letter grade.
func GradeLetter(percentage int) string {
	switch {
	case percentage >= 90:
		return "A+"
	case percentage >= 80:
		return "A"
	case percentage >= 70:
		return "B"
	case percentage >= 60:
		return "C"
	case percentage >= 50:
		return "D"
	default:
		return "F"
	}
}

// BuildReport runs the full engine over a completed answer set.
func BuildReport(answers models.AnswerSet) models.Report {
	score := ComputeScore(answers)
	return models.Report{
		Score:           score,
		Grade:           GradeLetter(score.Percentage),
		Leakage:         EstimateLeakage(answers, score),
		Recommendations: BuildRecommendations(answers),
	}
}

// roundHalfAway rounds to the nearest integer, halves away from zero.
func roundHalfAway(v float64) int {
	return int(math.Round(v))
}
