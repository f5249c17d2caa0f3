// internal/audit/leakage_test.go
package audit

import (
	"testing"

	"github.com/Mattthebillionaire/lead-audit-tool--Kortex-labs/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestEstimateLeakage_RateStepFunction(t *testing.T) {
	// The rate is a step function of the score, not interpolated.
	tests := []struct {
		percentage int
		wantRate   int
	}{
		{0, 45},
		{10, 45},
		{49, 45},
		{50, 30},
		{69, 30},
		{70, 15},
		{100, 15},
	}

	for _, tt := range tests {
		score := models.ScoreResult{Percentage: tt.percentage}
		est := EstimateLeakage(models.AnswerSet{}, score)
		assert.Equal(t, tt.wantRate, est.LeakageRate, "percentage %d", tt.percentage)
	}
}

func TestEstimateLeakage_TierLookups(t *testing.T) {
	tests := []struct {
		name          string
		leadValue     int
		caseValue     int
		wantLostLeads int // at 45% rate
	}{
		{"under 20 leads", 5, 5, 7},    // round(15 * 0.45) = 6.75
		{"20-50 leads", 4, 4, 16},      // round(35 * 0.45) = 15.75
		{"50-100 leads", 3, 3, 34},     // round(75 * 0.45) = 33.75
		{"100+ leads", 2, 2, 54},       // round(120 * 0.45)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			answers := models.AnswerSet{
				models.QuestionLeadVolume:   {Points: 10, Value: tt.leadValue},
				models.QuestionAvgCaseValue: {Points: 0, Value: tt.caseValue},
			}
			est := EstimateLeakage(answers, models.ScoreResult{Percentage: 0})
			assert.Equal(t, tt.wantLostLeads, est.LostLeads)
		})
	}
}

func TestEstimateLeakage_DefaultsWhenAbsent(t *testing.T) {
	// Missing estimation answers degrade to the value-3 tier: 75 leads,
	// $137,500 case value.
	est := EstimateLeakage(models.AnswerSet{}, models.ScoreResult{Percentage: 0})

	assert.Equal(t, 34, est.LostLeads)   // round(75 * 0.45)
	assert.Equal(t, 5, est.LostClients)  // round(34 * 0.15) = 5.1
	assert.Equal(t, 226875, est.MonthlyLoss) // round(5 * 137500 * 0.33)
	assert.Equal(t, est.MonthlyLoss*12, est.YearlyLoss)
}

func TestEstimateLeakage_OutOfRangeValueFallsBack(t *testing.T) {
	answers := models.AnswerSet{
		models.QuestionLeadVolume:   {Points: 10, Value: 9},
		models.QuestionAvgCaseValue: {Points: 0, Value: -1},
	}

	est := EstimateLeakage(answers, models.ScoreResult{Percentage: 100})
	fallback := EstimateLeakage(models.AnswerSet{}, models.ScoreResult{Percentage: 100})

	assert.Equal(t, fallback, est)
}

func TestEstimateLeakage_YearlyIsTwelveMonthly(t *testing.T) {
	answers := models.AnswerSet{
		models.QuestionLeadVolume:   {Points: 10, Value: 2},
		models.QuestionAvgCaseValue: {Points: 0, Value: 2},
	}

	est := EstimateLeakage(answers, models.ScoreResult{Percentage: 55})
	assert.Equal(t, est.MonthlyLoss*12, est.YearlyLoss)
}
