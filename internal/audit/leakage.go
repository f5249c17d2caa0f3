// internal/audit/leakage.go
package audit

import (
	"github.com/Mattthebillionaire/lead-audit-tool--Kortex-labs/internal/models"
)

// Industry-benchmark constants behind the leakage projection.
const (
	leadConversionRate = 0.15 // share of leads that become clients
	attorneyFeeShare   = 0.33 // contingency fee share of case value
	defaultTierValue   = 3    // tier assumed when an estimation answer is absent
)

// monthlyLeadTiers maps the lead_volume answer value to an assumed monthly
// lead count (midpoint of the bracket).
var monthlyLeadTiers = map[int]int{
	5: 15,
	4: 35,
	3: 75,
	2: 120,
}

// caseValueTiers maps the avg_case_value answer value to an assumed average
// settlement value.
var caseValueTiers = map[int]int{
	5: 20000,
	4: 50000,
	3: 137500,
	2: 300000,
}

// EstimateLeakage projects monthly and yearly revenue loss from the score
// and the two estimation answers. Absent or out-of-range answers degrade to
// the default tier rather than failing.
func EstimateLeakage(answers models.AnswerSet, score models.ScoreResult) models.LeakageEstimate {
	monthlyLeads := tierLookup(monthlyLeadTiers, answers, models.QuestionLeadVolume)
	caseValue := tierLookup(caseValueTiers, answers, models.QuestionAvgCaseValue)

	rate := leakageRate(score.Percentage)

	lostLeads := roundHalfAway(float64(monthlyLeads) * rate)
	lostClients := roundHalfAway(float64(lostLeads) * leadConversionRate)
	monthlyLoss := roundHalfAway(float64(lostClients) * float64(caseValue) * attorneyFeeShare)

	return models.LeakageEstimate{
		LostLeads:   lostLeads,
		LostClients: lostClients,
		MonthlyLoss: monthlyLoss,
		YearlyLoss:  monthlyLoss * 12,
		LeakageRate: roundHalfAway(rate * 100),
	}
}

// leakageRate is a step function over the score percentage, not
// interpolated: a 10% score and a 49% score leak at the same rate.
func leakageRate(percentage int) float64 {
	switch {
	case percentage < 50:
		return 0.45
	case percentage < 70:
		return 0.30
	default:
		return 0.15
	}
}

func tierLookup(tiers map[int]int, answers models.AnswerSet, id models.QuestionID) int {
	value := defaultTierValue
	if ans, ok := answers.Get(id); ok {
		if _, known := tiers[ans.Value]; known {
			value = ans.Value
		}
	}
	return tiers[value]
}
