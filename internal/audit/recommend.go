// internal/audit/recommend.go
package audit

import (
	"github.com/Mattthebillionaire/lead-audit-tool--Kortex-labs/internal/models"
)

// recommendationCheck fires when the answer's points fall below Cutoff.
// A missing answer counts as below the cutoff: an unanswered process
// question is flagged, not skipped.
type recommendationCheck struct {
	Question models.QuestionID
	Cutoff   int
	Rec      models.Recommendation
}

// recommendationChecks run in catalog order. Priority is a display label;
// the output order is this fixed order, never a priority sort.
var recommendationChecks = []recommendationCheck{
	{
		Question: models.QuestionResponseTime,
		Cutoff:   7,
		Rec: models.Recommendation{
			Priority: models.PriorityCritical,
			Issue:    "Slow Response Time",
			Impact:   "Leads contacted within 5 minutes are 21x more likely to convert",
			Solution: "Implement instant auto-response system for all web inquiries",
		},
	},
	{
		Question: models.QuestionAfterHours,
		Cutoff:   6,
		Rec: models.Recommendation{
			Priority: models.PriorityHigh,
			Issue:    "After-Hours Lead Loss",
			Impact:   "62% of PI leads submit inquiries outside business hours",
			Solution: "Deploy 24/7 automated intake that captures & qualifies leads instantly",
		},
	},
	{
		Question: models.QuestionQualification,
		Cutoff:   7,
		Rec: models.Recommendation{
			Priority: models.PriorityHigh,
			Issue:    "No Lead Qualification",
			Impact:   "Attorneys waste 40% of consultation time on unqualified leads",
			Solution: "Add pre-qualification questions before booking consultations",
		},
	},
	{
		Question: models.QuestionFollowUp,
		Cutoff:   7,
		Rec: models.Recommendation{
			Priority: models.PriorityMedium,
			Issue:    "Weak Follow-Up System",
			Impact:   "80% of sales require 5+ follow-ups, but most firms stop at 1-2",
			Solution: "Build automated 7-touch nurture sequence (email + SMS)",
		},
	},
	{
		Question: models.QuestionBooking,
		Cutoff:   7,
		Rec: models.Recommendation{
			Priority: models.PriorityMedium,
			Issue:    "Manual Scheduling Friction",
			Impact:   "Phone tag causes 35% of leads to choose competitors",
			Solution: "Enable self-service calendar booking with real-time availability",
		},
	},
	{
		Question: models.QuestionTracking,
		Cutoff:   5,
		Rec: models.Recommendation{
			Priority: models.PriorityLow,
			Issue:    "No Performance Tracking",
			Impact:   "Can't optimize what you don't measure",
			Solution: "Implement lead intelligence dashboard for data-driven decisions",
		},
	},
}

// BuildRecommendations runs the independent threshold checks and returns
// the recommendations that fired, in check order.
func BuildRecommendations(answers models.AnswerSet) []models.Recommendation {
	recs := make([]models.Recommendation, 0, len(recommendationChecks))
	for _, check := range recommendationChecks {
		ans, ok := answers.Get(check.Question)
		if !ok || ans.Points < check.Cutoff {
			recs = append(recs, check.Rec)
		}
	}
	return recs
}
