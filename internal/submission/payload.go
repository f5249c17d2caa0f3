// internal/submission/payload.go

// Package submission forwards completed audits to the lead collection
// endpoint and sends best-effort lead notifications. Everything here is
// telemetry: nothing may block or fail the user-visible flow.
package submission

import (
	"github.com/Mattthebillionaire/lead-audit-tool--Kortex-labs/internal/catalog"
	"github.com/Mattthebillionaire/lead-audit-tool--Kortex-labs/internal/models"
)

// BuildRecord assembles the forwarded payload: the pass-through contact
// fields, the human-readable label of each chosen option (not the raw
// value), and the four derived results.
func BuildRecord(cat *catalog.Catalog, answers models.AnswerSet, contact models.ContactInfo, report models.Report) models.SubmissionRecord {
	label := func(id models.QuestionID) string {
		ans, ok := answers.Get(id)
		if !ok {
			return ""
		}
		return cat.Label(id, ans.Value)
	}

	return models.SubmissionRecord{
		FirmName: contact.FirmName,
		Email:    contact.Email,
		Phone:    contact.Phone,

		ResponseTime:  label(models.QuestionResponseTime),
		AfterHours:    label(models.QuestionAfterHours),
		LeadVolume:    label(models.QuestionLeadVolume),
		Qualification: label(models.QuestionQualification),
		FollowUp:      label(models.QuestionFollowUp),
		Tracking:      label(models.QuestionTracking),
		Booking:       label(models.QuestionBooking),
		AvgCaseValue:  label(models.QuestionAvgCaseValue),

		Score:       report.Score.Percentage,
		LeakageRate: report.Leakage.LeakageRate,
		MonthlyLoss: report.Leakage.MonthlyLoss,
		YearlyLoss:  report.Leakage.YearlyLoss,
	}
}
