// internal/submission/notifier.go
package submission

import (
	"context"
	"fmt"
	"strings"

	"github.com/Mattthebillionaire/lead-audit-tool--Kortex-labs/internal/common/aws"
	"github.com/Mattthebillionaire/lead-audit-tool--Kortex-labs/internal/common/config"
	"github.com/Mattthebillionaire/lead-audit-tool--Kortex-labs/internal/common/logger"
	"github.com/Mattthebillionaire/lead-audit-tool--Kortex-labs/internal/common/metrics"
	"github.com/Mattthebillionaire/lead-audit-tool--Kortex-labs/internal/models"
)

// Notifier sends best-effort lead notifications after a completed audit:
// the full report to the respondent by email, and a short summary to an
// internal SNS topic. Either channel may be disabled; failures on one
// channel never stop the other.
type Notifier struct {
	emailSender aws.EmailSender
	publisher   aws.TopicPublisher
	cfg         config.NotificationConfig
	logger      logger.Logger
}

func NewNotifier(emailSender aws.EmailSender, publisher aws.TopicPublisher, cfg config.NotificationConfig, log logger.Logger) *Notifier {
	return &Notifier{
		emailSender: emailSender,
		publisher:   publisher,
		cfg:         cfg,
		logger:      log,
	}
}

// NotifyLead fans out to the enabled channels.
func (n *Notifier) NotifyLead(ctx context.Context, record models.SubmissionRecord, report models.Report) {
	if n.cfg.Email.Enabled && n.emailSender != nil && record.Email != "" {
		n.sendEmail(ctx, record, report)
	}
	if n.cfg.SNS.Enabled && n.publisher != nil {
		n.publishSummary(ctx, record, report)
	}
}

func (n *Notifier) sendEmail(ctx context.Context, record models.SubmissionRecord, report models.Report) {
	subject := fmt.Sprintf("Your Lead Leakage Audit Results: Grade %s", report.Grade)
	body := formatReportEmail(record, report)

	err := n.emailSender.SendText(ctx, n.cfg.Email.Sender, record.Email, n.cfg.Email.ReplyTo, subject, body)
	if err != nil {
		n.logger.Warn("failed to send results email", map[string]interface{}{
			"recipient": record.Email,
			"error":     err.Error(),
		})
		metrics.NotificationsSent.WithLabelValues("email", "error").Inc()
		return
	}

	n.logger.Info("results email sent", map[string]interface{}{
		"recipient": record.Email,
	})
	metrics.NotificationsSent.WithLabelValues("email", "success").Inc()
}

func (n *Notifier) publishSummary(ctx context.Context, record models.SubmissionRecord, report models.Report) {
	subject := "New Lead Leakage Audit"
	message := formatLeadSummary(record, report)

	err := n.publisher.PublishMessage(ctx, n.cfg.SNS.TopicARN, subject, message)
	if err != nil {
		n.logger.Warn("failed to publish lead summary", map[string]interface{}{
			"topic_arn": n.cfg.SNS.TopicARN,
			"error":     err.Error(),
		})
		metrics.NotificationsSent.WithLabelValues("sns", "error").Inc()
		return
	}

	n.logger.Info("lead summary published", map[string]interface{}{
		"topic_arn": n.cfg.SNS.TopicARN,
	})
	metrics.NotificationsSent.WithLabelValues("sns", "success").Inc()
}

func formatReportEmail(record models.SubmissionRecord, report models.Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Lead Leakage Audit Results\n\n")
	if record.FirmName != "" {
		fmt.Fprintf(&b, "Firm: %s\n", record.FirmName)
	}
	fmt.Fprintf(&b, "Score: %d%% (Grade %s)\n\n", report.Score.Percentage, report.Grade)
	fmt.Fprintf(&b, "Estimated leakage:\n")
	fmt.Fprintf(&b, "  Lost leads per month:   %d\n", report.Leakage.LostLeads)
	fmt.Fprintf(&b, "  Lost clients per month: %d\n", report.Leakage.LostClients)
	fmt.Fprintf(&b, "  Monthly revenue lost:   $%d\n", report.Leakage.MonthlyLoss)
	fmt.Fprintf(&b, "  Yearly revenue lost:    $%d\n", report.Leakage.YearlyLoss)

	if len(report.Recommendations) > 0 {
		fmt.Fprintf(&b, "\nRecommendations:\n")
		for _, rec := range report.Recommendations {
			fmt.Fprintf(&b, "\n[%s] %s\n", rec.Priority, rec.Issue)
			fmt.Fprintf(&b, "  Impact:   %s\n", rec.Impact)
			fmt.Fprintf(&b, "  Solution: %s\n", rec.Solution)
		}
	}

	return b.String()
}

func formatLeadSummary(record models.SubmissionRecord, report models.Report) string {
	firm := record.FirmName
	if firm == "" {
		firm = "(no firm name)"
	}
	return fmt.Sprintf(
		"Firm: %s\nEmail: %s\nPhone: %s\nScore: %d%% (Grade %s)\nYearly loss estimate: $%d",
		firm, record.Email, record.Phone, report.Score.Percentage, report.Grade, report.Leakage.YearlyLoss,
	)
}
