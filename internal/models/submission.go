// internal/models/submission.go
package models

// ContactInfo carries the three optional, unvalidated contact fields. They
// pass through untouched into the submission payload.
type ContactInfo struct {
	FirmName string `json:"firmName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

// SubmissionRecord is the JSON payload forwarded to the lead collection
// endpoint: the contact fields, the human-readable label chosen for each
// question, and the four derived results.
type SubmissionRecord struct {
	FirmName string `json:"firmName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`

	ResponseTime  string `json:"response_time"`
	AfterHours    string `json:"after_hours"`
	LeadVolume    string `json:"lead_volume"`
	Qualification string `json:"qualification"`
	FollowUp      string `json:"follow_up"`
	Tracking      string `json:"tracking"`
	Booking       string `json:"booking"`
	AvgCaseValue  string `json:"avg_case_value"`

	Score       int `json:"score"`       // percentage
	LeakageRate int `json:"leakageRate"` // percentage
	MonthlyLoss int `json:"monthlyLoss"`
	YearlyLoss  int `json:"yearlyLoss"`
}
