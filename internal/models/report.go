// internal/models/report.go
package models

// ScoreResult is the percentage-normalized efficiency score.
type ScoreResult struct {
	TotalPoints int `json:"totalPoints"`
	MaxPoints   int `json:"maxPoints"`
	Percentage  int `json:"percentage"`
}

// LeakageEstimate is the dollar-value lead leakage projection derived from
// the score and the volume/case-value answers.
type LeakageEstimate struct {
	LostLeads   int `json:"lostLeads"`
	LostClients int `json:"lostClients"`
	MonthlyLoss int `json:"monthlyLoss"` // currency units
	YearlyLoss  int `json:"yearlyLoss"`  // currency units
	LeakageRate int `json:"leakageRate"` // percentage
}

// Priority labels a recommendation. It is a display label, not a sort key;
// recommendations keep catalog order.
type Priority string

const (
	PriorityCritical Priority = "CRITICAL"
	PriorityHigh     Priority = "HIGH"
	PriorityMedium   Priority = "MEDIUM"
	PriorityLow      Priority = "LOW"
)

// Recommendation is one prioritized process-improvement suggestion.
type Recommendation struct {
	Priority Priority `json:"priority"`
	Issue    string   `json:"issue"`
	Impact   string   `json:"impact"`
	Solution string   `json:"solution"`
}

// Report bundles everything the results view shows.
type Report struct {
	Score           ScoreResult      `json:"score"`
	Grade           string           `json:"grade"`
	Leakage         LeakageEstimate  `json:"leakage"`
	Recommendations []Recommendation `json:"recommendations"`
}
