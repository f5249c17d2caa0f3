// internal/catalog/catalog.go

// Package catalog holds the fixed audit question set. Questions are ordered
// for display; options are selected by value, not position.
package catalog

import (
	"github.com/Mattthebillionaire/lead-audit-tool--Kortex-labs/internal/models"
)

// MaxScorePoints is the fixed scoring denominator: ten points for each of
// the first seven questions. The eighth question (avg_case_value) collects
// data for the leakage estimate and is deliberately excluded; do not derive
// this constant from catalog shape.
const MaxScorePoints = 70

// OptionDefinition is one selectable answer. Value is the selection key,
// unique within its question; Points is the score contribution.
type OptionDefinition struct {
	Value  int    `json:"value"`
	Label  string `json:"label"`
	Points int    `json:"points"`
}

// QuestionDefinition is one catalog entry.
type QuestionDefinition struct {
	ID      models.QuestionID  `json:"id"`
	Prompt  string             `json:"prompt"`
	Options []OptionDefinition `json:"options"`
}

// Option returns the option with the given value, if any.
func (q QuestionDefinition) Option(value int) (OptionDefinition, bool) {
	for _, opt := range q.Options {
		if opt.Value == value {
			return opt, true
		}
	}
	return OptionDefinition{}, false
}

// MaxPoints returns the highest point value among the question's options.
func (q QuestionDefinition) MaxPoints() int {
	max := 0
	for _, opt := range q.Options {
		if opt.Points > max {
			max = opt.Points
		}
	}
	return max
}

// Catalog is an ordered question set.
type Catalog struct {
	questions []QuestionDefinition
	byID      map[models.QuestionID]int
}

// New builds a Catalog from an ordered question list.
func New(questions []QuestionDefinition) *Catalog {
	byID := make(map[models.QuestionID]int, len(questions))
	for i, q := range questions {
		byID[q.ID] = i
	}
	return &Catalog{questions: questions, byID: byID}
}

// Questions returns the ordered question list.
func (c *Catalog) Questions() []QuestionDefinition {
	return c.questions
}

// Len returns the number of questions.
func (c *Catalog) Len() int {
	return len(c.questions)
}

// Question looks a question up by id.
func (c *Catalog) Question(id models.QuestionID) (QuestionDefinition, bool) {
	i, ok := c.byID[id]
	if !ok {
		return QuestionDefinition{}, false
	}
	return c.questions[i], true
}

// At returns the question at the 1-based step, matching how the intake flow
// counts steps.
func (c *Catalog) At(step int) (QuestionDefinition, bool) {
	if step < 1 || step > len(c.questions) {
		return QuestionDefinition{}, false
	}
	return c.questions[step-1], true
}

// Label resolves the display label for a recorded answer value, or "" when
// the value names no option.
func (c *Catalog) Label(id models.QuestionID, value int) string {
	q, ok := c.Question(id)
	if !ok {
		return ""
	}
	opt, ok := q.Option(value)
	if !ok {
		return ""
	}
	return opt.Label
}

// Default returns the built-in eight-question audit catalog.
func Default() *Catalog {
	return New([]QuestionDefinition{
		{
			ID:     models.QuestionResponseTime,
			Prompt: "What is your average response time to new web leads during business hours?",
			Options: []OptionDefinition{
				{Value: 5, Label: "Under 5 minutes", Points: 10},
				{Value: 4, Label: "5-30 minutes", Points: 7},
				{Value: 3, Label: "30 minutes - 2 hours", Points: 4},
				{Value: 2, Label: "2-24 hours", Points: 2},
				{Value: 1, Label: "Over 24 hours or unsure", Points: 0},
			},
		},
		{
			ID:     models.QuestionAfterHours,
			Prompt: "How do you handle leads that come in after hours (evenings/weekends)?",
			Options: []OptionDefinition{
				{Value: 5, Label: "Automated instant response + next-day follow-up", Points: 10},
				{Value: 4, Label: "Automated response, manual follow-up Monday", Points: 6},
				{Value: 3, Label: "Voicemail/contact form, respond next business day", Points: 3},
				{Value: 2, Label: "No system, they wait until we see it", Points: 0},
			},
		},
		{
			ID:     models.QuestionLeadVolume,
			Prompt: "How many web leads (contact forms, calls, chats) does your firm receive per month?",
			Options: []OptionDefinition{
				{Value: 5, Label: "Under 20", Points: 5},
				{Value: 4, Label: "20-50", Points: 10},
				{Value: 3, Label: "50-100", Points: 10},
				{Value: 2, Label: "100+", Points: 10},
			},
		},
		{
			ID:     models.QuestionQualification,
			Prompt: "Do you have a system to pre-qualify leads before they reach an attorney?",
			Options: []OptionDefinition{
				{Value: 5, Label: "Yes, automated qualification questions", Points: 10},
				{Value: 4, Label: "Yes, intake staff manually qualify", Points: 7},
				{Value: 3, Label: "Partially, inconsistent process", Points: 3},
				{Value: 2, Label: "No, attorneys handle all initial calls", Points: 0},
			},
		},
		{
			ID:     models.QuestionFollowUp,
			Prompt: "How many times do you follow up with leads who don't respond initially?",
			Options: []OptionDefinition{
				{Value: 5, Label: "5+ touches (calls, emails, SMS)", Points: 10},
				{Value: 4, Label: "3-4 touches", Points: 7},
				{Value: 3, Label: "1-2 touches", Points: 4},
				{Value: 2, Label: "Once or never", Points: 0},
			},
		},
		{
			ID:     models.QuestionTracking,
			Prompt: "Do you track lead source, response time, and conversion rates?",
			Options: []OptionDefinition{
				{Value: 5, Label: "Yes, in real-time dashboard", Points: 10},
				{Value: 4, Label: "Yes, but manually in spreadsheets", Points: 5},
				{Value: 3, Label: "Partially, not consistent", Points: 2},
				{Value: 2, Label: "No tracking system", Points: 0},
			},
		},
		{
			ID:     models.QuestionBooking,
			Prompt: "How do leads schedule consultations with your firm?",
			Options: []OptionDefinition{
				{Value: 5, Label: "Self-service calendar booking 24/7", Points: 10},
				{Value: 4, Label: "Staff schedules during business hours", Points: 5},
				{Value: 3, Label: "Back-and-forth phone tag/email", Points: 2},
				{Value: 2, Label: "No formal scheduling process", Points: 0},
			},
		},
		{
			ID:     models.QuestionAvgCaseValue,
			Prompt: "What is your average settlement value for PI cases?",
			Options: []OptionDefinition{
				{Value: 5, Label: "Under $25k", Points: 0},
				{Value: 4, Label: "$25k-$75k", Points: 0},
				{Value: 3, Label: "$75k-$200k", Points: 0},
				{Value: 2, Label: "$200k+", Points: 0},
			},
		},
	})
}
