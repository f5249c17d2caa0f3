// internal/models/answer.go
package models

// QuestionID is the closed set of question identifiers in the audit catalog.
type QuestionID string

const (
	QuestionResponseTime  QuestionID = "response_time"
	QuestionAfterHours    QuestionID = "after_hours"
	QuestionLeadVolume    QuestionID = "lead_volume"
	QuestionQualification QuestionID = "qualification"
	QuestionFollowUp      QuestionID = "follow_up"
	QuestionTracking      QuestionID = "tracking"
	QuestionBooking       QuestionID = "booking"
	QuestionAvgCaseValue  QuestionID = "avg_case_value"
)

// AllQuestionIDs lists the catalog ids in presentation order.
var AllQuestionIDs = []QuestionID{
	QuestionResponseTime,
	QuestionAfterHours,
	QuestionLeadVolume,
	QuestionQualification,
	QuestionFollowUp,
	QuestionTracking,
	QuestionBooking,
	QuestionAvgCaseValue,
}

// Answer records the two numeric fields of a chosen option. An Answer exists
// for a question only after the respondent selected one of its options; a
// re-selection overwrites the whole Answer, never one field.
type Answer struct {
	Points int `json:"points"`
	Value  int `json:"value"`
}

// AnswerSet maps question ids to recorded answers. It grows monotonically,
// one entry per question interaction, and is never persisted beyond the
// session.
type AnswerSet map[QuestionID]Answer

// Get returns the answer for id and whether one has been recorded.
func (a AnswerSet) Get(id QuestionID) (Answer, bool) {
	ans, ok := a[id]
	return ans, ok
}

// Complete reports whether every catalog question has a recorded answer.
func (a AnswerSet) Complete() bool {
	for _, id := range AllQuestionIDs {
		if _, ok := a[id]; !ok {
			return false
		}
	}
	return true
}

// Count returns the number of recorded answers.
func (a AnswerSet) Count() int {
	return len(a)
}

// Clone returns an independent copy of the set.
func (a AnswerSet) Clone() AnswerSet {
	out := make(AnswerSet, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}
