// internal/session/session.go

// Package session implements the audit flow controller: one AuditSession per
// respondent, stepping through the catalog, then submitting into results.
package session

import (
	"time"

	"github.com/Mattthebillionaire/lead-audit-tool--Kortex-labs/internal/catalog"
	stderrors "github.com/Mattthebillionaire/lead-audit-tool--Kortex-labs/internal/common/errors"
	"github.com/Mattthebillionaire/lead-audit-tool--Kortex-labs/internal/models"

	"github.com/google/uuid"
)

// State is the flow controller state.
type State string

const (
	StateIntake     State = "intake"
	StateSubmitting State = "submitting"
	StateResults    State = "results"
)

// AuditSession tracks one respondent's pass through the questionnaire.
// It is mutated only through its methods; the store persists whole snapshots.
type AuditSession struct {
	ID           string             `json:"id"`
	State        State              `json:"state"`
	Step         int                `json:"step"` // 1-based intake position
	Answers      models.AnswerSet   `json:"answers"`
	Contact      models.ContactInfo `json:"contact"`
	Report       *models.Report     `json:"report,omitempty"`
	CreatedAt    time.Time          `json:"createdAt"`
	LastActivity time.Time          `json:"lastActivity"`
	SubmittedAt  *time.Time         `json:"submittedAt,omitempty"`
}

// New creates a session at step 1 with the given contact fields. The
// contact fields are free text and pass through unvalidated.
func New(contact models.ContactInfo) *AuditSession {
	now := time.Now().UTC()
	return &AuditSession{
		ID:           uuid.NewString(),
		State:        StateIntake,
		Step:         1,
		Answers:      make(models.AnswerSet),
		Contact:      contact,
		CreatedAt:    now,
		LastActivity: now,
	}
}

// RecordAnswer stores the chosen option for a question and advances the
// step when the question at the current step was answered. Re-answering an
// earlier question overwrites its Answer whole and does not advance.
func (s *AuditSession) RecordAnswer(cat *catalog.Catalog, id models.QuestionID, value int) error {
	if s.State != StateIntake {
		return stderrors.NewInvalidTransitionError("answers may only be recorded during intake")
	}

	q, ok := cat.Question(id)
	if !ok {
		return stderrors.NewQuestionNotFoundError(string(id))
	}

	opt, ok := q.Option(value)
	if !ok {
		return stderrors.NewInvalidOptionError(string(id), value)
	}

	s.Answers[id] = models.Answer{Points: opt.Points, Value: opt.Value}
	s.LastActivity = time.Now().UTC()

	if current, ok := cat.At(s.Step); ok && current.ID == id && s.Step < cat.Len() {
		s.Step++
	}
	return nil
}

// Back retreats one intake step, never below step 1.
func (s *AuditSession) Back() error {
	if s.State != StateIntake {
		return stderrors.NewInvalidTransitionError("back navigation is only available during intake")
	}
	if s.Step > 1 {
		s.Step--
	}
	s.LastActivity = time.Now().UTC()
	return nil
}

// MaxAnsweredStep returns the highest catalog position with a recorded
// answer. Forward navigation may not pass it.
func (s *AuditSession) MaxAnsweredStep(cat *catalog.Catalog) int {
	max := 0
	for i, q := range cat.Questions() {
		if _, ok := s.Answers[q.ID]; ok {
			max = i + 1
		}
	}
	return max
}

// BeginSubmit gates submission on a complete answer set and moves the
// session to submitting.
func (s *AuditSession) BeginSubmit(cat *catalog.Catalog) error {
	switch s.State {
	case StateSubmitting, StateResults:
		return stderrors.NewAuditAlreadySubmittedError(s.ID)
	}

	if s.Answers.Count() != cat.Len() || !s.Answers.Complete() {
		return stderrors.NewAuditIncompleteError(s.Answers.Count(), cat.Len())
	}

	s.State = StateSubmitting
	s.LastActivity = time.Now().UTC()
	return nil
}

// FinishSubmit attaches the computed report and enters results. There is no
// transition out of results.
func (s *AuditSession) FinishSubmit(report models.Report) {
	now := time.Now().UTC()
	s.Report = &report
	s.State = StateResults
	s.SubmittedAt = &now
	s.LastActivity = now
}

// Results returns the report once the session has reached results.
func (s *AuditSession) Results() (models.Report, error) {
	if s.State != StateResults || s.Report == nil {
		return models.Report{}, stderrors.NewAuditNotSubmittedError(s.ID)
	}
	return *s.Report, nil
}
