// internal/api/handlers.go
package api

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/Mattthebillionaire/lead-audit-tool--Kortex-labs/internal/audit"
	"github.com/Mattthebillionaire/lead-audit-tool--Kortex-labs/internal/common/metrics"
	"github.com/Mattthebillionaire/lead-audit-tool--Kortex-labs/internal/models"
	"github.com/Mattthebillionaire/lead-audit-tool--Kortex-labs/internal/session"
	"github.com/Mattthebillionaire/lead-audit-tool--Kortex-labs/internal/submission"
)

// Request/Response types

type StartAuditRequest struct {
	FirmName string `json:"firmName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

type AnswerRequest struct {
	Value int `json:"value"`
}

// QuestionView is the client-facing catalog entry. Option points stay
// server-side; the client only needs values and labels.
type QuestionView struct {
	ID      models.QuestionID `json:"id"`
	Prompt  string            `json:"prompt"`
	Options []OptionView      `json:"options"`
}

type OptionView struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

// AuditStatusResponse reports where a session stands in the flow.
type AuditStatusResponse struct {
	AuditID         string             `json:"auditId"`
	State           session.State      `json:"state"`
	Step            int                `json:"step"`
	MaxAnsweredStep int                `json:"maxAnsweredStep"`
	TotalQuestions  int                `json:"totalQuestions"`
	AnsweredCount   int                `json:"answeredCount"`
	CurrentQuestion *models.QuestionID `json:"currentQuestion,omitempty"`
}

type ResultsResponse struct {
	AuditID     string        `json:"auditId"`
	SubmittedAt *time.Time    `json:"submittedAt,omitempty"`
	Report      models.Report `json:"report"`
}

func (s *Server) statusFor(sess *session.AuditSession) AuditStatusResponse {
	resp := AuditStatusResponse{
		AuditID:         sess.ID,
		State:           sess.State,
		Step:            sess.Step,
		MaxAnsweredStep: sess.MaxAnsweredStep(s.catalog),
		TotalQuestions:  s.catalog.Len(),
		AnsweredCount:   sess.Answers.Count(),
	}
	if sess.State == session.StateIntake {
		if q, ok := s.catalog.At(sess.Step); ok {
			id := q.ID
			resp.CurrentQuestion = &id
		}
	}
	return resp
}

func (s *Server) loadSession(w http.ResponseWriter, r *http.Request) (*session.AuditSession, bool) {
	id := mux.Vars(r)["id"]
	sess, err := s.store.Get(r.Context(), id)
	if err != nil {
		s.writeError(w, err)
		return nil, false
	}
	return sess, true
}

// Handlers

func (s *Server) handleListQuestions(w http.ResponseWriter, r *http.Request) {
	questions := make([]QuestionView, 0, s.catalog.Len())
	for _, q := range s.catalog.Questions() {
		options := make([]OptionView, 0, len(q.Options))
		for _, opt := range q.Options {
			options = append(options, OptionView{Value: opt.Value, Label: opt.Label})
		}
		questions = append(questions, QuestionView{ID: q.ID, Prompt: q.Prompt, Options: options})
	}
	s.writeSuccess(w, http.StatusOK, questions)
}

func (s *Server) handleStartAudit(w http.ResponseWriter, r *http.Request) {
	var req StartAuditRequest
	if r.ContentLength != 0 {
		if err := parseRequestBody(r, &req); err != nil {
			s.writeError(w, err)
			return
		}
	}

	sess := session.New(models.ContactInfo{
		FirmName: req.FirmName,
		Email:    req.Email,
		Phone:    req.Phone,
	})

	if err := s.store.Save(r.Context(), sess); err != nil {
		s.writeError(w, err)
		return
	}

	s.logger.Info("audit session started", map[string]interface{}{
		"audit_id": sess.ID,
	})
	s.writeSuccess(w, http.StatusCreated, s.statusFor(sess))
}

func (s *Server) handleGetAudit(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.loadSession(w, r)
	if !ok {
		return
	}
	s.writeSuccess(w, http.StatusOK, s.statusFor(sess))
}

func (s *Server) handleRecordAnswer(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.loadSession(w, r)
	if !ok {
		return
	}

	var req AnswerRequest
	if err := parseRequestBody(r, &req); err != nil {
		s.writeError(w, err)
		return
	}

	questionID := models.QuestionID(mux.Vars(r)["questionId"])
	if err := sess.RecordAnswer(s.catalog, questionID, req.Value); err != nil {
		s.writeError(w, err)
		return
	}

	if err := s.store.Save(r.Context(), sess); err != nil {
		s.writeError(w, err)
		return
	}

	s.writeSuccess(w, http.StatusOK, s.statusFor(sess))
}

func (s *Server) handleBack(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.loadSession(w, r)
	if !ok {
		return
	}

	if err := sess.Back(); err != nil {
		s.writeError(w, err)
		return
	}

	if err := s.store.Save(r.Context(), sess); err != nil {
		s.writeError(w, err)
		return
	}

	s.writeSuccess(w, http.StatusOK, s.statusFor(sess))
}

// handleSubmit gates on a complete answer set, computes the report, and
// responds with it immediately. Forwarding and notifications run in the
// background; their outcome never affects this response.
func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.loadSession(w, r)
	if !ok {
		return
	}

	if err := sess.BeginSubmit(s.catalog); err != nil {
		s.writeError(w, err)
		return
	}

	report := audit.BuildReport(sess.Answers)
	sess.FinishSubmit(report)

	if err := s.store.Save(r.Context(), sess); err != nil {
		s.writeError(w, err)
		return
	}

	record := submission.BuildRecord(s.catalog, sess.Answers, sess.Contact, report)
	if s.dispatcher != nil {
		s.dispatcher.Dispatch(record, report)
	}

	metrics.AuditsCompleted.WithLabelValues(report.Grade).Inc()
	if s.obs != nil {
		s.obs.RecordAuditProcessed(r.Context(), report.Grade)
		s.obs.RecordAuditDuration(r.Context(), time.Since(sess.CreatedAt), report.Grade)
	}

	s.logger.Info("audit submitted", map[string]interface{}{
		"audit_id":    sess.ID,
		"score":       report.Score.Percentage,
		"grade":       report.Grade,
		"yearly_loss": report.Leakage.YearlyLoss,
	})

	s.writeSuccess(w, http.StatusOK, ResultsResponse{
		AuditID:     sess.ID,
		SubmittedAt: sess.SubmittedAt,
		Report:      report,
	})
}

func (s *Server) handleResults(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.loadSession(w, r)
	if !ok {
		return
	}

	report, err := sess.Results()
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeSuccess(w, http.StatusOK, ResultsResponse{
		AuditID:     sess.ID,
		SubmittedAt: sess.SubmittedAt,
		Report:      report,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeSuccess(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "lead-audit-api",
	})
}
