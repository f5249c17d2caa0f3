// internal/audit/recommend_test.go
package audit

import (
	"testing"

	"github.com/Mattthebillionaire/lead-audit-tool--Kortex-labs/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRecommendations_NoneForStrongProcess(t *testing.T) {
	recs := BuildRecommendations(bestAnswers(t))
	assert.Empty(t, recs)
}

func TestBuildRecommendations_MissingAnswerIsFlagged(t *testing.T) {
	answers := bestAnswers(t)
	delete(answers, models.QuestionResponseTime)

	recs := BuildRecommendations(answers)

	require.Len(t, recs, 1)
	assert.Equal(t, models.PriorityCritical, recs[0].Priority)
	assert.Equal(t, "Slow Response Time", recs[0].Issue)
}

func TestBuildRecommendations_CutoffBoundaries(t *testing.T) {
	tests := []struct {
		name     string
		question models.QuestionID
		points   int
		flagged  bool
	}{
		{"response_time at cutoff", models.QuestionResponseTime, 7, false},
		{"response_time below cutoff", models.QuestionResponseTime, 6, true},
		{"after_hours at cutoff", models.QuestionAfterHours, 6, false},
		{"after_hours below cutoff", models.QuestionAfterHours, 5, true},
		{"qualification at cutoff", models.QuestionQualification, 7, false},
		{"follow_up below cutoff", models.QuestionFollowUp, 4, true},
		{"booking below cutoff", models.QuestionBooking, 2, true},
		{"tracking at cutoff", models.QuestionTracking, 5, false},
		{"tracking below cutoff", models.QuestionTracking, 4, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			answers := bestAnswers(t)
			answers[tt.question] = models.Answer{Points: tt.points, Value: 3}

			recs := BuildRecommendations(answers)
			if tt.flagged {
				require.Len(t, recs, 1)
			} else {
				assert.Empty(t, recs)
			}
		})
	}
}

func TestBuildRecommendations_OrderIsStable(t *testing.T) {
	// Every check fires on an empty set; the order must be the fixed check
	// order on every call, never a priority sort.
	wantIssues := []string{
		"Slow Response Time",
		"After-Hours Lead Loss",
		"No Lead Qualification",
		"Weak Follow-Up System",
		"Manual Scheduling Friction",
		"No Performance Tracking",
	}

	for i := 0; i < 5; i++ {
		recs := BuildRecommendations(models.AnswerSet{})
		require.Len(t, recs, len(wantIssues))
		for j, rec := range recs {
			assert.Equal(t, wantIssues[j], rec.Issue)
		}
	}
}

func TestBuildRecommendations_ChecksAreIndependent(t *testing.T) {
	answers := bestAnswers(t)
	answers[models.QuestionFollowUp] = models.Answer{Points: 0, Value: 2}
	answers[models.QuestionTracking] = models.Answer{Points: 2, Value: 3}

	recs := BuildRecommendations(answers)

	require.Len(t, recs, 2)
	assert.Equal(t, "Weak Follow-Up System", recs[0].Issue)
	assert.Equal(t, "No Performance Tracking", recs[1].Issue)
}
