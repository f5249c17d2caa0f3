// internal/submission/forwarder_test.go
package submission

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mattthebillionaire/lead-audit-tool--Kortex-labs/internal/audit"
	"github.com/Mattthebillionaire/lead-audit-tool--Kortex-labs/internal/catalog"
	"github.com/Mattthebillionaire/lead-audit-tool--Kortex-labs/internal/common/logger"
	"github.com/Mattthebillionaire/lead-audit-tool--Kortex-labs/internal/models"
)

// ==========================
// Test Helpers
// ==========================

func testRecord(t *testing.T) (models.SubmissionRecord, models.Report) {
	t.Helper()
	cat := catalog.Default()
	answers := completeAnswers(t, cat, 4)
	report := audit.BuildReport(answers)
	record := BuildRecord(cat, answers, models.ContactInfo{
		FirmName: "Test Firm",
		Email:    "test@example.com",
	}, report)
	return record, report
}

// ==========================
// Forwarder Tests
// ==========================

func TestForwarder_Forward_Success(t *testing.T) {
	received := make(chan models.SubmissionRecord, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var record models.SubmissionRecord
		require.NoError(t, json.NewDecoder(r.Body).Decode(&record))
		received <- record
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	record, _ := testRecord(t)
	forwarder := NewForwarder(server.URL, 5*time.Second, logger.NewTestLogger(t))
	forwarder.Forward(context.Background(), record)

	select {
	case got := <-received:
		assert.Equal(t, record, got)
	case <-time.After(time.Second):
		t.Fatal("endpoint never received the record")
	}
}

func TestForwarder_Forward_EndpointErrorIsSwallowed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	record, _ := testRecord(t)
	forwarder := NewForwarder(server.URL, 5*time.Second, logger.NewTestLogger(t))

	// Must not panic or propagate anything.
	forwarder.Forward(context.Background(), record)
}

func TestForwarder_Forward_UnreachableEndpointIsSwallowed(t *testing.T) {
	record, _ := testRecord(t)
	forwarder := NewForwarder("http://127.0.0.1:1/collect", time.Second, logger.NewTestLogger(t))

	forwarder.Forward(context.Background(), record)
}

func TestForwarder_Forward_NoEndpointConfigured(t *testing.T) {
	record, _ := testRecord(t)
	forwarder := NewForwarder("", time.Second, logger.NewTestLogger(t))

	forwarder.Forward(context.Background(), record)
}

func TestForwarder_ForwardAsync_DeliversInBackground(t *testing.T) {
	received := make(chan struct{}, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		received <- struct{}{}
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	record, _ := testRecord(t)
	forwarder := NewForwarder(server.URL, 5*time.Second, logger.NewTestLogger(t))
	forwarder.ForwardAsync(record)

	select {
	case <-received:
	case <-time.After(2 * time.Second):
		t.Fatal("async delivery never reached the endpoint")
	}
}

// ==========================
// Dispatcher Tests
// ==========================

func TestAsyncDispatcher_ForwardsAndNotifies(t *testing.T) {
	received := make(chan struct{}, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		received <- struct{}{}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	record, report := testRecord(t)
	log := logger.NewTestLogger(t)
	forwarder := NewForwarder(server.URL, 5*time.Second, log)
	email := &stubEmailSender{}
	notifier := NewNotifier(email, nil, emailOnlyConfig(), log)

	dispatcher := NewAsyncDispatcher(forwarder, notifier, 5*time.Second)
	dispatcher.Dispatch(record, report)

	select {
	case <-received:
	case <-time.After(2 * time.Second):
		t.Fatal("dispatch never reached the endpoint")
	}

	assert.Eventually(t, func() bool {
		return email.calls() == 1
	}, 2*time.Second, 10*time.Millisecond)
}

func TestAsyncDispatcher_NilComponents(t *testing.T) {
	record, report := testRecord(t)
	dispatcher := NewAsyncDispatcher(nil, nil, time.Second)

	// Nothing configured; Dispatch must still be safe.
	dispatcher.Dispatch(record, report)
	time.Sleep(50 * time.Millisecond)
}
