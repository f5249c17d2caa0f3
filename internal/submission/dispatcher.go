// internal/submission/dispatcher.go
package submission

import (
	"context"
	"time"

	"github.com/Mattthebillionaire/lead-audit-tool--Kortex-labs/internal/models"
)

// Dispatcher is what the HTTP layer hands a completed audit to. The
// submit endpoint returns as soon as Dispatch is called; delivery happens
// in the background.
type Dispatcher interface {
	Dispatch(record models.SubmissionRecord, report models.Report)
}

// AsyncDispatcher fans a completed audit out to the forwarder and the
// notifier on a detached goroutine with its own deadline.
type AsyncDispatcher struct {
	forwarder *Forwarder
	notifier  *Notifier
	timeout   time.Duration
}

func NewAsyncDispatcher(forwarder *Forwarder, notifier *Notifier, timeout time.Duration) *AsyncDispatcher {
	return &AsyncDispatcher{
		forwarder: forwarder,
		notifier:  notifier,
		timeout:   timeout,
	}
}

func (d *AsyncDispatcher) Dispatch(record models.SubmissionRecord, report models.Report) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		defer cancel()

		if d.forwarder != nil {
			d.forwarder.Forward(ctx, record)
		}
		if d.notifier != nil {
			d.notifier.NotifyLead(ctx, record, report)
		}
	}()
}
