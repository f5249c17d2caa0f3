// internal/submission/forwarder.go
package submission

import (
	"context"
	"time"

	"github.com/Mattthebillionaire/lead-audit-tool--Kortex-labs/internal/common/httpclient"
	"github.com/Mattthebillionaire/lead-audit-tool--Kortex-labs/internal/common/logger"
	"github.com/Mattthebillionaire/lead-audit-tool--Kortex-labs/internal/common/metrics"
	"github.com/Mattthebillionaire/lead-audit-tool--Kortex-labs/internal/models"
)

// Forwarder POSTs completed audit records to the configured lead
// collection endpoint. The caller never waits on it and never sees its
// errors; failures are logged and counted only.
type Forwarder struct {
	endpoint string
	timeout  time.Duration
	client   *httpclient.Client
	logger   logger.Logger
}

func NewForwarder(endpoint string, timeout time.Duration, log logger.Logger) *Forwarder {
	return &Forwarder{
		endpoint: endpoint,
		timeout:  timeout,
		client:   httpclient.NewClient(timeout),
		logger:   log,
	}
}

// Forward delivers one record synchronously. A non-2xx status is treated
// the same as a transport error: logged, counted, swallowed.
func (f *Forwarder) Forward(ctx context.Context, record models.SubmissionRecord) {
	if f.endpoint == "" {
		f.logger.Debug("submission forwarding disabled, no endpoint configured", nil)
		metrics.SubmissionsForwarded.WithLabelValues("skipped").Inc()
		return
	}

	status, err := f.client.PostJSON(ctx, f.endpoint, record)
	if err != nil {
		f.logger.Warn("failed to forward submission", map[string]interface{}{
			"endpoint": f.endpoint,
			"error":    err.Error(),
		})
		metrics.SubmissionsForwarded.WithLabelValues("error").Inc()
		return
	}

	if status < 200 || status >= 300 {
		f.logger.Warn("submission endpoint rejected record", map[string]interface{}{
			"endpoint": f.endpoint,
			"status":   status,
		})
		metrics.SubmissionsForwarded.WithLabelValues("rejected").Inc()
		return
	}

	f.logger.Info("submission forwarded", map[string]interface{}{
		"endpoint": f.endpoint,
		"score":    record.Score,
	})
	metrics.SubmissionsForwarded.WithLabelValues("success").Inc()
}

// ForwardAsync runs Forward in a background goroutine with its own
// deadline, detached from the request context so the HTTP response is
// never held up by the delivery.
func (f *Forwarder) ForwardAsync(record models.SubmissionRecord) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), f.timeout)
		defer cancel()
		f.Forward(ctx, record)
	}()
}
