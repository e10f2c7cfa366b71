package llm

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/osokin/lingvo/internal/store"
)

// LoggingProvider is a decorator that records every backend call as an
// audit event.
type LoggingProvider struct {
	inner Provider
	audit store.AuditRepo
	log   *logrus.Logger
}

// WithLogging wraps a Provider with audit event logging.
func WithLogging(p Provider, audit store.AuditRepo, log *logrus.Logger) Provider {
	return &LoggingProvider{inner: p, audit: audit, log: log}
}

func (l *LoggingProvider) Complete(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	purpose := PurposeFrom(ctx)

	resp, err := l.inner.Complete(ctx, req)

	latencyMs := time.Since(start).Milliseconds()

	data := store.LLMRequestEventData{
		Provider:    l.inner.ModelID(),
		Model:       l.inner.ModelID(),
		Purpose:     purpose,
		LatencyMs:   latencyMs,
		Success:     err == nil,
		RequestBody: serializeRequest(req),
	}

	if resp != nil {
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
		data.Model = resp.Model
		data.ResponseBody = resp.Text
	}

	if err != nil {
		data.ErrorMessage = err.Error()
	}

	// Log the event but don't fail the request if logging fails.
	if logErr := l.audit.AppendLLMRequest(ctx, data); logErr != nil {
		l.log.WithError(logErr).Warn("failed to record backend call event")
	}

	l.log.WithFields(logrus.Fields{
		"purpose":    purpose,
		"model":      data.Model,
		"latency_ms": latencyMs,
		"success":    err == nil,
	}).Debug("tutor backend call")

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}

// serializeRequest builds a readable representation of the backend request.
func serializeRequest(req Request) string {
	var b strings.Builder

	if req.System != "" {
		b.WriteString("[system]\n")
		b.WriteString(req.System)
		b.WriteString("\n\n")
	}

	b.WriteString("[user]\n")
	b.WriteString(req.Prompt)
	b.WriteString("\n")

	if req.Schema != nil {
		b.WriteString("\n[schema: " + req.Schema.Name + "]\n")
	}

	return b.String()
}
