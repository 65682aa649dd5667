package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics holds OTel metric instruments for the monitor.
type Metrics struct {
	RunsStarted     metric.Int64Counter
	ChangesDetected metric.Int64Counter
	AlertsSent      metric.Int64Counter
	FetchFailures   metric.Int64Counter
}

// NewMetrics creates the monitor metric instruments.
func NewMetrics() (*Metrics, error) {
	meter := otel.Meter("stockwatch")

	runsStarted, err := meter.Int64Counter("stockwatch.runs.started",
		metric.WithDescription("Number of monitor runs started"),
	)
	if err != nil {
		return nil, err
	}

	changesDetected, err := meter.Int64Counter("stockwatch.changes.detected",
		metric.WithDescription("Number of changes detected, by domain"),
	)
	if err != nil {
		return nil, err
	}

	alertsSent, err := meter.Int64Counter("stockwatch.alerts.sent",
		metric.WithDescription("Number of alert messages posted"),
	)
	if err != nil {
		return nil, err
	}

	fetchFailures, err := meter.Int64Counter("stockwatch.fetch.failures",
		metric.WithDescription("Number of source fetch failures"),
	)
	if err != nil {
		return nil, err
	}

	return &Metrics{
		RunsStarted:     runsStarted,
		ChangesDetected: changesDetected,
		AlertsSent:      alertsSent,
		FetchFailures:   fetchFailures,
	}, nil
}

// RecordChanges records detected changes for one comparison domain.
func (m *Metrics) RecordChanges(ctx context.Context, domain string, count int) {
	if m == nil || count == 0 {
		return
	}
	m.ChangesDetected.Add(ctx, int64(count),
		metric.WithAttributes(attribute.String("domain", domain)),
	)
}

// RecordRun records a run start.
func (m *Metrics) RecordRun(ctx context.Context) {
	if m == nil {
		return
	}
	m.RunsStarted.Add(ctx, 1)
}

// RecordAlert records a posted alert.
func (m *Metrics) RecordAlert(ctx context.Context, ok bool) {
	if m == nil {
		return
	}
	m.AlertsSent.Add(ctx, 1,
		metric.WithAttributes(attribute.Bool("ok", ok)),
	)
}

// RecordFetchFailure records a failed source fetch.
func (m *Metrics) RecordFetchFailure(ctx context.Context, source string) {
	if m == nil {
		return
	}
	m.FetchFailures.Add(ctx, 1,
		metric.WithAttributes(attribute.String("source", source)),
	)
}
