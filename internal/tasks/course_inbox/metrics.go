package courseinbox

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// 事件处理结果，作为 outcome 标签。
const (
	outcomeApplied = "applied"
	outcomeFailed  = "failed"
	outcomeSkipped = "skipped"
)

// inboxMetrics 为 nil 或未启用时所有方法均为空操作。
type inboxMetrics struct {
	events metric.Int64Counter
	lag    metric.Float64Histogram
}

func newInboxMetrics(enabled bool) *inboxMetrics {
	if !enabled {
		return nil
	}
	meter := otel.GetMeterProvider().Meter("lingo-services-progress.course_inbox")

	events, err := meter.Int64Counter("course_inbox_events_total",
		metric.WithDescription("Course catalog events consumed, by event_type and outcome"))
	if err != nil {
		return nil
	}
	lag, err := meter.Float64Histogram("course_inbox_event_lag_ms",
		metric.WithDescription("Delay between occurred_at and local apply"),
		metric.WithUnit("ms"))
	if err != nil {
		return nil
	}
	return &inboxMetrics{events: events, lag: lag}
}

func (m *inboxMetrics) record(ctx context.Context, eventType, outcome string) {
	if m == nil {
		return
	}
	m.events.Add(ctx, 1, metric.WithAttributes(
		attribute.String("event_type", eventType),
		attribute.String("outcome", outcome),
	))
}

func (m *inboxMetrics) observeLag(ctx context.Context, eventType string, occurredAt, now time.Time) {
	if m == nil || occurredAt.IsZero() || now.IsZero() {
		return
	}
	lag := max(now.Sub(occurredAt).Milliseconds(), 0)
	m.lag.Record(ctx, float64(lag), metric.WithAttributes(attribute.String("event_type", eventType)))
}
