package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	noopmetric "go.opentelemetry.io/otel/metric/noop"
)

var (
	outboxMetricsMu      sync.Mutex
	outboxMetricsEnabled bool
	outboxSuccessCounter metric.Int64Counter
	outboxFailureCounter metric.Int64Counter
	outboxLagHistogram   metric.Float64Histogram

	progressMetricsMu       sync.Mutex
	progressMetricsEnabled  bool
	progressWriteCounter    metric.Int64Counter
	progressDegradedCounter metric.Int64Counter
	rollupFailureCounter    metric.Int64Counter
)

const (
	outboxSuccessMetricName = "progress_outbox_enqueue_total"
	outboxFailureMetricName = "progress_outbox_enqueue_failures_total"
	outboxLagMetricName     = "progress_outbox_enqueue_lag_ms"

	progressWriteMetricName    = "progress_lesson_writes_total"
	progressDegradedMetricName = "progress_degraded_total"
	rollupFailureMetricName    = "course_rollup_failures_total"
)

const meterName = "lingo-services-progress.services"

var (
	attrComponent = attribute.Key("component")
	attrEventType = attribute.Key("event_type")
	attrErrorKind = attribute.Key("error_kind")
	attrResult    = attribute.Key("result")
)

type outboxMetrics struct {
	component string
}

func newOutboxMetrics(component string) *outboxMetrics {
	outboxMetricsMu.Lock()
	defer outboxMetricsMu.Unlock()
	if !outboxMetricsEnabled {
		initOutboxMetricsLocked()
	}
	if !outboxMetricsEnabled {
		return &outboxMetrics{}
	}
	return &outboxMetrics{component: component}
}

func meterProvider() metric.MeterProvider {
	provider := otel.GetMeterProvider()
	if provider == nil {
		provider = noopmetric.NewMeterProvider()
	}
	return provider
}

func initOutboxMetricsLocked() {
	meter := meterProvider().Meter(meterName + ".outbox")

	var err error
	outboxSuccessCounter, err = meter.Int64Counter(outboxSuccessMetricName,
		metric.WithDescription("Number of domain events enqueued to progress outbox"))
	if err != nil {
		outboxMetricsEnabled = false
		return
	}
	outboxFailureCounter, err = meter.Int64Counter(outboxFailureMetricName,
		metric.WithDescription("Number of progress outbox enqueue attempts that failed"))
	if err != nil {
		outboxMetricsEnabled = false
		return
	}
	outboxLagHistogram, err = meter.Float64Histogram(outboxLagMetricName,
		metric.WithDescription("Lag between event occurrence time and enqueue time"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		outboxMetricsEnabled = false
		return
	}
	outboxMetricsEnabled = true
}

func (m *outboxMetrics) recordSuccess(ctx context.Context, eventType string, occurredAt time.Time) {
	if m == nil || !outboxMetricsEnabled || outboxSuccessCounter == nil {
		return
	}
	attrs := metric.WithAttributes(
		attrComponent.String(m.component),
		attrEventType.String(eventType),
	)
	outboxSuccessCounter.Add(ctx, 1, attrs)
	if occurredAt.IsZero() || outboxLagHistogram == nil {
		return
	}
	lag := time.Since(occurredAt).Milliseconds()
	if lag < 0 {
		lag = 0
	}
	outboxLagHistogram.Record(ctx, float64(lag), attrs)
}

func (m *outboxMetrics) recordFailure(ctx context.Context, eventType string, err error) {
	if m == nil || !outboxMetricsEnabled || outboxFailureCounter == nil {
		return
	}
	outboxFailureCounter.Add(ctx, 1, metric.WithAttributes(
		attrComponent.String(m.component),
		attrEventType.String(eventType),
		attrErrorKind.String(errorKind(err)),
	))
}

// progressMetrics 记录进度写入、降级合并与课程汇总失败。
type progressMetrics struct {
	component string
}

func newProgressMetrics(component string) *progressMetrics {
	progressMetricsMu.Lock()
	defer progressMetricsMu.Unlock()
	if !progressMetricsEnabled {
		initProgressMetricsLocked()
	}
	if !progressMetricsEnabled {
		return &progressMetrics{}
	}
	return &progressMetrics{component: component}
}

func initProgressMetricsLocked() {
	meter := meterProvider().Meter(meterName + ".progress")

	var err error
	progressWriteCounter, err = meter.Int64Counter(progressWriteMetricName,
		metric.WithDescription("Number of lesson progress writes by result"))
	if err != nil {
		progressMetricsEnabled = false
		return
	}
	progressDegradedCounter, err = meter.Int64Counter(progressDegradedMetricName,
		metric.WithDescription("Number of merges that saw watched time without a known video duration"))
	if err != nil {
		progressMetricsEnabled = false
		return
	}
	rollupFailureCounter, err = meter.Int64Counter(rollupFailureMetricName,
		metric.WithDescription("Number of course rollups that failed after a lesson write"))
	if err != nil {
		progressMetricsEnabled = false
		return
	}
	progressMetricsEnabled = true
}

func (m *progressMetrics) recordWrite(ctx context.Context, err error) {
	if m == nil || !progressMetricsEnabled || progressWriteCounter == nil {
		return
	}
	result := "success"
	if err != nil {
		result = "failure"
	}
	progressWriteCounter.Add(ctx, 1, metric.WithAttributes(
		attrComponent.String(m.component),
		attrResult.String(result),
	))
}

func (m *progressMetrics) recordDegraded(ctx context.Context) {
	if m == nil || !progressMetricsEnabled || progressDegradedCounter == nil {
		return
	}
	progressDegradedCounter.Add(ctx, 1, metric.WithAttributes(attrComponent.String(m.component)))
}

func (m *progressMetrics) recordRollupFailure(ctx context.Context, err error) {
	if m == nil || !progressMetricsEnabled || rollupFailureCounter == nil {
		return
	}
	rollupFailureCounter.Add(ctx, 1, metric.WithAttributes(
		attrComponent.String(m.component),
		attrErrorKind.String(errorKind(err)),
	))
}

func errorKind(err error) string {
	if err == nil {
		return "unknown"
	}
	return fmt.Sprintf("%T", err)
}
