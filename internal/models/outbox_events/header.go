// Package outboxevents 定义学习进度领域事件及其 Outbox/Pub/Sub 编码。
// 本文件负责 message attributes：除信封字段外还带上 learner/lesson/course，供订阅端按 attribute 过滤。
package outboxevents

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
)

// ContentTypeJSON 是所有进度事件载荷的编码。
const ContentTypeJSON = "application/json"

// BuildAttributes 构造 Pub/Sub message attributes。schemaVersion 为空时使用 v1。
func BuildAttributes(event *DomainEvent, schemaVersion string, traceID string) map[string]string {
	if schemaVersion == "" {
		schemaVersion = SchemaVersionV1
	}
	attrs := map[string]string{
		"event_id":       event.EventID.String(),
		"event_type":     event.Kind.String(),
		"aggregate_id":   event.AggregateID.String(),
		"aggregate_type": event.AggregateType,
		"version":        strconv.FormatInt(event.Version, 10),
		"occurred_at":    event.OccurredAt.UTC().Format(time.RFC3339Nano),
		"schema_version": schemaVersion,
		"content_type":   ContentTypeJSON,
	}
	if traceID != "" {
		attrs["trace_id"] = traceID
	}

	switch p := event.Payload.(type) {
	case *LessonSectionCompleted:
		putID(attrs, "learner_id", p.LearnerID)
		putID(attrs, "lesson_id", p.LessonID)
		putID(attrs, "course_id", p.CourseID)
		attrs["section"] = p.Section
	case *LessonCompleted:
		putID(attrs, "learner_id", p.LearnerID)
		putID(attrs, "lesson_id", p.LessonID)
		putID(attrs, "course_id", p.CourseID)
	case *CourseCompleted:
		putID(attrs, "learner_id", p.LearnerID)
		putID(attrs, "course_id", p.CourseID)
	}
	return attrs
}

func putID(attrs map[string]string, key string, id uuid.UUID) {
	if id != uuid.Nil {
		attrs[key] = id.String()
	}
}

// TraceIDFromContext 返回当前 span 的 trace id，没有有效 span 时为空。
func TraceIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	sc := trace.SpanContextFromContext(ctx)
	if !sc.HasTraceID() {
		return ""
	}
	return sc.TraceID().String()
}
