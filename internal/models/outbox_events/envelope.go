package outboxevents

import (
	"encoding/json"
	"fmt"
	"time"
)

// Envelope 是 Pub/Sub 上传输的 JSON 事件外壳，入站与出站共用。
type Envelope struct {
	EventID       string          `json:"event_id"`
	EventType     string          `json:"event_type"`
	AggregateID   string          `json:"aggregate_id"`
	AggregateType string          `json:"aggregate_type"`
	Version       int64           `json:"version"`
	OccurredAt    string          `json:"occurred_at"`
	Payload       json.RawMessage `json:"payload,omitempty"`
}

// Encode 将领域事件编码为 JSON Envelope。
func Encode(evt *DomainEvent) ([]byte, error) {
	if evt == nil {
		return nil, fmt.Errorf("events: nil domain event")
	}
	if evt.Kind == KindUnknown {
		return nil, ErrUnknownEventKind
	}
	switch evt.Payload.(type) {
	case *LessonSectionCompleted, *LessonCompleted, *CourseCompleted:
	default:
		return nil, fmt.Errorf("events: unsupported payload type %T", evt.Payload)
	}
	payload, err := json.Marshal(evt.Payload)
	if err != nil {
		return nil, fmt.Errorf("events: marshal payload: %w", err)
	}
	env := Envelope{
		EventID:       evt.EventID.String(),
		EventType:     evt.Kind.String(),
		AggregateID:   evt.AggregateID.String(),
		AggregateType: evt.AggregateType,
		Version:       evt.Version,
		OccurredAt:    evt.OccurredAt.UTC().Format(time.RFC3339Nano),
		Payload:       payload,
	}
	data, err := json.Marshal(env)
	if err != nil {
		return nil, fmt.Errorf("events: marshal envelope: %w", err)
	}
	return data, nil
}

// DecodeEnvelope 解析 JSON Envelope，载荷保持原始字节交由调用方按类型解码。
func DecodeEnvelope(data []byte) (*Envelope, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("events: empty payload")
	}
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("events: unmarshal envelope: %w", err)
	}
	if env.EventType == "" {
		return nil, fmt.Errorf("events: event_type missing")
	}
	return &env, nil
}
