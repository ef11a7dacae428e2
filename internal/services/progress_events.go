package services

import (
	"context"
	"fmt"

	outboxevents "github.com/bionicotaku/lingo-services-progress/internal/models/outbox_events"
	"github.com/bionicotaku/lingo-services-progress/internal/repositories"
	"github.com/bionicotaku/lingo-utils/txmanager"
)

// OutboxEnqueuer 抽象事务内写入 outbox 的能力。
type OutboxEnqueuer interface {
	Enqueue(ctx context.Context, sess txmanager.Session, msg repositories.OutboxMessage) error
}

// eventEmitter 在调用方事务内把领域事件写入 outbox 并记录指标。
type eventEmitter struct {
	outbox  OutboxEnqueuer
	metrics *outboxMetrics
}

func newEventEmitter(outbox OutboxEnqueuer, component string) *eventEmitter {
	return &eventEmitter{
		outbox:  outbox,
		metrics: newOutboxMetrics(component),
	}
}

func (e *eventEmitter) enqueueEvent(ctx context.Context, sess txmanager.Session, evt *outboxevents.DomainEvent) error {
	if e == nil || evt == nil || e.outbox == nil {
		return nil
	}
	msg, err := buildOutboxMessage(ctx, evt)
	if err != nil {
		e.metrics.recordFailure(ctx, evt.Kind.String(), err)
		return err
	}
	if err := e.outbox.Enqueue(ctx, sess, msg); err != nil {
		e.metrics.recordFailure(ctx, evt.Kind.String(), err)
		return err
	}
	e.metrics.recordSuccess(ctx, evt.Kind.String(), evt.OccurredAt)
	return nil
}

func buildOutboxMessage(ctx context.Context, evt *outboxevents.DomainEvent) (repositories.OutboxMessage, error) {
	data, err := outboxevents.Encode(evt)
	if err != nil {
		return repositories.OutboxMessage{}, fmt.Errorf("encode event payload: %w", err)
	}
	return repositories.OutboxMessage{
		EventID:       evt.EventID,
		AggregateType: evt.AggregateType,
		AggregateID:   evt.AggregateID,
		EventType:     evt.Kind.String(),
		Payload:       data,
		Headers:       outboxevents.BuildAttributes(evt, outboxevents.SchemaVersionV1, outboxevents.TraceIDFromContext(ctx)),
		AvailableAt:   evt.OccurredAt,
	}, nil
}
