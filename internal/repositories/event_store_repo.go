package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	outboxpkg "github.com/bionicotaku/lingo-utils/outbox"
	outboxcfg "github.com/bionicotaku/lingo-utils/outbox/config"
	"github.com/bionicotaku/lingo-utils/outbox/store"
	"github.com/bionicotaku/lingo-utils/txmanager"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// EventSchema 是 outbox_events / inbox_events 所在的默认 schema。
const EventSchema = "progress"

// ErrInvalidOutboxMessage 表示待写入的 outbox 消息缺少必填字段。
var ErrInvalidOutboxMessage = errors.New("invalid outbox message")

// OutboxMessage 描述需要写入 progress.outbox_events 的事件数据。
type OutboxMessage = store.Message

// OutboxEvent 表示从数据库读取的待发布事件。
type OutboxEvent = store.Event

// newEventStore 构造共享事件仓储，schema 为空时落在 progress。
// 按 schema 初始化失败时退回默认实现，保证进程仍可启动。
func newEventStore(db *pgxpool.Pool, logger log.Logger, cfg outboxcfg.Config, kind string) *store.Repository {
	schema := cfg.Schema
	if schema == "" {
		schema = EventSchema
	}
	repo, err := outboxpkg.NewRepository(db, logger, outboxpkg.RepositoryOptions{Schema: schema})
	if err != nil {
		log.NewHelper(logger).Errorw("msg", "init event store failed", "kind", kind, "schema", schema, "error", err)
		return store.NewRepository(db, logger)
	}
	return repo
}

// OutboxRepository 负责进度事件的事务内写入与发布状态维护。
type OutboxRepository struct {
	delegate *store.Repository
	now      func() time.Time
}

// NewOutboxRepository 构建 Outbox 仓储。
func NewOutboxRepository(db *pgxpool.Pool, logger log.Logger, cfg outboxcfg.Config) *OutboxRepository {
	return &OutboxRepository{
		delegate: newEventStore(db, logger, cfg, "outbox"),
		now:      time.Now,
	}
}

// Enqueue 在调用方事务内插入事件。
//
// event_id 与 event_type 必填；未指定 available_at 时立即可发布。
func (r *OutboxRepository) Enqueue(ctx context.Context, sess txmanager.Session, msg OutboxMessage) error {
	if msg.EventID == uuid.Nil || msg.EventType == "" {
		return fmt.Errorf("%w: event_id and event_type required", ErrInvalidOutboxMessage)
	}
	if msg.AggregateID == uuid.Nil {
		return fmt.Errorf("%w: aggregate_id required for %s", ErrInvalidOutboxMessage, msg.EventType)
	}
	if msg.AvailableAt.IsZero() {
		msg.AvailableAt = r.now().UTC()
	}
	if msg.Headers == nil {
		msg.Headers = map[string]string{}
	}
	if _, ok := msg.Headers["event_type"]; !ok {
		msg.Headers["event_type"] = msg.EventType
	}
	if err := r.delegate.Enqueue(ctx, sess, msg); err != nil {
		return fmt.Errorf("enqueue %s: %w", msg.EventType, err)
	}
	return nil
}

// ClaimPending 以 lockToken 锁定一批可发布事件。
func (r *OutboxRepository) ClaimPending(ctx context.Context, availableBefore, staleBefore time.Time, limit int, lockToken string) ([]OutboxEvent, error) {
	return r.delegate.ClaimPending(ctx, availableBefore, staleBefore, limit, lockToken)
}

// MarkPublished 标记事件已发布。
func (r *OutboxRepository) MarkPublished(ctx context.Context, sess txmanager.Session, eventID uuid.UUID, lockToken string, publishedAt time.Time) error {
	return r.delegate.MarkPublished(ctx, sess, eventID, lockToken, publishedAt)
}

// Reschedule 记录失败原因并推迟下一次发布。
func (r *OutboxRepository) Reschedule(ctx context.Context, sess txmanager.Session, eventID uuid.UUID, lockToken string, nextAvailable time.Time, lastErr string) error {
	return r.delegate.Reschedule(ctx, sess, eventID, lockToken, nextAvailable, lastErr)
}

// CountPending 返回尚未发布的事件数。
func (r *OutboxRepository) CountPending(ctx context.Context) (int64, error) {
	return r.delegate.CountPending(ctx)
}

// Shared 暴露底层实现给 outbox 发布器。
func (r *OutboxRepository) Shared() *store.Repository {
	return r.delegate
}

// InboxRepository 记录课程目录事件的消费状态，去重与处理标记由 inbox runner 通过 Shared 完成。
type InboxRepository struct {
	delegate *store.Repository
}

// NewInboxRepository 构建 Inbox 仓储。
func NewInboxRepository(db *pgxpool.Pool, logger log.Logger, cfg outboxcfg.Config) *InboxRepository {
	return &InboxRepository{delegate: newEventStore(db, logger, cfg, "inbox")}
}

// Shared 暴露底层实现给 inbox runner。
func (r *InboxRepository) Shared() *store.Repository {
	return r.delegate
}
