package courseinbox

import (
	"context"
	"time"

	outboxevents "github.com/bionicotaku/lingo-services-progress/internal/models/outbox_events"
	"github.com/bionicotaku/lingo-services-progress/internal/repositories"
	"github.com/bionicotaku/lingo-utils/gcpubsub"
	outboxcfg "github.com/bionicotaku/lingo-utils/outbox/config"
	"github.com/bionicotaku/lingo-utils/outbox/inbox"
	"github.com/bionicotaku/lingo-utils/txmanager"
	"github.com/go-kratos/kratos/v2/log"
)

// Task 封装课程目录事件的 Inbox 消费逻辑。
type Task struct {
	runner *inbox.Runner[outboxevents.Envelope]
}

// TaskParams 聚合构造 Task 所需依赖。Cache 可为空。
type TaskParams struct {
	Subscriber gcpubsub.Subscriber
	InboxRepo  *repositories.InboxRepository
	Lessons    *repositories.LessonProjectionRepository
	Content    *repositories.LessonContentRepository
	Cache      *repositories.LessonCache
	TxManager  txmanager.Manager
	Logger     log.Logger
	Config     outboxcfg.InboxConfig
}

// NewTask 构造 Inbox Runner，依赖不完整时返回 nil。
func NewTask(params TaskParams) *Task {
	if params.Subscriber == nil || params.InboxRepo == nil || params.Lessons == nil || params.Content == nil || params.TxManager == nil {
		return nil
	}

	cfg := params.Config.Normalize()
	metrics := newInboxMetrics(boolValue(cfg.MetricsEnabled, true))

	var cache lessonInvalidator
	if params.Cache != nil {
		cache = params.Cache
	}
	handler := newEventHandler(params.Lessons, params.Content, cache, params.Logger, metrics)

	runner, err := inbox.NewRunner[outboxevents.Envelope](inbox.RunnerParams[outboxevents.Envelope]{
		Store:      params.InboxRepo.Shared(),
		Subscriber: params.Subscriber,
		TxManager:  params.TxManager,
		Decoder:    newDecoder(),
		Handler:    handler,
		Config:     cfg,
		Logger:     params.Logger,
	})
	if err != nil {
		log.NewHelper(params.Logger).Errorw("msg", "course inbox: init runner failed", "error", err)
		return nil
	}

	task := &Task{runner: runner}
	task.runner.WithClock(time.Now)
	return task
}

// Run 启动消费循环，直到 ctx 取消或订阅结束。
func (t *Task) Run(ctx context.Context) error {
	if t == nil || t.runner == nil {
		return nil
	}
	return t.runner.Run(ctx)
}

// WithClock 提供测试替换时间。
func (t *Task) WithClock(fn func() time.Time) {
	if t == nil || t.runner == nil || fn == nil {
		return
	}
	t.runner.WithClock(fn)
}

func boolValue(ptr *bool, def bool) bool {
	if ptr == nil {
		return def
	}
	return *ptr
}
