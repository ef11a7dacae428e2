package courseinbox

import (
	"github.com/bionicotaku/lingo-services-progress/internal/repositories"
	"github.com/bionicotaku/lingo-utils/gcpubsub"
	outboxcfg "github.com/bionicotaku/lingo-utils/outbox/config"
	"github.com/bionicotaku/lingo-utils/txmanager"
	"github.com/go-kratos/kratos/v2/log"
)

// ProvideTask 根据配置和依赖构造课程目录 Inbox 任务；未配置 source_service 时返回 nil。
func ProvideTask(
	subscriber gcpubsub.Subscriber,
	inboxRepo *repositories.InboxRepository,
	lessons *repositories.LessonProjectionRepository,
	content *repositories.LessonContentRepository,
	cache *repositories.LessonCache,
	tx txmanager.Manager,
	cfg outboxcfg.Config,
	logger log.Logger,
) *Task {
	normalized := cfg.Normalize()
	if normalized.Inbox.SourceService == "" {
		log.NewHelper(logger).Warn("course inbox: skip initialization, source_service not configured")
		return nil
	}
	return NewTask(TaskParams{
		Subscriber: subscriber,
		InboxRepo:  inboxRepo,
		Lessons:    lessons,
		Content:    content,
		Cache:      cache,
		TxManager:  tx,
		Logger:     logger,
		Config:     normalized.Inbox,
	})
}
