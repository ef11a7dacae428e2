// Package outbox 将 progress.outbox_events 与 Pub/Sub 发布器组装为可运行的 Runner，
// 供 HTTP 进程内嵌或独立任务进程使用。
package outbox

import (
	"context"

	"github.com/bionicotaku/lingo-services-progress/internal/repositories"
	"github.com/bionicotaku/lingo-utils/gcpubsub"
	outboxcfg "github.com/bionicotaku/lingo-utils/outbox/config"
	outboxpublisher "github.com/bionicotaku/lingo-utils/outbox/publisher"
	"github.com/go-kratos/kratos/v2/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	noopmetric "go.opentelemetry.io/otel/metric/noop"
)

const meterName = "lingo-services-progress.outbox"

// ProvideRunner 构造进度事件发布器；未配置 topic 或初始化失败时返回 nil，事件留在表中等待下次启动。
func ProvideRunner(
	repo *repositories.OutboxRepository,
	publisher gcpubsub.Publisher,
	pubCfg gcpubsub.Config,
	cfg outboxcfg.Config,
	logger log.Logger,
) *outboxpublisher.Runner {
	if repo == nil || logger == nil {
		return nil
	}
	helper := log.NewHelper(logger)
	if pubCfg.TopicID == "" {
		helper.Warn("outbox publisher disabled: progress events topic not configured")
		return nil
	}

	normalized := cfg.Normalize()
	publisherCfg := normalized.Publisher

	meter := runnerMeter(publisherCfg)
	registerBacklogGauge(meter, repo, helper)

	if enabled(publisherCfg.LoggingEnabled) {
		helper.Infof("init outbox publisher: topic=%s schema=%s batch_size=%d workers=%d tick=%s",
			pubCfg.TopicID, normalized.Schema, publisherCfg.BatchSize, publisherCfg.Workers, publisherCfg.TickInterval)
	}

	runner, err := outboxpublisher.NewRunner(outboxpublisher.RunnerParams{
		Store:     repo.Shared(),
		Publisher: publisher,
		Config:    publisherCfg,
		Logger:    logger,
		Meter:     meter,
	})
	if err != nil {
		helper.Errorw("msg", "init outbox publisher failed", "topic", pubCfg.TopicID, "error", err)
		return nil
	}
	return runner
}

func runnerMeter(cfg outboxcfg.PublisherConfig) metric.Meter {
	if !enabled(cfg.MetricsEnabled) {
		return noopmetric.NewMeterProvider().Meter(meterName)
	}
	return otel.GetMeterProvider().Meter(meterName)
}

// registerBacklogGauge 暴露未发布事件数，采集失败时跳过本次观测。
func registerBacklogGauge(meter metric.Meter, repo *repositories.OutboxRepository, helper *log.Helper) {
	_, err := meter.Int64ObservableGauge(
		"progress_outbox_pending_events",
		metric.WithDescription("Unpublished rows in progress.outbox_events"),
		metric.WithInt64Callback(func(ctx context.Context, o metric.Int64Observer) error {
			pending, err := repo.CountPending(ctx)
			if err != nil {
				return nil
			}
			o.Observe(pending)
			return nil
		}),
	)
	if err != nil {
		helper.Warnf("register outbox backlog gauge: %v", err)
	}
}

func enabled(ptr *bool) bool {
	if ptr == nil {
		return true
	}
	return *ptr
}
