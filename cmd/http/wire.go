//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

//go:generate go run github.com/google/wire/cmd/wire

package main

import (
	"context"

	"github.com/bionicotaku/lingo-services-progress/internal/controllers"
	configloader "github.com/bionicotaku/lingo-services-progress/internal/infrastructure/configloader"
	httpserver "github.com/bionicotaku/lingo-services-progress/internal/infrastructure/http_server"
	"github.com/bionicotaku/lingo-services-progress/internal/repositories"
	"github.com/bionicotaku/lingo-services-progress/internal/services"
	outboxtasks "github.com/bionicotaku/lingo-services-progress/internal/tasks/outbox"

	"github.com/bionicotaku/lingo-utils/gcjwt"
	"github.com/bionicotaku/lingo-utils/gclog"
	"github.com/bionicotaku/lingo-utils/gcpubsub"
	obswire "github.com/bionicotaku/lingo-utils/observability"
	"github.com/bionicotaku/lingo-utils/pgxpoolx"
	"github.com/bionicotaku/lingo-utils/txmanager"
	"github.com/go-kratos/kratos/v2"
	"github.com/google/wire"
)

// wireApp 构建整个 Kratos 应用。
//
// 依赖注入顺序:
//  1. 配置加载: configloader.ProviderSet 解析 YAML/.env 并派生各组件配置
//  2. 基础设施: gclog → observability → gcjwt → pgxpoolx → txmanager → gcpubsub
//  3. 业务层: repositories（含 Redis 课时缓存）→ services → controllers
//  4. 服务器: http_server.ProviderSet 组装 HTTP Server
//  5. 后台: outbox 发布器与 Server 同进程运行
func wireApp(context.Context, configloader.Params) (*kratos.App, func(), error) {
	panic(wire.Build(
		configloader.ProviderSet,
		gclog.ProviderSet,
		gcjwt.ProviderSet,
		obswire.ProviderSet,
		pgxpoolx.ProviderSet,
		txmanager.ProviderSet,
		gcpubsub.ProviderSet,
		httpserver.ProviderSet,
		repositories.ProviderSet,
		wire.Bind(new(services.LessonProgressStore), new(*repositories.LessonProgressRepository)),
		wire.Bind(new(services.LessonProjectionRepository), new(*repositories.LessonProjectionRepository)),
		wire.Bind(new(services.LessonCache), new(*repositories.LessonCache)),
		wire.Bind(new(services.CourseProgressRepository), new(*repositories.CourseProgressRepository)),
		wire.Bind(new(services.LessonContentRepository), new(*repositories.LessonContentRepository)),
		wire.Bind(new(services.OutboxEnqueuer), new(*repositories.OutboxRepository)),
		services.ProviderSet,
		wire.Bind(new(services.LessonProgressServiceInterface), new(*services.LessonProgressService)),
		wire.Bind(new(services.LessonDetailServiceInterface), new(*services.LessonDetailService)),
		wire.Bind(new(services.CourseProgressServiceInterface), new(*services.CourseProgressService)),
		controllers.ProviderSet,
		outboxtasks.ProvideRunner,
		newApp,
	))
}

// ━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
// Provider 速查
// ━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
//
//   - configloader.LoadRuntimeConfig(configloader.Params) (configloader.RuntimeConfig, error)
//       加载 .env 与 config.yaml，应用环境变量覆盖并填充默认值。
//
//   - configloader.ProvideServerConfig / ProvideHandlerTimeouts / ProvideLessonCacheConfig
//       派生 HTTP Server、handler 超时与 Redis 缓存配置。
//
//   - configloader.ProvidePubSubConfig(configloader.MessagingConfig) gcpubsub.Config
//       出站进度事件 topic；未配置 topic 时 outbox 发布器不会启动。
//
//   - repositories.NewRedisClient(repositories.LessonCacheConfig, log.Logger) (*redis.Client, func(), error)
//       Redis 地址为空时返回 nil client，缓存退化为直读数据库。
//
//   - services.NewLessonProgressService(LessonProgressStore, LessonLookup, CourseProgressUpdater,
//                                        OutboxEnqueuer, txmanager.Manager, log.Logger)
//       进度合并、事件写入 outbox，提交后触发课程汇总。
//
//   - httpserver.NewHTTPServer(configloader.ServerConfig, *observability.MetricsConfig,
//                              gcjwt.ServerMiddleware, *controllers.ProgressHandler,
//                              *controllers.LessonHandler, *controllers.CourseHandler, log.Logger) *khttp.Server
//       注册 /v1 路由与 /healthz，挂载追踪、JWT、限流、指标与日志中间件。
//
//   - outboxtasks.ProvideRunner(*repositories.OutboxRepository, gcpubsub.Publisher, gcpubsub.Config,
//                               outboxcfg.Config, log.Logger) *outboxpublisher.Runner
