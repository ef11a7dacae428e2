// Package httpserver 负责装配入站 HTTP Server 及其中间件栈。
// 包括：追踪、日志、限流、恢复等中间件，以及可选的请求指标。
package httpserver

import (
	"net/http"

	"github.com/bionicotaku/lingo-services-progress/internal/controllers"
	configloader "github.com/bionicotaku/lingo-services-progress/internal/infrastructure/configloader"

	"github.com/bionicotaku/lingo-utils/gcjwt"
	"github.com/bionicotaku/lingo-utils/observability"
	obsTrace "github.com/bionicotaku/lingo-utils/observability/tracing"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/middleware"
	"github.com/go-kratos/kratos/v2/middleware/logging"
	"github.com/go-kratos/kratos/v2/middleware/metadata"
	"github.com/go-kratos/kratos/v2/middleware/ratelimit"
	"github.com/go-kratos/kratos/v2/middleware/recovery"
	khttp "github.com/go-kratos/kratos/v2/transport/http"
)

// HealthPath 是存活探针路径，不经过中间件链。
const HealthPath = "/healthz"

// NewHTTPServer 构造配置完整的 Kratos HTTP Server 实例。
//
// 中间件链（按执行顺序）：
// 1. obsTrace.Server() - OpenTelemetry 追踪
// 2. recovery.Recovery() - Panic 恢复
// 3. metadata.Server() - 按前缀传播网关注入的 header
// 4. gcjwt（可选）- 入站 JWT 校验
// 5. ratelimit.Server() - 限流保护
// 6. metrics.Server()（可选）- 请求计数与耗时
// 7. logging.Server() - 结构化日志
func NewHTTPServer(
	cfg configloader.ServerConfig,
	metricsCfg *observability.MetricsConfig,
	jwt gcjwt.ServerMiddleware,
	progress *controllers.ProgressHandler,
	lessons *controllers.LessonHandler,
	courses *controllers.CourseHandler,
	logger log.Logger,
) *khttp.Server {
	metricsEnabled := true
	if metricsCfg != nil {
		metricsEnabled = metricsCfg.Enabled
	}

	mws := []middleware.Middleware{
		obsTrace.Server(),
		recovery.Recovery(),
		metadata.Server(metadata.WithPropagatedPrefix(cfg.MetadataKeys...)),
	}
	if jwt != nil {
		mws = append(mws, middleware.Middleware(jwt))
	}
	mws = append(mws, ratelimit.Server())
	if metricsEnabled {
		mw, err := serverMetrics()
		if err != nil {
			log.NewHelper(logger).Warnf("http server metrics disabled: %v", err)
		} else {
			mws = append(mws, mw)
		}
	}
	mws = append(mws, logging.Server(logger))

	opts := []khttp.ServerOption{
		khttp.Middleware(mws...),
	}
	if cfg.Network != "" {
		opts = append(opts, khttp.Network(cfg.Network))
	}
	if cfg.Address != "" {
		opts = append(opts, khttp.Address(cfg.Address))
	}
	if cfg.Timeout > 0 {
		opts = append(opts, khttp.Timeout(cfg.Timeout))
	}
	srv := khttp.NewServer(opts...)
	srv.HandleFunc(HealthPath, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	controllers.RegisterHTTPRoutes(srv, progress, lessons, courses)
	return srv
}
