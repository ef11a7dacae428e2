package configloader

import (
	"fmt"

	"github.com/bionicotaku/lingo-utils/gcjwt"
	"github.com/bionicotaku/lingo-utils/gclog"
	"github.com/bionicotaku/lingo-utils/gcpubsub"
	obswire "github.com/bionicotaku/lingo-utils/observability"
	outboxcfg "github.com/bionicotaku/lingo-utils/outbox/config"
	"github.com/bionicotaku/lingo-utils/pgxpoolx"
	txconfig "github.com/bionicotaku/lingo-utils/txmanager"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/wire"

	"github.com/bionicotaku/lingo-services-progress/internal/controllers"
	"github.com/bionicotaku/lingo-services-progress/internal/repositories"
)

var baseSet = wire.NewSet(
	LoadRuntimeConfig,
	ProvideServiceInfo,
	ProvideLoggerConfig,
	ProvideObservabilityConfig,
	ProvideObservabilityInfo,
	ProvideServerConfig,
	ProvideDatabaseConfig,
	ProvidePgxConfig,
	ProvideTxConfig,
	ProvideJWTConfig,
	ProvideLessonCacheConfig,
	ProvideMessagingConfig,
	ProvidePubSubDependencies,
	ProvideOutboxConfig,
	ProvideHandlerTimeouts,
)

// ProviderSet 暴露配置加载相关的依赖注入入口，Pub/Sub 指向进度事件出站 topic。
var ProviderSet = wire.NewSet(baseSet, ProvidePubSubConfig)

// InboxProviderSet 与 ProviderSet 相同，但 Pub/Sub 指向课程目录事件订阅。
var InboxProviderSet = wire.NewSet(baseSet, ProvideCourseEventsPubSubConfig)

// LoadRuntimeConfig 调用 Load 并供 Wire 使用。
func LoadRuntimeConfig(params Params) (RuntimeConfig, error) {
	return Load(params)
}

// ProvideServiceInfo 返回服务元信息。
func ProvideServiceInfo(cfg RuntimeConfig) ServiceInfo {
	return cfg.Service
}

// ProvideLoggerConfig 构造 gclog.Config。
func ProvideLoggerConfig(info ServiceInfo) gclog.Config {
	return gclog.Config{
		Service:              info.Name,
		Version:              info.Version,
		Environment:          info.Environment,
		InstanceID:           info.InstanceID,
		EnableSourceLocation: true,
		StaticLabels: map[string]string{
			"service.id": info.InstanceID,
		},
	}
}

// ProvideObservabilityConfig 将 ObservabilityConfig 转换为 obswire.ObservabilityConfig。
func ProvideObservabilityConfig(cfg RuntimeConfig) obswire.ObservabilityConfig {
	obs := cfg.Observability
	return obswire.ObservabilityConfig{
		Tracing:          obs.Tracing.toObswire(),
		Metrics:          obs.Metrics.toObswire(),
		GlobalAttributes: obs.GlobalAttributes,
	}
}

// toObswire 在未启用且未指定导出器时返回 nil，由 observability 使用默认值。
func (t TracingConfig) toObswire() *obswire.TracingConfig {
	if !t.Enabled && t.Endpoint == "" && t.Exporter == "" {
		return nil
	}
	return &obswire.TracingConfig{
		Enabled:            t.Enabled,
		Exporter:           t.Exporter,
		Endpoint:           t.Endpoint,
		Headers:            t.Headers,
		Insecure:           t.Insecure,
		SamplingRatio:      t.SamplingRatio,
		Attributes:         t.Attributes,
		BatchTimeout:       t.BatchTimeout,
		ExportTimeout:      t.ExportTimeout,
		MaxQueueSize:       t.MaxQueueSize,
		MaxExportBatchSize: t.MaxExportBatchSize,
		Required:           t.Required,
	}
}

func (m MetricsConfig) toObswire() *obswire.MetricsConfig {
	if !m.Enabled && m.Endpoint == "" && m.Exporter == "" {
		return nil
	}
	return &obswire.MetricsConfig{
		Enabled:             m.Enabled,
		Exporter:            m.Exporter,
		Endpoint:            m.Endpoint,
		Headers:             m.Headers,
		Insecure:            m.Insecure,
		Interval:            m.Interval,
		ResourceAttributes:  m.ResourceAttributes,
		DisableRuntimeStats: m.DisableRuntimeStats,
		Required:            m.Required,
	}
}

// ProvideObservabilityInfo 转换为 obswire.ServiceInfo。
func ProvideObservabilityInfo(info ServiceInfo) obswire.ServiceInfo {
	return obswire.ServiceInfo{
		Name:        info.Name,
		Version:     info.Version,
		Environment: info.Environment,
	}
}

// ProvideServerConfig 返回入站 HTTP 配置。
func ProvideServerConfig(cfg RuntimeConfig) ServerConfig {
	return cfg.Server
}

// ProvideDatabaseConfig 返回数据库配置。
func ProvideDatabaseConfig(cfg RuntimeConfig) DatabaseConfig {
	return cfg.Database
}

// ProvidePgxConfig 将 DatabaseConfig 转换为 pgxpoolx.Config。
func ProvidePgxConfig(db DatabaseConfig) pgxpoolx.Config {
	return pgxpoolx.Config{
		DSN:                db.DSN,
		Schema:             db.Schema,
		MaxConns:           int32(db.MaxOpenConns),
		MinConns:           int32(db.MinOpenConns),
		MaxConnLifetime:    db.MaxConnLifetime,
		MaxConnIdleTime:    db.MaxConnIdleTime,
		HealthCheckPeriod:  db.HealthCheckPeriod,
		EnablePreparedStmt: boolPtr(db.PreparedStmts),
		MetricsEnabled:     boolPtr(db.PoolMetrics),
	}
}

// ProvideTxConfig 构造 txmanager.Config。
func ProvideTxConfig(cfg RuntimeConfig) txconfig.Config {
	tx := cfg.Database.Transaction
	return txconfig.Config{
		DefaultIsolation: tx.DefaultIsolation,
		DefaultTimeout:   tx.DefaultTimeout,
		LockTimeout:      tx.LockTimeout,
		MaxRetries:       tx.MaxRetries,
		MetricsEnabled:   boolPtr(tx.MetricsEnabled),
	}
}

// ProvideHandlerTimeouts 将 Server 层配置映射为控制层使用的超时策略。
func ProvideHandlerTimeouts(cfg RuntimeConfig) controllers.HandlerTimeouts {
	handlers := cfg.Server.Handlers
	return controllers.HandlerTimeouts{
		Default: handlers.Default,
		Command: handlers.Command,
		Query:   handlers.Query,
	}
}

// ProvideJWTConfig 汇总服务端 JWT 配置，本服务不发起出站调用。
func ProvideJWTConfig(cfg RuntimeConfig) gcjwt.Config {
	var serverCfg *gcjwt.ServerConfig
	if cfg.Server.JWT.ExpectedAudience != "" || cfg.Server.JWT.Required || !cfg.Server.JWT.SkipValidate {
		serverCfg = &gcjwt.ServerConfig{
			ExpectedAudience: cfg.Server.JWT.ExpectedAudience,
			SkipValidate:     cfg.Server.JWT.SkipValidate,
			Required:         cfg.Server.JWT.Required,
			HeaderKey:        cfg.Server.JWT.HeaderKey,
		}
	}
	return gcjwt.Config{Server: serverCfg}
}

// ProvideLessonCacheConfig 将 Redis 配置映射为课时缓存配置。
func ProvideLessonCacheConfig(cfg RuntimeConfig) repositories.LessonCacheConfig {
	return repositories.LessonCacheConfig{
		Addr:      cfg.Redis.Addr,
		Password:  cfg.Redis.Password,
		DB:        cfg.Redis.DB,
		TTL:       cfg.Redis.LessonTTL,
		KeyPrefix: cfg.Redis.KeyPrefix,
	}
}

// ProvideMessagingConfig 返回消息相关配置。
func ProvideMessagingConfig(cfg RuntimeConfig) MessagingConfig {
	return cfg.Messaging
}

// ProvidePubSubConfig 将进度事件出站配置转换为 gcpubsub.Config。
func ProvidePubSubConfig(msg MessagingConfig) gcpubsub.Config {
	return msg.PubSub.toGCPubSub()
}

// ProvideCourseEventsPubSubConfig 将课程目录事件订阅配置转换为 gcpubsub.Config。
func ProvideCourseEventsPubSubConfig(msg MessagingConfig) gcpubsub.Config {
	return msg.CourseEvents.toGCPubSub()
}

// toGCPubSub 在缺少 project_id 时返回零值，调用方据此关闭 Pub/Sub。
func (p PubSubConfig) toGCPubSub() gcpubsub.Config {
	if p.ProjectID == "" {
		return gcpubsub.Config{}
	}
	recv := p.Receive
	out := gcpubsub.Config{
		ProjectID:           p.ProjectID,
		TopicID:             p.TopicID,
		SubscriptionID:      p.SubscriptionID,
		EmulatorEndpoint:    p.EmulatorEndpoint,
		PublishTimeout:      p.PublishTimeout,
		ExactlyOnceDelivery: p.ExactlyOnceDelivery,
		OrderingKeyEnabled:  boolPtr(p.OrderingKeyEnabled),
		EnableLogging:       boolPtr(p.LoggingEnabled),
		EnableMetrics:       boolPtr(p.MetricsEnabled),
		Receive: gcpubsub.ReceiveConfig{
			NumGoroutines:          recv.NumGoroutines,
			MaxOutstandingMessages: recv.MaxOutstandingMessages,
			MaxOutstandingBytes:    recv.MaxOutstandingBytes,
			MaxExtension:           recv.MaxExtension,
			MaxExtensionPeriod:     recv.MaxExtensionPeriod,
		},
	}
	return out.Normalize()
}

// ProvidePubSubDependencies 注入 Pub/Sub 依赖。
func ProvidePubSubDependencies(logger log.Logger) gcpubsub.Dependencies {
	return gcpubsub.Dependencies{Logger: logger}
}

// ProvideOutboxConfig 构造 outboxcfg.Config，参数非法时阻止进程启动。
func ProvideOutboxConfig(msg MessagingConfig) (outboxcfg.Config, error) {
	pub, in := msg.Outbox, msg.Inbox
	cfg := outboxcfg.Config{
		Schema: msg.Schema,
		Publisher: outboxcfg.PublisherConfig{
			BatchSize:      pub.BatchSize,
			TickInterval:   pub.TickInterval,
			InitialBackoff: pub.InitialBackoff,
			MaxBackoff:     pub.MaxBackoff,
			MaxAttempts:    pub.MaxAttempts,
			PublishTimeout: pub.PublishTimeout,
			Workers:        pub.Workers,
			LockTTL:        pub.LockTTL,
			LoggingEnabled: pub.LoggingEnabled,
			MetricsEnabled: pub.MetricsEnabled,
		},
		Inbox: outboxcfg.InboxConfig{
			SourceService:  in.SourceService,
			MaxConcurrency: in.MaxConcurrency,
			LoggingEnabled: in.LoggingEnabled,
			MetricsEnabled: in.MetricsEnabled,
		},
	}
	cfg = cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return outboxcfg.Config{}, fmt.Errorf("outbox config: %w", err)
	}
	return cfg, nil
}

func boolPtr(v bool) *bool {
	return &v
}
