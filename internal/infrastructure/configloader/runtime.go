// Package configloader 加载 YAML 与 .env 配置，归一化为 RuntimeConfig 并派生各组件配置供 Wire 装配。
package configloader

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// RuntimeConfig 是进度服务运行期的完整配置。
type RuntimeConfig struct {
	Service       ServiceInfo
	Server        ServerConfig
	Database      DatabaseConfig
	Redis         RedisConfig
	Observability ObservabilityConfig
	Messaging     MessagingConfig
}

// ServiceInfo 标识服务实例。
type ServiceInfo struct {
	Name        string `validate:"required"`
	Version     string
	Environment string
	InstanceID  string
}

// ServerConfig 是 HTTP 入口配置。
type ServerConfig struct {
	Network      string
	Address      string `validate:"omitempty,hostname_port"`
	Timeout      time.Duration
	JWT          ServerJWTConfig
	Handlers     HandlerTimeoutConfig
	MetadataKeys []string
}

// ServerJWTConfig 控制入站 JWT 校验；网关已校验时可 SkipValidate。
type ServerJWTConfig struct {
	ExpectedAudience string
	SkipValidate     bool
	Required         bool
	HeaderKey        string
}

// HandlerTimeoutConfig 区分写入（进度上报）与查询的超时。
type HandlerTimeoutConfig struct {
	Default time.Duration `validate:"gte=0"`
	Command time.Duration `validate:"gte=0"`
	Query   time.Duration `validate:"gte=0"`
}

// DatabaseConfig 描述 PostgreSQL 连接池与事务默认值。
type DatabaseConfig struct {
	DSN               string `validate:"required"`
	MaxOpenConns      int    `validate:"gte=0"`
	MinOpenConns      int    `validate:"gte=0"`
	MaxConnLifetime   time.Duration
	MaxConnIdleTime   time.Duration
	HealthCheckPeriod time.Duration
	Schema            string
	PreparedStmts     bool
	PoolMetrics       bool
	Transaction       TransactionConfig
}

// TransactionConfig 是 txmanager 的默认事务策略。进度写入依赖行锁，LockTimeout 建议显式设置。
type TransactionConfig struct {
	DefaultIsolation string
	DefaultTimeout   time.Duration
	LockTimeout      time.Duration
	MaxRetries       int `validate:"gte=0"`
	MetricsEnabled   bool
}

// RedisConfig 描述课时读穿缓存。Addr 为空时缓存关闭。
type RedisConfig struct {
	Addr      string `validate:"omitempty,hostname_port"`
	Password  string
	DB        int           `validate:"gte=0"`
	LessonTTL time.Duration `validate:"gte=0"`
	KeyPrefix string
}

// ObservabilityConfig 聚合 tracing 与 metrics。
type ObservabilityConfig struct {
	GlobalAttributes map[string]string
	Tracing          TracingConfig
	Metrics          MetricsConfig
}

// TracingConfig 对应 observability.TracingConfig。
type TracingConfig struct {
	Enabled            bool
	Exporter           string
	Endpoint           string
	Headers            map[string]string
	Insecure           bool
	SamplingRatio      float64 `validate:"gte=0,lte=1"`
	BatchTimeout       time.Duration
	ExportTimeout      time.Duration
	MaxQueueSize       int
	MaxExportBatchSize int
	Required           bool
	Attributes         map[string]string
}

// MetricsConfig 对应 observability.MetricsConfig，同时控制 HTTP 请求指标。
type MetricsConfig struct {
	Enabled             bool
	Exporter            string
	Endpoint            string
	Headers             map[string]string
	Insecure            bool
	Interval            time.Duration
	DisableRuntimeStats bool
	Required            bool
	ResourceAttributes  map[string]string
}

// MessagingConfig 包含出站进度事件、入站课程事件以及 outbox/inbox 参数。
type MessagingConfig struct {
	Schema       string
	PubSub       PubSubConfig
	CourseEvents PubSubConfig
	Outbox       OutboxPublisherConfig
	Inbox        InboxConfig
}

// PubSubConfig 描述单个 topic/subscription。
type PubSubConfig struct {
	ProjectID           string
	TopicID             string
	SubscriptionID      string
	OrderingKeyEnabled  bool
	LoggingEnabled      bool
	MetricsEnabled      bool
	EmulatorEndpoint    string
	PublishTimeout      time.Duration
	ExactlyOnceDelivery bool
	Receive             PubSubReceiveConfig
}

// PubSubReceiveConfig 控制订阅拉取并发。
type PubSubReceiveConfig struct {
	NumGoroutines          int `validate:"gte=0"`
	MaxOutstandingMessages int `validate:"gte=0"`
	MaxOutstandingBytes    int `validate:"gte=0"`
	MaxExtension           time.Duration
	MaxExtensionPeriod     time.Duration
}

// OutboxPublisherConfig 是进度事件发布器参数，零值由 outboxcfg.Normalize 补齐。
type OutboxPublisherConfig struct {
	BatchSize      int `validate:"gte=0"`
	TickInterval   time.Duration
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
	MaxAttempts    int `validate:"gte=0"`
	PublishTimeout time.Duration
	Workers        int `validate:"gte=0"`
	LockTTL        time.Duration
	LoggingEnabled *bool
	MetricsEnabled *bool
}

// InboxConfig 是课程事件消费参数。SourceService 为空时 inbox 任务不启动。
type InboxConfig struct {
	SourceService  string
	MaxConcurrency int `validate:"gte=0"`
	LoggingEnabled *bool
	MetricsEnabled *bool
}

// Validate 校验字段取值以及跨段落约束。
func (c RuntimeConfig) Validate() error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(c); err != nil {
		return err
	}
	if c.Messaging.Inbox.SourceService != "" && c.Messaging.CourseEvents.SubscriptionID == "" {
		return fmt.Errorf("messaging.course_events.subscription_id required when inbox.source_service is set")
	}
	if c.Messaging.PubSub.TopicID != "" && c.Messaging.PubSub.ProjectID == "" {
		return fmt.Errorf("messaging.pubsub.project_id required when topic_id is set")
	}
	return nil
}
