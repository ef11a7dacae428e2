package configloader

// bootstrap 对应 configs/config.yaml 的文件结构，时长字段使用 Go duration 字符串（如 "5s"）。
type bootstrap struct {
	Server        *serverFile        `json:"server"`
	Data          *dataFile          `json:"data" validate:"required"`
	Observability *observabilityFile `json:"observability"`
	Messaging     *messagingFile     `json:"messaging"`
}

type serverFile struct {
	HTTP         *httpFile     `json:"http"`
	JWT          *jwtFile      `json:"jwt"`
	Handlers     *handlersFile `json:"handlers"`
	MetadataKeys []string      `json:"metadata_keys"`
}

type httpFile struct {
	Network string `json:"network" validate:"omitempty,oneof=tcp tcp4 tcp6 unix"`
	Addr    string `json:"addr"`
	Timeout string `json:"timeout"`
}

type jwtFile struct {
	ExpectedAudience string `json:"expected_audience"`
	SkipValidate     bool   `json:"skip_validate"`
	Required         bool   `json:"required"`
	HeaderKey        string `json:"header_key"`
}

type handlersFile struct {
	DefaultTimeout string `json:"default_timeout"`
	CommandTimeout string `json:"command_timeout"`
	QueryTimeout   string `json:"query_timeout"`
}

type dataFile struct {
	Postgres *postgresFile `json:"postgres" validate:"required"`
	Redis    *redisFile    `json:"redis"`
}

type postgresFile struct {
	DSN                       string           `json:"dsn" validate:"required"`
	MaxOpenConns              int              `json:"max_open_conns" validate:"gte=0"`
	MinOpenConns              int              `json:"min_open_conns" validate:"gte=0"`
	MaxConnLifetime           string           `json:"max_conn_lifetime"`
	MaxConnIdleTime           string           `json:"max_conn_idle_time"`
	HealthCheckPeriod         string           `json:"health_check_period"`
	Schema                    string           `json:"schema"`
	PreparedStatementsEnabled bool             `json:"prepared_statements_enabled"`
	PoolMetricsEnabled        bool             `json:"pool_metrics_enabled"`
	Transaction               *transactionFile `json:"transaction"`
}

type transactionFile struct {
	DefaultIsolation string `json:"default_isolation" validate:"omitempty,oneof=read_committed repeatable_read serializable"`
	DefaultTimeout   string `json:"default_timeout"`
	LockTimeout      string `json:"lock_timeout"`
	MaxRetries       int    `json:"max_retries" validate:"gte=0"`
	MetricsEnabled   bool   `json:"metrics_enabled"`
}

type redisFile struct {
	Addr      string `json:"addr" validate:"omitempty,hostname_port"`
	Password  string `json:"password"`
	DB        int    `json:"db" validate:"gte=0,lte=15"`
	LessonTTL string `json:"lesson_ttl"`
	KeyPrefix string `json:"key_prefix"`
}

type observabilityFile struct {
	GlobalAttributes map[string]string `json:"global_attributes"`
	Tracing          *tracingFile      `json:"tracing"`
	Metrics          *metricsFile      `json:"metrics"`
}

type tracingFile struct {
	Enabled            bool              `json:"enabled"`
	Exporter           string            `json:"exporter"`
	Endpoint           string            `json:"endpoint"`
	Headers            map[string]string `json:"headers"`
	Insecure           bool              `json:"insecure"`
	SamplingRatio      float64           `json:"sampling_ratio" validate:"gte=0,lte=1"`
	BatchTimeout       string            `json:"batch_timeout"`
	ExportTimeout      string            `json:"export_timeout"`
	MaxQueueSize       int               `json:"max_queue_size"`
	MaxExportBatchSize int               `json:"max_export_batch_size"`
	Required           bool              `json:"required"`
	Attributes         map[string]string `json:"attributes"`
}

type metricsFile struct {
	Enabled             bool              `json:"enabled"`
	Exporter            string            `json:"exporter"`
	Endpoint            string            `json:"endpoint"`
	Headers             map[string]string `json:"headers"`
	Insecure            bool              `json:"insecure"`
	Interval            string            `json:"interval"`
	DisableRuntimeStats bool              `json:"disable_runtime_stats"`
	Required            bool              `json:"required"`
	ResourceAttributes  map[string]string `json:"resource_attributes"`
}

type messagingFile struct {
	PubSub       *pubsubFile `json:"pubsub"`
	CourseEvents *pubsubFile `json:"course_events"`
	Outbox       *outboxFile `json:"outbox"`
	Inbox        *inboxFile  `json:"inbox"`
}

type pubsubFile struct {
	ProjectID           string       `json:"project_id"`
	TopicID             string       `json:"topic_id"`
	SubscriptionID      string       `json:"subscription_id"`
	OrderingKeyEnabled  bool         `json:"ordering_key_enabled"`
	LoggingEnabled      bool         `json:"logging_enabled"`
	MetricsEnabled      bool         `json:"metrics_enabled"`
	EmulatorEndpoint    string       `json:"emulator_endpoint"`
	PublishTimeout      string       `json:"publish_timeout"`
	ExactlyOnceDelivery bool         `json:"exactly_once_delivery"`
	Receive             *receiveFile `json:"receive"`
}

type receiveFile struct {
	NumGoroutines          int    `json:"num_goroutines" validate:"gte=0"`
	MaxOutstandingMessages int    `json:"max_outstanding_messages" validate:"gte=0"`
	MaxOutstandingBytes    int    `json:"max_outstanding_bytes" validate:"gte=0"`
	MaxExtension           string `json:"max_extension"`
	MaxExtensionPeriod     string `json:"max_extension_period"`
}

type outboxFile struct {
	BatchSize      int    `json:"batch_size" validate:"gte=0"`
	TickInterval   string `json:"tick_interval"`
	InitialBackoff string `json:"initial_backoff"`
	MaxBackoff     string `json:"max_backoff"`
	MaxAttempts    int    `json:"max_attempts" validate:"gte=0"`
	PublishTimeout string `json:"publish_timeout"`
	Workers        int    `json:"workers" validate:"gte=0"`
	LockTTL        string `json:"lock_ttl"`
	LoggingEnabled *bool  `json:"logging_enabled"`
	MetricsEnabled *bool  `json:"metrics_enabled"`
}

type inboxFile struct {
	SourceService  string `json:"source_service"`
	MaxConcurrency int    `json:"max_concurrency" validate:"gte=0"`
	LoggingEnabled *bool  `json:"logging_enabled"`
	MetricsEnabled *bool  `json:"metrics_enabled"`
}
