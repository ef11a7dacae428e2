package configloader

import (
	"fmt"
	"strings"
	"time"
)

const (
	defaultHandlerTimeout = 5 * time.Second
	defaultQueryTimeout   = 3 * time.Second
	defaultSchema         = "progress"
	defaultLessonTTL      = 10 * time.Minute
	defaultKeyPrefix      = "progress:lesson:"
)

// durations 顺序解析时长字符串，记录第一个错误。
type durations struct {
	err error
}

func (d *durations) parse(field, raw string) time.Duration {
	raw = strings.TrimSpace(raw)
	if raw == "" || d.err != nil {
		return 0
	}
	value, err := time.ParseDuration(raw)
	if err != nil {
		d.err = fmt.Errorf("invalid duration %s=%q: %w", field, raw, err)
		return 0
	}
	if value < 0 {
		d.err = fmt.Errorf("invalid duration %s=%q: must not be negative", field, raw)
		return 0
	}
	return value
}

func fromFile(b *bootstrap) (RuntimeConfig, error) {
	if b == nil {
		return RuntimeConfig{}, nil
	}
	d := &durations{}
	rc := RuntimeConfig{
		Server:        serverFromFile(d, b.Server),
		Database:      databaseFromFile(d, b.Data),
		Redis:         redisFromFile(d, b.Data),
		Observability: observabilityFromFile(d, b.Observability),
		Messaging:     messagingFromFile(d, b.Messaging, b.Data),
	}
	if d.err != nil {
		return RuntimeConfig{}, d.err
	}
	return rc, nil
}

func serverFromFile(d *durations, s *serverFile) ServerConfig {
	if s == nil {
		return ServerConfig{Handlers: handlerTimeoutFromFile(d, nil)}
	}
	server := ServerConfig{}
	if h := s.HTTP; h != nil {
		server.Network = h.Network
		server.Address = h.Addr
		server.Timeout = d.parse("server.http.timeout", h.Timeout)
	}
	if jwt := s.JWT; jwt != nil {
		server.JWT = ServerJWTConfig{
			ExpectedAudience: jwt.ExpectedAudience,
			SkipValidate:     jwt.SkipValidate,
			Required:         jwt.Required,
			HeaderKey:        firstNonEmpty(jwt.HeaderKey, "authorization"),
		}
	}
	server.Handlers = handlerTimeoutFromFile(d, s.Handlers)
	server.MetadataKeys = append([]string(nil), s.MetadataKeys...)
	return server
}

func handlerTimeoutFromFile(d *durations, h *handlersFile) HandlerTimeoutConfig {
	cfg := HandlerTimeoutConfig{
		Default: defaultHandlerTimeout,
		Command: defaultHandlerTimeout,
		Query:   defaultQueryTimeout,
	}
	if h == nil {
		return cfg
	}
	if v := d.parse("server.handlers.default_timeout", h.DefaultTimeout); v > 0 {
		cfg.Default = v
	}
	if v := d.parse("server.handlers.command_timeout", h.CommandTimeout); v > 0 {
		cfg.Command = v
	} else {
		cfg.Command = cfg.Default
	}
	if v := d.parse("server.handlers.query_timeout", h.QueryTimeout); v > 0 {
		cfg.Query = v
	} else {
		cfg.Query = firstNonZero(cfg.Query, cfg.Default)
	}
	return cfg
}

func databaseFromFile(d *durations, data *dataFile) DatabaseConfig {
	if data == nil || data.Postgres == nil {
		return DatabaseConfig{Schema: defaultSchema}
	}
	pg := data.Postgres
	cfg := DatabaseConfig{
		DSN:               pg.DSN,
		MaxOpenConns:      pg.MaxOpenConns,
		MinOpenConns:      pg.MinOpenConns,
		MaxConnLifetime:   d.parse("data.postgres.max_conn_lifetime", pg.MaxConnLifetime),
		MaxConnIdleTime:   d.parse("data.postgres.max_conn_idle_time", pg.MaxConnIdleTime),
		HealthCheckPeriod: d.parse("data.postgres.health_check_period", pg.HealthCheckPeriod),
		Schema:            firstNonEmpty(pg.Schema, defaultSchema),
		PreparedStmts:     pg.PreparedStatementsEnabled,
		PoolMetrics:       pg.PoolMetricsEnabled,
	}
	if tx := pg.Transaction; tx != nil {
		cfg.Transaction = TransactionConfig{
			DefaultIsolation: tx.DefaultIsolation,
			DefaultTimeout:   d.parse("data.postgres.transaction.default_timeout", tx.DefaultTimeout),
			LockTimeout:      d.parse("data.postgres.transaction.lock_timeout", tx.LockTimeout),
			MaxRetries:       tx.MaxRetries,
			MetricsEnabled:   tx.MetricsEnabled,
		}
	}
	return cfg
}

func redisFromFile(d *durations, data *dataFile) RedisConfig {
	cfg := RedisConfig{LessonTTL: defaultLessonTTL, KeyPrefix: defaultKeyPrefix}
	if data == nil || data.Redis == nil {
		return cfg
	}
	r := data.Redis
	cfg.Addr = r.Addr
	cfg.Password = r.Password
	cfg.DB = r.DB
	if ttl := d.parse("data.redis.lesson_ttl", r.LessonTTL); ttl > 0 {
		cfg.LessonTTL = ttl
	}
	cfg.KeyPrefix = firstNonEmpty(r.KeyPrefix, defaultKeyPrefix)
	return cfg
}

func observabilityFromFile(d *durations, obs *observabilityFile) ObservabilityConfig {
	if obs == nil {
		return ObservabilityConfig{}
	}
	return ObservabilityConfig{
		GlobalAttributes: mapCopy(obs.GlobalAttributes),
		Tracing:          tracingFromFile(d, obs.Tracing),
		Metrics:          metricsFromFile(d, obs.Metrics),
	}
}

func tracingFromFile(d *durations, t *tracingFile) TracingConfig {
	if t == nil {
		return TracingConfig{}
	}
	return TracingConfig{
		Enabled:            t.Enabled,
		Exporter:           t.Exporter,
		Endpoint:           t.Endpoint,
		Headers:            mapCopy(t.Headers),
		Insecure:           t.Insecure,
		SamplingRatio:      t.SamplingRatio,
		BatchTimeout:       d.parse("observability.tracing.batch_timeout", t.BatchTimeout),
		ExportTimeout:      d.parse("observability.tracing.export_timeout", t.ExportTimeout),
		MaxQueueSize:       t.MaxQueueSize,
		MaxExportBatchSize: t.MaxExportBatchSize,
		Required:           t.Required,
		Attributes:         mapCopy(t.Attributes),
	}
}

func metricsFromFile(d *durations, m *metricsFile) MetricsConfig {
	if m == nil {
		return MetricsConfig{}
	}
	return MetricsConfig{
		Enabled:             m.Enabled,
		Exporter:            m.Exporter,
		Endpoint:            m.Endpoint,
		Headers:             mapCopy(m.Headers),
		Insecure:            m.Insecure,
		Interval:            d.parse("observability.metrics.interval", m.Interval),
		DisableRuntimeStats: m.DisableRuntimeStats,
		Required:            m.Required,
		ResourceAttributes:  mapCopy(m.ResourceAttributes),
	}
}

func messagingFromFile(d *durations, msg *messagingFile, data *dataFile) MessagingConfig {
	cfg := MessagingConfig{Schema: defaultSchema}
	if data != nil && data.Postgres != nil {
		cfg.Schema = firstNonEmpty(data.Postgres.Schema, defaultSchema)
	}
	if msg == nil {
		return cfg
	}
	cfg.PubSub = pubsubFromFile(d, "messaging.pubsub", msg.PubSub)
	cfg.CourseEvents = pubsubFromFile(d, "messaging.course_events", msg.CourseEvents)
	cfg.Outbox = outboxFromFile(d, msg.Outbox)
	cfg.Inbox = inboxFromFile(msg.Inbox)
	return cfg
}

func pubsubFromFile(d *durations, prefix string, pb *pubsubFile) PubSubConfig {
	if pb == nil {
		return PubSubConfig{}
	}
	cfg := PubSubConfig{
		ProjectID:           pb.ProjectID,
		TopicID:             pb.TopicID,
		SubscriptionID:      pb.SubscriptionID,
		OrderingKeyEnabled:  pb.OrderingKeyEnabled,
		LoggingEnabled:      pb.LoggingEnabled,
		MetricsEnabled:      pb.MetricsEnabled,
		EmulatorEndpoint:    pb.EmulatorEndpoint,
		PublishTimeout:      d.parse(prefix+".publish_timeout", pb.PublishTimeout),
		ExactlyOnceDelivery: pb.ExactlyOnceDelivery,
	}
	if r := pb.Receive; r != nil {
		cfg.Receive = PubSubReceiveConfig{
			NumGoroutines:          r.NumGoroutines,
			MaxOutstandingMessages: r.MaxOutstandingMessages,
			MaxOutstandingBytes:    r.MaxOutstandingBytes,
			MaxExtension:           d.parse(prefix+".receive.max_extension", r.MaxExtension),
			MaxExtensionPeriod:     d.parse(prefix+".receive.max_extension_period", r.MaxExtensionPeriod),
		}
	}
	return cfg
}

func outboxFromFile(d *durations, ob *outboxFile) OutboxPublisherConfig {
	if ob == nil {
		return OutboxPublisherConfig{}
	}
	return OutboxPublisherConfig{
		BatchSize:      ob.BatchSize,
		TickInterval:   d.parse("messaging.outbox.tick_interval", ob.TickInterval),
		InitialBackoff: d.parse("messaging.outbox.initial_backoff", ob.InitialBackoff),
		MaxBackoff:     d.parse("messaging.outbox.max_backoff", ob.MaxBackoff),
		MaxAttempts:    ob.MaxAttempts,
		PublishTimeout: d.parse("messaging.outbox.publish_timeout", ob.PublishTimeout),
		Workers:        ob.Workers,
		LockTTL:        d.parse("messaging.outbox.lock_ttl", ob.LockTTL),
		LoggingEnabled: ob.LoggingEnabled,
		MetricsEnabled: ob.MetricsEnabled,
	}
}

func inboxFromFile(in *inboxFile) InboxConfig {
	if in == nil {
		return InboxConfig{}
	}
	return InboxConfig{
		SourceService:  in.SourceService,
		MaxConcurrency: in.MaxConcurrency,
		LoggingEnabled: in.LoggingEnabled,
		MetricsEnabled: in.MetricsEnabled,
	}
}

func mapCopy(src map[string]string) map[string]string {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[string]string, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

func firstNonZero(values ...time.Duration) time.Duration {
	for _, v := range values {
		if v > 0 {
			return v
		}
	}
	return 0
}

func fillDefaults(cfg *RuntimeConfig) {
	if cfg.Server.JWT.HeaderKey == "" {
		cfg.Server.JWT.HeaderKey = "authorization"
	}
	if len(cfg.Server.MetadataKeys) == 0 {
		cfg.Server.MetadataKeys = []string{
			"x-apigateway-api-userinfo",
			"x-md-",
		}
	}
	if cfg.Database.Schema == "" {
		cfg.Database.Schema = defaultSchema
	}
	if cfg.Messaging.Schema == "" {
		cfg.Messaging.Schema = cfg.Database.Schema
	}
}
