package outbox_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	"cloud.google.com/go/pubsub/pstest"
	"cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/bionicotaku/lingo-services-progress/internal/repositories"
	"github.com/bionicotaku/lingo-services-progress/internal/tasks/outbox"
	"github.com/bionicotaku/lingo-utils/gcpubsub"
	outboxcfg "github.com/bionicotaku/lingo-utils/outbox/config"
	outboxpublisher "github.com/bionicotaku/lingo-utils/outbox/publisher"
	"github.com/docker/go-connections/nat"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	metricapi "go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

var defaultOutboxConfig = outboxcfg.Config{
	Schema: "progress",
	Inbox: outboxcfg.InboxConfig{
		SourceService:  "progress",
		MaxConcurrency: 4,
	},
}

type publisherEnv struct {
	ctx       context.Context
	pool      *pgxpool.Pool
	repo      *repositories.OutboxRepository
	server    *pstest.Server
	publisher gcpubsub.Publisher
	projectID string
	topicID   string
}

func newPublisherEnv(t *testing.T, createTopic bool) *publisherEnv {
	t.Helper()

	ctx := context.Background()
	dsn, terminate := startPostgres(ctx, t)
	t.Cleanup(terminate)

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { pool.Close() })
	applyMigrations(ctx, t, pool)

	server := pstest.NewServer()
	t.Cleanup(func() { _ = server.Close() })

	env := &publisherEnv{
		ctx:       ctx,
		pool:      pool,
		repo:      repositories.NewOutboxRepository(pool, log.NewStdLogger(io.Discard), defaultOutboxConfig),
		server:    server,
		projectID: "test-project",
		topicID:   "learning-progress-events",
	}
	if createTopic {
		env.createTopic(t)
	}
	_, cleanupPub, publisher := newTestPublisher(ctx, t, server, env.projectID, env.topicID)
	t.Cleanup(cleanupPub)
	env.publisher = publisher
	return env
}

func (e *publisherEnv) topicName() string {
	return fmt.Sprintf("projects/%s/topics/%s", e.projectID, e.topicID)
}

func (e *publisherEnv) createTopic(t *testing.T) {
	t.Helper()
	_, err := e.server.GServer.CreateTopic(e.ctx, &pubsubpb.Topic{Name: e.topicName()})
	require.NoError(t, err)
}

func (e *publisherEnv) enqueue(t *testing.T, eventType string, payload string) uuid.UUID {
	t.Helper()
	eventID := uuid.New()
	require.NoError(t, e.repo.Enqueue(e.ctx, nil, repositories.OutboxMessage{
		EventID:       eventID,
		AggregateType: "learning.lesson_progress",
		AggregateID:   uuid.New(),
		EventType:     eventType,
		Payload:       []byte(payload),
		Headers:       map[string]string{"schema_version": "v1"},
	}))
	return eventID
}

func (e *publisherEnv) deliveryState(eventID uuid.UUID) (published bool, attempts int32, ok bool) {
	var publishedAt pgtype.Timestamptz
	err := e.pool.QueryRow(e.ctx, `
		SELECT published_at, delivery_attempts
		FROM progress.outbox_events
		WHERE event_id = $1`, eventID).Scan(&publishedAt, &attempts)
	if err != nil {
		return false, 0, false
	}
	return publishedAt.Valid, attempts, true
}

func runInBackground(t *testing.T, run func(context.Context) error) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- run(ctx) }()
	t.Cleanup(func() {
		cancel()
		select {
		case err := <-errCh:
			require.True(t, err == nil || errors.Is(err, context.Canceled))
		case <-time.After(time.Second):
			t.Fatal("runner did not stop in time")
		}
	})
}

func TestPublisherRunner_PublishesSectionEvent(t *testing.T) {
	t.Parallel()
	env := newPublisherEnv(t, true)

	meter := sdkmetric.NewMeterProvider(sdkmetric.WithReader(sdkmetric.NewManualReader())).
		Meter("lingo-services-progress.outbox.test")
	runner := newPublisherRunner(t, env.repo, env.publisher, meter, outboxcfg.PublisherConfig{
		BatchSize:      4,
		TickInterval:   50 * time.Millisecond,
		InitialBackoff: 10 * time.Millisecond,
		MaxBackoff:     200 * time.Millisecond,
		MaxAttempts:    3,
		PublishTimeout: time.Second,
		Workers:        2,
		LockTTL:        time.Second,
	})

	eventID := env.enqueue(t, "learning.lesson.section_completed", `{"section":"theory"}`)
	runInBackground(t, runner.Run)

	require.Eventually(t, func() bool {
		published, attempts, ok := env.deliveryState(eventID)
		return ok && published && attempts == 1
	}, 5*time.Second, 50*time.Millisecond)

	msgs := env.server.Messages()
	require.Len(t, msgs, 1)
	require.Equal(t, env.topicName(), msgs[0].Topic)
	require.Equal(t, "learning.lesson.section_completed", msgs[0].Attributes["event_type"])
}

func TestPublisherRunner_RetriesUntilTopicExists(t *testing.T) {
	t.Parallel()
	env := newPublisherEnv(t, false)

	meter := sdkmetric.NewMeterProvider(sdkmetric.WithReader(sdkmetric.NewManualReader())).
		Meter("lingo-services-progress.outbox.test")
	runner := newPublisherRunner(t, env.repo, env.publisher, meter, outboxcfg.PublisherConfig{
		BatchSize:      2,
		TickInterval:   50 * time.Millisecond,
		InitialBackoff: 25 * time.Millisecond,
		MaxBackoff:     200 * time.Millisecond,
		MaxAttempts:    5,
		PublishTimeout: 150 * time.Millisecond,
		Workers:        1,
		LockTTL:        2 * time.Second,
	})

	eventID := env.enqueue(t, "learning.course.completed", `{}`)
	runInBackground(t, runner.Run)

	require.Eventually(t, func() bool {
		_, attempts, ok := env.deliveryState(eventID)
		return ok && attempts >= 1
	}, 3*time.Second, 50*time.Millisecond)

	published, _, ok := env.deliveryState(eventID)
	require.True(t, ok)
	require.False(t, published, "event should stay pending while topic is missing")

	env.createTopic(t)

	require.Eventually(t, func() bool {
		published, _, ok := env.deliveryState(eventID)
		return ok && published
	}, 6*time.Second, 100*time.Millisecond)
}

func TestProvideRunner_PublishesProgressEvents(t *testing.T) {
	t.Parallel()
	env := newPublisherEnv(t, true)

	cfg := defaultOutboxConfig
	cfg.Publisher = outboxcfg.PublisherConfig{
		BatchSize:      1,
		TickInterval:   20 * time.Millisecond,
		InitialBackoff: 10 * time.Millisecond,
		MaxBackoff:     200 * time.Millisecond,
		MaxAttempts:    5,
		PublishTimeout: 250 * time.Millisecond,
		Workers:        1,
		LockTTL:        time.Second,
		LoggingEnabled: boolPtr(false),
	}
	runner := outbox.ProvideRunner(env.repo, env.publisher,
		gcpubsub.Config{ProjectID: env.projectID, TopicID: env.topicID}, cfg, log.NewStdLogger(io.Discard))
	require.NotNil(t, runner)

	first := env.enqueue(t, "learning.lesson.completed", `{"lesson_id":"l1"}`)
	second := env.enqueue(t, "learning.course.completed", `{"course_id":"c1"}`)
	runInBackground(t, runner.Run)

	require.Eventually(t, func() bool {
		p1, _, ok1 := env.deliveryState(first)
		p2, _, ok2 := env.deliveryState(second)
		return ok1 && ok2 && p1 && p2
	}, 6*time.Second, 50*time.Millisecond)

	pending, err := env.repo.CountPending(env.ctx)
	require.NoError(t, err)
	require.Zero(t, pending)

	types := map[string]bool{}
	for _, msg := range env.server.Messages() {
		types[msg.Attributes["event_type"]] = true
	}
	require.True(t, types["learning.lesson.completed"])
	require.True(t, types["learning.course.completed"])
}

func TestProvideRunner_DisabledWithoutTopic(t *testing.T) {
	runner := outbox.ProvideRunner(&repositories.OutboxRepository{}, nil, gcpubsub.Config{}, defaultOutboxConfig, log.NewStdLogger(io.Discard))
	require.Nil(t, runner)
}

func newTestPublisher(ctx context.Context, t *testing.T, server *pstest.Server, projectID, topicID string) (*gcpubsub.Component, func(), gcpubsub.Publisher) {
	t.Helper()

	enableMetrics := true
	cfg := gcpubsub.Config{
		ProjectID:        projectID,
		TopicID:          topicID,
		EnableLogging:    boolPtr(false),
		EnableMetrics:    &enableMetrics,
		MeterName:        "lingo-services-progress.gcpubsub.test",
		EmulatorEndpoint: server.Addr,
	}

	component, cleanup, err := gcpubsub.NewComponent(ctx, cfg, gcpubsub.Dependencies{
		Logger: log.NewStdLogger(io.Discard),
	})
	require.NoError(t, err)

	publisher := gcpubsub.ProvidePublisher(component)
	return component, cleanup, publisher
}

func newPublisherRunner(t *testing.T, repo *repositories.OutboxRepository, publisher gcpubsub.Publisher, meter metricapi.Meter, cfg outboxcfg.PublisherConfig) *outboxpublisher.Runner {
	t.Helper()

	if cfg.BatchSize == 0 {
		cfg.BatchSize = 1
	}
	if cfg.MaxAttempts == 0 {
		cfg.MaxAttempts = 3
	}
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = 100 * time.Millisecond
	}
	logging := false
	metrics := true
	cfg.LoggingEnabled = &logging
	cfg.MetricsEnabled = &metrics

	runner, err := outboxpublisher.NewRunner(outboxpublisher.RunnerParams{
		Store:     repo.Shared(),
		Publisher: publisher,
		Config:    cfg,
		Logger:    log.NewStdLogger(io.Discard),
		Meter:     meter,
	})
	require.NoError(t, err)
	return runner
}

func startPostgres(ctx context.Context, t *testing.T) (string, func()) {
	t.Helper()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_PASSWORD": "postgres",
			"POSTGRES_USER":     "postgres",
			"POSTGRES_DB":       "progress",
		},
		WaitingFor: wait.ForSQL("5432/tcp", "pgx", func(host string, port nat.Port) string {
			return fmt.Sprintf("postgres://postgres:postgres@%s:%s/progress?sslmode=disable", host, port.Port())
		}).WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Skipf("skip outbox integration tests: cannot start postgres container: %v", err)
	}

	host, err := container.Host(ctx)
	require.NoError(t, err)

	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("postgres://postgres:postgres@%s:%s/progress?sslmode=disable", host, port.Port())
	cleanup := func() {
		termCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = container.Terminate(termCtx)
	}
	return dsn, cleanup
}

func applyMigrations(ctx context.Context, t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	migrationsDir := filepath.Join("..", "..", "..", "..", "migrations")
	files, err := os.ReadDir(migrationsDir)
	require.NoError(t, err)

	var paths []string
	for _, f := range files {
		if f.IsDir() || filepath.Ext(f.Name()) != ".sql" {
			continue
		}
		paths = append(paths, filepath.Join(migrationsDir, f.Name()))
	}
	sort.Strings(paths)

	for _, path := range paths {
		sqlBytes, readErr := os.ReadFile(path)
		require.NoError(t, readErr)
		_, execErr := pool.Exec(ctx, string(sqlBytes))
		require.NoErrorf(t, execErr, "apply migration %s", filepath.Base(path))
	}
}

func boolPtr(v bool) *bool {
	b := v
	return &b
}
