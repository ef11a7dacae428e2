package outbox_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"testing"
	"time"

	"cloud.google.com/go/pubsub/pstest"
	"cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	outboxevents "github.com/bionicotaku/lingo-services-progress/internal/models/outbox_events"
	"github.com/bionicotaku/lingo-services-progress/internal/repositories"
	"github.com/bionicotaku/lingo-services-progress/internal/services"
	"github.com/bionicotaku/lingo-services-progress/internal/tasks/outbox"
	"github.com/bionicotaku/lingo-utils/gcpubsub"
	outboxcfg "github.com/bionicotaku/lingo-utils/outbox/config"
	"github.com/bionicotaku/lingo-utils/txmanager"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

type lifecycleTestEnv struct {
	ctx        context.Context
	pool       *pgxpool.Pool
	outboxRepo *repositories.OutboxRepository
	lessonRepo *repositories.LessonProjectionRepository
	progress   *services.LessonProgressService
	courses    *services.CourseProgressService
	server     *pstest.Server
}

func TestOutboxPublisher_EndToEndLessonCompletion(t *testing.T) {
	env := newLifecycleTestEnv(t)

	courseID := uuid.New()
	lessonID := uuid.New()
	learnerID := uuid.New()
	total := 120.0
	require.NoError(t, env.lessonRepo.Upsert(env.ctx, nil, repositories.UpsertLessonInput{
		LessonID:             lessonID,
		CourseID:             courseID,
		Title:                "Only lesson",
		VideoDurationSeconds: &total,
		Position:             1,
		Version:              1,
	}))

	halfway := 60.0
	record, err := env.progress.UpdateProgress(env.ctx, learnerID, lessonID, services.ProgressUpdate{
		VideoWatchedSeconds: &halfway,
		VideoTotalSeconds:   &total,
		TheoryCompleted:     boolPtr(true),
	})
	require.NoError(t, err)
	require.Equal(t, 40, record.OverallProgressPercent)

	record, err = env.progress.UpdateProgress(env.ctx, learnerID, lessonID, services.ProgressUpdate{
		VideoWatchedSeconds: &total,
		VideoCompleted:      boolPtr(true),
		PracticalCompleted:  boolPtr(true),
		MCQCompleted:        boolPtr(true),
	})
	require.NoError(t, err)
	require.Equal(t, 100, record.OverallProgressPercent)
	require.NotNil(t, record.CompletedAt)

	// 重复上报不会产生新事件。
	_, err = env.progress.UpdateProgress(env.ctx, learnerID, lessonID, services.ProgressUpdate{
		VideoWatchedSeconds: &total,
		MCQCompleted:        boolPtr(true),
	})
	require.NoError(t, err)

	const expected = 6
	msgs := waitForMessages(t, env.server, expected)
	envelopes := decodeMessages(t, msgs)
	require.Len(t, envelopes, expected)

	counts := map[string]int{}
	var sections []string
	for i, evt := range envelopes {
		counts[evt.EventType]++
		require.Equal(t, learnerID.String(), evt.AggregateID)
		require.Equal(t, evt.EventType, msgs[i].Attributes["event_type"])

		switch evt.EventType {
		case "learning.lesson.section_completed":
			require.Equal(t, outboxevents.AggregateTypeLessonProgress, evt.AggregateType)
			var payload outboxevents.LessonSectionCompleted
			require.NoError(t, json.Unmarshal(evt.Payload, &payload))
			require.Equal(t, lessonID, payload.LessonID)
			require.Equal(t, courseID, payload.CourseID)
			sections = append(sections, payload.Section)
		case "learning.lesson.completed":
			var payload outboxevents.LessonCompleted
			require.NoError(t, json.Unmarshal(evt.Payload, &payload))
			require.Equal(t, lessonID, payload.LessonID)
			require.False(t, payload.CompletedAt.IsZero())
		case "learning.course.completed":
			require.Equal(t, outboxevents.AggregateTypeCourseProgress, evt.AggregateType)
			var payload outboxevents.CourseCompleted
			require.NoError(t, json.Unmarshal(evt.Payload, &payload))
			require.Equal(t, courseID, payload.CourseID)
			require.Equal(t, int32(1), payload.TotalLessons)
			require.Equal(t, int32(1), payload.CompletedLessons)
		default:
			t.Fatalf("unexpected event type %s", evt.EventType)
		}
	}

	require.Equal(t, 4, counts["learning.lesson.section_completed"])
	require.Equal(t, 1, counts["learning.lesson.completed"])
	require.Equal(t, 1, counts["learning.course.completed"])
	sort.Strings(sections)
	require.Equal(t, []string{"mcq", "practical", "theory", "video"}, sections)

	require.Eventually(t, func() bool {
		pending, err := env.outboxRepo.CountPending(env.ctx)
		return err == nil && pending == 0
	}, 5*time.Second, 50*time.Millisecond)

	view, err := env.courses.GetCourseProgress(env.ctx, learnerID, courseID)
	require.NoError(t, err)
	require.Equal(t, int32(100), view.Course.ProgressPercent)
	require.NotNil(t, view.Course.CompletedAt)

	// 发布完成后不应再有额外消息。
	time.Sleep(200 * time.Millisecond)
	require.Len(t, env.server.Messages(), expected)
}

func newLifecycleTestEnv(t *testing.T) *lifecycleTestEnv {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	dsn, terminate := startPostgres(ctx, t)
	t.Cleanup(terminate)

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { pool.Close() })
	applyMigrations(ctx, t, pool)

	logger := log.NewStdLogger(io.Discard)
	txMgr, err := txmanager.NewManager(pool, txmanager.Config{}, txmanager.Dependencies{Logger: logger})
	require.NoError(t, err)

	progressRepo := repositories.NewLessonProgressRepository(pool, logger)
	lessonRepo := repositories.NewLessonProjectionRepository(pool, logger)
	courseRepo := repositories.NewCourseProgressRepository(pool, logger)
	outboxRepo := repositories.NewOutboxRepository(pool, logger, defaultOutboxConfig)

	lookup := services.NewLessonQueryService(lessonRepo, nil, logger)
	courses := services.NewCourseProgressService(courseRepo, lessonRepo, progressRepo, outboxRepo, txMgr, logger)
	progress := services.NewLessonProgressService(progressRepo, lookup, courses, outboxRepo, txMgr, logger)

	server := pstest.NewServer()
	t.Cleanup(func() { _ = server.Close() })

	projectID := "test-project"
	topicID := "learning-progress-events"
	_, err = server.GServer.CreateTopic(ctx, &pubsubpb.Topic{Name: fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)})
	require.NoError(t, err)

	_, cleanupPub, publisher := newTestPublisher(ctx, t, server, projectID, topicID)
	t.Cleanup(cleanupPub)

	cfg := defaultOutboxConfig
	cfg.Publisher = outboxcfg.PublisherConfig{
		BatchSize:      8,
		TickInterval:   25 * time.Millisecond,
		InitialBackoff: 10 * time.Millisecond,
		MaxBackoff:     200 * time.Millisecond,
		MaxAttempts:    5,
		PublishTimeout: time.Second,
		Workers:        1,
		LockTTL:        2 * time.Second,
		LoggingEnabled: boolPtr(false),
	}
	runner := outbox.ProvideRunner(outboxRepo, publisher, gcpubsub.Config{ProjectID: projectID, TopicID: topicID}, cfg, logger)
	require.NotNil(t, runner)

	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = runner.Run(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		select {
		case <-done:
		case <-time.After(2 * time.Second):
		}
	})

	return &lifecycleTestEnv{
		ctx:        ctx,
		pool:       pool,
		outboxRepo: outboxRepo,
		lessonRepo: lessonRepo,
		progress:   progress,
		courses:    courses,
		server:     server,
	}
}

func waitForMessages(t *testing.T, server *pstest.Server, want int) []*pstest.Message {
	t.Helper()

	var msgs []*pstest.Message
	require.Eventually(t, func() bool {
		msgs = server.Messages()
		return len(msgs) >= want
	}, 10*time.Second, 50*time.Millisecond)
	return msgs
}

func decodeMessages(t *testing.T, msgs []*pstest.Message) []*outboxevents.Envelope {
	t.Helper()

	out := make([]*outboxevents.Envelope, 0, len(msgs))
	for _, msg := range msgs {
		env, err := outboxevents.DecodeEnvelope(msg.Data)
		require.NoError(t, err)
		out = append(out, env)
	}
	return out
}
