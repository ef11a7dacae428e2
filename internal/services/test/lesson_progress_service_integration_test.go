package services_test

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/bionicotaku/lingo-services-progress/internal/repositories"
	"github.com/bionicotaku/lingo-services-progress/internal/services"
	outboxcfg "github.com/bionicotaku/lingo-utils/outbox/config"
	"github.com/bionicotaku/lingo-utils/txmanager"
	"github.com/docker/go-connections/nat"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestLessonProgressService_ConcurrentTicksConverge(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	dsn, terminate := startPostgres(ctx, t)
	defer terminate()

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
	outboxRepo := repositories.NewOutboxRepository(pool, logger, outboxcfg.Config{Schema: "progress"})

	courseID := uuid.New()
	lessonID := uuid.New()
	total := 200.0
	err = lessonRepo.Upsert(ctx, nil, repositories.UpsertLessonInput{
		LessonID:             lessonID,
		CourseID:             courseID,
		Title:                "Concurrency",
		VideoDurationSeconds: &total,
		Position:             1,
		Version:              1,
	})
	require.NoError(t, err)

	lookup := services.NewLessonQueryService(lessonRepo, nil, logger)
	courses := services.NewCourseProgressService(courseRepo, lessonRepo, progressRepo, outboxRepo, txMgr, logger)
	svc := services.NewLessonProgressService(progressRepo, lookup, courses, outboxRepo, txMgr, logger)

	learnerID := uuid.New()
	const workers = 16
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			watched := float64((i + 1) * 10)
			update := services.ProgressUpdate{VideoWatchedSeconds: &watched, VideoTotalSeconds: &total}
			if i == 3 {
				update.TheoryCompleted = ptrBool(true)
			}
			if i == 7 {
				update.MCQCompleted = ptrBool(true)
			}
			_, err := svc.UpdateProgress(ctx, learnerID, lessonID, update)
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	record, err := svc.GetProgress(ctx, learnerID, lessonID)
	require.NoError(t, err)
	require.NotNil(t, record)
	require.InDelta(t, 160, record.VideoWatchedSeconds, 1e-9)
	require.InDelta(t, 80, record.VideoProgressPercent, 1e-9)
	require.True(t, record.TheoryCompleted)
	require.True(t, record.MCQCompleted)
	require.False(t, record.PracticalCompleted)
	// 80 * 0.4 + 20 + 20
	require.Equal(t, 72, record.OverallProgressPercent)
	require.Equal(t, int64(workers+1), record.Version)

	view, err := courses.GetCourseProgress(ctx, learnerID, courseID)
	require.NoError(t, err)
	require.Equal(t, int32(1), view.Course.TotalLessons)
	require.Equal(t, int32(72), view.Course.ProgressPercent)
	require.Nil(t, view.Course.CompletedAt)
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
		t.Skipf("skip service integration test: cannot start postgres container: %v", err)
	}

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("postgres://postgres:postgres@%s:%s/progress?sslmode=disable", host, port.Port())
	return dsn, func() {
		termCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = container.Terminate(termCtx)
	}
}

func applyMigrations(ctx context.Context, t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	migrationsDir := filepath.Join("..", "..", "..", "migrations")
	files, err := os.ReadDir(migrationsDir)
	require.NoError(t, err)

	paths := make([]string, 0, len(files))
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
