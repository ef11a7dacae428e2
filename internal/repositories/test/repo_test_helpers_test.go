package repositories_test

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/bionicotaku/lingo-utils/txmanager"
	"github.com/docker/go-connections/nat"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const testDatabase = "progress"

func postgresDSN(host, port string) string {
	return fmt.Sprintf("postgres://postgres:postgres@%s:%s/%s?sslmode=disable", host, port, testDatabase)
}

// startPostgres 启动一次性 Postgres 容器；Docker 不可用时跳过测试。
func startPostgres(ctx context.Context, t *testing.T) (string, func()) {
	t.Helper()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "postgres",
				"POSTGRES_DB":       testDatabase,
			},
			WaitingFor: wait.ForSQL("5432/tcp", "pgx", func(host string, port nat.Port) string {
				return postgresDSN(host, port.Port())
			}).WithStartupTimeout(time.Minute),
		},
		Started: true,
	})
	if err != nil {
		t.Skipf("postgres container unavailable: %v", err)
	}

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	return postgresDSN(host, port.Port()), func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = container.Terminate(stopCtx)
	}
}

// applyMigrations 按文件名顺序执行 migrations 目录下的 SQL。
func applyMigrations(ctx context.Context, t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	dir := filepath.Join("..", "..", "..", "migrations")
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			names = append(names, entry.Name())
		}
	}
	slices.Sort(names)

	for _, name := range names {
		sql, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err)
		_, err = pool.Exec(ctx, string(sql))
		require.NoErrorf(t, err, "apply migration %s", name)
	}
}

// newTestPool 启动容器、建立连接池并完成迁移，资源随测试结束释放。
func newTestPool(ctx context.Context, t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn, terminate := startPostgres(ctx, t)
	t.Cleanup(terminate)

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	applyMigrations(ctx, t, pool)
	return pool
}

func newTxManager(t *testing.T, pool *pgxpool.Pool) txmanager.Manager {
	t.Helper()
	mgr, err := txmanager.NewManager(pool, txmanager.Config{}, txmanager.Dependencies{Logger: log.NewStdLogger(io.Discard)})
	require.NoError(t, err)
	return mgr
}

func stringPtr(val string) *string {
	return &val
}

func timePtr(val time.Time) *time.Time {
	return &val
}

func float64Ptr(val float64) *float64 {
	return &val
}
