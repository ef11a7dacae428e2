// Package main 是进度事件 outbox 发布器的独立进程入口。
// HTTP 进程未配置 topic、或需要单独扩容发布器时使用。
package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	configloader "github.com/bionicotaku/lingo-services-progress/internal/infrastructure/configloader"
	"github.com/bionicotaku/lingo-services-progress/internal/repositories"
	outboxpublisher "github.com/bionicotaku/lingo-utils/outbox/publisher"
	"github.com/go-kratos/kratos/v2/log"
)

type outboxTaskApp struct {
	Runner *outboxpublisher.Runner
	Repo   *repositories.OutboxRepository
	Logger log.Logger
}

func main() {
	ctx := context.Background()

	confFlag := flag.String("conf", "", "config path or directory, eg: -conf configs/config.yaml")
	flag.Parse()

	app, cleanup, err := wireOutboxTask(ctx, configloader.Params{ConfPath: *confFlag})
	if err != nil {
		panic(err)
	}
	defer cleanup()

	logger := app.Logger
	if logger == nil {
		logger = log.NewStdLogger(os.Stdout)
	}
	helper := log.NewHelper(logger)

	if app.Runner == nil {
		helper.Warn("outbox publisher disabled (messaging.pubsub.topic_id not set)")
		return
	}

	if app.Repo != nil {
		if pending, err := app.Repo.CountPending(ctx); err == nil {
			helper.Infof("starting outbox publisher: pending=%d", pending)
		} else {
			helper.Warnf("starting outbox publisher: count pending failed: %v", err)
		}
	}

	runCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Runner.Run(runCtx); err != nil && !errors.Is(err, context.Canceled) {
		helper.Errorf("outbox publisher stopped unexpectedly: %v", err)
		os.Exit(1)
	}

	helper.Info("outbox publisher stopped")
}
