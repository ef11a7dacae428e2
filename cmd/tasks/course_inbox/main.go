// Package main 提供课程目录 Inbox Runner 的独立入口，消费 course.lesson.* 事件，
// 维护 progress.lessons 投影及题目、评论、报告，并失效 Redis 课时缓存。
package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	configloader "github.com/bionicotaku/lingo-services-progress/internal/infrastructure/configloader"
	"github.com/go-kratos/kratos/v2/log"
)

type courseInboxApp struct {
	Task   runner
	Logger log.Logger
}

type runner interface {
	Run(ctx context.Context) error
}

func main() {
	ctx := context.Background()

	confFlag := flag.String("conf", "", "config path or directory, eg: -conf configs/config.yaml")
	flag.Parse()

	params := configloader.Params{ConfPath: *confFlag}
	app, cleanup, err := wireCourseInboxTask(ctx, params)
	if err != nil {
		panic(err)
	}
	defer cleanup()

	logger := app.Logger
	if logger == nil {
		logger = log.NewStdLogger(os.Stdout)
	}
	helper := log.NewHelper(logger)

	if app.Task == nil {
		helper.Warn("course inbox runner disabled (missing messaging.course_events configuration)")
		return
	}

	helper.Info("starting course inbox task")

	runCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Task.Run(runCtx); err != nil && !errors.Is(err, context.Canceled) {
		helper.Errorf("course inbox runner stopped unexpectedly: %v", err)
		os.Exit(1)
	}

	helper.Info("course inbox task stopped")
}
