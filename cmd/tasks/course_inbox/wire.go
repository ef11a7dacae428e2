//go:build wireinject
// +build wireinject

// Package main 为课程目录 inbox 任务提供 Wire 依赖注入定义。
package main

import (
	"context"
	"fmt"

	configloader "github.com/bionicotaku/lingo-services-progress/internal/infrastructure/configloader"
	"github.com/bionicotaku/lingo-services-progress/internal/repositories"
	courseinbox "github.com/bionicotaku/lingo-services-progress/internal/tasks/course_inbox"

	"github.com/bionicotaku/lingo-utils/gclog"
	"github.com/bionicotaku/lingo-utils/gcpubsub"
	obswire "github.com/bionicotaku/lingo-utils/observability"
	"github.com/bionicotaku/lingo-utils/pgxpoolx"
	"github.com/bionicotaku/lingo-utils/txmanager"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/wire"
)

//go:generate go run github.com/google/wire/cmd/wire

var courseInboxRepoSet = wire.NewSet(
	repositories.NewInboxRepository,
	repositories.NewLessonProjectionRepository,
	repositories.NewLessonContentRepository,
	repositories.NewRedisClient,
	repositories.NewLessonCache,
)

func wireCourseInboxTask(context.Context, configloader.Params) (*courseInboxApp, func(), error) {
	panic(wire.Build(
		configloader.InboxProviderSet,
		gclog.ProviderSet,
		obswire.ProviderSet,
		pgxpoolx.ProviderSet,
		txmanager.ProviderSet,
		gcpubsub.ProviderSet,
		courseInboxRepoSet,
		courseinbox.ProvideTask,
		newCourseInboxApp,
	))
}

func newCourseInboxApp(_ *obswire.Component, logger log.Logger, task *courseinbox.Task) (*courseInboxApp, error) {
	if task == nil {
		return &courseInboxApp{Logger: logger}, nil
	}
	if logger == nil {
		return nil, fmt.Errorf("logger not initialized")
	}
	return &courseInboxApp{
		Task:   task,
		Logger: logger,
	}, nil
}
