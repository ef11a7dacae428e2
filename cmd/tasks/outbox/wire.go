//go:build wireinject
// +build wireinject

// Package main 为 outbox 发布任务提供 Wire 依赖注入定义。
package main

import (
	"context"
	"fmt"

	configloader "github.com/bionicotaku/lingo-services-progress/internal/infrastructure/configloader"
	"github.com/bionicotaku/lingo-services-progress/internal/repositories"
	outboxtasks "github.com/bionicotaku/lingo-services-progress/internal/tasks/outbox"

	"github.com/bionicotaku/lingo-utils/gclog"
	"github.com/bionicotaku/lingo-utils/gcpubsub"
	obswire "github.com/bionicotaku/lingo-utils/observability"
	outboxpublisher "github.com/bionicotaku/lingo-utils/outbox/publisher"
	"github.com/bionicotaku/lingo-utils/pgxpoolx"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/wire"
)

//go:generate go run github.com/google/wire/cmd/wire

func wireOutboxTask(context.Context, configloader.Params) (*outboxTaskApp, func(), error) {
	panic(wire.Build(
		configloader.ProviderSet,
		gclog.ProviderSet,
		obswire.ProviderSet,
		pgxpoolx.ProviderSet,
		gcpubsub.ProviderSet,
		repositories.NewOutboxRepository,
		outboxtasks.ProvideRunner,
		newOutboxTaskApp,
	))
}

func newOutboxTaskApp(_ *obswire.Component, logger log.Logger, repo *repositories.OutboxRepository, runner *outboxpublisher.Runner) (*outboxTaskApp, error) {
	if logger == nil {
		return nil, fmt.Errorf("logger not initialized")
	}
	return &outboxTaskApp{
		Runner: runner,
		Repo:   repo,
		Logger: logger,
	}, nil
}
