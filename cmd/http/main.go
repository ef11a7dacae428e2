// Package main 提供学习进度 HTTP 服务的启动入口。
// 负责加载配置、初始化依赖（通过 Wire）、启动 HTTP Server 与 outbox 发布器并优雅关闭。
package main

import (
	"context"
	"errors"
	"flag"

	configloader "github.com/bionicotaku/lingo-services-progress/internal/infrastructure/configloader"
	obswire "github.com/bionicotaku/lingo-utils/observability"
	outboxpublisher "github.com/bionicotaku/lingo-utils/outbox/publisher"
	"github.com/go-kratos/kratos/v2"
	"github.com/go-kratos/kratos/v2/log"
	khttp "github.com/go-kratos/kratos/v2/transport/http"

	_ "go.uber.org/automaxprocs" // 自动设置 GOMAXPROCS 为容器 CPU 配额
)

// newApp 组装 Kratos 应用。publisher 为 nil 时（未配置出站 topic）只启动 HTTP Server，
// 事件留在 outbox 表中等待独立任务发布。
func newApp(
	_ *obswire.Component,
	logger log.Logger,
	hs *khttp.Server,
	meta configloader.ServiceInfo,
	publisher *outboxpublisher.Runner,
) *kratos.App {
	options := []kratos.Option{
		kratos.ID(meta.InstanceID),
		kratos.Name(meta.Name),
		kratos.Version(meta.Version),
		kratos.Metadata(map[string]string{"environment": meta.Environment}),
		kratos.Logger(logger),
		kratos.Server(hs),
	}
	if publisher != nil {
		bg := &publisherLoop{run: publisher.Run, log: log.NewHelper(logger)}
		options = append(options, kratos.BeforeStart(bg.start), kratos.AfterStop(bg.stop))
	}
	return kratos.New(options...)
}

// publisherLoop 把 outbox 发布器挂到应用生命周期上：启动前拉起，停止后取消并等待退出。
type publisherLoop struct {
	run    func(context.Context) error
	log    *log.Helper
	cancel context.CancelFunc
	done   chan struct{}
}

func (p *publisherLoop) start(ctx context.Context) error {
	runCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.done = make(chan struct{})
	go func() {
		defer close(p.done)
		if err := p.run(runCtx); err != nil && !errors.Is(err, context.Canceled) {
			p.log.Warnf("outbox publisher stopped: %v", err)
		}
	}()
	return nil
}

// stop 最多等待到 ctx 截止，未退出的发布器随进程结束。
func (p *publisherLoop) stop(ctx context.Context) error {
	if p.cancel == nil {
		return nil
	}
	p.cancel()
	select {
	case <-p.done:
	case <-ctx.Done():
	}
	return nil
}

func main() {
	ctx := context.Background()

	// 1. 解析命令行参数：-conf 指定配置文件路径或目录
	confFlag := flag.String("conf", "", "config path or directory, eg: -conf configs/config.yaml")
	flag.Parse()

	params := configloader.Params{ConfPath: *confFlag}

	// 2. 通过 Wire 装配依赖，wireApp 由 wire_gen.go 生成
	app, cleanupApp, err := wireApp(ctx, params)
	if err != nil {
		panic(err)
	}
	defer cleanupApp()

	// 3. 阻塞直到收到 SIGINT/SIGTERM
	if err := app.Run(); err != nil {
		panic(err)
	}
}
